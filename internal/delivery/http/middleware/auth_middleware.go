package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/reactive-web/reactive-cms/internal/domain/entity"
	"github.com/reactive-web/reactive-cms/internal/usecase"
)

// SessionCookieName is the cookie carrying the dashboard session token.
const SessionCookieName = "cms_session"

// ContextKeySessionUser is the echo context key holding the authenticated SessionUser.
const ContextKeySessionUser = "sessionUser"

// AuthMiddleware guards dashboard routes behind a live session.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC}
}

// Authenticate resolves the session token from the cms_session cookie or a
// Bearer header and binds the SessionUser to the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := SessionToken(c)
		if token == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Session token is missing"})
		}

		sessionUser, err := m.authUC.Authenticate(c.Request().Context(), token)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired session"})
		}

		c.Set(ContextKeySessionUser, sessionUser)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the session user has a specific role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sessionUser, ok := c.Get(ContextKeySessionUser).(*entity.SessionUser)
			if !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: session information missing"})
			}

			if sessionUser.Role != requiredRole {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: require '" + requiredRole.String() + "' role"})
			}

			return next(c)
		}
	}
}

// SessionToken extracts the raw session token from the request, preferring
// the session cookie over the Authorization header.
func SessionToken(c echo.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == authHeader {
		return ""
	}

	return token
}
