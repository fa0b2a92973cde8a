package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/reactive-web/reactive-cms/config"
	"github.com/reactive-web/reactive-cms/internal/delivery/http/middleware"
	"github.com/reactive-web/reactive-cms/internal/delivery/http/response"
	"github.com/reactive-web/reactive-cms/internal/domain/entity"
	"github.com/reactive-web/reactive-cms/internal/usecase"
)

// AuthHandler holds dependencies for the dashboard auth handlers.
type AuthHandler struct {
	authUC  usecase.AuthUsecase
	setupUC usecase.SetupUsecase
	adminUC usecase.AdminUsecase
	cfg     *config.Config
	logger  *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(
	authUC usecase.AuthUsecase,
	setupUC usecase.SetupUsecase,
	adminUC usecase.AdminUsecase,
	cfg *config.Config,
	logger *slog.Logger,
) *AuthHandler {
	return &AuthHandler{
		authUC:  authUC,
		setupUC: setupUC,
		adminUC: adminUC,
		cfg:     cfg,
		logger:  logger,
	}
}

// ShowLogin serves the admin entry point. An uninitialized system redirects
// to setup; an already-authenticated session goes straight to the dashboard.
func (h *AuthHandler) ShowLogin(c echo.Context) error {
	initialized, err := h.setupUC.IsInitialized(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	if !initialized {
		return c.Redirect(http.StatusFound, "/setup")
	}

	if token := middleware.SessionToken(c); token != "" {
		if _, err := h.authUC.Authenticate(c.Request().Context(), token); err == nil {
			return c.Redirect(http.StatusFound, "/admin/dashboard")
		}
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"action": "/admin/login",
	}, "Please log in")
}

// Login handles the dashboard login request and issues the session cookie.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.authUC.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(h.sessionCookie(output.Token, h.sessionDuration()))

	return response.Success(c, http.StatusOK, map[string]any{
		"token": output.Token,
		"user":  output.User,
	}, "Login successful")
}

// Logout revokes the current session if one exists and clears the cookie.
// Logging out without a live session is not an error.
func (h *AuthHandler) Logout(c echo.Context) error {
	if token := middleware.SessionToken(c); token != "" {
		if sessionUser, err := h.authUC.Authenticate(c.Request().Context(), token); err == nil {
			if err := h.authUC.Logout(c.Request().Context(), sessionUser.ID); err != nil {
				return errors.WithStack(err)
			}
		}
	}

	c.SetCookie(h.sessionCookie("", -time.Hour))

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"}, "Logout successful")
}

// Dashboard serves the authenticated dashboard view.
func (h *AuthHandler) Dashboard(c echo.Context) error {
	sessionUser, ok := c.Get(middleware.ContextKeySessionUser).(*entity.SessionUser)
	if !ok {
		return response.Unauthorized(c, "SESSION_INVALID", "Invalid session")
	}

	view, err := h.adminUC.Dashboard(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"dashboard": view,
		"user":      sessionUser,
	}, "Dashboard")
}

func (h *AuthHandler) sessionDuration() time.Duration {
	if h.cfg != nil && h.cfg.Auth != nil && h.cfg.Auth.SessionDuration > 0 {
		return h.cfg.Auth.SessionDuration
	}

	return 24 * time.Hour
}

func (h *AuthHandler) sessionCookie(token string, maxAge time.Duration) *http.Cookie {
	cookie := &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	if maxAge < 0 {
		cookie.MaxAge = -1
	} else {
		cookie.Expires = time.Now().Add(maxAge)
	}

	return cookie
}
