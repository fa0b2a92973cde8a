// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/reactive-web/reactive-cms/config"
	"github.com/reactive-web/reactive-cms/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret     string        // Secret key for signing session tokens.
	sessionTTL time.Duration // Time-to-live for a dashboard session.
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("session secret must be provided")
	}

	// Loaded configs always carry an auth section with a positive duration;
	// the one-day fallback covers configs built without one.
	ttl := 24 * time.Hour
	if cfg.Auth != nil {
		ttl = cfg.Auth.SessionDuration
	}

	return &jwtService{
		secret:     cfg.SecretKey.Session,
		sessionTTL: ttl,
	}, nil
}

// GenerateSessionToken creates a signed session token for a given user and role.
func (s *jwtService) GenerateSessionToken(userID uuid.UUID, role string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  userID.String(),                     // Subject (who the token is for)
		"iat":  time.Now().Unix(),                   // Issued At
		"exp":  time.Now().Add(s.sessionTTL).Unix(), // Expiration Time
		"role": role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// ValidateSessionToken checks the signature and expiry of a session token and
// extracts its claims.
func (s *jwtService) ValidateSessionToken(tokenString string) (*service.SessionClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired session token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("failed to parse token claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return nil, errors.New("user id missing from token")
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, errors.New("invalid user id in token")
	}

	role, _ := claims["role"].(string)

	return &service.SessionClaims{
		UserID: userID,
		Role:   role,
	}, nil
}

// SessionDuration returns the configured session lifetime.
func (s *jwtService) SessionDuration() time.Duration {
	return s.sessionTTL
}
