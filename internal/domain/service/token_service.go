package service

import (
	"time"

	"github.com/google/uuid"
)

// SessionClaims is the validated content of a dashboard session token.
type SessionClaims struct {
	UserID uuid.UUID
	Role   string
}

// TokenService signs and validates dashboard session tokens.
// Validation covers signature and expiry only; revocation is the session
// store's concern.
type TokenService interface {
	// GenerateSessionToken signs a new session token for the user.
	GenerateSessionToken(userID uuid.UUID, role string) (string, error)

	// ValidateSessionToken parses and verifies a session token.
	ValidateSessionToken(tokenString string) (*SessionClaims, error)

	// SessionDuration returns the configured session lifetime.
	SessionDuration() time.Duration
}
