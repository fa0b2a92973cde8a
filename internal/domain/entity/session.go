package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session represents an active dashboard login. It binds a user id to the
// SHA-256 hash of the issued session token; removing the row revokes every
// outstanding token for that user.
type Session struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string    // SHA-256 hash of the raw session token.
	ExpiresAt time.Time // The session is invalid after this instant.
	CreatedAt time.Time
}

// Expired reports whether the session is past its expiry.
func (s *Session) Expired(now time.Time) bool {
	return s.ExpiresAt.Before(now)
}
