package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/reactive-web/reactive-cms/internal/domain/entity"
)

// ErrSessionNotFound is returned when no live session matches the lookup.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository persists and revokes dashboard login sessions.
type SessionRepository interface {
	// Create persists a new session, replacing any prior session for the same
	// user. A user holds at most one active dashboard session.
	Create(ctx context.Context, session *entity.Session) error

	// FindByTokenHash retrieves a non-expired session by its token hash.
	FindByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error)

	// DeleteByUserID removes every session for the user. Deleting when no
	// session exists is not an error.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}
