package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/reactive-web/reactive-cms/internal/domain/entity"
)

// LoginInput defines the credentials submitted by the dashboard login form.
type LoginInput struct {
	UserName string `json:"user_name" form:"user_name" validate:"max=255"`
	Password string `json:"user_pass" form:"user_pass" validate:"max=255"`
}

// LoginOutput returns the session token and identity after a successful login.
type LoginOutput struct {
	Token string
	User  *entity.SessionUser
}

// AuthUsecase covers dashboard credential verification and session lifecycle.
type AuthUsecase interface {
	// Login validates the credentials, requires the admin role, persists a
	// session and returns the signed session token with the SessionUser.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Logout revokes every session for the user. Calling it when no session
	// exists is a no-op.
	Logout(ctx context.Context, userID uuid.UUID) error

	// Authenticate resolves a session token back to its SessionUser. The
	// token must carry a valid signature and match a live, non-revoked
	// session in the store.
	Authenticate(ctx context.Context, token string) (*entity.SessionUser, error)
}
