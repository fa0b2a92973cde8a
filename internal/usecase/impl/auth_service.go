package impl

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.uber.org/fx"

	deliverycontext "github.com/reactive-web/reactive-cms/internal/delivery/context"
	"github.com/reactive-web/reactive-cms/internal/domain/entity"
	domainerrors "github.com/reactive-web/reactive-cms/internal/domain/errors"
	"github.com/reactive-web/reactive-cms/internal/domain/repository"
	"github.com/reactive-web/reactive-cms/internal/domain/service"
	"github.com/reactive-web/reactive-cms/internal/errors"
	"github.com/reactive-web/reactive-cms/internal/usecase"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	sessionRepo  repository.SessionRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	SessionRepo  repository.SessionRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		sessionRepo:  params.SessionRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login validates the submitted credentials and establishes a session.
// Every credential or role failure returns the same InvalidCredentials error
// so responses never reveal whether the user exists, the password was wrong,
// or the role was insufficient.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting dashboard login", slog.String("userName", input.UserName))

	total, err := srv.userRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}
	if total == 0 {
		return nil, errors.Wrap(domainerrors.ErrSetupRequired, "login attempted before setup")
	}

	user, err := srv.userRepo.FindByUserName(ctx, input.UserName)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("userName", input.UserName))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "unknown user")
		}

		return nil, errors.Wrap(err, "failed to find user by name")
	}

	// bcrypt comparison is CPU-bound and constant-time with respect to the
	// hash contents.
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("userName", input.UserName))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
	}

	// Only admins may enter the dashboard. The stored active flag is not
	// consulted here, matching the system's historical behavior.
	if user.Role != entity.RoleAdmin {
		srv.log(ctx).Warn("Login failed", slog.String("userName", input.UserName))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "role not permitted")
	}

	token, err := srv.tokenService.GenerateSessionToken(user.ID, user.Role.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session token")
	}

	session := &entity.Session{
		UserID:    user.ID,
		TokenHash: hashSessionToken(token),
		ExpiresAt: time.Now().Add(srv.tokenService.SessionDuration()),
	}
	if err := srv.sessionRepo.Create(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to persist session")
	}

	srv.log(ctx).Info("User logged in", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		Token: token,
		User:  entity.NewSessionUser(user),
	}, nil
}

// Logout revokes every session for the user. It is safe to call when no
// session exists.
func (srv *authService) Logout(ctx context.Context, userID uuid.UUID) error {
	if err := srv.sessionRepo.DeleteByUserID(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to revoke sessions")
	}

	srv.log(ctx).Info("User logged out", slog.Any("userID", userID))

	return nil
}

// Authenticate resolves a session token to its SessionUser. A token is only
// accepted while a matching session row exists, so revocation in the store
// invalidates outstanding tokens immediately.
func (srv *authService) Authenticate(ctx context.Context, token string) (*entity.SessionUser, error) {
	claims, err := srv.tokenService.ValidateSessionToken(token)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrSessionInvalid, "token validation failed")
	}

	session, err := srv.sessionRepo.FindByTokenHash(ctx, hashSessionToken(token))
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, errors.Wrap(domainerrors.ErrSessionInvalid, "session revoked or expired")
		}

		return nil, errors.Wrap(err, "failed to find session")
	}

	if session.UserID != claims.UserID {
		return nil, errors.Wrap(domainerrors.ErrSessionInvalid, "session user mismatch")
	}

	// The store query filters on expiry too; a row past its deadline must
	// never resolve to a user.
	if session.Expired(time.Now()) {
		return nil, errors.Wrap(domainerrors.ErrSessionInvalid, "session expired")
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrSessionInvalid, "session user no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load session user")
	}

	return entity.NewSessionUser(user), nil
}

// hashSessionToken derives the stored lookup key for a raw session token.
// Only the digest is persisted.
func hashSessionToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}
