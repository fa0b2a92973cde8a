// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"go.uber.org/fx"

	"github.com/reactive-web/reactive-cms/config"
	deliverycontext "github.com/reactive-web/reactive-cms/internal/delivery/context"
	"github.com/reactive-web/reactive-cms/internal/domain/entity"
	domainerrors "github.com/reactive-web/reactive-cms/internal/domain/errors"
	"github.com/reactive-web/reactive-cms/internal/domain/repository"
	"github.com/reactive-web/reactive-cms/internal/domain/service"
	"github.com/reactive-web/reactive-cms/internal/errors"
	"github.com/reactive-web/reactive-cms/internal/usecase"
)

// setupService implements the SetupUsecase interface.
type setupService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	dashboard *config.DashboardConfig
	site      *config.SiteConfig
	logger    *slog.Logger
}

// SetupServiceParams holds dependencies for setupService, injected by Fx.
type SetupServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewSetupService is the constructor for setupService.
func NewSetupService(params SetupServiceParams) usecase.SetupUsecase {
	return &setupService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		dashboard: params.Config.Dashboard,
		site:      params.Config.Site,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *setupService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// IsInitialized reports whether at least one user exists. The count is
// re-queried on every call: a process-local flag would go stale after a
// restart or in a multi-instance deployment.
func (srv *setupService) IsInitialized(ctx context.Context) (bool, error) {
	total, err := srv.userRepo.Count(ctx)
	if err != nil {
		return false, errors.Wrap(err, "failed to count users")
	}

	return total > 0, nil
}

// Bootstrap performs the one-time first-run initialization. The user count is
// re-checked inside the transaction, so two racing setup requests commit at
// most one bootstrap; the unique indexes on users and the singleton records
// back that up at the storage level.
func (srv *setupService) Bootstrap(ctx context.Context, input *usecase.SetupInput) (*usecase.SetupOutput, error) {
	srv.log(ctx).Info("Starting setup bootstrap", slog.String("siteName", input.SiteName), slog.String("userName", input.UserName))

	// The original admits requests with some empty fields and only rejects
	// when every field is empty at once. Reproduced as-is; tightening it
	// would be a behavior change for existing installers.
	if input.SiteName == "" && input.SiteURL == "" && input.FirstName == "" &&
		input.Email == "" && input.UserName == "" && input.Password == "" {
		return nil, errors.Wrap(domainerrors.ErrSetupValidationFailed, "empty setup submission")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during setup", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash setup password")
	}

	output := &usecase.SetupOutput{}
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		settingRepo := repoFactory.SettingRepo()
		siteRepo := repoFactory.SiteRepo()

		total, err := userRepo.Count(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to count users")
		}
		if total > 0 {
			return errors.Wrap(domainerrors.ErrSetupAlreadyCompleted, "a user already exists")
		}

		user := &entity.User{
			UserName:     input.UserName,
			Email:        input.Email,
			FirstName:    input.FirstName,
			Role:         entity.RoleAdmin,
			PasswordHash: hashedPassword,
			Active:       true,
			RegisteredAt: time.Now(),
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create first admin user")
		}

		setting := &entity.Setting{
			PageTitle:    srv.dashboard.Title,
			ItemsPerPage: srv.dashboard.ItemsPerPage,
		}
		if err := settingRepo.Create(ctx, setting); err != nil {
			return errors.Wrap(err, "failed to create settings")
		}

		site := &entity.Site{
			Name:         input.SiteName,
			URL:          input.SiteURL,
			ItemsPerPage: srv.site.ItemsPerPage,
		}
		if err := siteRepo.Create(ctx, site); err != nil {
			return errors.Wrap(err, "failed to create site")
		}

		output.User = user
		output.Setting = setting
		output.Site = site

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Setup bootstrap failed", slog.String("userName", input.UserName), slog.Any("error", err))

		if errors.Is(err, domainerrors.ErrSetupAlreadyCompleted) || errors.Is(err, domainerrors.ErrUserAlreadyExists) {
			return nil, err
		}

		return nil, errors.Wrap(domainerrors.ErrSetupPersistenceFailed, err.Error())
	}

	srv.log(ctx).Info("Setup bootstrap completed", slog.Any("userID", output.User.ID), slog.String("siteName", output.Site.Name))

	return output, nil
}
