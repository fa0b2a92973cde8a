package impl

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/reactive-web/reactive-cms/config"
	deliverycontext "github.com/reactive-web/reactive-cms/internal/delivery/context"
	domainerrors "github.com/reactive-web/reactive-cms/internal/domain/errors"
	"github.com/reactive-web/reactive-cms/internal/domain/repository"
	"github.com/reactive-web/reactive-cms/internal/errors"
	"github.com/reactive-web/reactive-cms/internal/usecase"
)

// AdminServiceParams defines the dependencies for the admin service.
type AdminServiceParams struct {
	fx.In

	SettingRepo repository.SettingRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// adminService implements the usecase.AdminUsecase interface.
type adminService struct {
	settingRepo repository.SettingRepository
	dashboard   *config.DashboardConfig
	logger      *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		settingRepo: params.SettingRepo,
		dashboard:   params.Config.Dashboard,
		logger:      params.Logger,
	}
}

// Dashboard returns the dashboard view configuration.
func (s *adminService) Dashboard(ctx context.Context) (*usecase.DashboardView, error) {
	view := &usecase.DashboardView{}
	if s.dashboard != nil {
		view.Title = s.dashboard.Title
		view.ItemsPerPage = s.dashboard.ItemsPerPage
	}

	setting, err := s.settingRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrSettingNotFound) {
			return view, nil
		}

		logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
		logger.ErrorContext(ctx, "Failed to load dashboard settings", slog.String("error", err.Error()))

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load dashboard settings")
	}

	view.Title = setting.PageTitle
	view.ItemsPerPage = setting.ItemsPerPage

	return view, nil
}
