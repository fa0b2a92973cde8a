package main

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"

	"github.com/reactive-web/reactive-cms/config"
	"github.com/reactive-web/reactive-cms/internal/delivery"
	"github.com/reactive-web/reactive-cms/internal/delivery/http"
	"github.com/reactive-web/reactive-cms/internal/delivery/http/middleware"
	"github.com/reactive-web/reactive-cms/internal/delivery/http/router/handler"
	"github.com/reactive-web/reactive-cms/internal/infra/auth"
	logs "github.com/reactive-web/reactive-cms/internal/infra/log"
	"github.com/reactive-web/reactive-cms/internal/infra/persistence/postgres"
	"github.com/reactive-web/reactive-cms/internal/usecase/impl"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewSettingRepository,
			postgres.NewSiteRepository,
			postgres.NewSessionRepository,
			postgres.NewPageRepository,
			postgres.NewPostRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSetupService,
			impl.NewAuthService,
			impl.NewAdminService,
			impl.NewContentService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSetupHandler,
			handler.NewAuthHandler,
			handler.NewContentHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
