package impl

import (
	"io"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/reactive-web/reactive-cms/config"
	"github.com/reactive-web/reactive-cms/internal/domain/service"
	"github.com/reactive-web/reactive-cms/internal/infra/auth"
)

// newDiscardLogger returns a logger that swallows all output during tests.
func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestConfig returns a config with the defaults the services expect.
func newTestConfig() *config.Config {
	return &config.Config{
		SecretKey: config.SecretKey{Session: "test-session-secret"},
		Auth: &config.AuthConfig{
			BcryptCost:      bcrypt.MinCost,
			SessionDuration: time.Hour,
		},
		Dashboard: &config.DashboardConfig{
			Title:        "DASHBOARD",
			ItemsPerPage: 20,
		},
		Site: &config.SiteConfig{
			ItemsPerPage: 10,
		},
	}
}

// newTestHasher uses the cheapest bcrypt cost to keep tests fast.
func newTestHasher() service.PasswordHasher {
	return auth.NewBcryptHasherWithCost(bcrypt.MinCost)
}

// newTestTokenService builds a real JWT token service from the test config.
func newTestTokenService() service.TokenService {
	tokenSvc, err := auth.NewJWTService(newTestConfig())
	if err != nil {
		panic(err)
	}

	return tokenSvc
}
