// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/reactive-web/reactive-cms/internal/domain/entity"
)

// SetupInput defines the data collected by the first-run setup form. Fields
// are only length-capped here; the installer deliberately accepts partial
// submissions as long as at least one field is filled in.
type SetupInput struct {
	SiteName  string `json:"setup_site_name" form:"setup_site_name" validate:"max=255"`
	SiteURL   string `json:"setup_site_url" form:"setup_site_url" validate:"max=255"`
	FirstName string `json:"setup_first_name" form:"setup_first_name" validate:"max=255"`
	Email     string `json:"setup_user_email" form:"setup_user_email" validate:"max=255"`
	UserName  string `json:"setup_user_name" form:"setup_user_name" validate:"max=255"`
	Password  string `json:"setup_user_pass" form:"setup_user_pass" validate:"max=255"`
}

// SetupOutput returns the records created by a successful bootstrap.
type SetupOutput struct {
	User    *entity.User
	Setting *entity.Setting
	Site    *entity.Site
}

// SetupUsecase covers the one-time bootstrap that takes the system from
// zero users to one admin user plus site configuration.
type SetupUsecase interface {
	// IsInitialized reports whether any user exists. The answer is computed
	// from a fresh count on every call, never from a cached flag.
	IsInitialized(ctx context.Context) (bool, error)

	// Bootstrap creates the first admin user, the Setting singleton, and the
	// Site singleton in one transaction. It fails once the system is
	// initialized, and concurrent invocations commit at most once.
	Bootstrap(ctx context.Context, input *SetupInput) (*SetupOutput, error)
}
