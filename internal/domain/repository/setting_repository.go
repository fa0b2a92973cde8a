package repository

import (
	"context"
	"errors"

	"github.com/reactive-web/reactive-cms/internal/domain/entity"
)

// ErrSettingNotFound is returned when the singleton setting record does not exist yet.
var ErrSettingNotFound = errors.New("setting not found")

// SettingRepository manages the singleton dashboard Setting record.
type SettingRepository interface {
	// Get retrieves the singleton setting record.
	Get(ctx context.Context) (*entity.Setting, error)

	// Create persists the singleton setting record. Fails if one already exists.
	Create(ctx context.Context, setting *entity.Setting) error

	// Update modifies the existing setting record.
	Update(ctx context.Context, setting *entity.Setting) error
}
