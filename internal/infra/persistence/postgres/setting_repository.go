// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/reactive-web/reactive-cms/internal/domain/entity"
	domainerrors "github.com/reactive-web/reactive-cms/internal/domain/errors"
	"github.com/reactive-web/reactive-cms/internal/domain/repository"
	"github.com/reactive-web/reactive-cms/internal/infra/persistence/model"
)

// settingRepository implements the domain.SettingRepository interface using GORM.
type settingRepository struct {
	db *gorm.DB
}

// NewSettingRepository is the constructor for settingRepository.
func NewSettingRepository(db *gorm.DB) repository.SettingRepository {
	return &settingRepository{db: db}
}

// Get retrieves the singleton setting record.
func (repo *settingRepository) Get(ctx context.Context) (*entity.Setting, error) {
	var settingM model.SettingModel
	err := repo.db.WithContext(ctx).
		Where("singleton = ?", true).
		First(&settingM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSettingNotFound
		}

		return nil, errors.Wrap(err, "failed to get settings")
	}

	return toSettingDomain(&settingM), nil
}

// Create persists the singleton setting record. The unique 'singleton'
// column rejects a second row at the database level.
func (repo *settingRepository) Create(ctx context.Context, setting *entity.Setting) error {
	settingM := fromSettingDomain(setting)
	settingM.Singleton = true

	if err := repo.db.WithContext(ctx).Create(settingM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("settings already exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create settings")
	}

	setting.ID = settingM.ID
	setting.CreatedAt = settingM.CreatedAt
	setting.UpdatedAt = settingM.UpdatedAt

	return nil
}

// Update modifies the existing setting record.
func (repo *settingRepository) Update(ctx context.Context, setting *entity.Setting) error {
	settingM := fromSettingDomain(setting)
	settingM.Singleton = true

	if err := repo.db.WithContext(ctx).Save(settingM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update settings")
	}

	setting.UpdatedAt = settingM.UpdatedAt

	return nil
}

// toSettingDomain converts a GORM SettingModel to a domain Setting entity.
func toSettingDomain(data *model.SettingModel) *entity.Setting {
	if data == nil {
		return nil
	}

	return &entity.Setting{
		ID:           data.ID,
		PageTitle:    data.PageTitle,
		ItemsPerPage: data.ItemsPerPage,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromSettingDomain converts a domain Setting entity to a GORM SettingModel.
func fromSettingDomain(data *entity.Setting) *model.SettingModel {
	if data == nil {
		return nil
	}

	return &model.SettingModel{
		ID:           data.ID,
		PageTitle:    data.PageTitle,
		ItemsPerPage: data.ItemsPerPage,
	}
}
