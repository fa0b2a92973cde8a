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

// siteRepository implements the domain.SiteRepository interface using GORM.
type siteRepository struct {
	db *gorm.DB
}

// NewSiteRepository is the constructor for siteRepository.
func NewSiteRepository(db *gorm.DB) repository.SiteRepository {
	return &siteRepository{db: db}
}

// Get retrieves the singleton site record.
func (repo *siteRepository) Get(ctx context.Context) (*entity.Site, error) {
	var siteM model.SiteModel
	err := repo.db.WithContext(ctx).
		Where("singleton = ?", true).
		First(&siteM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSiteNotFound
		}

		return nil, errors.Wrap(err, "failed to get site")
	}

	return toSiteDomain(&siteM), nil
}

// Create persists the singleton site record. The unique 'singleton'
// column rejects a second row at the database level.
func (repo *siteRepository) Create(ctx context.Context, site *entity.Site) error {
	siteM := fromSiteDomain(site)
	siteM.Singleton = true

	if err := repo.db.WithContext(ctx).Create(siteM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("site already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create site")
	}

	site.ID = siteM.ID
	site.CreatedAt = siteM.CreatedAt
	site.UpdatedAt = siteM.UpdatedAt

	return nil
}

// Update modifies the existing site record.
func (repo *siteRepository) Update(ctx context.Context, site *entity.Site) error {
	siteM := fromSiteDomain(site)
	siteM.Singleton = true

	if err := repo.db.WithContext(ctx).Save(siteM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update site")
	}

	site.UpdatedAt = siteM.UpdatedAt

	return nil
}

// toSiteDomain converts a GORM SiteModel to a domain Site entity.
func toSiteDomain(data *model.SiteModel) *entity.Site {
	if data == nil {
		return nil
	}

	return &entity.Site{
		ID:           data.ID,
		Name:         data.SiteName,
		URL:          data.SiteURL,
		ItemsPerPage: data.ItemsPerPage,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromSiteDomain converts a domain Site entity to a GORM SiteModel.
func fromSiteDomain(data *entity.Site) *model.SiteModel {
	if data == nil {
		return nil
	}

	return &model.SiteModel{
		ID:           data.ID,
		SiteName:     data.Name,
		SiteURL:      data.URL,
		ItemsPerPage: data.ItemsPerPage,
	}
}
