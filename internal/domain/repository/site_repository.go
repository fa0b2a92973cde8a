package repository

import (
	"context"
	"errors"

	"github.com/reactive-web/reactive-cms/internal/domain/entity"
)

// ErrSiteNotFound is returned when the singleton site record does not exist yet.
var ErrSiteNotFound = errors.New("site not found")

// SiteRepository manages the singleton public-site record.
type SiteRepository interface {
	// Get retrieves the singleton site record.
	Get(ctx context.Context) (*entity.Site, error)

	// Create persists the singleton site record. Fails if one already exists.
	Create(ctx context.Context, site *entity.Site) error

	// Update modifies the existing site record.
	Update(ctx context.Context, site *entity.Site) error
}
