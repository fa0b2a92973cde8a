package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/reactive-web/reactive-cms/internal/domain/entity"
)

// Domain-specific errors for content lookups.
var (
	// ErrPageNotFound is returned when no page matches the lookup.
	ErrPageNotFound = errors.New("page not found")
	// ErrPostNotFound is returned when no post matches the lookup.
	ErrPostNotFound = errors.New("post not found")
)

// PageRepository provides read access to public site pages.
type PageRepository interface {
	// FindByID retrieves a single page by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Page, error)

	// FindBySlug retrieves a single page by its slug.
	FindBySlug(ctx context.Context, slug string) (*entity.Page, error)
}

// PostRepository provides read access to blog posts.
type PostRepository interface {
	// FindBySlug retrieves a single post by its slug.
	FindBySlug(ctx context.Context, slug string) (*entity.Post, error)

	// List returns posts ordered newest-first, skipping offset rows and
	// returning at most limit rows.
	List(ctx context.Context, offset, limit int) ([]*entity.Post, error)

	// Count returns the total number of posts.
	Count(ctx context.Context) (int64, error)
}
