// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/reactive-web/reactive-cms/internal/domain/entity"
	"github.com/reactive-web/reactive-cms/internal/domain/repository"
	"github.com/reactive-web/reactive-cms/internal/infra/persistence/model"
)

// pageRepository implements the domain.PageRepository interface using GORM.
type pageRepository struct {
	db *gorm.DB
}

// NewPageRepository is the constructor for pageRepository.
func NewPageRepository(db *gorm.DB) repository.PageRepository {
	return &pageRepository{db: db}
}

// FindByID retrieves a single page by its unique ID.
func (repo *pageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Page, error) {
	var pageM model.PageModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&pageM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPageNotFound
		}

		return nil, errors.Wrap(err, "failed to find page by id")
	}

	return toPageDomain(&pageM), nil
}

// FindBySlug retrieves a single page by its slug.
func (repo *pageRepository) FindBySlug(ctx context.Context, slug string) (*entity.Page, error) {
	var pageM model.PageModel
	err := repo.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&pageM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPageNotFound
		}

		return nil, errors.Wrap(err, "failed to find page by slug")
	}

	return toPageDomain(&pageM), nil
}

// postRepository implements the domain.PostRepository interface using GORM.
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository is the constructor for postRepository.
func NewPostRepository(db *gorm.DB) repository.PostRepository {
	return &postRepository{db: db}
}

// FindBySlug retrieves a single post by its slug.
func (repo *postRepository) FindBySlug(ctx context.Context, slug string) (*entity.Post, error) {
	var postM model.PostModel
	err := repo.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&postM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find post by slug")
	}

	return toPostDomain(&postM), nil
}

// List returns posts ordered newest-first.
func (repo *postRepository) List(ctx context.Context, offset, limit int) ([]*entity.Post, error) {
	var postMs []*model.PostModel
	err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&postMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list posts")
	}

	posts := make([]*entity.Post, 0, len(postMs))
	for _, postM := range postMs {
		posts = append(posts, toPostDomain(postM))
	}

	return posts, nil
}

// Count returns the total number of posts.
func (repo *postRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.PostModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count posts")
	}

	return count, nil
}

// toPageDomain converts a GORM PageModel to a domain Page entity.
func toPageDomain(data *model.PageModel) *entity.Page {
	if data == nil {
		return nil
	}

	return &entity.Page{
		ID:        data.ID,
		Slug:      data.Slug,
		Title:     data.Title,
		Content:   data.Content,
		Template:  data.Template,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// toPostDomain converts a GORM PostModel to a domain Post entity.
func toPostDomain(data *model.PostModel) *entity.Post {
	if data == nil {
		return nil
	}

	return &entity.Post{
		ID:        data.ID,
		Slug:      data.Slug,
		Title:     data.Title,
		Content:   data.Content,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
