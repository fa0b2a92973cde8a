package usecase

import (
	"context"

	"github.com/reactive-web/reactive-cms/internal/domain/entity"
)

// PageView is the data handed to the view boundary for a single page.
type PageView struct {
	Title    string       `json:"title"`
	Template string       `json:"template"`
	Page     *entity.Page `json:"page"`
}

// PostView is the data handed to the view boundary for a single post.
type PostView struct {
	Title string       `json:"title"`
	Post  *entity.Post `json:"post"`
}

// PostArchiveView is the paginated blog archive.
type PostArchiveView struct {
	Title        string         `json:"title"`
	Items        []*entity.Post `json:"items"`
	TotalItems   int64          `json:"total_items"`
	TotalPages   int            `json:"total_pages"`
	ItemsSkipped int            `json:"items_skipped"`
	CurrentPage  int            `json:"current_page"`
	ItemsPerPage int            `json:"items_peer_page"`
}

// ContentUsecase covers the public read-only content queries.
type ContentUsecase interface {
	// HomePage returns the configured home page, or an empty default view
	// when no home page is configured.
	HomePage(ctx context.Context) (*PageView, error)

	// PageBySlug returns a single page by slug.
	PageBySlug(ctx context.Context, slug string) (*PageView, error)

	// PostBySlug returns a single post by slug.
	PostBySlug(ctx context.Context, slug string) (*PostView, error)

	// PostArchive returns one page of the blog archive. Requesting a page
	// with no items yields a not-found error.
	PostArchive(ctx context.Context, page int) (*PostArchiveView, error)
}
