package entity

import (
	"time"

	"github.com/google/uuid"
)

// Page is a static page served by the public site, addressed by slug.
type Page struct {
	ID        uuid.UUID
	Slug      string
	Title     string
	Content   string
	Template  string // Optional view template name; empty means the default view.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Post is a blog entry, listed newest-first in the paginated archive.
type Post struct {
	ID        uuid.UUID
	Slug      string
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
