package entity

import "time"

// Site is the singleton public-site record. At most one Site exists
// system-wide; it is created only by the setup workflow.
type Site struct {
	ID           uint64
	Name         string // Public site name, shown in page titles.
	URL          string // Canonical site URL.
	ItemsPerPage int    // Page size for the public blog archive.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
