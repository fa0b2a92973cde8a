package entity

import "time"

// Setting is the singleton dashboard configuration record. At most one
// Setting exists system-wide; it is created only by the setup workflow.
type Setting struct {
	ID           uint64
	PageTitle    string // Title shown across the admin dashboard.
	ItemsPerPage int    // Default page size for dashboard listings.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
