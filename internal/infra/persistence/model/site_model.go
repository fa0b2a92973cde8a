package model

import "time"

// SiteModel mirrors the 'sites' table. The unique 'singleton' column
// guarantees at most one row system-wide.
type SiteModel struct {
	ID           uint64 `gorm:"primaryKey"`
	Singleton    bool   `gorm:"not null;default:true;unique"`
	SiteName     string `gorm:"type:varchar(255);not null"`
	SiteURL      string `gorm:"type:varchar(255)"`
	ItemsPerPage int    `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (SiteModel) TableName() string {
	return "sites"
}
