package model

import "time"

// SettingModel mirrors the 'settings' table. The unique 'singleton' column
// guarantees at most one row system-wide.
type SettingModel struct {
	ID           uint64 `gorm:"primaryKey"`
	Singleton    bool   `gorm:"not null;default:true;unique"`
	PageTitle    string `gorm:"type:varchar(255)"`
	ItemsPerPage int    `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (SettingModel) TableName() string {
	return "settings"
}
