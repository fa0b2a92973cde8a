// Package model contains the GORM persistence models mirroring the database tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via gen_random_uuid().
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserName     string    `gorm:"type:varchar(100);unique;not null"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	FirstName    string    `gorm:"type:varchar(100)"`
	Role         string    `gorm:"type:varchar(32);not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Active       bool      `gorm:"not null;default:true"`
	RegisteredAt time.Time `gorm:"not null"`
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
