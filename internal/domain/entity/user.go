// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity in the system. The very first User is created by
// the setup workflow and is always an active administrator.
type User struct {
	ID           uuid.UUID // The unique identifier for the user.
	UserName     string    // Unique login name, matched exactly during login.
	Email        string    // The user's contact email, unique system-wide.
	FirstName    string    // Display name shown in the dashboard.
	Role         Role      // Exactly one role from the fixed set.
	PasswordHash string    // bcrypt hash of the password; plaintext is never stored.
	Active       bool      // Stored account state; not consulted during login.
	RegisteredAt time.Time // Timestamp of account creation.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

// SessionUser is the value object bound to an authenticated dashboard session.
// It mirrors exactly what the session mechanism persists for a logged-in user.
type SessionUser struct {
	ID           uuid.UUID `json:"user_id"`
	UserName     string    `json:"user_name"`
	Email        string    `json:"user_email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"user_type"`
}

// NewSessionUser builds the session value object from a persisted user.
func NewSessionUser(user *User) *SessionUser {
	return &SessionUser{
		ID:           user.ID,
		UserName:     user.UserName,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Role:         user.Role,
	}
}
