// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleAdmin indicates a dashboard administrator. Only admins may log in
	// to the admin area.
	RoleAdmin Role = "admin"
	// RoleSubscriber indicates a regular registered reader.
	RoleSubscriber Role = "subscriber"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleSubscriber:
		return true
	default:
		return false
	}
}
