package domain

import "time"

// UserRole represents the role of a user
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// User represents a registered user
type User struct {
	ID        string
	Name      string
	Email     string
	Password  string
	Role      UserRole
	Avatar    string
	CreatedAt time.Time
}

// IsAdmin returns true if the user has administrative privileges
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
