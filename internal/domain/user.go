package domain

import "time"

// UserRole represents the authorization role of a user
type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleTeacher UserRole = "teacher"
	RoleAdmin   UserRole = "admin"
)

// User represents an account in the system
type User struct {
	ID            int64
	Email         string // unique
	Name          string
	Username      string // unique
	PasswordHash  string
	StudentNumber *string
	Role          UserRole
	ProfileImage  *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAdmin returns true for administrator accounts
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
