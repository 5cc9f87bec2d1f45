package entities

import "time"

// Role is the access level of an account.
type Role string

const (
	// RoleAdmin manages everything including the team directory.
	RoleAdmin Role = "admin"
	// RoleManager runs projects and tasks.
	RoleManager Role = "manager"
	// RoleMember works on assigned tasks.
	RoleMember Role = "member"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleMember:
		return true
	}
	return false
}

// User is an account that can sign in.
type User struct {
	ID           string
	Email        string
	Name         string
	Role         Role
	PasswordHash string
	CreatedAt    time.Time
}

// Principal is the authenticated caller of an operation.
type Principal struct {
	UserID string
	Role   Role
}

// Session is the result of a successful sign in.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      User
}
