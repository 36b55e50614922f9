package domain

import "time"

// Role represents the user's permission level in the system.
type Role string

const (
	// RoleGuest is the implicit role of unauthenticated visitors.
	RoleGuest Role = "guest"
	// RoleMember grants standard user access. New registrations start here.
	RoleMember Role = "member"
	// RoleAdmin grants full administrative access.
	RoleAdmin Role = "admin"
	// RoleOwner marks a user as a cafe owner, granting listing management access.
	RoleOwner Role = "owner"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	switch r {
	case RoleGuest, RoleMember, RoleAdmin, RoleOwner:
		return true
	}
	return false
}

// User represents an authenticated user account in the system.
// PasswordHash is never serialized into API responses.
type User struct {
	ID           string    `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	LastLoginAt  time.Time `json:"last_login_at,omitzero"`
}

// IsAdmin returns true if the user has administrative privileges.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Touch updates the UpdatedAt timestamp to the current time.
func (u *User) Touch() {
	u.UpdatedAt = time.Now()
}

// InitTimestamps sets both CreatedAt and UpdatedAt to now.
// Call this when creating a new user.
func (u *User) InitTimestamps() {
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now
}
