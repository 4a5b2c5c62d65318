package model

import "time"

// User roles. Role gates nothing on the public booking flow; it exists
// for the admin dashboard (user listing, status management).
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User mirrors the users table. The password hash is a bcrypt mirror of
// the credential held by the external auth provider; it never leaves the
// server, hence the "-" JSON tag.
type User struct {
	ID           uint64    `json:"id"`        // users.id
	Email        string    `json:"email"`     // users.email, unique
	Name         string    `json:"name"`      // users.name
	PasswordHash string    `json:"-"`         // users.password_hash
	Role         string    `json:"role"`      // users.role, user or admin
	CreatedAt    time.Time `json:"createdAt"` // users.created_at
	UpdatedAt    time.Time `json:"updatedAt"` // users.updated_at
}
