package user

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Role represents user role in the system (matches user_role enum).
// Regular citizens submit reports and fact-checks; the three elevated
// roles unlock the moderation surface.
type Role string

const (
	RoleCitizen    Role = "citizen"
	RoleModerator  Role = "moderator"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

// User represents a user account (matches the users table)
type User struct {
	ID           uuid.UUID      `db:"id"`
	Email        string         `db:"email"`
	PasswordHash string         `db:"password_hash"`
	FullName     sql.NullString `db:"full_name"`
	Language     sql.NullString `db:"language"`
	Role         Role           `db:"role"`

	// Login tracking
	LastLoginAt sql.NullTime   `db:"last_login_at"`
	LastLoginIP sql.NullString `db:"last_login_ip"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// HasElevatedRole returns true for moderator, admin and super_admin.
// Informational only; authoritative checks go through the database.
func (u *User) HasElevatedRole() bool {
	switch u.Role {
	case RoleModerator, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}
