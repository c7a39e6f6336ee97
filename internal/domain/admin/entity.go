package admin

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Role represents an elevated user role
type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
	RoleModerator  Role = "moderator"
)

// IsElevated reports whether the role grants access to the admin surface.
func (r Role) IsElevated() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleModerator:
		return true
	}
	return false
}

// AdminUser represents a user resolved through the admin gate
type AdminUser struct {
	ID          uuid.UUID    `db:"id" json:"id"`
	Email       string       `db:"email" json:"email"`
	Role        Role         `db:"role" json:"role"`
	LastLoginAt sql.NullTime `db:"last_login_at" json:"last_login_at,omitempty"`
	CreatedAt   time.Time    `db:"created_at" json:"created_at"`
}

// HasPermission checks if admin has a specific permission.
// Super admins hold every permission implicitly.
func (a *AdminUser) HasPermission(perm Permission) bool {
	if a.Role == RoleSuperAdmin {
		return true
	}
	permissions, ok := RolePermissions[a.Role]
	if !ok {
		return false
	}
	for _, p := range permissions {
		if p == perm {
			return true
		}
	}
	return false
}
