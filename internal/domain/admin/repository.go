package admin

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository defines admin data access
type Repository interface {
	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
	GetAdminUser(ctx context.Context, userID uuid.UUID) (*AdminUser, error)
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates admin repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// IsAdmin calls the is_admin database function. The function owns the
// authoritative definition of adminship so every consumer agrees.
func (r *repository) IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	var isAdmin bool
	err := r.db.GetContext(ctx, &isAdmin, `SELECT is_admin($1)`, userID)
	if err != nil {
		return false, err
	}
	return isAdmin, nil
}

func (r *repository) GetAdminUser(ctx context.Context, userID uuid.UUID) (*AdminUser, error) {
	var admin AdminUser
	query := `
		SELECT id, email, role, last_login_at, created_at
		FROM users
		WHERE id = $1 AND role IN ('moderator', 'admin', 'super_admin')`

	err := r.db.GetContext(ctx, &admin, query, userID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}
