package opportunity

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Repository defines opportunity data access
type Repository interface {
	Create(ctx context.Context, o *Opportunity) error
	List(ctx context.Context, openOnly bool) ([]*Opportunity, error)
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates opportunity repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, o *Opportunity) error {
	query := `
		INSERT INTO opportunities (id, title, description, organizer, url, deadline, created_at, updated_at)
		VALUES (:id, :title, :description, :organizer, :url, :deadline, :created_at, :updated_at)`

	_, err := r.db.NamedExecContext(ctx, query, o)
	return err
}

func (r *repository) List(ctx context.Context, openOnly bool) ([]*Opportunity, error) {
	opportunities := []*Opportunity{}
	query := `SELECT id, title, description, organizer, url, deadline, created_at, updated_at
	          FROM opportunities`
	if openOnly {
		query += ` WHERE deadline > NOW()`
	}
	query += ` ORDER BY deadline ASC`

	if err := r.db.SelectContext(ctx, &opportunities, query); err != nil {
		return nil, err
	}
	return opportunities, nil
}
