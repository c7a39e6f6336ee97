package directory

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Repository defines directory data access
type Repository interface {
	Create(ctx context.Context, e *Entry) error
	List(ctx context.Context, category string) ([]*Entry, error)
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates directory repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, e *Entry) error {
	query := `
		INSERT INTO directory_entries (id, name, description, category, phone, url, address, created_at, updated_at)
		VALUES (:id, :name, :description, :category, :phone, :url, :address, :created_at, :updated_at)`

	_, err := r.db.NamedExecContext(ctx, query, e)
	return err
}

func (r *repository) List(ctx context.Context, category string) ([]*Entry, error) {
	entries := []*Entry{}
	query := `SELECT id, name, description, category, phone, url, address, created_at, updated_at
	          FROM directory_entries`
	args := []interface{}{}
	if category != "" {
		query += ` WHERE category = $1`
		args = append(args, category)
	}
	query += ` ORDER BY name`

	if err := r.db.SelectContext(ctx, &entries, query, args...); err != nil {
		return nil, err
	}
	return entries, nil
}
