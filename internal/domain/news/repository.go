package news

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository defines news data access
type Repository interface {
	Create(ctx context.Context, a *Article) error
	GetByID(ctx context.Context, id uuid.UUID) (*Article, error)
	List(ctx context.Context, limit, offset int) ([]*Article, int, error)
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates news repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const selectCols = `id, title, summary, body, category, cover_path, thumb_path, published_at, created_at, updated_at`

func (r *repository) Create(ctx context.Context, a *Article) error {
	query := `
		INSERT INTO news (id, title, summary, body, category, cover_path, thumb_path, published_at, created_at, updated_at)
		VALUES (:id, :title, :summary, :body, :category, :cover_path, :thumb_path, :published_at, :created_at, :updated_at)`

	_, err := r.db.NamedExecContext(ctx, query, a)
	return err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Article, error) {
	var a Article
	err := r.db.GetContext(ctx, &a, `SELECT `+selectCols+` FROM news WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) List(ctx context.Context, limit, offset int) ([]*Article, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM news`); err != nil {
		return nil, 0, err
	}

	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	articles := []*Article{}
	err := r.db.SelectContext(ctx, &articles,
		`SELECT `+selectCols+` FROM news ORDER BY published_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return articles, total, nil
}
