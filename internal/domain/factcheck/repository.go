package factcheck

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository defines fact-check data access
type Repository interface {
	Create(ctx context.Context, fc *FactCheck) error
	GetByID(ctx context.Context, id uuid.UUID) (*FactCheck, error)
	ListRecent(ctx context.Context, limit int) ([]*FactCheck, error)
	List(ctx context.Context, verdict Verdict, limit, offset int) ([]*FactCheck, int, error)
	UpdateVerdict(ctx context.Context, id uuid.UUID, verdict Verdict) error
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates fact-check repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const selectCols = `id, title, description, verdict, user_id, attachments, created_at, updated_at`

func (r *repository) Create(ctx context.Context, fc *FactCheck) error {
	query := `
		INSERT INTO fact_checks (id, title, description, verdict, user_id, attachments, created_at, updated_at)
		VALUES (:id, :title, :description, :verdict, :user_id, :attachments, :created_at, :updated_at)`

	_, err := r.db.NamedExecContext(ctx, query, fc)
	return err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*FactCheck, error) {
	var fc FactCheck
	err := r.db.GetContext(ctx, &fc, `SELECT `+selectCols+` FROM fact_checks WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &fc, nil
}

func (r *repository) ListRecent(ctx context.Context, limit int) ([]*FactCheck, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	checks := []*FactCheck{}
	err := r.db.SelectContext(ctx, &checks,
		`SELECT `+selectCols+` FROM fact_checks ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	return checks, nil
}

func (r *repository) List(ctx context.Context, verdict Verdict, limit, offset int) ([]*FactCheck, int, error) {
	where := ""
	args := []interface{}{}
	if verdict != "" {
		where = " WHERE verdict = $1"
		args = append(args, verdict)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM fact_checks`+where, args...); err != nil {
		return nil, 0, err
	}

	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + selectCols + ` FROM fact_checks` + where + ` ORDER BY created_at DESC`
	if where == "" {
		query += ` LIMIT $1 OFFSET $2`
	} else {
		query += ` LIMIT $2 OFFSET $3`
	}
	args = append(args, limit, offset)

	checks := []*FactCheck{}
	if err := r.db.SelectContext(ctx, &checks, query, args...); err != nil {
		return nil, 0, err
	}
	return checks, total, nil
}

func (r *repository) UpdateVerdict(ctx context.Context, id uuid.UUID, verdict Verdict) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE fact_checks SET verdict = $1, updated_at = NOW() WHERE id = $2`, verdict, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrFactCheckNotFound
	}
	return nil
}
