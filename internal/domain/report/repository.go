package report

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository defines report data access
type Repository interface {
	Create(ctx context.Context, r *Report) error
	GetByID(ctx context.Context, id uuid.UUID) (*Report, error)
	List(ctx context.Context, filter ListFilter) ([]*Report, int, error)
	ListApproved(ctx context.Context, limit, offset int) ([]*Report, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
	AddAttachment(ctx context.Context, a *Attachment) error
	GetAttachments(ctx context.Context, reportID uuid.UUID) ([]*Attachment, error)
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates report repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const selectCols = `id, title, description, location, user_id, is_anonymous, status, created_at, updated_at`

func (r *repository) Create(ctx context.Context, rep *Report) error {
	query := `
		INSERT INTO reports (id, title, description, location, user_id, is_anonymous, status, created_at, updated_at)
		VALUES (:id, :title, :description, :location, :user_id, :is_anonymous, :status, :created_at, :updated_at)`

	_, err := r.db.NamedExecContext(ctx, query, rep)
	return err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Report, error) {
	var rep Report
	err := r.db.GetContext(ctx, &rep, `SELECT `+selectCols+` FROM reports WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := r.loadAttachments(ctx, []*Report{&rep}); err != nil {
		return nil, err
	}
	return &rep, nil
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]*Report, int, error) {
	where := ""
	args := []interface{}{}
	if filter.Status != "" {
		where = " WHERE status = $1"
		args = append(args, filter.Status)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM reports`+where, args...); err != nil {
		return nil, 0, err
	}

	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + selectCols + ` FROM reports` + where + ` ORDER BY created_at DESC`
	if where == "" {
		query += ` LIMIT $1 OFFSET $2`
	} else {
		query += ` LIMIT $2 OFFSET $3`
	}
	args = append(args, limit, offset)

	reports := []*Report{}
	if err := r.db.SelectContext(ctx, &reports, query, args...); err != nil {
		return nil, 0, err
	}

	if err := r.loadAttachments(ctx, reports); err != nil {
		return nil, 0, err
	}
	return reports, total, nil
}

func (r *repository) ListApproved(ctx context.Context, limit, offset int) ([]*Report, int, error) {
	return r.List(ctx, ListFilter{Status: StatusApproved, Limit: limit, Offset: offset})
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE reports SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrReportNotFound
	}
	return nil
}

func (r *repository) AddAttachment(ctx context.Context, a *Attachment) error {
	query := `
		INSERT INTO report_attachments (id, report_id, name, path, type, created_at)
		VALUES (:id, :report_id, :name, :path, :type, :created_at)`

	_, err := r.db.NamedExecContext(ctx, query, a)
	return err
}

func (r *repository) GetAttachments(ctx context.Context, reportID uuid.UUID) ([]*Attachment, error) {
	attachments := []*Attachment{}
	err := r.db.SelectContext(ctx, &attachments,
		`SELECT id, report_id, name, path, type, created_at
		 FROM report_attachments WHERE report_id = $1 ORDER BY created_at`, reportID)
	if err != nil {
		return nil, err
	}
	return attachments, nil
}

// loadAttachments fills Attachments on each report in one query.
func (r *repository) loadAttachments(ctx context.Context, reports []*Report) error {
	if len(reports) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(reports))
	byID := make(map[uuid.UUID]*Report, len(reports))
	for _, rep := range reports {
		rep.Attachments = []*Attachment{}
		ids = append(ids, rep.ID)
		byID[rep.ID] = rep
	}

	query, args, err := sqlx.In(
		`SELECT id, report_id, name, path, type, created_at
		 FROM report_attachments WHERE report_id IN (?) ORDER BY created_at`, ids)
	if err != nil {
		return err
	}
	query = r.db.Rebind(query)

	attachments := []*Attachment{}
	if err := r.db.SelectContext(ctx, &attachments, query, args...); err != nil {
		return err
	}

	for _, a := range attachments {
		if rep, ok := byID[a.ReportID]; ok {
			rep.Attachments = append(rep.Attachments, a)
		}
	}
	return nil
}
