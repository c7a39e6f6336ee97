package news

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Article represents a published news item
type Article struct {
	ID          uuid.UUID      `db:"id" json:"id"`
	Title       string         `db:"title" json:"title"`
	Summary     string         `db:"summary" json:"summary"`
	Body        string         `db:"body" json:"body"`
	Category    sql.NullString `db:"category" json:"category,omitempty"`
	CoverPath   sql.NullString `db:"cover_path" json:"-"`
	ThumbPath   sql.NullString `db:"thumb_path" json:"-"`
	PublishedAt time.Time      `db:"published_at" json:"published_at"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at" json:"updated_at"`
}
