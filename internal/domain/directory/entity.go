package directory

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Entry represents a city service in the public directory
type Entry struct {
	ID          uuid.UUID      `db:"id" json:"id"`
	Name        string         `db:"name" json:"name"`
	Description string         `db:"description" json:"description"`
	Category    sql.NullString `db:"category" json:"-"`
	Phone       sql.NullString `db:"phone" json:"-"`
	URL         sql.NullString `db:"url" json:"-"`
	Address     sql.NullString `db:"address" json:"-"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at" json:"updated_at"`
}
