package opportunity

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Opportunity represents a civic opportunity (volunteering, grants,
// public consultations) with an application deadline.
type Opportunity struct {
	ID          uuid.UUID      `db:"id" json:"id"`
	Title       string         `db:"title" json:"title"`
	Description string         `db:"description" json:"description"`
	Organizer   sql.NullString `db:"organizer" json:"-"`
	URL         sql.NullString `db:"url" json:"-"`
	Deadline    time.Time      `db:"deadline" json:"deadline"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at" json:"updated_at"`
}

// IsOpen reports whether the deadline has not passed.
func (o *Opportunity) IsOpen(now time.Time) bool {
	return o.Deadline.After(now)
}
