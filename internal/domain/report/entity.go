package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/Rai-jal/citizen-voice-api/internal/pkg/validator"
)

// Report represents a citizen-submitted issue report
type Report struct {
	ID          uuid.UUID     `db:"id" json:"id"`
	Title       string        `db:"title" json:"title"`
	Description string        `db:"description" json:"description"`
	Location    *string       `db:"location" json:"location,omitempty"`
	UserID      uuid.NullUUID `db:"user_id" json:"user_id,omitempty"`
	IsAnonymous bool          `db:"is_anonymous" json:"is_anonymous"`
	Status      Status        `db:"status" json:"status"`
	CreatedAt   time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time     `db:"updated_at" json:"updated_at"`

	Attachments []*Attachment `db:"-" json:"attachments"`
}

// Attachment is a file linked to a report. Rows are immutable once written.
type Attachment struct {
	ID        uuid.UUID                `db:"id" json:"id"`
	ReportID  uuid.UUID                `db:"report_id" json:"report_id"`
	Name      string                   `db:"name" json:"name"`
	Path      string                   `db:"path" json:"path"`
	Type      validator.AttachmentType `db:"type" json:"type"`
	CreatedAt time.Time                `db:"created_at" json:"created_at"`
}
