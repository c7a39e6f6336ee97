package factcheck

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Rai-jal/citizen-voice-api/internal/pkg/validator"
)

// FactCheck represents a claim submitted for verification
type FactCheck struct {
	ID          uuid.UUID     `db:"id" json:"id"`
	Title       string        `db:"title" json:"title"`
	Description *string       `db:"description" json:"description,omitempty"`
	Verdict     Verdict       `db:"verdict" json:"verdict"`
	UserID      uuid.NullUUID `db:"user_id" json:"user_id,omitempty"`
	Attachments Attachments   `db:"attachments" json:"attachments"`
	CreatedAt   time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time     `db:"updated_at" json:"updated_at"`
}

// EmbeddedAttachment is evidence attached to a fact-check. Unlike report
// attachments these live inline in a JSONB column, not in their own table.
type EmbeddedAttachment struct {
	Name string                   `json:"name"`
	Path string                   `json:"path"`
	Type validator.AttachmentType `json:"type"`
}

// Attachments is the JSONB array stored in fact_checks.attachments.
type Attachments []EmbeddedAttachment

// Value implements driver.Valuer so sqlx can serialize Attachments to JSONB.
func (a Attachments) Value() (driver.Value, error) {
	if a == nil {
		return "[]", nil
	}
	b, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("marshal fact-check attachments: %w", err)
	}
	return string(b), nil
}

// Scan implements sql.Scanner so sqlx can deserialize JSONB into Attachments.
func (a *Attachments) Scan(src interface{}) error {
	var b []byte
	switch v := src.(type) {
	case string:
		b = []byte(v)
	case []byte:
		b = v
	case nil:
		*a = Attachments{}
		return nil
	default:
		return fmt.Errorf("unexpected type for attachments: %T", src)
	}
	return json.Unmarshal(b, a)
}
