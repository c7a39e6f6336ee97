package opportunity

import (
	"time"

	"github.com/google/uuid"
)

// CreateRequest adds an opportunity
type CreateRequest struct {
	Title       string    `json:"title" validate:"required,min=3,max=200"`
	Description string    `json:"description" validate:"required,min=10,max=5000"`
	Organizer   string    `json:"organizer" validate:"omitempty,max=200"`
	URL         string    `json:"url" validate:"omitempty,url"`
	Deadline    time.Time `json:"deadline" validate:"required"`
}

// Response is the public view of an opportunity
type Response struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Organizer   string    `json:"organizer,omitempty"`
	URL         string    `json:"url,omitempty"`
	Deadline    string    `json:"deadline"`
	Open        bool      `json:"open"`
}

// NewResponse builds the public view
func NewResponse(o *Opportunity) *Response {
	return &Response{
		ID:          o.ID,
		Title:       o.Title,
		Description: o.Description,
		Organizer:   o.Organizer.String,
		URL:         o.URL.String,
		Deadline:    o.Deadline.UTC().Format(time.RFC3339),
		Open:        o.IsOpen(time.Now()),
	}
}
