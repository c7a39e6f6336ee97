package report

import (
	"time"

	"github.com/google/uuid"
)

// CreateRequest carries the multipart form fields of a new report.
// Files are handled separately by the handler.
type CreateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	IsAnonymous bool   `json:"is_anonymous"`
}

// UpdateStatusRequest moves a report through the moderation machine
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,report_status"`
}

// ListFilter narrows admin report listings
type ListFilter struct {
	Status Status
	Limit  int
	Offset int
}

// AttachmentResponse is the public view of a stored attachment
type AttachmentResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	URL  string    `json:"url"`
	Type string    `json:"type"`
}

// Response is the public view of a report
type Response struct {
	ID          uuid.UUID             `json:"id"`
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Location    *string               `json:"location,omitempty"`
	IsAnonymous bool                  `json:"is_anonymous"`
	Status      Status                `json:"status"`
	CreatedAt   string                `json:"created_at"`
	Attachments []*AttachmentResponse `json:"attachments"`
}

// NewResponse builds the public view. Attachment URLs are resolved
// through the given function so the entity stays storage-agnostic.
func NewResponse(r *Report, urlFor func(key string) string) *Response {
	attachments := make([]*AttachmentResponse, 0, len(r.Attachments))
	for _, a := range r.Attachments {
		attachments = append(attachments, &AttachmentResponse{
			ID:   a.ID,
			Name: a.Name,
			URL:  urlFor(a.Path),
			Type: string(a.Type),
		})
	}

	return &Response{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Location:    r.Location,
		IsAnonymous: r.IsAnonymous,
		Status:      r.Status,
		CreatedAt:   r.CreatedAt.UTC().Format(time.RFC3339),
		Attachments: attachments,
	}
}
