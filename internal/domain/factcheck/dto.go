package factcheck

import (
	"time"

	"github.com/google/uuid"
)

// CreateRequest carries the multipart form fields of a new fact-check.
// Evidence files are handled separately by the handler.
type CreateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UpdateVerdictRequest moves a fact-check through the review machine
type UpdateVerdictRequest struct {
	Verdict string `json:"verdict" validate:"required,verdict"`
}

// AttachmentResponse is the public view of an evidence file
type AttachmentResponse struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Type string `json:"type"`
}

// Response is the public view of a fact-check
type Response struct {
	ID           uuid.UUID             `json:"id"`
	Title        string                `json:"title"`
	Description  *string               `json:"description,omitempty"`
	Verdict      Verdict               `json:"verdict"`
	VerdictLabel string                `json:"verdict_label"`
	Final        bool                  `json:"final"`
	Attachments  []*AttachmentResponse `json:"attachments"`
	CreatedAt    string                `json:"created_at"`
}

// NewResponse builds the public view, resolving attachment URLs through
// the given function.
func NewResponse(fc *FactCheck, urlFor func(key string) string) *Response {
	attachments := make([]*AttachmentResponse, 0, len(fc.Attachments))
	for _, a := range fc.Attachments {
		attachments = append(attachments, &AttachmentResponse{
			Name: a.Name,
			URL:  urlFor(a.Path),
			Type: string(a.Type),
		})
	}

	return &Response{
		ID:           fc.ID,
		Title:        fc.Title,
		Description:  fc.Description,
		Verdict:      fc.Verdict,
		VerdictLabel: fc.Verdict.Label(),
		Final:        fc.Verdict.IsFinalVerdict(),
		Attachments:  attachments,
		CreatedAt:    fc.CreatedAt.UTC().Format(time.RFC3339),
	}
}
