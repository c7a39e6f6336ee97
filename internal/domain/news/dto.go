package news

import (
	"time"

	"github.com/google/uuid"
)

// CreateRequest carries the multipart form fields of a new article.
// The cover image is handled separately by the handler.
type CreateRequest struct {
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	Body     string `json:"body"`
	Category string `json:"category"`
}

// Response is the public view of an article
type Response struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	Body        string    `json:"body,omitempty"`
	Category    string    `json:"category,omitempty"`
	CoverURL    string    `json:"cover_url,omitempty"`
	ThumbURL    string    `json:"thumb_url,omitempty"`
	PublishedAt string    `json:"published_at"`
}

// NewResponse builds the public view. includeBody is false for listings.
func NewResponse(a *Article, urlFor func(key string) string, includeBody bool) *Response {
	resp := &Response{
		ID:          a.ID,
		Title:       a.Title,
		Summary:     a.Summary,
		PublishedAt: a.PublishedAt.UTC().Format(time.RFC3339),
	}
	if includeBody {
		resp.Body = a.Body
	}
	if a.Category.Valid {
		resp.Category = a.Category.String
	}
	if a.CoverPath.Valid {
		resp.CoverURL = urlFor(a.CoverPath.String)
	}
	if a.ThumbPath.Valid {
		resp.ThumbURL = urlFor(a.ThumbPath.String)
	}
	return resp
}
