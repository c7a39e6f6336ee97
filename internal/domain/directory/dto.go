package directory

import "github.com/google/uuid"

// CreateRequest adds a directory entry
type CreateRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=200"`
	Description string `json:"description" validate:"required,min=10,max=5000"`
	Category    string `json:"category" validate:"omitempty,max=100"`
	Phone       string `json:"phone" validate:"omitempty,max=50"`
	URL         string `json:"url" validate:"omitempty,url"`
	Address     string `json:"address" validate:"omitempty,max=200"`
}

// Response is the public view of a directory entry
type Response struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	URL         string    `json:"url,omitempty"`
	Address     string    `json:"address,omitempty"`
}

// NewResponse builds the public view
func NewResponse(e *Entry) *Response {
	return &Response{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		Category:    e.Category.String,
		Phone:       e.Phone.String,
		URL:         e.URL.String,
		Address:     e.Address.String,
	}
}
