package directory

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/Rai-jal/citizen-voice-api/internal/pkg/validator"
)

// Service handles directory business logic
type Service struct {
	repo Repository
}

// NewService creates directory service
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create adds an entry to the directory
func (s *Service) Create(ctx context.Context, req *CreateRequest) (*Entry, error) {
	now := time.Now()
	e := &Entry{
		ID:          uuid.New(),
		Name:        validator.SanitizeText(req.Name),
		Description: validator.SanitizeUserInput(req.Description),
		Category:    nullable(validator.SanitizeText(req.Category)),
		Phone:       nullable(validator.SanitizeText(req.Phone)),
		URL:         nullable(req.URL),
		Address:     nullable(validator.SanitizeText(req.Address)),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// List returns directory entries ordered by name
func (s *Service) List(ctx context.Context, category string) ([]*Entry, error) {
	return s.repo.List(ctx, category)
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
