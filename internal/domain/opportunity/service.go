package opportunity

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/Rai-jal/citizen-voice-api/internal/pkg/validator"
)

// Service handles opportunity business logic
type Service struct {
	repo Repository
}

// NewService creates opportunity service
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create adds an opportunity
func (s *Service) Create(ctx context.Context, req *CreateRequest) (*Opportunity, error) {
	now := time.Now()
	o := &Opportunity{
		ID:          uuid.New(),
		Title:       validator.SanitizeText(req.Title),
		Description: validator.SanitizeUserInput(req.Description),
		Deadline:    req.Deadline,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if organizer := validator.SanitizeText(req.Organizer); organizer != "" {
		o.Organizer = sql.NullString{String: organizer, Valid: true}
	}
	if req.URL != "" {
		o.URL = sql.NullString{String: req.URL, Valid: true}
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// List returns opportunities ordered by deadline, soonest first.
func (s *Service) List(ctx context.Context, openOnly bool) ([]*Opportunity, error) {
	return s.repo.List(ctx, openOnly)
}
