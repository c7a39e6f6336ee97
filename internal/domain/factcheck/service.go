package factcheck

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Rai-jal/citizen-voice-api/internal/domain/admin"
	"github.com/Rai-jal/citizen-voice-api/internal/pkg/storage"
	"github.com/Rai-jal/citizen-voice-api/internal/pkg/validator"
)

// AdminChecker gates review operations.
type AdminChecker interface {
	IsAdmin(ctx context.Context, userID uuid.UUID, meta admin.TokenMeta) bool
}

// UploadFile is one evidence file from a multipart submission.
type UploadFile struct {
	Name   string
	Size   int64
	Reader io.Reader
}

// CreateResult carries the stored fact-check plus non-fatal evidence warnings.
type CreateResult struct {
	FactCheck *FactCheck
	Warnings  []string
}

// Service handles fact-check business logic
type Service struct {
	repo        Repository
	storage     storage.Storage
	adminSvc    AdminChecker
	maxUploadMB int64
}

// NewService creates fact-check service
func NewService(repo Repository, st storage.Storage, adminSvc AdminChecker, maxUploadMB int64) *Service {
	return &Service{
		repo:        repo,
		storage:     st,
		adminSvc:    adminSvc,
		maxUploadMB: maxUploadMB,
	}
}

// Create validates and stores a fact-check request. New submissions
// always start queued regardless of client input. Evidence files are
// uploaded after the row is written; a failing file becomes a warning.
func (s *Service) Create(ctx context.Context, req *CreateRequest, userID uuid.UUID, files []UploadFile) (*CreateResult, error) {
	title := validator.SanitizeUserInput(req.Title)
	description := validator.SanitizeUserInput(req.Description)

	if err := validator.ValidateClaim(title); err != nil {
		return nil, err
	}
	if description != "" {
		if err := validator.ValidateDescription(description); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	fc := &FactCheck{
		ID:          uuid.New(),
		Title:       title,
		Verdict:     VerdictQueued,
		Attachments: Attachments{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if description != "" {
		fc.Description = &description
	}
	if userID != uuid.Nil {
		fc.UserID = uuid.NullUUID{UUID: userID, Valid: true}
	}

	var warnings []string
	for _, f := range files {
		attachment, err := s.storeFile(ctx, fc.ID, f)
		if err != nil {
			log.Warn().Err(err).Str("fact_check_id", fc.ID.String()).Str("file", f.Name).
				Msg("fact-check evidence upload failed")
			warnings = append(warnings, fmt.Sprintf("attachment %q failed: %s", f.Name, err))
			continue
		}
		fc.Attachments = append(fc.Attachments, *attachment)
	}

	if err := s.repo.Create(ctx, fc); err != nil {
		return nil, err
	}

	return &CreateResult{FactCheck: fc, Warnings: warnings}, nil
}

func (s *Service) storeFile(ctx context.Context, factCheckID uuid.UUID, f UploadFile) (*EmbeddedAttachment, error) {
	fileType, err := validator.ValidateFileType(f.Name)
	if err != nil {
		return nil, err
	}
	if err := validator.ValidateFileSize(f.Size, s.maxUploadMB); err != nil {
		return nil, err
	}

	buf, contentType, err := storage.ValidateAndBuffer(f.Reader, s.maxUploadMB*1024*1024)
	if err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(f.Name))
	key := fmt.Sprintf("factchecks/%s/%s%s", factCheckID, uuid.New(), ext)
	if err := s.storage.Put(ctx, key, buf, contentType); err != nil {
		return nil, err
	}

	return &EmbeddedAttachment{
		Name: validator.SanitizeText(f.Name),
		Path: key,
		Type: fileType,
	}, nil
}

// GetByID returns one fact-check
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*FactCheck, error) {
	fc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if fc == nil {
		return nil, ErrFactCheckNotFound
	}
	return fc, nil
}

// ListRecent returns the latest fact-checks, newest first.
func (s *Service) ListRecent(ctx context.Context, limit int) ([]*FactCheck, error) {
	return s.repo.ListRecent(ctx, limit)
}

// List returns fact-checks for review, optionally filtered by verdict.
func (s *Service) List(ctx context.Context, actorID uuid.UUID, meta admin.TokenMeta, verdict Verdict, limit, offset int) ([]*FactCheck, int, error) {
	if !s.adminSvc.IsAdmin(ctx, actorID, meta) {
		return nil, 0, ErrNotAuthorized
	}
	if verdict != "" && !verdict.IsValid() {
		return nil, 0, ErrInvalidVerdict
	}
	return s.repo.List(ctx, verdict, limit, offset)
}

// UpdateVerdict moves a fact-check through the review machine.
func (s *Service) UpdateVerdict(ctx context.Context, actorID uuid.UUID, meta admin.TokenMeta, id uuid.UUID, next Verdict) (*FactCheck, error) {
	if !s.adminSvc.IsAdmin(ctx, actorID, meta) {
		return nil, ErrNotAuthorized
	}
	if !next.IsValid() {
		return nil, ErrInvalidVerdict
	}

	fc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if fc == nil {
		return nil, ErrFactCheckNotFound
	}

	if !fc.Verdict.CanTransition(next) {
		return nil, ErrInvalidTransition
	}

	if err := s.repo.UpdateVerdict(ctx, id, next); err != nil {
		return nil, err
	}

	log.Info().Str("fact_check_id", id.String()).Str("actor_id", actorID.String()).
		Str("from", string(fc.Verdict)).Str("to", string(next)).
		Msg("fact-check verdict changed")

	fc.Verdict = next
	return fc, nil
}

// AttachmentURL resolves the public URL for a stored evidence path.
func (s *Service) AttachmentURL(key string) string {
	return s.storage.GetURL(key)
}
