package report

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

// MaxAttachments caps files per submission.
const MaxAttachments = 10

// AdminChecker gates moderation operations.
type AdminChecker interface {
	IsAdmin(ctx context.Context, userID uuid.UUID, meta admin.TokenMeta) bool
}

// UploadFile is one file from a multipart submission.
type UploadFile struct {
	Name   string
	Size   int64
	Reader io.Reader
}

// CreateResult carries the stored report plus non-fatal attachment warnings.
type CreateResult struct {
	Report   *Report
	Warnings []string
}

// Service handles report business logic
type Service struct {
	repo        Repository
	storage     storage.Storage
	adminSvc    AdminChecker
	maxUploadMB int64
}

// NewService creates report service
func NewService(repo Repository, st storage.Storage, adminSvc AdminChecker, maxUploadMB int64) *Service {
	return &Service{
		repo:        repo,
		storage:     st,
		adminSvc:    adminSvc,
		maxUploadMB: maxUploadMB,
	}
}

// Create validates and stores a report, then uploads its attachments.
// The parent row is committed before any file I/O; a failing file is
// recorded as a warning and never rolls back the submission.
func (s *Service) Create(ctx context.Context, req *CreateRequest, userID uuid.UUID, files []UploadFile) (*CreateResult, error) {
	title := validator.SanitizeUserInput(req.Title)
	description := validator.SanitizeUserInput(req.Description)
	location := validator.SanitizeText(req.Location)

	if err := validator.ValidateTitle(title); err != nil {
		return nil, err
	}
	if err := validator.ValidateDescription(description); err != nil {
		return nil, err
	}
	if err := validator.ValidateLocation(location); err != nil {
		return nil, err
	}
	if len(files) > MaxAttachments {
		return nil, ErrTooManyAttachments
	}

	now := time.Now()
	rep := &Report{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		IsAnonymous: req.IsAnonymous,
		Status:      StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
		Attachments: []*Attachment{},
	}
	if location != "" {
		rep.Location = &location
	}
	if userID != uuid.Nil && !req.IsAnonymous {
		rep.UserID = uuid.NullUUID{UUID: userID, Valid: true}
	}

	if err := s.repo.Create(ctx, rep); err != nil {
		return nil, err
	}

	var warnings []string
	for _, f := range files {
		attachment, err := s.storeFile(ctx, rep.ID, f)
		if err != nil {
			log.Warn().Err(err).Str("report_id", rep.ID.String()).Str("file", f.Name).
				Msg("report attachment failed")
			warnings = append(warnings, fmt.Sprintf("attachment %q failed: %s", f.Name, err))
			continue
		}
		rep.Attachments = append(rep.Attachments, attachment)
	}

	return &CreateResult{Report: rep, Warnings: warnings}, nil
}

func (s *Service) storeFile(ctx context.Context, reportID uuid.UUID, f UploadFile) (*Attachment, error) {
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
	key := fmt.Sprintf("reports/%s/%s%s", reportID, uuid.New(), ext)
	if err := s.storage.Put(ctx, key, buf, contentType); err != nil {
		return nil, err
	}

	attachment := &Attachment{
		ID:        uuid.New(),
		ReportID:  reportID,
		Name:      validator.SanitizeText(f.Name),
		Path:      key,
		Type:      fileType,
		CreatedAt: time.Now(),
	}
	if err := s.repo.AddAttachment(ctx, attachment); err != nil {
		// Orphaned object, remove it so storage stays consistent.
		_ = s.storage.Delete(ctx, key)
		return nil, err
	}
	return attachment, nil
}

// GetByID returns one report
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Report, error) {
	rep, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rep == nil {
		return nil, ErrReportNotFound
	}
	return rep, nil
}

// ListApproved returns publicly visible reports, newest first.
func (s *Service) ListApproved(ctx context.Context, limit, offset int) ([]*Report, int, error) {
	return s.repo.ListApproved(ctx, limit, offset)
}

// List returns reports for moderation, optionally filtered by status.
func (s *Service) List(ctx context.Context, actorID uuid.UUID, meta admin.TokenMeta, filter ListFilter) ([]*Report, int, error) {
	if !s.adminSvc.IsAdmin(ctx, actorID, meta) {
		return nil, 0, ErrNotAuthorized
	}
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, 0, ErrInvalidStatus
	}
	return s.repo.List(ctx, filter)
}

// UpdateStatus moves a report through the moderation machine.
func (s *Service) UpdateStatus(ctx context.Context, actorID uuid.UUID, meta admin.TokenMeta, id uuid.UUID, next Status) (*Report, error) {
	if !s.adminSvc.IsAdmin(ctx, actorID, meta) {
		return nil, ErrNotAuthorized
	}
	if !next.IsValid() {
		return nil, ErrInvalidStatus
	}

	rep, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rep == nil {
		return nil, ErrReportNotFound
	}

	if !rep.Status.CanTransition(next) {
		return nil, ErrInvalidTransition
	}

	if err := s.repo.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}

	log.Info().Str("report_id", id.String()).Str("actor_id", actorID.String()).
		Str("from", string(rep.Status)).Str("to", string(next)).
		Msg("report status changed")

	rep.Status = next
	return rep, nil
}

// AttachmentURL resolves the public URL for a stored attachment path.
func (s *Service) AttachmentURL(key string) string {
	return s.storage.GetURL(key)
}
