package auth

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/Rai-jal/citizen-voice-api/internal/domain/user"
	"github.com/Rai-jal/citizen-voice-api/internal/pkg/jwt"
	"github.com/Rai-jal/citizen-voice-api/internal/pkg/password"
	"github.com/Rai-jal/citizen-voice-api/internal/pkg/validator"
)

// Service handles authentication business logic
type Service struct {
	userRepo   user.Repository
	jwtService *jwt.Service
	redis      *redis.Client // nil if Redis disabled; logout becomes best-effort
}

// NewService creates auth service
func NewService(userRepo user.Repository, jwtService *jwt.Service, redis *redis.Client) *Service {
	return &Service{
		userRepo:   userRepo,
		jwtService: jwtService,
		redis:      redis,
	}
}

// Register creates new user account
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	req.Email = normalizeEmail(req.Email)

	if err := validator.ValidateEmail(req.Email); err != nil {
		return nil, ErrInvalidEmail
	}
	if errs := validator.ValidatePassword(req.Password); len(errs) > 0 {
		return nil, ErrWeakPassword
	}

	existing, _ := s.userRepo.GetByEmail(ctx, req.Email)
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	u := &user.User{
		ID:           uuid.New(),
		Email:        req.Email,
		PasswordHash: hash,
		Role:         user.RoleCitizen,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if req.FullName != "" {
		u.FullName = sql.NullString{String: validator.SanitizeText(req.FullName), Valid: true}
	}
	if req.Language != "" {
		u.Language = sql.NullString{String: req.Language, Valid: true}
	}

	if err := s.userRepo.Create(ctx, u); err != nil {
		return nil, err
	}

	return s.issueTokens(u)
}

// Login verifies credentials and issues tokens
func (s *Service) Login(ctx context.Context, req *LoginRequest, ip string) (*AuthResponse, error) {
	u, err := s.userRepo.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		return nil, err
	}
	if u == nil || !password.Verify(req.Password, u.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	_ = s.userRepo.UpdateLastLogin(ctx, u.ID, ip)

	return s.issueTokens(u)
}

// Refresh exchanges a valid refresh token for a fresh token pair
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	claims, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if s.isRevoked(ctx, claims.ID) {
		return nil, ErrTokenRevoked
	}

	u, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}

	// Rotate: the presented refresh token is retired
	s.revoke(ctx, claims.ID, time.Until(claims.ExpiresAt.Time))

	return s.issueTokens(u)
}

// Logout revokes the presented refresh token
func (s *Service) Logout(ctx context.Context, refreshToken string) error {
	claims, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return ErrInvalidToken
	}
	s.revoke(ctx, claims.ID, time.Until(claims.ExpiresAt.Time))
	return nil
}

// Me returns the account behind a user ID
func (s *Service) Me(ctx context.Context, userID uuid.UUID) (*user.User, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (s *Service) issueTokens(u *user.User) (*AuthResponse, error) {
	access, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, string(u.Role))
	if err != nil {
		return nil, err
	}

	refresh, _, _, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		User: NewUserResponse(u),
		Tokens: TokensResponse{
			AccessToken:  access,
			RefreshToken: refresh,
			ExpiresIn:    int(s.jwtService.GetAccessTTL().Seconds()),
			TokenType:    "Bearer",
		},
	}, nil
}

const revokedKeyPrefix = "auth:revoked:"

func (s *Service) revoke(ctx context.Context, jti string, ttl time.Duration) {
	if s.redis == nil || ttl <= 0 {
		return
	}
	s.redis.Set(ctx, revokedKeyPrefix+jti, "1", ttl)
}

func (s *Service) isRevoked(ctx context.Context, jti string) bool {
	if s.redis == nil {
		return false
	}
	n, err := s.redis.Exists(ctx, revokedKeyPrefix+jti).Result()
	return err == nil && n > 0
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
