package news

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	imgpkg "github.com/Rai-jal/citizen-voice-api/internal/pkg/imaging"
	"github.com/Rai-jal/citizen-voice-api/internal/pkg/storage"
	"github.com/Rai-jal/citizen-voice-api/internal/pkg/validator"
)

const (
	listCacheKey = "news:list"
	listCacheTTL = 60 * time.Second
)

// cachedList is the Redis payload for the default listing page.
type cachedList struct {
	Articles []*Article `json:"articles"`
	Total    int        `json:"total"`
}

// Service handles news business logic
type Service struct {
	repo      Repository
	storage   storage.Storage
	redis     *redis.Client
	processor *imgpkg.Processor
}

// NewService creates news service. redis may be nil, which disables the
// list cache.
func NewService(repo Repository, st storage.Storage, rdb *redis.Client, processor *imgpkg.Processor) *Service {
	return &Service{
		repo:      repo,
		storage:   st,
		redis:     rdb,
		processor: processor,
	}
}

// Create stores an article with an optional cover image. The cover is
// resized and thumbnailed before upload. Creating an article drops the
// cached listing.
func (s *Service) Create(ctx context.Context, req *CreateRequest, cover io.Reader) (*Article, error) {
	title := validator.SanitizeText(req.Title)
	summary := validator.SanitizeUserInput(req.Summary)
	body := validator.SanitizeUserInput(req.Body)
	category := validator.SanitizeText(req.Category)

	if err := validator.ValidateTitle(title); err != nil {
		return nil, err
	}
	if err := validator.ValidateDescription(body); err != nil {
		return nil, err
	}

	now := time.Now()
	a := &Article{
		ID:          uuid.New(),
		Title:       title,
		Summary:     summary,
		Body:        body,
		PublishedAt: now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if category != "" {
		a.Category.String = category
		a.Category.Valid = true
	}

	if cover != nil {
		coverPath, thumbPath, err := s.storeCover(ctx, a.ID, cover)
		if err != nil {
			return nil, err
		}
		a.CoverPath.String = coverPath
		a.CoverPath.Valid = true
		a.ThumbPath.String = thumbPath
		a.ThumbPath.Valid = true
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	return a, nil
}

func (s *Service) storeCover(ctx context.Context, articleID uuid.UUID, cover io.Reader) (coverPath, thumbPath string, err error) {
	processed, err := s.processor.Process(cover)
	if err != nil {
		return "", "", ErrInvalidCover
	}

	ext := ".jpg"
	if processed.ContentType == "image/png" {
		ext = ".png"
	}

	coverPath = fmt.Sprintf("covers/%s/cover%s", articleID, ext)
	thumbPath = fmt.Sprintf("covers/%s/thumb%s", articleID, ext)

	if err := s.storage.Put(ctx, coverPath, bytes.NewReader(processed.Cover), processed.ContentType); err != nil {
		return "", "", err
	}
	if err := s.storage.Put(ctx, thumbPath, bytes.NewReader(processed.Thumbnail), processed.ContentType); err != nil {
		_ = s.storage.Delete(ctx, coverPath)
		return "", "", err
	}
	return coverPath, thumbPath, nil
}

// GetByID returns one article
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Article, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrArticleNotFound
	}
	return a, nil
}

// List returns articles newest first. The default page is served from
// Redis when possible; other pages always hit the database.
func (s *Service) List(ctx context.Context, limit, offset int) ([]*Article, int, error) {
	defaultPage := (limit == 0 || limit == 20) && offset == 0

	if defaultPage {
		if cached := s.readCache(ctx); cached != nil {
			return cached.Articles, cached.Total, nil
		}
	}

	articles, total, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	if defaultPage {
		s.writeCache(ctx, &cachedList{Articles: articles, Total: total})
	}
	return articles, total, nil
}

// CoverURL resolves the public URL for a stored image path.
func (s *Service) CoverURL(key string) string {
	return s.storage.GetURL(key)
}

func (s *Service) readCache(ctx context.Context) *cachedList {
	if s.redis == nil {
		return nil
	}

	raw, err := s.redis.Get(ctx, listCacheKey).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		log.Debug().Err(err).Msg("news cache read failed")
		return nil
	}

	var cached cachedList
	if err := json.Unmarshal([]byte(raw), &cached); err != nil {
		return nil
	}
	return &cached
}

func (s *Service) writeCache(ctx context.Context, entry *cachedList) {
	if s.redis == nil {
		return
	}

	raw, err := json.Marshal(entry)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, listCacheKey, raw, listCacheTTL).Err(); err != nil {
		log.Debug().Err(err).Msg("news cache write failed")
	}
}

func (s *Service) invalidateCache(ctx context.Context) {
	if s.redis == nil {
		return
	}
	s.redis.Del(ctx, listCacheKey)
}
