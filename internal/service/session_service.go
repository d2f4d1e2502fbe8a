// Package service contains the service layer for the Wellness Sessions API
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/arvyah/wellnessapi/internal/models"
	"github.com/arvyah/wellnessapi/pkg/utils/zaplogger"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SessionRepository is the session store contract used by SessionService.
// Per-session lookups are scoped by (id, owner_id): a missing session and a
// session owned by someone else both come back as gorm.ErrRecordNotFound.
type SessionRepository interface {
	CreateSession(ctx context.Context, session *models.SessionModel) error
	GetPublished(ctx context.Context) ([]models.SessionModel, error)
	GetByOwner(ctx context.Context, ownerID string) ([]models.SessionModel, error)
	GetOwned(ctx context.Context, ownerID, id string) (*models.SessionModel, error)
	UpdateOwned(ctx context.Context, session *models.SessionModel) error
	DeleteOwned(ctx context.Context, ownerID, id string) error
	CountByStatus(ctx context.Context) (drafts, published int64, err error)
}

// PublishedListingCache caches the public listing. A nil-miss Get falls
// through to the store; Set/Invalidate failures are logged, never surfaced.
type PublishedListingCache interface {
	Get(ctx context.Context) ([]models.SessionModel, error)
	Set(ctx context.Context, sessions []models.SessionModel) error
	Invalidate(ctx context.Context) error
}

// SessionInput carries the caller-supplied session fields
type SessionInput struct {
	Title       string
	Tags        []string
	JSONFileURL string
}

// SessionService enforces the draft/publish/delete lifecycle and ownership
// rules. It holds no per-session state between calls; the store is the single
// source of truth, so ownership is re-checked on every operation.
type SessionService struct {
	repo  SessionRepository
	cache PublishedListingCache
}

// NewSessionService creates a new service for the session lifecycle
func NewSessionService(repo SessionRepository, cache PublishedListingCache) *SessionService {
	return &SessionService{repo: repo, cache: cache}
}

// ListPublished returns all published sessions across all owners.
// Served from the cache when warm, from the store otherwise.
func (s *SessionService) ListPublished(ctx context.Context) ([]models.SessionModel, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err != nil {
			zaplogger.Warn("published cache read failed", zaplogger.Fields{"error": err.Error()})
		} else if cached != nil {
			return cached, nil
		}
	}

	sessions, err := s.repo.GetPublished(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list published sessions: %v", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, sessions); err != nil {
			zaplogger.Warn("published cache write failed", zaplogger.Fields{"error": err.Error()})
		}
	}
	return sessions, nil
}

// ListOwned returns all sessions owned by the caller, any status
func (s *SessionService) ListOwned(ctx context.Context, ownerID string) ([]models.SessionModel, error) {
	sessions, err := s.repo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %v", err)
	}
	return sessions, nil
}

// GetOwned returns one session if owned by the caller, ErrNotFound otherwise
func (s *SessionService) GetOwned(ctx context.Context, ownerID, id string) (*models.SessionModel, error) {
	session, err := s.repo.GetOwned(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %v", err)
	}
	return session, nil
}

// Create creates a new draft session owned by the caller. Status is always
// draft regardless of input; an absent or blank title defaults to the
// untitled placeholder.
func (s *SessionService) Create(ctx context.Context, ownerID string, input SessionInput) (*models.SessionModel, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		title = models.UntitledSessionTitle
	}
	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	now := time.Now().UTC()
	session := models.SessionModel{
		ID:          uuid.NewString(),
		UserID:      ownerID,
		Title:       title,
		Tags:        datatypes.JSONSlice[string](tags),
		JSONFileURL: input.JSONFileURL,
		Status:      models.SessionStatusDraft,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.CreateSession(ctx, &session); err != nil {
		return nil, fmt.Errorf("failed to create session: %v", err)
	}
	return &session, nil
}

// SaveDraft overwrites title, tags and content URL, and forces status back to
// draft even when the session was published; publish is the only way back.
// Returns ErrNotFound when the session is missing or owned by another user.
func (s *SessionService) SaveDraft(ctx context.Context, ownerID, id string, input SessionInput) (*models.SessionModel, error) {
	session, err := s.GetOwned(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	wasPublished := session.Status == models.SessionStatusPublished

	session.Title = strings.TrimSpace(input.Title)
	session.Tags = datatypes.JSONSlice[string](tags)
	session.JSONFileURL = input.JSONFileURL
	session.Status = models.SessionStatusDraft
	session.UpdatedAt = time.Now().UTC()

	if err := s.repo.UpdateOwned(ctx, session); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to save draft: %v", err)
	}

	// A published session edited back to draft leaves the public listing.
	if wasPublished {
		s.invalidatePublished(ctx)
	}
	return session, nil
}

// Publish transitions a draft to published. Idempotent: publishing a
// published session returns it unchanged. Returns ErrInvalidArgument when the
// title is empty, whitespace-only, or still the untitled placeholder.
func (s *SessionService) Publish(ctx context.Context, ownerID, id string) (*models.SessionModel, error) {
	session, err := s.GetOwned(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if session.Status == models.SessionStatusPublished {
		return session, nil
	}

	if strings.TrimSpace(session.Title) == "" || session.Title == models.UntitledSessionTitle {
		return nil, ErrInvalidArgument
	}

	session.Status = models.SessionStatusPublished
	session.UpdatedAt = time.Now().UTC()

	if err := s.repo.UpdateOwned(ctx, session); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to publish session: %v", err)
	}

	s.invalidatePublished(ctx)
	return session, nil
}

// Delete removes a session permanently.
// Returns ErrNotFound when the session is missing or owned by another user.
func (s *SessionService) Delete(ctx context.Context, ownerID, id string) error {
	if err := s.repo.DeleteOwned(ctx, ownerID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete session: %v", err)
	}

	s.invalidatePublished(ctx)
	return nil
}

// WarmPublishedCache refreshes the cached public listing from the store
func (s *SessionService) WarmPublishedCache(ctx context.Context) error {
	sessions, err := s.repo.GetPublished(ctx)
	if err != nil {
		return fmt.Errorf("failed to load published sessions: %v", err)
	}
	if s.cache == nil {
		return nil
	}
	return s.cache.Set(ctx, sessions)
}

// CountByStatus reports draft and published counts for operator diagnostics
func (s *SessionService) CountByStatus(ctx context.Context) (drafts, published int64, err error) {
	return s.repo.CountByStatus(ctx)
}

func (s *SessionService) invalidatePublished(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		zaplogger.Warn("published cache invalidation failed", zaplogger.Fields{"error": err.Error()})
	}
}
