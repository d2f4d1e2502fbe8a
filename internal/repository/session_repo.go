// Package repository contains the repository layer for the Wellness Sessions API
package repository

import (
	"context"

	"github.com/arvyah/wellnessapi/internal/models"
	"gorm.io/gorm"
)

// SessionRepository is the session store. Every per-session lookup and
// mutation is scoped by (id, user_id), so a session owned by someone else
// is indistinguishable from a missing one.
type SessionRepository struct {
	DB *gorm.DB
}

// NewSessionRepository creates a new repository for session documents
func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{DB: db}
}

// CreateSession inserts a new session record
func (r *SessionRepository) CreateSession(ctx context.Context, session *models.SessionModel) error {
	return r.DB.WithContext(ctx).Create(session).Error
}

// GetPublished returns all published sessions across all owners
func (r *SessionRepository) GetPublished(ctx context.Context) ([]models.SessionModel, error) {
	var sessions []models.SessionModel
	err := r.DB.WithContext(ctx).
		Where("status = ?", models.SessionStatusPublished).
		Order("updated_at DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

// GetByOwner returns all sessions owned by the given user, any status
func (r *SessionRepository) GetByOwner(ctx context.Context, ownerID string) ([]models.SessionModel, error) {
	var sessions []models.SessionModel
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("updated_at DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

// GetOwned gets one session scoped by (id, owner_id).
// Returns gorm.ErrRecordNotFound when missing or owned by another user.
func (r *SessionRepository) GetOwned(ctx context.Context, ownerID, id string) (*models.SessionModel, error) {
	var session models.SessionModel
	err := r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// UpdateOwned overwrites the mutable fields of a session scoped by
// (id, owner_id). Last write wins; there is no conflict detection.
// Returns gorm.ErrRecordNotFound when no row matched.
func (r *SessionRepository) UpdateOwned(ctx context.Context, session *models.SessionModel) error {
	result := r.DB.WithContext(ctx).
		Model(&models.SessionModel{}).
		Where("id = ? AND user_id = ?", session.ID, session.UserID).
		Updates(map[string]interface{}{
			"title":         session.Title,
			"tags":          session.Tags,
			"json_file_url": session.JSONFileURL,
			"status":        session.Status,
			"updated_at":    session.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteOwned removes a session scoped by (id, owner_id).
// Returns gorm.ErrRecordNotFound when no row matched.
func (r *SessionRepository) DeleteOwned(ctx context.Context, ownerID, id string) error {
	result := r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&models.SessionModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountByStatus returns the number of draft and published sessions
func (r *SessionRepository) CountByStatus(ctx context.Context) (drafts, published int64, err error) {
	err = r.DB.WithContext(ctx).
		Model(&models.SessionModel{}).
		Where("status = ?", models.SessionStatusDraft).
		Count(&drafts).Error
	if err != nil {
		return 0, 0, err
	}
	err = r.DB.WithContext(ctx).
		Model(&models.SessionModel{}).
		Where("status = ?", models.SessionStatusPublished).
		Count(&published).Error
	if err != nil {
		return 0, 0, err
	}
	return drafts, published, nil
}
