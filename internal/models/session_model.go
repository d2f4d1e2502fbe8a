// Package models contains the models for the Wellness Sessions API
package models

import (
	"time"

	"gorm.io/datatypes"
)

const SessionsTableName = "sessions"

// UntitledSessionTitle is the placeholder title assigned to new sessions.
// A session carrying it cannot be published.
const UntitledSessionTitle = "Untitled Session"

// SessionStatus is the lifecycle state of a session.
type SessionStatus string

const (
	SessionStatusDraft     SessionStatus = "draft"
	SessionStatusPublished SessionStatus = "published"
)

// SessionModel represents a user-authored wellness session: metadata plus a
// pointer to externally hosted JSON content. The content URL is opaque to
// this API and is never fetched or validated.
//
// The identifier field is `id` in every response; owner is fixed at creation.
type SessionModel struct {
	ID          string                      `gorm:"primaryKey" json:"id"`
	UserID      string                      `gorm:"index;not null" json:"user_id"`
	Title       string                      `gorm:"not null" json:"title"`
	Tags        datatypes.JSONSlice[string] `json:"tags"`
	JSONFileURL string                      `json:"json_file_url"`
	Status      SessionStatus               `gorm:"index;not null" json:"status"`
	CreatedAt   time.Time                   `json:"created_at"`
	UpdatedAt   time.Time                   `json:"updated_at"`
}

func (SessionModel) TableName() string {
	return SessionsTableName
}
