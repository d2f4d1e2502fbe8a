// Package models contains the models for the Wellness Sessions API
package models

import (
	"time"
)

const UsersTableName = "users"

// UserModel represents a registered user identity.
// The record is immutable after registration; there are no
// password change or account deletion flows.
type UserModel struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (UserModel) TableName() string {
	return UsersTableName
}
