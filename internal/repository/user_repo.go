// Package repository contains the repository layer for the Wellness Sessions API
package repository

import (
	"context"

	"github.com/arvyah/wellnessapi/internal/models"
	"gorm.io/gorm"
)

// UserRepository is the credential store. User records are write-once.
type UserRepository struct {
	DB *gorm.DB
}

// NewUserRepository creates a new repository for user identities
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// CreateUser inserts a new user record
func (r *UserRepository) CreateUser(ctx context.Context, user *models.UserModel) error {
	return r.DB.WithContext(ctx).Create(user).Error
}

// GetUserByEmail gets a user by email, byte-exact.
// Returns gorm.ErrRecordNotFound when no such user exists.
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.UserModel, error) {
	var user models.UserModel
	err := r.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}
