// Package service contains the service layer for the Wellness Sessions API
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/arvyah/wellnessapi/internal/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserRepository is the credential store contract used by AuthService
type UserRepository interface {
	CreateUser(ctx context.Context, user *models.UserModel) error
	GetUserByEmail(ctx context.Context, email string) (*models.UserModel, error)
}

// AuthService registers identities and verifies credentials.
// Plaintext passwords and hashes never leave this service and are never logged.
type AuthService struct {
	repo   UserRepository
	tokens *TokenManager
}

// NewAuthService creates a new service for registration and login
func NewAuthService(repo UserRepository, tokens *TokenManager) *AuthService {
	return &AuthService{repo: repo, tokens: tokens}
}

// Register creates a new user with a bcrypt-hashed password.
// Returns ErrConflict when the email is already registered.
func (s *AuthService) Register(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return ErrInvalidArgument
	}

	_, err := s.repo.GetUserByEmail(ctx, email)
	if err == nil {
		return ErrConflict
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to look up user: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %v", err)
	}

	user := models.UserModel{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hashed),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.CreateUser(ctx, &user); err != nil {
		// A concurrent registration can win between the lookup and the
		// insert; the unique index on email is the authority.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrConflict
		}
		return fmt.Errorf("failed to create user: %v", err)
	}
	return nil
}

// Login verifies credentials and issues a bearer token.
// Returns ErrNotFound when the email is unknown and ErrUnauthorized when the
// password does not match.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", ErrInvalidArgument
	}

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to look up user: %v", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrUnauthorized
	}

	return s.tokens.Issue(user.ID)
}
