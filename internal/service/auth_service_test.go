package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/arvyah/wellnessapi/internal/models"
	"gorm.io/gorm"
)

type memUserRepo struct {
	byEmail map[string]models.UserModel
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byEmail: make(map[string]models.UserModel)}
}

func (m *memUserRepo) CreateUser(ctx context.Context, user *models.UserModel) error {
	m.byEmail[user.Email] = *user
	return nil
}

func (m *memUserRepo) GetUserByEmail(ctx context.Context, email string) (*models.UserModel, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := u
	return &copied, nil
}

func newTestAuthService() (*AuthService, *memUserRepo, *TokenManager) {
	repo := newMemUserRepo()
	tokens := NewTokenManager("test-secret")
	return NewAuthService(repo, tokens), repo, tokens
}

func TestRegisterStoresHashedCredential(t *testing.T) {
	svc, repo, _ := newTestAuthService()
	ctx := context.Background()

	if err := svc.Register(ctx, "a@x.com", "pw1"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	stored := repo.byEmail["a@x.com"]
	if stored.ID == "" {
		t.Error("id not assigned")
	}
	if stored.PasswordHash == "" || stored.PasswordHash == "pw1" {
		t.Error("password must be stored as a hash, never plaintext")
	}
	if strings.Contains(stored.PasswordHash, "pw1") {
		t.Error("hash must not embed the plaintext")
	}
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	if err := svc.Register(ctx, "a@x.com", "pw1"); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	if err := svc.Register(ctx, "a@x.com", "other"); !errors.Is(err, ErrConflict) {
		t.Errorf("err = %v, want ErrConflict", err)
	}
}

// racingUserRepo models a concurrent registration winning between the
// existence check and the insert: the lookup misses, the insert hits the
// unique index on email.
type racingUserRepo struct {
	memUserRepo
}

func (m *racingUserRepo) GetUserByEmail(ctx context.Context, email string) (*models.UserModel, error) {
	return nil, gorm.ErrRecordNotFound
}

func (m *racingUserRepo) CreateUser(ctx context.Context, user *models.UserModel) error {
	return gorm.ErrDuplicatedKey
}

func TestRegisterLostRaceConflicts(t *testing.T) {
	svc := NewAuthService(&racingUserRepo{}, NewTokenManager("test-secret"))

	if err := svc.Register(context.Background(), "a@x.com", "pw1"); !errors.Is(err, ErrConflict) {
		t.Errorf("err = %v, want ErrConflict", err)
	}
}

func TestRegisterEmailIsCaseSensitive(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	if err := svc.Register(ctx, "a@x.com", "pw1"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	// Stored byte-exact: a different casing is a different identity.
	if err := svc.Register(ctx, "A@x.com", "pw1"); err != nil {
		t.Errorf("Register with different casing: %v", err)
	}
}

func TestLoginFailures(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	if err := svc.Register(ctx, "a@x.com", "pw1"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, err := svc.Login(ctx, "nobody@x.com", "pw1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown email: err = %v, want ErrNotFound", err)
	}
	if _, err := svc.Login(ctx, "a@x.com", "wrong"); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("wrong password: err = %v, want ErrUnauthorized", err)
	}
	if _, err := svc.Login(ctx, "", "pw1"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("empty email: err = %v, want ErrInvalidArgument", err)
	}
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	svc, repo, tokens := newTestAuthService()
	ctx := context.Background()

	if err := svc.Register(ctx, "a@x.com", "pw1"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	token, err := svc.Login(ctx, "a@x.com", "pw1")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}

	userID, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if userID != repo.byEmail["a@x.com"].ID {
		t.Errorf("token user id = %q, want %q", userID, repo.byEmail["a@x.com"].ID)
	}
}
