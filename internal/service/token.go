// Package service contains the service layer for the Wellness Sessions API
package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenTTL is the bearer token validity window
const tokenTTL = 24 * time.Hour

// TokenClaims is the signed claim set of a bearer token
type TokenClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies bearer tokens signed with the
// process-wide HMAC secret. There is no revocation list; a token is valid
// until it expires.
type TokenManager struct {
	secret []byte
}

// NewTokenManager creates a token manager for the given secret
func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{secret: []byte(secret)}
}

// Issue creates a signed token binding the given user id, valid for one day
func (m *TokenManager) Issue(userID string) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %v", err)
	}
	return signed, nil
}

// Verify parses and validates a token and returns the embedded user id.
// Returns ErrUnauthorized for a bad signature, wrong signing method,
// expired token, or garbage input.
func (m *TokenManager) Verify(tokenString string) (string, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrUnauthorized
	}
	if claims.UserID == "" {
		return "", ErrUnauthorized
	}
	return claims.UserID, nil
}
