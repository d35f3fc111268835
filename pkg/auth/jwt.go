// Package auth implements JWT issuing/validation and password hashing.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/shashiranjanraj/cartinhas/config"
	"github.com/shashiranjanraj/cartinhas/pkg/cache"
)

const tokenTTL = 24 * time.Hour

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrRevokedToken = errors.New("revoked token")
)

// Claims carries the authenticated user's identity and role.
type Claims struct {
	UserID uint   `json:"uid"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken issues a signed token for the user.
func GenerateToken(userID uint, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			ID:        fmt.Sprintf("%d-%d", userID, now.UnixNano()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.JWTSecret()))
}

// ValidateToken parses and verifies a token, rejecting revoked ones.
func ValidateToken(ctx context.Context, tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(config.JWTSecret()), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	if IsRevoked(ctx, claims.ID) {
		return nil, ErrRevokedToken
	}

	return claims, nil
}

// RevokeToken blacklists a token until its natural expiry.
func RevokeToken(ctx context.Context, claims *Claims) error {
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	return cache.Set(ctx, blacklistKey(claims.ID), "1", ttl)
}

// IsRevoked reports whether a token id has been blacklisted.
func IsRevoked(ctx context.Context, tokenID string) bool {
	return cache.Has(ctx, blacklistKey(tokenID))
}

func blacklistKey(tokenID string) string {
	return "cartinhas:auth:revoked:" + tokenID
}
