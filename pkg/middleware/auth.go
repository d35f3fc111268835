// Package middleware holds the HTTP middleware stack.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/shashiranjanraj/cartinhas/pkg/auth"
	"github.com/shashiranjanraj/cartinhas/pkg/response"
)

type authCtxKey int

const (
	userIDKey authCtxKey = iota
	roleKey
	claimsKey
)

// Auth validates the bearer token and injects the user's identity
// into the request context.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := BearerToken(r)
		if token == "" {
			response.Unauthorized(w)
			return
		}

		claims, err := auth.ValidateToken(r.Context(), token)
		if err != nil {
			response.Unauthorized(w)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
		ctx = context.WithValue(ctx, roleKey, claims.Role)
		ctx = context.WithValue(ctx, claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// BearerToken extracts the token from the Authorization header.
func BearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// UserIDFromCtx returns the authenticated user id, if any.
func UserIDFromCtx(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(userIDKey).(uint)
	return id, ok
}

// RoleFromCtx returns the authenticated user's role, if any.
func RoleFromCtx(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(roleKey).(string)
	return role, ok
}

// ClaimsFromCtx returns the full token claims, if any.
func ClaimsFromCtx(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*auth.Claims)
	return claims, ok
}
