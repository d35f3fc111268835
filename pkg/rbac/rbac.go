// Package rbac provides role guards built on the auth middleware.
package rbac

import (
	"net/http"

	"github.com/shashiranjanraj/cartinhas/pkg/auth"
	"github.com/shashiranjanraj/cartinhas/pkg/middleware"
	"github.com/shashiranjanraj/cartinhas/pkg/response"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// HasRole rejects authenticated requests whose role does not match.
func HasRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, ok := middleware.RoleFromCtx(r.Context())
			if !ok {
				response.Unauthorized(w)
				return
			}
			if got != role {
				response.Forbidden(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Guest rejects requests that carry a valid token. Login and register
// are guest-only.
func Guest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if token := middleware.BearerToken(r); token != "" {
			if _, err := auth.ValidateToken(r.Context(), token); err == nil {
				response.Error(w, http.StatusForbidden, "Already authenticated")
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}
