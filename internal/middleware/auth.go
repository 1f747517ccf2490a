// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"newsdesk/internal/auth"
)

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey string

// identityKey is the context key for the verified identity.
const identityKey contextKey = "identity"

// Authenticate verifies a Bearer token when one is present and attaches
// the resulting identity to the request context. It does NOT enforce
// authentication: requests without a valid token continue as anonymous,
// and gate middleware downstream decides what anonymous callers may do.
func Authenticate(tokens *auth.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if strings.HasPrefix(header, "Bearer ") {
				raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
				if identity, err := tokens.Verify(raw); err == nil {
					ctx := context.WithValue(r.Context(), identityKey, identity)
					r = r.WithContext(ctx)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin rejects requests that are not authenticated as an admin:
// 401 without an identity, 403 with a non-admin one. Must be applied
// after Authenticate in the middleware chain.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity := IdentityFromCtx(r.Context())
		if identity == nil {
			writeAuthError(w, http.StatusUnauthorized, "missing or invalid authorization token")
			return
		}
		if !identity.IsAdmin() {
			writeAuthError(w, http.StatusForbidden, "admin role required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// IdentityFromCtx extracts the verified identity from the request
// context. Returns nil for anonymous requests.
func IdentityFromCtx(ctx context.Context) *auth.Identity {
	identity, _ := ctx.Value(identityKey).(*auth.Identity)
	return identity
}

// IsAdmin reports whether the request context carries an admin identity.
func IsAdmin(ctx context.Context) bool {
	return IdentityFromCtx(ctx).IsAdmin()
}

func writeAuthError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
