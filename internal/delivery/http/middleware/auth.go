package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"eventattend/internal/delivery/http/helpers"
	"eventattend/internal/domain"
)

type contextKey string

const (
	adminIDKey contextKey = "adminID"
	roleKey    contextKey = "role"
)

// SetAdmin returns a context with the authenticated admin's ID and role set.
func SetAdmin(ctx context.Context, adminID int64, role string) context.Context {
	ctx = context.WithValue(ctx, adminIDKey, adminID)
	return context.WithValue(ctx, roleKey, role)
}

// AdminFromContext returns the authenticated admin ID and role from the context, if present.
func AdminFromContext(ctx context.Context) (adminID int64, role string, ok bool) {
	adminID, ok = ctx.Value(adminIDKey).(int64)
	if !ok {
		return 0, "", false
	}
	role, ok = ctx.Value(roleKey).(string)
	return adminID, role, ok
}

// RequireAuth returns a wrapper that validates the Bearer token and sets the
// admin identity in the request context. If the token is missing or invalid,
// it responds with 401 and does not call next.
func RequireAuth(verifier domain.TokenVerifier, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" {
				helpers.WriteMessage(w, http.StatusUnauthorized, "Missing authorization header.")
				return
			}
			const prefix = "Bearer "
			if !strings.HasPrefix(auth, prefix) {
				helpers.WriteMessage(w, http.StatusUnauthorized, "Invalid authorization format.")
				return
			}
			token := strings.TrimSpace(auth[len(prefix):])
			if token == "" {
				helpers.WriteMessage(w, http.StatusUnauthorized, "Missing token.")
				return
			}
			adminID, role, err := verifier.Verify(token)
			if err != nil {
				helpers.WriteMessage(w, http.StatusUnauthorized, "Invalid or expired token.")
				return
			}
			r = r.WithContext(SetAdmin(r.Context(), adminID, role))
			next(w, r)
		}
	}
}

// RequireRole returns a wrapper that rejects requests whose authenticated
// role is not in the allowed set. Must run after RequireAuth.
func RequireRole(roles ...string) func(http.HandlerFunc) http.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			_, role, ok := AdminFromContext(r.Context())
			if !ok {
				helpers.WriteMessage(w, http.StatusUnauthorized, "Unauthorized.")
				return
			}
			if _, ok := allowed[role]; !ok {
				helpers.WriteMessage(w, http.StatusForbidden, "You do not have permission to perform this action.")
				return
			}
			next(w, r)
		}
	}
}
