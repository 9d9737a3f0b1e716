package auth

import (
	"context"
	"encoding/json"
	"net/http"
)

type contextKey string

const userIDKey contextKey = "user_id"

// UserIDFromContext extracts the authenticated user id from the context.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	v, ok := ctx.Value(userIDKey).(int64)
	return v, ok
}

// WithUserID stores the authenticated user id in the context.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// RequireAuth validates the session cookie and stores the user id in the
// request context.
func RequireAuth(sessionSecret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName())
			if err != nil {
				unauthorized(w, "unauthorized")
				return
			}

			userID, err := VerifySessionToken(cookie.Value, sessionSecret)
			if err != nil {
				unauthorized(w, "invalid_session")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

// RoleResolver maps an authenticated user id to that user's role.
type RoleResolver func(ctx context.Context, userID int64) (string, error)

// RequireAdmin validates the session and additionally requires role "admin".
// Every mutating admin operation sits behind this gate.
func RequireAdmin(sessionSecret []byte, resolve RoleResolver) func(http.Handler) http.Handler {
	requireAuth := RequireAuth(sessionSecret)
	return func(next http.Handler) http.Handler {
		return requireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, _ := UserIDFromContext(r.Context())
			role, err := resolve(r.Context(), userID)
			if err != nil || role != "admin" {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "forbidden"})
				return
			}
			next.ServeHTTP(w, r)
		}))
	}
}
