package handler

import (
	"encoding/json"
	"net/http"

	"github.com/hearthside/backend/internal/repository"
)

// Handler carries the shared dependencies of the top-level middleware and the
// health endpoint.
type Handler struct {
	db          repository.DB
	frontendURL string
}

// New creates the top-level Handler.
func New(db repository.DB, frontendURL string) *Handler {
	return &Handler{db: db, frontendURL: frontendURL}
}

// CORS allows the marketing frontend to call the API with credentials.
func (h *Handler) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", h.frontendURL)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Credentials", "true")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// writeJSON writes v with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes the normalized single-field error envelope.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
