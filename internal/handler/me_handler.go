package handler

import (
	"net/http"
	"time"

	"github.com/hearthside/backend/internal/repository"
	"github.com/hearthside/backend/pkg/auth"
)

// MeHandler returns the currently signed-in user.
type MeHandler struct {
	userRepo      repository.UserRepository
	sessionSecret []byte
}

// NewMeHandler creates a MeHandler.
func NewMeHandler(userRepo repository.UserRepository, sessionSecret []byte) *MeHandler {
	return &MeHandler{userRepo: userRepo, sessionSecret: sessionSecret}
}

// meResponse is the GET /api/me payload.
type meResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	LoginMethod  string    `json:"loginMethod"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	LastSignedIn time.Time `json:"lastSignedIn"`
}

// Me handles GET /api/me. Anonymous visitors get a null body rather than
// an error, so the frontend can probe auth state without special-casing 401s.
func (h *MeHandler) Me(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(auth.SessionCookieName())
	if err != nil || cookie.Value == "" {
		writeJSON(w, http.StatusOK, nil)
		return
	}

	userID, err := auth.VerifySessionToken(cookie.Value, h.sessionSecret)
	if err != nil {
		writeJSON(w, http.StatusOK, nil)
		return
	}

	user, err := h.userRepo.FindByID(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusOK, nil)
		return
	}

	writeJSON(w, http.StatusOK, meResponse{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		LoginMethod:  user.LoginMethod,
		Role:         user.Role,
		CreatedAt:    user.CreatedAt,
		LastSignedIn: user.LastSignedIn,
	})
}
