package handler

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/hearthside/backend/internal/service"
	"github.com/hearthside/backend/pkg/auth"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const oauthStateCookieName = "oauth_state"

// generateOAuthState creates a random state string for CSRF protection.
func generateOAuthState() string {
	b := make([]byte, 32)
	_, _ = rand.Read(b)
	return base64.URLEncoding.EncodeToString(b)
}

func setStateCookie(w http.ResponseWriter, state string) {
	http.SetCookie(w, &http.Cookie{
		Name:     oauthStateCookieName,
		Value:    state,
		Path:     "/",
		MaxAge:   600, // 10 minutes
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   os.Getenv("ENV") == "production",
	})
}

func verifyOAuthState(r *http.Request) bool {
	cookie, err := r.Cookie(oauthStateCookieName)
	if err != nil || cookie.Value == "" {
		return false
	}
	return cookie.Value == r.URL.Query().Get("state")
}

func clearStateCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     oauthStateCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Expires:  time.Unix(0, 0),
	})
}

var githubEndpoint = oauth2.Endpoint{
	AuthURL:  "https://github.com/login/oauth/authorize",
	TokenURL: "https://github.com/login/oauth/access_token",
}

// AuthHandler handles the OAuth login flow and logout.
type AuthHandler struct {
	authService   service.AuthService
	googleConfig  *oauth2.Config
	githubConfig  *oauth2.Config
	sessionSecret []byte
	frontendURL   string
}

// AuthConfig configures the AuthHandler.
type AuthConfig struct {
	GoogleClientID     string
	GoogleClientSecret string
	GitHubClientID     string
	GitHubClientSecret string
	GoogleRedirectPath string
	GitHubRedirectPath string
	SessionSecret      string
	FrontendURL        string
}

// NewAuthHandler creates an AuthHandler with the given service and config.
func NewAuthHandler(authService service.AuthService, cfg AuthConfig) *AuthHandler {
	redirectBase := os.Getenv("BACKEND_URL")
	if redirectBase == "" {
		redirectBase = "http://localhost:8080"
	}

	googleConfig := &oauth2.Config{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		RedirectURL:  redirectBase + cfg.GoogleRedirectPath,
		Scopes:       []string{"profile", "email"},
		Endpoint:     google.Endpoint,
	}

	githubConfig := &oauth2.Config{
		ClientID:     cfg.GitHubClientID,
		ClientSecret: cfg.GitHubClientSecret,
		RedirectURL:  redirectBase + cfg.GitHubRedirectPath,
		Scopes:       []string{"read:user", "user:email"},
		Endpoint:     githubEndpoint,
	}

	return &AuthHandler{
		authService:   authService,
		googleConfig:  googleConfig,
		githubConfig:  githubConfig,
		sessionSecret: auth.SessionSecretBytes(cfg.SessionSecret),
		frontendURL:   cfg.FrontendURL,
	}
}

// setSessionCookie issues the signed session cookie for a logged-in user.
func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, userID int64) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName(),
		Value:    auth.CreateSessionToken(userID, h.sessionSecret),
		Path:     "/",
		MaxAge:   60 * 60 * 24 * 7, // 7 days
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   os.Getenv("ENV") == "production",
	})
}

// googleUserInfo is the Google userinfo API response.
type googleUserInfo struct {
	Sub   string `json:"sub"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// GoogleLoginURL handles GET /api/auth/google/login.
func (h *AuthHandler) GoogleLoginURL(w http.ResponseWriter, r *http.Request) {
	state := generateOAuthState()
	setStateCookie(w, state)
	writeJSON(w, http.StatusOK, map[string]string{"url": h.googleConfig.AuthCodeURL(state)})
}

// GoogleCallback handles GET /api/auth/google/callback.
func (h *AuthHandler) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	if !verifyOAuthState(r) {
		clearStateCookie(w)
		http.Redirect(w, r, h.frontendURL+"/?error=invalid_state", http.StatusFound)
		return
	}
	clearStateCookie(w)

	code := r.URL.Query().Get("code")
	if code == "" {
		http.Redirect(w, r, h.frontendURL+"/?error=no_code", http.StatusFound)
		return
	}

	token, err := h.googleConfig.Exchange(r.Context(), code)
	if err != nil {
		http.Redirect(w, r, h.frontendURL+"/?error=exchange_failed", http.StatusFound)
		return
	}

	client := h.googleConfig.Client(r.Context(), token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		http.Redirect(w, r, h.frontendURL+"/?error=userinfo_failed", http.StatusFound)
		return
	}
	defer resp.Body.Close()

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		http.Redirect(w, r, h.frontendURL+"/?error=decode_failed", http.StatusFound)
		return
	}

	user, err := h.authService.GetOrCreateUserFromGoogle(r.Context(), &service.GoogleUserInfo{
		Sub:   info.Sub,
		Email: info.Email,
		Name:  info.Name,
	})
	if err != nil {
		http.Redirect(w, r, h.frontendURL+"/?error=create_user_failed", http.StatusFound)
		return
	}

	h.setSessionCookie(w, user.ID)
	http.Redirect(w, r, h.frontendURL+"/", http.StatusFound)
}

// GitHubLoginURL handles GET /api/auth/github/login.
func (h *AuthHandler) GitHubLoginURL(w http.ResponseWriter, r *http.Request) {
	state := generateOAuthState()
	setStateCookie(w, state)
	writeJSON(w, http.StatusOK, map[string]string{"url": h.githubConfig.AuthCodeURL(state)})
}

// githubUserInfo is the GitHub user API response.
type githubUserInfo struct {
	ID    int64  `json:"id"`
	Login string `json:"login"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// GitHubCallback handles GET /api/auth/github/callback.
func (h *AuthHandler) GitHubCallback(w http.ResponseWriter, r *http.Request) {
	if !verifyOAuthState(r) {
		clearStateCookie(w)
		http.Redirect(w, r, h.frontendURL+"/?error=invalid_state", http.StatusFound)
		return
	}
	clearStateCookie(w)

	code := r.URL.Query().Get("code")
	if code == "" {
		http.Redirect(w, r, h.frontendURL+"/?error=no_code", http.StatusFound)
		return
	}

	token, err := h.githubConfig.Exchange(r.Context(), code)
	if err != nil {
		http.Redirect(w, r, h.frontendURL+"/?error=exchange_failed", http.StatusFound)
		return
	}

	client := h.githubConfig.Client(r.Context(), token)
	resp, err := client.Get("https://api.github.com/user")
	if err != nil {
		http.Redirect(w, r, h.frontendURL+"/?error=userinfo_failed", http.StatusFound)
		return
	}
	defer resp.Body.Close()

	var info githubUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		http.Redirect(w, r, h.frontendURL+"/?error=decode_failed", http.StatusFound)
		return
	}

	// GitHub hides private emails; try the emails endpoint for the primary.
	if info.Email == "" {
		emailsResp, err := client.Get("https://api.github.com/user/emails")
		if err == nil {
			defer emailsResp.Body.Close()
			var emails []struct {
				Email   string `json:"email"`
				Primary bool   `json:"primary"`
			}
			if json.NewDecoder(emailsResp.Body).Decode(&emails) == nil {
				for _, e := range emails {
					if e.Primary {
						info.Email = e.Email
						break
					}
				}
			}
		}
	}

	user, err := h.authService.GetOrCreateUserFromGitHub(r.Context(), &service.GitHubUserInfo{
		ID:    info.ID,
		Login: info.Login,
		Email: info.Email,
		Name:  info.Name,
	})
	if err != nil {
		http.Redirect(w, r, h.frontendURL+"/?error=create_user_failed", http.StatusFound)
		return
	}

	h.setSessionCookie(w, user.ID)
	http.Redirect(w, r, h.frontendURL+"/", http.StatusFound)
}

// Logout handles POST /api/auth/logout: clears the session cookie.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName(),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Expires:  time.Unix(0, 0),
	})
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
