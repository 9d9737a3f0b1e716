package model

import "time"

// User roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User exists to gate admin-only operations. OpenID is the subject returned
// by the OAuth provider named in LoginMethod.
type User struct {
	ID           int64     `json:"id"`
	OpenID       string    `json:"-"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	LoginMethod  string    `json:"loginMethod,omitempty"` // "google" | "github"
	Role         string    `json:"role"`                  // "user" | "admin"
	LastSignedIn time.Time `json:"lastSignedIn"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// IsAdmin reports whether the user may perform mutating admin operations.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
