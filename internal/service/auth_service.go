package service

import (
	"context"

	"github.com/hearthside/backend/internal/model"
)

// GoogleUserInfo is the user profile returned by Google OAuth.
type GoogleUserInfo struct {
	Sub   string
	Email string
	Name  string
}

// GitHubUserInfo is the user profile returned by GitHub OAuth.
type GitHubUserInfo struct {
	ID    int64
	Login string
	Email string
	Name  string
}

// AuthService resolves OAuth callback profiles to local users.
type AuthService interface {
	GetOrCreateUserFromGoogle(ctx context.Context, info *GoogleUserInfo) (*model.User, error)
	GetOrCreateUserFromGitHub(ctx context.Context, info *GitHubUserInfo) (*model.User, error)
}
