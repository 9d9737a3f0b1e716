package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hearthside/backend/internal/model"
	"github.com/hearthside/backend/internal/repository"
)

// AuthServiceImpl is the production implementation of AuthService.
type AuthServiceImpl struct {
	userRepo    repository.UserRepository
	adminEmails map[string]bool
}

// NewAuthService creates an AuthService. Users whose provider email is listed
// in adminEmails are created with the admin role; everyone else is a plain
// user.
func NewAuthService(userRepo repository.UserRepository, adminEmails []string) AuthService {
	set := make(map[string]bool, len(adminEmails))
	for _, e := range adminEmails {
		if e != "" {
			set[e] = true
		}
	}
	return &AuthServiceImpl{userRepo: userRepo, adminEmails: set}
}

func (s *AuthServiceImpl) roleFor(email string) string {
	if s.adminEmails[email] {
		return model.RoleAdmin
	}
	return model.RoleUser
}

// GetOrCreateUserFromGoogle resolves a Google profile to a local user,
// creating one on first login.
func (s *AuthServiceImpl) GetOrCreateUserFromGoogle(ctx context.Context, info *GoogleUserInfo) (*model.User, error) {
	u, err := s.userRepo.FindByOpenID(ctx, "google", info.Sub)
	if err == nil {
		if err := s.userRepo.TouchLastSignedIn(ctx, u.ID); err != nil {
			slog.Warn("touch last_signed_in failed", "user_id", u.ID, "error", err)
		}
		return u, nil
	}

	newUser := &model.User{
		OpenID:      info.Sub,
		Email:       info.Email,
		Name:        info.Name,
		LoginMethod: "google",
		Role:        s.roleFor(info.Email),
	}
	if err := s.userRepo.Create(ctx, newUser); err != nil {
		slog.Error("create google user failed", "error", err)
		return nil, fmt.Errorf("create user: %w", err)
	}
	slog.Info("new user created", "user_id", newUser.ID, "provider", "google", "role", newUser.Role)
	return newUser, nil
}

// GetOrCreateUserFromGitHub resolves a GitHub profile to a local user,
// creating one on first login.
func (s *AuthServiceImpl) GetOrCreateUserFromGitHub(ctx context.Context, info *GitHubUserInfo) (*model.User, error) {
	githubID := fmt.Sprintf("%d", info.ID)
	u, err := s.userRepo.FindByOpenID(ctx, "github", githubID)
	if err == nil {
		if err := s.userRepo.TouchLastSignedIn(ctx, u.ID); err != nil {
			slog.Warn("touch last_signed_in failed", "user_id", u.ID, "error", err)
		}
		return u, nil
	}

	name := info.Name
	if name == "" {
		name = info.Login
	}
	email := info.Email
	if email == "" {
		email = info.Login + "@users.noreply.github.com"
	}

	newUser := &model.User{
		OpenID:      githubID,
		Email:       email,
		Name:        name,
		LoginMethod: "github",
		Role:        s.roleFor(email),
	}
	if err := s.userRepo.Create(ctx, newUser); err != nil {
		slog.Error("create github user failed", "error", err)
		return nil, fmt.Errorf("create user: %w", err)
	}
	slog.Info("new user created", "user_id", newUser.ID, "provider", "github", "role", newUser.Role)
	return newUser, nil
}
