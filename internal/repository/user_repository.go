package repository

import (
	"context"

	"github.com/hearthside/backend/internal/model"
)

// UserRepository defines the persistence interface for users. Users back the
// auth flow only; admin role gates mutating admin operations.
type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*model.User, error)
	// FindByOpenID looks a user up by provider ("google"/"github") and the
	// provider's subject identifier.
	FindByOpenID(ctx context.Context, loginMethod, openID string) (*model.User, error)
	// Create inserts a new user and populates ID and timestamps.
	Create(ctx context.Context, user *model.User) error
	// TouchLastSignedIn records a successful login.
	TouchLastSignedIn(ctx context.Context, id int64) error
}
