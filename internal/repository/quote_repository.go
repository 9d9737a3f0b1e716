package repository

import (
	"context"

	"github.com/hearthside/backend/internal/model"
)

// QuoteRequestRepository defines the persistence interface for quote requests.
type QuoteRequestRepository interface {
	// Create inserts a new request and populates ID and timestamps.
	Create(ctx context.Context, quote *model.QuoteRequest) error
	List(ctx context.Context, opts model.QuoteListOptions) ([]*model.QuoteRequest, error)
	GetByID(ctx context.Context, id int64) (*model.QuoteRequest, error)
	// UpdateStatus overwrites the status and bumps updated_at.
	// Returns ErrNotFound when no row matches id.
	UpdateStatus(ctx context.Context, id int64, status string) error
}
