package service

import (
	"context"

	"github.com/hearthside/backend/internal/model"
)

// QuoteService defines the business logic for quote-request intake and triage.
type QuoteService interface {
	// Submit serializes the selected services into the quote, persists it
	// with status "new", and announces it to the owner. Service order is
	// preserved.
	Submit(ctx context.Context, quote *model.QuoteRequest, services []string) error

	// List returns quote requests according to the given options.
	List(ctx context.Context, opts model.QuoteListOptions) ([]*model.QuoteRequest, error)

	// UpdateStatus overwrites the request's status. The new status must be a
	// member of the quote status set.
	UpdateStatus(ctx context.Context, id int64, status string) error
}
