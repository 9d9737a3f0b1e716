package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/hearthside/backend/internal/model"
	"github.com/hearthside/backend/internal/notify"
	"github.com/hearthside/backend/internal/repository"
)

// quoteServiceImpl is the production implementation of QuoteService.
type quoteServiceImpl struct {
	repo     repository.QuoteRequestRepository
	notifier notify.Notifier
}

// NewQuoteService creates a QuoteService backed by the given repository and
// notifier.
func NewQuoteService(repo repository.QuoteRequestRepository, notifier notify.Notifier) QuoteService {
	return &quoteServiceImpl{repo: repo, notifier: notifier}
}

// Submit persists the request first, then notifies the owner. Status is
// forced to "new"; the service list is stored as a single JSON text blob.
func (s *quoteServiceImpl) Submit(ctx context.Context, quote *model.QuoteRequest, services []string) error {
	blob, err := model.EncodeSelectedServices(services)
	if err != nil {
		return fmt.Errorf("encode selected services: %w", err)
	}
	quote.SelectedServices = blob
	quote.Status = model.QuoteStatusNew

	if err := s.repo.Create(ctx, quote); err != nil {
		return fmt.Errorf("create quote request: %w", err)
	}

	contact := quote.ClientEmail
	if contact == "" {
		contact = quote.ClientPhone
	}
	s.notifier.Notify(ctx, notify.Message{
		Title: "New Quote Request",
		Content: fmt.Sprintf("%s requested a quote for %s services.\nContact: %s\nServices: %s",
			quote.ClientName, quote.ProjectType, contact, strings.Join(services, ", ")),
	})
	return nil
}

// List returns quote requests according to the given filter options.
func (s *quoteServiceImpl) List(ctx context.Context, opts model.QuoteListOptions) ([]*model.QuoteRequest, error) {
	return s.repo.List(ctx, opts)
}

// UpdateStatus validates enum membership, then overwrites the status.
func (s *quoteServiceImpl) UpdateStatus(ctx context.Context, id int64, status string) error {
	if !model.ValidQuoteStatus(status) {
		return &InvalidStatusError{Status: status}
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return fmt.Errorf("update quote status: %w", err)
	}
	return nil
}
