package repository

import (
	"context"
	"errors"

	"github.com/hearthside/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgQuoteRequestRepository is the PostgreSQL implementation of
// QuoteRequestRepository.
type PgQuoteRequestRepository struct {
	pool *pgxpool.Pool
}

// NewPgQuoteRequestRepository creates a PgQuoteRequestRepository backed by
// the given pool.
func NewPgQuoteRequestRepository(pool *pgxpool.Pool) *PgQuoteRequestRepository {
	return &PgQuoteRequestRepository{pool: pool}
}

var _ QuoteRequestRepository = (*PgQuoteRequestRepository)(nil)

const quoteSelectCols = `id, client_name, COALESCE(client_email, ''), COALESCE(client_phone, ''),
	project_type, selected_services, status, COALESCE(notes, ''), created_at, updated_at`

func scanQuote(scan func(...any) error) (*model.QuoteRequest, error) {
	var q model.QuoteRequest
	if err := scan(
		&q.ID, &q.ClientName, &q.ClientEmail, &q.ClientPhone,
		&q.ProjectType, &q.SelectedServices, &q.Status, &q.Notes,
		&q.CreatedAt, &q.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &q, nil
}

// Create inserts a new quote_requests row and populates quote.ID and
// timestamps from the RETURNING clause.
func (r *PgQuoteRequestRepository) Create(ctx context.Context, quote *model.QuoteRequest) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO quote_requests (client_name, client_email, client_phone, project_type, selected_services, status)
		 VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		quote.ClientName, quote.ClientEmail, quote.ClientPhone,
		quote.ProjectType, quote.SelectedServices, quote.Status,
	).Scan(&quote.ID, &quote.CreatedAt, &quote.UpdatedAt)
}

// List returns quote requests, newest first, optionally filtered by status.
func (r *PgQuoteRequestRepository) List(ctx context.Context, opts model.QuoteListOptions) ([]*model.QuoteRequest, error) {
	query := `SELECT ` + quoteSelectCols + ` FROM quote_requests`
	var args []any
	if opts.Status != "" {
		query += ` WHERE status = $1`
		args = append(args, opts.Status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var quotes []*model.QuoteRequest
	for rows.Next() {
		q, err := scanQuote(rows.Scan)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}
	return quotes, rows.Err()
}

// GetByID returns the request or ErrNotFound.
func (r *PgQuoteRequestRepository) GetByID(ctx context.Context, id int64) (*model.QuoteRequest, error) {
	q, err := scanQuote(r.pool.QueryRow(ctx,
		`SELECT `+quoteSelectCols+` FROM quote_requests WHERE id = $1`, id,
	).Scan)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return q, err
}

// UpdateStatus overwrites the status field and bumps updated_at.
func (r *PgQuoteRequestRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE quote_requests SET status = $2, updated_at = NOW() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
