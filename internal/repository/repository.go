package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPool creates the PostgreSQL connection pool. It is constructed once at
// process start and injected into every repository; there is no lazy global
// handle.
func NewPool(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}
	return pool, nil
}

// DB exposes connection liveness for the health endpoint.
type DB interface {
	Ping(ctx context.Context) error
}
