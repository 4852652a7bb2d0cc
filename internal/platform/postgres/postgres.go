package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"tessera/internal/platform/config"
)

// Pool wraps a pgx connection pool with health checking capabilities.
type Pool struct {
	*pgxpool.Pool
}

// New creates a connection pool from the provided configuration.
// Returns nil if the URL is empty (postgres not configured).
func New(ctx context.Context, cfg config.Postgres) (*Pool, error) {
	if cfg.URL == "" {
		return nil, nil
	}

	pool, err := pgxpool.New(ctx, cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("create postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres ping failed: %w", err)
	}
	return &Pool{Pool: pool}, nil
}

// Health checks if the database connection is healthy.
func (p *Pool) Health(ctx context.Context) error {
	return p.Ping(ctx)
}
