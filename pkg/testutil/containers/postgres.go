//go:build integration

// Package containers provides shared testcontainers helpers for integration
// tests.
package containers

import (
	"context"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"tessera/internal/platform/config"
	platformpg "tessera/internal/platform/postgres"
)

// PostgresContainer wraps a testcontainers Postgres instance with an open
// pool and the schema applied.
type PostgresContainer struct {
	Container testcontainers.Container
	URL       string
	Pool      *pgxpool.Pool
}

// NewPostgresContainer starts a Postgres container, opens a pool against it,
// and applies the schema. The container is terminated via t.Cleanup.
func NewPostgresContainer(t *testing.T) *PostgresContainer {
	t.Helper()

	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("tessera"),
		tcpostgres.WithUsername("tessera"),
		tcpostgres.WithPassword("tessera"),
		tcpostgres.BasicWaitStrategies(),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	url, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get postgres connection string: %v", err)
	}

	pool, err := platformpg.New(ctx, config.Postgres{URL: url})
	if err != nil {
		t.Fatalf("failed to open postgres pool: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := pool.EnsureSchema(ctx); err != nil {
		t.Fatalf("failed to apply schema: %v", err)
	}

	return &PostgresContainer{Container: container, URL: url, Pool: pool.Pool}
}

// TruncateTables empties the given tables between tests.
func (p *PostgresContainer) TruncateTables(ctx context.Context, tables ...string) error {
	for _, table := range tables {
		if _, err := p.Pool.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)); err != nil {
			return fmt.Errorf("truncate %s: %w", table, err)
		}
	}
	return nil
}
