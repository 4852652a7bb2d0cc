package postgres

import (
	"context"
	"fmt"
)

// schema is the full DDL, applied idempotently at startup.
var schema = `
CREATE TABLE IF NOT EXISTS assets (
	id                 UUID PRIMARY KEY,
	name               TEXT NOT NULL,
	category           TEXT NOT NULL,
	location           TEXT NOT NULL DEFAULT '',
	declared_value     DOUBLE PRECISION NOT NULL,
	expected_apy       DOUBLE PRECISION NOT NULL DEFAULT 0,
	status             TEXT NOT NULL,
	verification_score DOUBLE PRECISION NOT NULL DEFAULT 0,
	created_at         TIMESTAMPTZ NOT NULL,
	updated_at         TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS verification_records (
	id                   UUID PRIMARY KEY,
	asset_id             UUID NOT NULL REFERENCES assets(id),
	tier                 TEXT NOT NULL,
	status               TEXT NOT NULL,
	confidence           DOUBLE PRECISION NOT NULL,
	breakdown            JSONB NOT NULL,
	processing_minutes   DOUBLE PRECISION NOT NULL DEFAULT 0,
	evidence_fingerprint TEXT NOT NULL DEFAULT '',
	created_at           TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_assets_created ON assets(created_at DESC);
CREATE INDEX IF NOT EXISTS idx_records_asset ON verification_records(asset_id, created_at DESC);
`

// EnsureSchema creates the tables and indexes if they do not exist yet.
func (p *Pool) EnsureSchema(ctx context.Context) error {
	if _, err := p.Exec(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
