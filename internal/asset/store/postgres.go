package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"tessera/internal/asset/models"
	"tessera/pkg/domain"
	"tessera/pkg/platform/sentinel"
)

// Postgres persists assets in the assets table.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres creates a postgres-backed asset store.
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

const uniqueViolation = "23505"

func (s *Postgres) Create(ctx context.Context, asset *models.Asset) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO assets
			(id, name, category, location, declared_value, expected_apy,
			 status, verification_score, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		asset.ID.String(), asset.Name, string(asset.Category), asset.Location,
		asset.DeclaredValue, asset.ExpectedAPY, string(asset.Status),
		asset.VerificationScore, asset.CreatedAt, asset.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("insert asset: %w", err)
	}
	return nil
}

func (s *Postgres) FindByID(ctx context.Context, assetID domain.AssetID) (*models.Asset, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT id, name, category, location, declared_value, expected_apy,
		       status, verification_score, created_at, updated_at
		FROM assets WHERE id = $1`, assetID.String())
	return scanAsset(row)
}

func (s *Postgres) List(ctx context.Context) ([]*models.Asset, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, category, location, declared_value, expected_apy,
		       status, verification_score, created_at, updated_at
		FROM assets ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}
	defer rows.Close()

	var out []*models.Asset
	for rows.Next() {
		asset, err := scanAsset(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, asset)
	}
	return out, rows.Err()
}

// Execute loads the row FOR UPDATE, applies validate then mutate, and writes
// the result back inside one transaction.
func (s *Postgres) Execute(ctx context.Context, assetID domain.AssetID,
	validate func(*models.Asset) error,
	mutate func(*models.Asset)) (*models.Asset, error) {

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx, `
		SELECT id, name, category, location, declared_value, expected_apy,
		       status, verification_score, created_at, updated_at
		FROM assets WHERE id = $1 FOR UPDATE`, assetID.String())
	asset, err := scanAsset(row)
	if err != nil {
		return nil, err
	}

	if validate != nil {
		if err := validate(asset); err != nil {
			return nil, err
		}
	}
	if mutate != nil {
		mutate(asset)
	}

	_, err = tx.Exec(ctx, `
		UPDATE assets
		SET status = $2, verification_score = $3, updated_at = $4
		WHERE id = $1`,
		asset.ID.String(), string(asset.Status), asset.VerificationScore, asset.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("update asset: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	return asset, nil
}

func scanAsset(row pgx.Row) (*models.Asset, error) {
	var (
		a     models.Asset
		idStr string
	)
	var category, status string
	err := row.Scan(&idStr, &a.Name, &category, &a.Location, &a.DeclaredValue,
		&a.ExpectedAPY, &status, &a.VerificationScore, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("scan asset: %w", err)
	}
	assetID, err := domain.ParseAssetID(idStr)
	if err != nil {
		return nil, fmt.Errorf("stored asset id invalid: %w", err)
	}
	a.ID = assetID
	a.Category = models.AssetCategory(category)
	a.Status = models.AssetStatus(status)
	return &a, nil
}
