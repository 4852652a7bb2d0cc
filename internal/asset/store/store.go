// Package store persists assets. The interface is consumed by the
// verification and risk services; memory and postgres implementations are
// interchangeable.
package store

import (
	"context"

	"tessera/internal/asset/models"
	"tessera/pkg/domain"
)

// Store manages asset records.
type Store interface {
	// Create inserts a new asset. Returns sentinel.ErrConflict if the ID exists.
	Create(ctx context.Context, asset *models.Asset) error

	// FindByID returns the asset or sentinel.ErrNotFound.
	FindByID(ctx context.Context, assetID domain.AssetID) (*models.Asset, error)

	// List returns all assets, newest first.
	List(ctx context.Context) ([]*models.Asset, error)

	// Execute runs validate then mutate on the asset while holding the
	// store's lock (mutex or FOR UPDATE), so status transitions are atomic.
	// Returns the mutated asset.
	Execute(ctx context.Context, assetID domain.AssetID,
		validate func(*models.Asset) error,
		mutate func(*models.Asset)) (*models.Asset, error)
}
