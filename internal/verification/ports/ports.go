// Package ports defines the collaborator interfaces the verification
// orchestrator depends on. Implementations live in the asset store, the
// record store, and pkg/events.
package ports

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	assetmodels "tessera/internal/asset/models"
	"tessera/internal/verification/models"
	"tessera/pkg/domain"
	"tessera/pkg/events"
)

// AssetStore is the narrow view of the asset store the orchestrator needs.
type AssetStore interface {
	// FindByID returns the asset or sentinel.ErrNotFound.
	FindByID(ctx context.Context, assetID domain.AssetID) (*assetmodels.Asset, error)

	// Execute runs validate then mutate atomically and returns the mutated
	// asset.
	Execute(ctx context.Context, assetID domain.AssetID,
		validate func(*assetmodels.Asset) error,
		mutate func(*assetmodels.Asset)) (*assetmodels.Asset, error)
}

// RecordStore persists verification records.
type RecordStore interface {
	// Create inserts a new verification record.
	Create(ctx context.Context, record *models.VerificationRecord) error

	// ListByAsset returns an asset's records, newest first.
	ListByAsset(ctx context.Context, assetID domain.AssetID) ([]*models.VerificationRecord, error)
}

// EventPublisher emits verification lifecycle events.
type EventPublisher interface {
	Emit(ctx context.Context, event events.Event) error
}
