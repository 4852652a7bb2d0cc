// Package ports defines the collaborator interfaces the risk service depends
// on.
package ports

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	assetmodels "tessera/internal/asset/models"
	"tessera/internal/risk/models"
	"tessera/pkg/domain"
	"tessera/pkg/events"
)

// AssetStore is the narrow view of the asset store the risk service needs.
type AssetStore interface {
	// FindByID returns the asset or sentinel.ErrNotFound.
	FindByID(ctx context.Context, assetID domain.AssetID) (*assetmodels.Asset, error)
}

// MarketDataSource supplies already-shaped market and weather observations.
// Implementations wrap third-party providers; fetch mechanics are out of the
// core's scope.
type MarketDataSource interface {
	// GetVolatility returns market volatility in [0,1] for the category at
	// the location.
	GetVolatility(ctx context.Context, category assetmodels.AssetCategory, location string) (float64, error)

	// GetWeather returns current conditions at the point, or nil when no
	// observation is available.
	GetWeather(ctx context.Context, lat, lng float64) (*models.Weather, error)
}

// AssessmentCache stores the latest assessment per asset. Get returns
// (nil, nil) on a miss.
type AssessmentCache interface {
	Get(ctx context.Context, assetID domain.AssetID) (*models.RiskAssessment, error)
	Set(ctx context.Context, assessment *models.RiskAssessment) error
}

// EventPublisher emits risk lifecycle events.
type EventPublisher interface {
	Emit(ctx context.Context, event events.Event) error
}
