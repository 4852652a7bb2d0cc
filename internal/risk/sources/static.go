// Package sources provides MarketDataSource implementations: an HTTP adapter
// for deployed collaborators and a static fallback for dev and tests.
package sources

import (
	"context"

	assetmodels "tessera/internal/asset/models"
	"tessera/internal/risk/models"
)

// Static serves fixed volatility values by category and no weather. Used when
// no market data endpoint is configured, and as the degraded path in tests.
type Static struct {
	// Volatility overrides by category; missing keys fall back to Default.
	Volatility map[assetmodels.AssetCategory]float64
	Default    float64
	Weather    *models.Weather
}

// NewStatic returns a static source with moderate defaults.
func NewStatic() *Static {
	return &Static{
		Volatility: map[assetmodels.AssetCategory]float64{
			assetmodels.CategoryRealEstate: 0.3,
			assetmodels.CategoryFarmland:   0.45,
			assetmodels.CategoryProduce:    0.55,
			assetmodels.CategoryCommodity:  0.5,
			assetmodels.CategoryDigital:    0.7,
		},
		Default: 0.4,
	}
}

func (s *Static) GetVolatility(_ context.Context, category assetmodels.AssetCategory, _ string) (float64, error) {
	if v, ok := s.Volatility[category]; ok {
		return v, nil
	}
	return s.Default, nil
}

func (s *Static) GetWeather(_ context.Context, _, _ float64) (*models.Weather, error) {
	return s.Weather, nil
}
