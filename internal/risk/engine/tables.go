package engine

import assetmodels "tessera/internal/asset/models"

// Documented defaults applied when a lookup key is not in the tables.
const (
	DefaultLocationRisk   = 0.4
	DefaultRegulatoryRisk = 0.4
	DefaultEconomicRisk   = 0.4
	DefaultLiquidityRisk  = 0.5
	// DefaultVolatility applies when the market data collaborator is
	// unavailable.
	DefaultVolatility = 0.5
)

// Tables are the static category/location risk lookup tables. Immutable after
// construction; injected so tests can substitute alternates.
type Tables struct {
	// Liquidity and Regulatory are keyed by asset category.
	Liquidity  map[assetmodels.AssetCategory]float64
	Regulatory map[assetmodels.AssetCategory]float64
	// Location and Economic are keyed by normalized location string.
	Location map[string]float64
	Economic map[string]float64
}

// DefaultTables returns the production lookup tables. Callers must treat the
// maps as read-only.
func DefaultTables() Tables {
	return Tables{
		Liquidity: map[assetmodels.AssetCategory]float64{
			assetmodels.CategoryRealEstate: 0.7,
			assetmodels.CategoryFarmland:   0.6,
			assetmodels.CategoryProduce:    0.3,
			assetmodels.CategoryVehicle:    0.4,
			assetmodels.CategoryEquipment:  0.5,
			assetmodels.CategoryCommodity:  0.2,
			assetmodels.CategoryDigital:    0.1,
		},
		Regulatory: map[assetmodels.AssetCategory]float64{
			assetmodels.CategoryRealEstate: 0.5,
			assetmodels.CategoryFarmland:   0.3,
			assetmodels.CategoryProduce:    0.2,
			assetmodels.CategoryVehicle:    0.3,
			assetmodels.CategoryEquipment:  0.2,
			assetmodels.CategoryCommodity:  0.4,
			assetmodels.CategoryDigital:    0.6,
		},
		Location: map[string]float64{
			"lagos":    0.3,
			"abuja":    0.25,
			"nairobi":  0.35,
			"accra":    0.3,
			"kano":     0.45,
			"ibadan":   0.35,
			"mombasa":  0.4,
			"kumasi":   0.35,
			"kaduna":   0.5,
			"kisumu":   0.45,
			"tamale":   0.45,
			"maiduguri": 0.6,
		},
		Economic: map[string]float64{
			"lagos":   0.35,
			"abuja":   0.3,
			"nairobi": 0.4,
			"accra":   0.35,
			"kano":    0.5,
			"ibadan":  0.45,
			"mombasa": 0.45,
			"kumasi":  0.4,
		},
	}
}

// LiquidityFor returns the category's liquidity risk or the documented
// default.
func (t Tables) LiquidityFor(category assetmodels.AssetCategory) float64 {
	if v, ok := t.Liquidity[category]; ok {
		return v
	}
	return DefaultLiquidityRisk
}

// RegulatoryFor returns the category's regulatory risk or the documented
// default.
func (t Tables) RegulatoryFor(category assetmodels.AssetCategory) float64 {
	if v, ok := t.Regulatory[category]; ok {
		return v
	}
	return DefaultRegulatoryRisk
}

// LocationFor returns the location's risk or the documented default.
func (t Tables) LocationFor(location string) float64 {
	if v, ok := t.Location[normalizeLocation(location)]; ok {
		return v
	}
	return DefaultLocationRisk
}

// EconomicFor returns the location's economic risk or the documented default.
func (t Tables) EconomicFor(location string) float64 {
	if v, ok := t.Economic[normalizeLocation(location)]; ok {
		return v
	}
	return DefaultEconomicRisk
}
