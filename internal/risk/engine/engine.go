// Package engine holds the multi-factor risk scoring logic: weather risk,
// the weighted factor combination with the expected-return load, level
// classification, and recommendation generation. Everything here is pure and
// total; collecting the factors is the service layer's job.
package engine

import (
	"math"
	"strings"

	assetmodels "tessera/internal/asset/models"
	"tessera/internal/risk/models"
)

// Factor weights. They sum to 1.0 when weather applies; for non-agricultural
// assets the weather term is excluded without renormalization.
const (
	weightVolatility = 0.25
	weightLocation   = 0.20
	weightLiquidity  = 0.15
	weightRegulatory = 0.15
	weightWeather    = 0.10
	weightEconomic   = 0.15
)

// apyRiskDivisor and apyRiskCap bound the expected-return risk load:
// min(expectedAPY/50, 0.3).
const (
	apyRiskDivisor = 50.0
	apyRiskCap     = 0.3
)

// weatherRiskCap bounds the accumulated weather risk.
const weatherRiskCap = 0.8

// DefaultWeatherRisk applies to agricultural assets when no observation is
// available from the weather collaborator.
const DefaultWeatherRisk = 0.3

// Engine computes risk scores from collected factors and the static lookup
// tables.
type Engine struct {
	tables Tables
}

// New creates an engine over the given lookup tables.
func New(tables Tables) *Engine {
	return &Engine{tables: tables}
}

// Tables exposes the engine's lookup tables for factor collection.
func (e *Engine) Tables() Tables {
	return e.tables
}

// WeatherRisk scores current weather conditions for agricultural assets.
// Returns nil for categories where weather does not apply. A nil observation
// yields the documented default.
func (e *Engine) WeatherRisk(category assetmodels.AssetCategory, weather *models.Weather) *float64 {
	if !category.IsAgricultural() {
		return nil
	}
	if weather == nil {
		risk := DefaultWeatherRisk
		return &risk
	}

	risk := 0.1
	if weather.Temperature > 35 {
		risk += 0.2
	}
	if weather.Temperature < 5 {
		risk += 0.1
	}
	if weather.Precipitation > 50 {
		risk += 0.2
	}
	if weather.Precipitation < 10 {
		risk += 0.1
	}
	if weather.WindSpeed > 20 {
		risk += 0.1
	}
	risk = math.Min(risk, weatherRiskCap)
	return &risk
}

// Score combines the factors and the expected-return load into the final
// clamped [0,1] risk score.
func (e *Engine) Score(factors models.RiskFactors, expectedAPY float64) float64 {
	score := factors.MarketVolatility*weightVolatility +
		factors.LocationRisk*weightLocation +
		factors.AssetLiquidity*weightLiquidity +
		factors.RegulatoryRisk*weightRegulatory +
		factors.EconomicRisk*weightEconomic
	if factors.WeatherRisk != nil {
		score += *factors.WeatherRisk * weightWeather
	}

	score += math.Min(expectedAPY/apyRiskDivisor, apyRiskCap)
	return math.Min(score, 1.0)
}

// Level buckets a score. Boundaries are inclusive: exactly 0.3 is LOW and
// exactly 0.6 is MEDIUM.
func Level(score float64) models.RiskLevel {
	switch {
	case score <= 0.3:
		return models.RiskLow
	case score <= 0.6:
		return models.RiskMedium
	default:
		return models.RiskHigh
	}
}

// Recommendations derives advisory text from the factors and level.
func Recommendations(factors models.RiskFactors, level models.RiskLevel) []string {
	var recs []string
	if factors.MarketVolatility > 0.4 {
		recs = append(recs, "market volatility is elevated; consider hedging the position")
	}
	if factors.AssetLiquidity < 0.4 {
		recs = append(recs, "asset liquidity is low; plan for a longer investment horizon")
	}
	if factors.RegulatoryRisk > 0.3 {
		recs = append(recs, "regulatory exposure detected; monitor regulation changes in this category")
	}
	if factors.WeatherRisk != nil && *factors.WeatherRisk > 0.4 {
		recs = append(recs, "adverse weather conditions; review crop insurance coverage")
	}
	if level == models.RiskHigh {
		recs = append(recs, "overall risk is high; reduce position size and increase due diligence")
	}
	if len(recs) == 0 {
		recs = append(recs, "risk profile is within normal bounds; no special action required")
	}
	return recs
}

func normalizeLocation(location string) string {
	// Lookup keys are the city part of "City, Country" style strings.
	if idx := strings.IndexByte(location, ','); idx >= 0 {
		location = location[:idx]
	}
	return strings.ToLower(strings.TrimSpace(location))
}
