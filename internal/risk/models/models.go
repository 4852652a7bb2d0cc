package models

import (
	"time"

	"tessera/pkg/domain"
)

// RiskFactors are the independent [0,1] inputs to the weighted risk score.
// WeatherRisk is present only for agricultural categories; absent means
// weather is excluded from the weighting entirely.
type RiskFactors struct {
	MarketVolatility float64  `json:"market_volatility"`
	LocationRisk     float64  `json:"location_risk"`
	AssetLiquidity   float64  `json:"asset_liquidity"`
	RegulatoryRisk   float64  `json:"regulatory_risk"`
	WeatherRisk      *float64 `json:"weather_risk,omitempty"`
	EconomicRisk     float64  `json:"economic_risk"`
}

// RiskLevel buckets the final score.
type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// RiskAssessment is the advisory output of one risk scoring run. Recomputed
// on demand; never mutated, only replaced.
type RiskAssessment struct {
	ID              domain.AssessmentID `json:"id"`
	AssetID         domain.AssetID      `json:"asset_id"`
	RiskScore       float64             `json:"risk_score"`
	RiskLevel       RiskLevel           `json:"risk_level"`
	Factors         RiskFactors         `json:"factors"`
	Recommendations []string            `json:"recommendations"`
	Timestamp       time.Time           `json:"timestamp"`
}

// Weather is the already-shaped observation supplied by the weather
// collaborator. Units are the collaborator's.
type Weather struct {
	Temperature   float64 `json:"temperature"`
	Precipitation float64 `json:"precipitation"`
	WindSpeed     float64 `json:"wind_speed"`
}
