// Package engine holds the tiered verification decision logic: evidence
// quality assessment, sub-scoring, confidence scoring, tier selection with
// escalation, and the approve/review policy. Everything here is pure and
// total; I/O belongs to the service layer.
package engine

import (
	"tessera/internal/verification/models"
)

// Config captures the fixed decision tables. Injected rather than package
// level so tests can substitute alternate tiers.
type Config struct {
	// Tiers must be ordered by ascending MaxAssetValue with the last tier
	// unbounded.
	Tiers []models.Tier

	// StrictEvidenceAverage selects the legacy evidence quality formula that
	// divides by the number of indicators present instead of the full
	// indicator count. Under it, adding a low-weight indicator can lower the
	// score. Kept selectable because tier escalation behavior was tuned
	// against it; set false for the monotonic sum-of-weights variant.
	StrictEvidenceAverage bool
}

// DefaultConfig returns the production decision tables.
func DefaultConfig() Config {
	return Config{
		Tiers:                 models.DefaultTiers(),
		StrictEvidenceAverage: true,
	}
}

// Engine evaluates evidence bundles against the tier tables to produce
// verification decisions. The goal is to keep the rules centralized and
// testable.
type Engine struct {
	cfg Config
}

// New creates an engine from the given decision tables.
func New(cfg Config) *Engine {
	if len(cfg.Tiers) == 0 {
		cfg.Tiers = models.DefaultTiers()
	}
	return &Engine{cfg: cfg}
}

// Evaluate runs the full decision pipeline for one submission: tier selection
// (with escalation), confidence scoring, and the approval policy.
func (e *Engine) Evaluate(declaredValue float64, evidence *models.EvidenceBundle) models.VerificationResult {
	tier, _ := e.SelectTier(declaredValue, evidence)
	confidence, breakdown := e.Confidence(declaredValue, evidence)
	return e.Decide(tier, confidence, breakdown)
}
