package engine

import "tessera/internal/verification/models"

// Confidence weights. They sum to 1.0, so no normalization step is needed and
// the result stays in [0,1] for in-range sub-scores.
const (
	confWeightEvidence      = 0.4
	confWeightValue         = 0.2
	confWeightDocumentation = 0.2
	confWeightLocation      = 0.1
	confWeightOwnership     = 0.1
)

// Confidence combines evidence quality and the four sub-scores into the
// overall confidence estimate, returning the full breakdown for auditability.
func (e *Engine) Confidence(declaredValue float64, evidence *models.EvidenceBundle) (float64, models.ScoreBreakdown) {
	breakdown := models.ScoreBreakdown{
		EvidenceQuality:      e.EvidenceQuality(evidence),
		ValueReasonableness:  ValueReasonableness(declaredValue, evidence.Valuation),
		DocumentationQuality: DocumentationCompleteness(evidence.Documents),
		LocationScore:        LocationScore(evidence.Location),
		OwnershipScore:       OwnershipScore(evidence.Ownership),
	}

	breakdown.Confidence = breakdown.EvidenceQuality*confWeightEvidence +
		breakdown.ValueReasonableness*confWeightValue +
		breakdown.DocumentationQuality*confWeightDocumentation +
		breakdown.LocationScore*confWeightLocation +
		breakdown.OwnershipScore*confWeightOwnership

	return breakdown.Confidence, breakdown
}
