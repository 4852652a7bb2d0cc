package engine

import "tessera/internal/verification/models"

// Evidence quality indicator weights. The weights sum to 1.0 across the five
// indicators.
const (
	weightDocuments = 0.3
	weightPhotos    = 0.2
	weightLocation  = 0.2
	weightOwnership = 0.2
	weightValuation = 0.1
)

// EvidenceQuality scores how complete the submitted evidence bundle is, in
// [0,1].
//
// Five independent indicators are checked; each present indicator contributes
// its weight. Under StrictEvidenceAverage the sum is divided by the number of
// indicators present (the legacy behavior, which penalizes adding low-weight
// evidence); otherwise the sum of weights is returned directly, which is
// monotonic in evidence completeness.
func (e *Engine) EvidenceQuality(evidence *models.EvidenceBundle) float64 {
	if evidence == nil {
		return 0
	}

	var scoreSum float64
	var presentCount int

	if len(evidence.Documents) > 0 {
		scoreSum += weightDocuments
		presentCount++
	}
	if len(evidence.Photos) > 0 {
		scoreSum += weightPhotos
		presentCount++
	}
	if evidence.Location.Coordinates != nil {
		scoreSum += weightLocation
		presentCount++
	}
	if evidence.Ownership.OwnerName != "" {
		scoreSum += weightOwnership
		presentCount++
	}
	if evidence.Valuation.EstimatedValue != nil {
		scoreSum += weightValuation
		presentCount++
	}

	if presentCount == 0 {
		return 0
	}
	if e.cfg.StrictEvidenceAverage {
		return scoreSum / float64(presentCount)
	}
	return scoreSum
}
