package engine

import (
	"math"

	"tessera/internal/verification/models"
)

// requiredDocumentTypes is the fixed set a complete submission carries.
var requiredDocumentTypes = []models.DocumentType{
	models.DocumentOwnership,
	models.DocumentValuation,
	models.DocumentSurvey,
}

// ValueReasonableness compares the declared value against the submitted
// third-party valuation. Within 20% variance scores full marks; beyond that
// the score decays linearly with variance. Absent evidence scores a neutral
// 0.5.
func ValueReasonableness(declaredValue float64, valuation models.Valuation) float64 {
	est := valuation.EstimatedValue
	if est == nil || *est <= 0 || declaredValue <= 0 {
		return 0.5
	}
	variance := math.Abs(declaredValue-*est) / declaredValue
	if variance < 0.2 {
		return 1.0
	}
	return math.Max(0, 1-variance)
}

// DocumentationCompleteness scores coverage of the fixed required document
// type set. The divisor is always the full set size.
func DocumentationCompleteness(documents []models.Document) float64 {
	present := make(map[models.DocumentType]bool, len(documents))
	for _, doc := range documents {
		present[doc.Type] = true
	}
	var count int
	for _, required := range requiredDocumentTypes {
		if present[required] {
			count++
		}
	}
	return float64(count) / float64(len(requiredDocumentTypes))
}

// LocationScore rates the strength of location evidence: exact coordinates
// beat a street address, which beats nothing.
func LocationScore(location models.Location) float64 {
	switch {
	case location.Coordinates != nil:
		return 1.0
	case location.Address != "":
		return 0.7
	default:
		return 0.3
	}
}

// OwnershipScore rates the strength of ownership evidence.
func OwnershipScore(ownership models.Ownership) float64 {
	switch {
	case ownership.OwnerName != "" && ownership.OwnershipPercentage != nil:
		return 1.0
	case ownership.OwnerName != "":
		return 0.6
	default:
		return 0.2
	}
}
