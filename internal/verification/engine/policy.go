package engine

import (
	"fmt"

	"tessera/internal/verification/models"
)

// Decide applies the approval policy: approve when confidence meets the
// tier's bar, otherwise route to review or resubmission. Deterministic for a
// given (tier, confidence); the caller decides what to do with the outcome.
func (e *Engine) Decide(tier models.Tier, confidence float64, breakdown models.ScoreBreakdown) models.VerificationResult {
	result := models.VerificationResult{
		Tier:       tier,
		Confidence: confidence,
		Breakdown:  breakdown,
	}

	if confidence >= tier.ConfidenceThreshold {
		result.Approved = true
		result.Reasons = []string{
			fmt.Sprintf("confidence score %.2f meets the %s tier threshold of %.2f",
				confidence, tier.Name, tier.ConfidenceThreshold),
		}
		result.NextSteps = []string{
			"asset is eligible for tokenization immediately",
			"asset will be available for investment within minutes",
		}
		return result
	}

	result.Approved = false
	result.Reasons = []string{
		fmt.Sprintf("confidence score %.2f is below the %s tier threshold of %.2f",
			confidence, tier.Name, tier.ConfidenceThreshold),
	}
	if tier.RequiresManualReview {
		result.NextSteps = []string{
			"submission queued for manual review by the verification team",
			"status updates will be published on the asset's event stream",
		}
	} else {
		result.NextSteps = []string{
			"provide additional documentation (ownership, valuation, survey)",
			"resubmit the asset for verification once evidence is complete",
		}
	}
	return result
}
