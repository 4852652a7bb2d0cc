package engine

import "tessera/internal/verification/models"

// Evidence quality floors for the automated tiers. Submissions below the
// floor escalate one step toward stricter review.
const (
	instantQualityFloor = 0.7
	fastQualityFloor    = 0.5
)

// SelectTier maps a declared value onto a verification tier and escalates
// when the evidence quality is below the tier's floor. Escalation only ever
// moves toward stricter tiers and happens at most once; STANDARD is terminal.
// The selected tier's evidence quality figure is returned alongside for
// logging.
func (e *Engine) SelectTier(declaredValue float64, evidence *models.EvidenceBundle) (models.Tier, float64) {
	tier := e.tierForValue(declaredValue)
	quality := e.EvidenceQuality(evidence)

	switch tier.Name {
	case models.TierInstant:
		if quality < instantQualityFloor {
			tier = e.tierByName(models.TierFast)
		}
	case models.TierFast:
		if quality < fastQualityFloor {
			tier = e.tierByName(models.TierStandard)
		}
	}
	return tier, quality
}

// tierForValue returns the first tier whose ceiling covers the declared
// value. The last tier's unbounded ceiling makes it a catch-all; the explicit
// fallback is defensive.
func (e *Engine) tierForValue(declaredValue float64) models.Tier {
	for _, tier := range e.cfg.Tiers {
		if tier.MaxAssetValue >= declaredValue {
			return tier
		}
	}
	return e.cfg.Tiers[len(e.cfg.Tiers)-1]
}

func (e *Engine) tierByName(name models.TierName) models.Tier {
	for _, tier := range e.cfg.Tiers {
		if tier.Name == name {
			return tier
		}
	}
	return e.cfg.Tiers[len(e.cfg.Tiers)-1]
}
