package models

import "math"

// TierName identifies one of the three verification strictness buckets.
type TierName string

const (
	TierInstant  TierName = "INSTANT"
	TierFast     TierName = "FAST"
	TierStandard TierName = "STANDARD"
)

// Tier is an immutable verification tier definition. Instances are fixed
// configuration, ordered by ascending MaxAssetValue; STANDARD's unbounded
// ceiling guarantees every declared value lands in a tier.
type Tier struct {
	Name                 TierName
	MaxAssetValue        float64
	MaxProcessingMinutes int
	RequiresManualReview bool
	// ConfidenceThreshold is the automatic approval bar. Lower-value tiers
	// carry a stricter bar because they skip manual review.
	ConfidenceThreshold float64
	Description         string
}

// DefaultTiers returns the standard three-tier configuration. Callers must
// treat the slice as read-only.
func DefaultTiers() []Tier {
	return []Tier{
		{
			Name:                 TierInstant,
			MaxAssetValue:        10_000,
			MaxProcessingMinutes: 5,
			RequiresManualReview: false,
			ConfidenceThreshold:  0.85,
			Description:          "Automated verification for low-value assets with strong evidence",
		},
		{
			Name:                 TierFast,
			MaxAssetValue:        100_000,
			MaxProcessingMinutes: 60,
			RequiresManualReview: false,
			ConfidenceThreshold:  0.75,
			Description:          "Accelerated verification for mid-value assets",
		},
		{
			Name:                 TierStandard,
			MaxAssetValue:        math.Inf(1),
			MaxProcessingMinutes: 2880,
			RequiresManualReview: true,
			ConfidenceThreshold:  0.60,
			Description:          "Full verification with manual review for high-value assets",
		},
	}
}
