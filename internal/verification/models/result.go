package models

import (
	"time"

	"tessera/pkg/domain"
)

// ScoreBreakdown captures every sub-score that fed the overall confidence.
type ScoreBreakdown struct {
	EvidenceQuality      float64 `json:"evidence_quality"`
	ValueReasonableness  float64 `json:"value_reasonableness"`
	DocumentationQuality float64 `json:"documentation_quality"`
	LocationScore        float64 `json:"location_score"`
	OwnershipScore       float64 `json:"ownership_score"`
	Confidence           float64 `json:"confidence"`
}

// VerificationResult is the outcome of one verification run. Immutable after
// construction.
type VerificationResult struct {
	Tier              Tier
	Approved          bool
	Confidence        float64
	Breakdown         ScoreBreakdown
	ProcessingMinutes float64
	Reasons           []string
	NextSteps         []string
}

// VerificationRecord is the persisted trace of a verification run. The record
// store owns these; the orchestrator only creates them.
type VerificationRecord struct {
	ID                  domain.RecordID
	AssetID             domain.AssetID
	Tier                TierName
	Status              string
	Confidence          float64
	Breakdown           ScoreBreakdown
	ProcessingMinutes   float64
	EvidenceFingerprint string
	CreatedAt           time.Time
}
