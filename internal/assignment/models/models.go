package models

import (
	"time"

	"tessera/pkg/domain"
)

// AMCAssignment records the selection of a managing party for an asset.
// Created once per selection; Selected is always an element of CandidatePool.
type AMCAssignment struct {
	ID            domain.AssignmentID `json:"id"`
	AssetID       domain.AssetID      `json:"asset_id"`
	CandidatePool []string            `json:"candidate_pool"`
	Selected      string              `json:"selected"`
	Reason        string              `json:"reason"`
	// Confidence reflects trust in the randomness source, not a computed
	// value: 0.95 for verifiable draws, lower for the local fallback.
	Confidence float64 `json:"confidence"`
	// RandomHex is the raw draw the selection was derived from, kept so the
	// selection can be re-verified against the source.
	RandomHex string    `json:"random_hex"`
	Timestamp time.Time `json:"timestamp"`
}
