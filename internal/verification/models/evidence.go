package models

import (
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/sha3"

	dErrors "tessera/pkg/domain-errors"
)

// DocumentType classifies a submitted document.
type DocumentType string

const (
	DocumentOwnership DocumentType = "ownership"
	DocumentValuation DocumentType = "valuation"
	DocumentSurvey    DocumentType = "survey"
	DocumentOther     DocumentType = "other"
)

// Document is a single piece of submitted paperwork.
type Document struct {
	Type DocumentType `json:"type"`
	Name string       `json:"name"`
	URI  string       `json:"uri,omitempty"`
}

// Photo references a submitted photograph.
type Photo struct {
	Name string `json:"name"`
	URI  string `json:"uri,omitempty"`
}

// Coordinates is a WGS84 point.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Location is the declared location evidence.
type Location struct {
	Coordinates *Coordinates `json:"coordinates,omitempty"`
	Address     string       `json:"address,omitempty"`
}

// Ownership is the declared ownership evidence.
type Ownership struct {
	OwnerName           string   `json:"owner_name,omitempty"`
	OwnershipPercentage *float64 `json:"ownership_percentage,omitempty"`
}

// Valuation is the third-party valuation evidence.
type Valuation struct {
	EstimatedValue *float64 `json:"estimated_value,omitempty"`
}

// EvidenceBundle is the transient evidence input for one verification.
// The core never persists it; only a fingerprint lands on the record.
type EvidenceBundle struct {
	Documents []Document `json:"documents"`
	Photos    []Photo    `json:"photos"`
	Location  Location   `json:"location"`
	Ownership Ownership  `json:"ownership"`
	Valuation Valuation  `json:"valuation"`
}

// Validate rejects malformed evidence before any scoring is attempted.
func (b *EvidenceBundle) Validate() error {
	if b == nil {
		return dErrors.New(dErrors.CodeInvalidInput, "evidence bundle is required")
	}
	for i, doc := range b.Documents {
		if doc.Name == "" {
			return dErrors.Newf(dErrors.CodeInvalidInput, "document %d has no name", i)
		}
	}
	if c := b.Location.Coordinates; c != nil {
		if c.Lat < -90 || c.Lat > 90 || c.Lng < -180 || c.Lng > 180 {
			return dErrors.New(dErrors.CodeInvalidInput, "location coordinates out of range")
		}
	}
	if p := b.Ownership.OwnershipPercentage; p != nil && (*p <= 0 || *p > 100) {
		return dErrors.New(dErrors.CodeInvalidInput, "ownership percentage must be in (0, 100]")
	}
	if v := b.Valuation.EstimatedValue; v != nil && *v < 0 {
		return dErrors.New(dErrors.CodeInvalidInput, "estimated value cannot be negative")
	}
	return nil
}

// Fingerprint returns a stable SHA3-256 hex digest of the bundle, recorded
// alongside verification outcomes so a submission can be matched to its
// evidence later without storing the evidence itself.
func (b *EvidenceBundle) Fingerprint() string {
	raw, err := json.Marshal(b)
	if err != nil {
		// All bundle fields are plain JSON-encodable types.
		return ""
	}
	sum := sha3.Sum256(raw)
	return fmt.Sprintf("%x", sum)
}
