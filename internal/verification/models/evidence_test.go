package models

import (
	"testing"

	"github.com/stretchr/testify/assert"

	dErrors "tessera/pkg/domain-errors"
)

func floatPtr(v float64) *float64 { return &v }

func TestEvidenceBundleValidate(t *testing.T) {
	t.Run("nil bundle is rejected", func(t *testing.T) {
		var bundle *EvidenceBundle
		assert.True(t, dErrors.HasCode(bundle.Validate(), dErrors.CodeInvalidInput))
	})

	t.Run("empty bundle is valid but worthless", func(t *testing.T) {
		assert.NoError(t, (&EvidenceBundle{}).Validate())
	})

	t.Run("documents need names", func(t *testing.T) {
		bundle := &EvidenceBundle{Documents: []Document{{Type: DocumentOwnership}}}
		assert.True(t, dErrors.HasCode(bundle.Validate(), dErrors.CodeInvalidInput))
	})

	t.Run("coordinates must be on the globe", func(t *testing.T) {
		for _, c := range []Coordinates{
			{Lat: 91}, {Lat: -91}, {Lng: 181}, {Lng: -181},
		} {
			bundle := &EvidenceBundle{Location: Location{Coordinates: &c}}
			assert.Error(t, bundle.Validate(), "coordinates %+v", c)
		}
		valid := &EvidenceBundle{Location: Location{Coordinates: &Coordinates{Lat: 90, Lng: -180}}}
		assert.NoError(t, valid.Validate())
	})

	t.Run("ownership percentage must be in (0, 100]", func(t *testing.T) {
		for _, pct := range []float64{0, -5, 100.1} {
			bundle := &EvidenceBundle{Ownership: Ownership{OwnershipPercentage: floatPtr(pct)}}
			assert.Error(t, bundle.Validate(), "percentage %v", pct)
		}
		full := &EvidenceBundle{Ownership: Ownership{OwnershipPercentage: floatPtr(100)}}
		assert.NoError(t, full.Validate())
	})

	t.Run("estimated value cannot be negative", func(t *testing.T) {
		bundle := &EvidenceBundle{Valuation: Valuation{EstimatedValue: floatPtr(-1)}}
		assert.Error(t, bundle.Validate())
	})
}

func TestEvidenceBundleFingerprint(t *testing.T) {
	bundle := &EvidenceBundle{
		Documents: []Document{{Type: DocumentOwnership, Name: "deed.pdf"}},
		Ownership: Ownership{OwnerName: "Adaeze Obi"},
	}

	first := bundle.Fingerprint()
	second := bundle.Fingerprint()
	assert.Equal(t, first, second)
	assert.Len(t, first, 64) // SHA3-256 hex

	changed := &EvidenceBundle{
		Documents: []Document{{Type: DocumentOwnership, Name: "deed-v2.pdf"}},
		Ownership: Ownership{OwnerName: "Adaeze Obi"},
	}
	assert.NotEqual(t, first, changed.Fingerprint())
}
