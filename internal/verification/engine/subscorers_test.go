package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tessera/internal/verification/models"
)

func TestValueReasonableness(t *testing.T) {
	tests := []struct {
		name          string
		declaredValue float64
		estimated     *float64
		want          float64
	}{
		{"no valuation scores neutral", 5000, nil, 0.5},
		{"zero estimate scores neutral", 5000, floatPtr(0), 0.5},
		{"zero declared value scores neutral", 0, floatPtr(5000), 0.5},
		{"exact match scores full", 5000, floatPtr(5000), 1.0},
		{"within 20 percent scores full", 5000, floatPtr(4500), 1.0},
		{"just under the 20 percent line scores full", 5000, floatPtr(4001), 1.0},
		{"50 percent variance decays linearly", 5000, floatPtr(2500), 0.5},
		{"variance above 100 percent floors at zero", 1000, floatPtr(2200), 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValueReasonableness(tt.declaredValue, models.Valuation{EstimatedValue: tt.estimated})
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestDocumentationCompleteness(t *testing.T) {
	tests := []struct {
		name      string
		documents []models.Document
		want      float64
	}{
		{"no documents", nil, 0},
		{"one required type", []models.Document{
			{Type: models.DocumentOwnership, Name: "deed.pdf"},
		}, 1.0 / 3.0},
		{"duplicates count once", []models.Document{
			{Type: models.DocumentOwnership, Name: "deed.pdf"},
			{Type: models.DocumentOwnership, Name: "deed-copy.pdf"},
		}, 1.0 / 3.0},
		{"other type does not count", []models.Document{
			{Type: models.DocumentOther, Name: "misc.pdf"},
		}, 0},
		{"full set", []models.Document{
			{Type: models.DocumentOwnership, Name: "deed.pdf"},
			{Type: models.DocumentValuation, Name: "appraisal.pdf"},
			{Type: models.DocumentSurvey, Name: "survey.pdf"},
		}, 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, DocumentationCompleteness(tt.documents), 1e-9)
		})
	}
}

func TestLocationScore(t *testing.T) {
	assert.InDelta(t, 1.0, LocationScore(models.Location{
		Coordinates: &models.Coordinates{Lat: -1.2921, Lng: 36.8219},
	}), 1e-9)
	assert.InDelta(t, 0.7, LocationScore(models.Location{Address: "12 Marina Rd"}), 1e-9)
	assert.InDelta(t, 0.3, LocationScore(models.Location{}), 1e-9)

	// Coordinates dominate an address when both are present.
	assert.InDelta(t, 1.0, LocationScore(models.Location{
		Coordinates: &models.Coordinates{},
		Address:     "12 Marina Rd",
	}), 1e-9)
}

func TestOwnershipScore(t *testing.T) {
	assert.InDelta(t, 1.0, OwnershipScore(models.Ownership{
		OwnerName:           "Adaeze Obi",
		OwnershipPercentage: floatPtr(100),
	}), 1e-9)
	assert.InDelta(t, 0.6, OwnershipScore(models.Ownership{OwnerName: "Adaeze Obi"}), 1e-9)
	assert.InDelta(t, 0.2, OwnershipScore(models.Ownership{}), 1e-9)

	// A percentage without a name is not ownership evidence.
	assert.InDelta(t, 0.2, OwnershipScore(models.Ownership{OwnershipPercentage: floatPtr(50)}), 1e-9)
}
