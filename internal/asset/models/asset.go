package models

import (
	"strings"
	"time"

	"tessera/pkg/domain"
	dErrors "tessera/pkg/domain-errors"
)

// AssetCategory classifies what kind of asset was declared. Categories drive
// risk table lookups and decide whether weather risk applies.
type AssetCategory string

const (
	CategoryRealEstate AssetCategory = "real_estate"
	CategoryFarmland   AssetCategory = "farmland"
	CategoryProduce    AssetCategory = "produce"
	CategoryVehicle    AssetCategory = "vehicle"
	CategoryEquipment  AssetCategory = "equipment"
	CategoryCommodity  AssetCategory = "commodity"
	CategoryDigital    AssetCategory = "digital"
)

var validCategories = map[AssetCategory]bool{
	CategoryRealEstate: true,
	CategoryFarmland:   true,
	CategoryProduce:    true,
	CategoryVehicle:    true,
	CategoryEquipment:  true,
	CategoryCommodity:  true,
	CategoryDigital:    true,
}

// ParseCategory constructs an AssetCategory from external input.
func ParseCategory(s string) (AssetCategory, error) {
	c := AssetCategory(strings.ToLower(strings.TrimSpace(s)))
	if !validCategories[c] {
		return "", dErrors.Newf(dErrors.CodeInvalidInput, "unknown asset category %q", s)
	}
	return c, nil
}

// IsAgricultural reports whether weather conditions materially affect the
// asset's value.
func (c AssetCategory) IsAgricultural() bool {
	return c == CategoryFarmland || c == CategoryProduce
}

func (c AssetCategory) String() string { return string(c) }

// AssetStatus tracks an asset through the verification lifecycle.
type AssetStatus string

const (
	StatusPending             AssetStatus = "PENDING"
	StatusVerified            AssetStatus = "VERIFIED"
	StatusPendingManualReview AssetStatus = "PENDING_MANUAL_REVIEW"
	StatusRejected            AssetStatus = "REJECTED"
)

// Asset is a declared asset onboarding into the platform.
type Asset struct {
	ID            domain.AssetID
	Name          string
	Category      AssetCategory
	Location      string
	DeclaredValue float64
	// ExpectedAPY is the declared annual return rate in percent.
	ExpectedAPY float64
	Status      AssetStatus
	// VerificationScore is confidence*100 from the latest verification,
	// zero before any verification ran.
	VerificationScore float64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewAsset validates invariants and constructs a pending asset.
func NewAsset(id domain.AssetID, name string, category AssetCategory, location string, declaredValue, expectedAPY float64, now time.Time) (*Asset, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "asset name is required")
	}
	if !validCategories[category] {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "asset category is required")
	}
	if declaredValue <= 0 {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "declared value must be positive")
	}
	if expectedAPY < 0 {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "expected APY cannot be negative")
	}
	return &Asset{
		ID:            id,
		Name:          name,
		Category:      category,
		Location:      strings.TrimSpace(location),
		DeclaredValue: declaredValue,
		ExpectedAPY:   expectedAPY,
		Status:        StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// CanVerify reports whether the asset is in a state where verification may
// run. Verified assets stay verified; rejected assets must be resubmitted.
func (a *Asset) CanVerify() error {
	switch a.Status {
	case StatusPending, StatusPendingManualReview:
		return nil
	case StatusVerified:
		return dErrors.New(dErrors.CodeInvariantViolation, "asset is already verified")
	default:
		return dErrors.New(dErrors.CodeInvariantViolation, "asset cannot be verified in its current state")
	}
}

// ApplyVerification records a verification outcome on the asset.
func (a *Asset) ApplyVerification(status AssetStatus, score float64, now time.Time) {
	a.Status = status
	a.VerificationScore = score
	a.UpdatedAt = now
}
