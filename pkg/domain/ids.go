package domain

import (
	"github.com/google/uuid"

	dErrors "tessera/pkg/domain-errors"
)

// Typed IDs prevent cross-type assignment at compile time. Construct via the
// Parse functions at trust boundaries; direct casting bypasses validation.
type (
	AssetID      uuid.UUID
	RecordID     uuid.UUID
	AssessmentID uuid.UUID
	AssignmentID uuid.UUID
)

func parseUUID(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "id cannot be empty")
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "id must be a valid UUID")
	}
	if u == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "id cannot be the nil UUID")
	}
	return u, nil
}

// ParseAssetID constructs an AssetID from external input.
func ParseAssetID(s string) (AssetID, error) {
	u, err := parseUUID(s)
	if err != nil {
		return AssetID{}, err
	}
	return AssetID(u), nil
}

// ParseRecordID constructs a RecordID from external input.
func ParseRecordID(s string) (RecordID, error) {
	u, err := parseUUID(s)
	if err != nil {
		return RecordID{}, err
	}
	return RecordID(u), nil
}

// ParseAssessmentID constructs an AssessmentID from external input.
func ParseAssessmentID(s string) (AssessmentID, error) {
	u, err := parseUUID(s)
	if err != nil {
		return AssessmentID{}, err
	}
	return AssessmentID(u), nil
}

func (id AssetID) String() string      { return uuid.UUID(id).String() }
func (id AssetID) IsNil() bool         { return uuid.UUID(id) == uuid.Nil }
func (id RecordID) String() string     { return uuid.UUID(id).String() }
func (id RecordID) IsNil() bool        { return uuid.UUID(id) == uuid.Nil }
func (id AssessmentID) String() string { return uuid.UUID(id).String() }
func (id AssessmentID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }
func (id AssignmentID) String() string { return uuid.UUID(id).String() }
func (id AssignmentID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }

// NewAssetID returns a freshly generated AssetID.
func NewAssetID() AssetID { return AssetID(uuid.New()) }

// NewRecordID returns a freshly generated RecordID.
func NewRecordID() RecordID { return RecordID(uuid.New()) }

// NewAssessmentID returns a freshly generated AssessmentID.
func NewAssessmentID() AssessmentID { return AssessmentID(uuid.New()) }

// NewAssignmentID returns a freshly generated AssignmentID.
func NewAssignmentID() AssignmentID { return AssignmentID(uuid.New()) }
