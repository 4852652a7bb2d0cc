package domain

import (
	"encoding/json"

	"github.com/google/uuid"
)

// JSON round-trips IDs as canonical UUID strings. Named types do not inherit
// uuid.UUID's marshalers, so each ID type carries its own.

func marshalID(u uuid.UUID) ([]byte, error) { return json.Marshal(u.String()) }

func unmarshalID(b []byte) (uuid.UUID, error) {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return uuid.Nil, err
	}
	return uuid.Parse(s)
}

func (id AssetID) MarshalJSON() ([]byte, error) { return marshalID(uuid.UUID(id)) }

func (id *AssetID) UnmarshalJSON(b []byte) error {
	u, err := unmarshalID(b)
	if err != nil {
		return err
	}
	*id = AssetID(u)
	return nil
}

func (id RecordID) MarshalJSON() ([]byte, error) { return marshalID(uuid.UUID(id)) }

func (id *RecordID) UnmarshalJSON(b []byte) error {
	u, err := unmarshalID(b)
	if err != nil {
		return err
	}
	*id = RecordID(u)
	return nil
}

func (id AssessmentID) MarshalJSON() ([]byte, error) { return marshalID(uuid.UUID(id)) }

func (id *AssessmentID) UnmarshalJSON(b []byte) error {
	u, err := unmarshalID(b)
	if err != nil {
		return err
	}
	*id = AssessmentID(u)
	return nil
}

func (id AssignmentID) MarshalJSON() ([]byte, error) { return marshalID(uuid.UUID(id)) }

func (id *AssignmentID) UnmarshalJSON(b []byte) error {
	u, err := unmarshalID(b)
	if err != nil {
		return err
	}
	*id = AssignmentID(u)
	return nil
}
