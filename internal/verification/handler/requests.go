package handler

import (
	"tessera/internal/verification/models"
	dErrors "tessera/pkg/domain-errors"
)

// VerifyRequest is the submission payload for one verification run.
type VerifyRequest struct {
	DeclaredValue float64                `json:"declared_value"`
	Evidence      *models.EvidenceBundle `json:"evidence"`
}

const maxDocuments = 50

// Validate enforces size limits before the evidence reaches the engine.
func (r *VerifyRequest) Validate() error {
	if r.DeclaredValue <= 0 {
		return dErrors.New(dErrors.CodeInvalidInput, "declared_value must be positive")
	}
	if r.Evidence == nil {
		return dErrors.New(dErrors.CodeInvalidInput, "evidence is required")
	}
	if len(r.Evidence.Documents) > maxDocuments {
		return dErrors.New(dErrors.CodeInvalidInput, "too many documents")
	}
	if len(r.Evidence.Photos) > maxDocuments {
		return dErrors.New(dErrors.CodeInvalidInput, "too many photos")
	}
	return nil
}
