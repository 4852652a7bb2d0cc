package handler

import (
	"time"

	"tessera/internal/verification/models"
)

// VerifyResponse reports one verification outcome.
type VerifyResponse struct {
	Tier              string                `json:"tier"`
	Approved          bool                  `json:"approved"`
	Confidence        float64               `json:"confidence"`
	Breakdown         models.ScoreBreakdown `json:"breakdown"`
	ProcessingMinutes float64               `json:"processing_minutes"`
	Reasons           []string              `json:"reasons"`
	NextSteps         []string              `json:"next_steps"`
}

func newVerifyResponse(result *models.VerificationResult) VerifyResponse {
	return VerifyResponse{
		Tier:              string(result.Tier.Name),
		Approved:          result.Approved,
		Confidence:        result.Confidence,
		Breakdown:         result.Breakdown,
		ProcessingMinutes: result.ProcessingMinutes,
		Reasons:           result.Reasons,
		NextSteps:         result.NextSteps,
	}
}

// RecordResponse is one persisted verification record.
type RecordResponse struct {
	ID                  string                `json:"id"`
	Tier                string                `json:"tier"`
	Status              string                `json:"status"`
	Confidence          float64               `json:"confidence"`
	Breakdown           models.ScoreBreakdown `json:"breakdown"`
	ProcessingMinutes   float64               `json:"processing_minutes"`
	EvidenceFingerprint string                `json:"evidence_fingerprint"`
	CreatedAt           time.Time             `json:"created_at"`
}

func newRecordResponses(records []*models.VerificationRecord) []RecordResponse {
	out := make([]RecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, RecordResponse{
			ID:                  r.ID.String(),
			Tier:                string(r.Tier),
			Status:              r.Status,
			Confidence:          r.Confidence,
			Breakdown:           r.Breakdown,
			ProcessingMinutes:   r.ProcessingMinutes,
			EvidenceFingerprint: r.EvidenceFingerprint,
			CreatedAt:           r.CreatedAt,
		})
	}
	return out
}
