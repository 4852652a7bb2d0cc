package record

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"tessera/internal/verification/models"
	"tessera/pkg/domain"
)

// Postgres persists verification records in the verification_records table.
// The score breakdown is stored as JSONB.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres creates a postgres-backed record store.
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

func (s *Postgres) Create(ctx context.Context, record *models.VerificationRecord) error {
	breakdown, err := json.Marshal(record.Breakdown)
	if err != nil {
		return fmt.Errorf("marshal score breakdown: %w", err)
	}
	_, err = s.pool.Exec(ctx, `
		INSERT INTO verification_records
			(id, asset_id, tier, status, confidence, breakdown,
			 processing_minutes, evidence_fingerprint, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		record.ID.String(), record.AssetID.String(), string(record.Tier),
		record.Status, record.Confidence, breakdown,
		record.ProcessingMinutes, record.EvidenceFingerprint, record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert verification record: %w", err)
	}
	return nil
}

func (s *Postgres) ListByAsset(ctx context.Context, assetID domain.AssetID) ([]*models.VerificationRecord, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, asset_id, tier, status, confidence, breakdown,
		       processing_minutes, evidence_fingerprint, created_at
		FROM verification_records
		WHERE asset_id = $1
		ORDER BY created_at DESC`, assetID.String())
	if err != nil {
		return nil, fmt.Errorf("list verification records: %w", err)
	}
	defer rows.Close()

	var out []*models.VerificationRecord
	for rows.Next() {
		var (
			r             models.VerificationRecord
			idStr, aidStr string
			tier          string
			breakdown     []byte
		)
		err := rows.Scan(&idStr, &aidStr, &tier, &r.Status, &r.Confidence,
			&breakdown, &r.ProcessingMinutes, &r.EvidenceFingerprint, &r.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan verification record: %w", err)
		}
		recordID, err := domain.ParseRecordID(idStr)
		if err != nil {
			return nil, fmt.Errorf("stored record id invalid: %w", err)
		}
		aID, err := domain.ParseAssetID(aidStr)
		if err != nil {
			return nil, fmt.Errorf("stored asset id invalid: %w", err)
		}
		if err := json.Unmarshal(breakdown, &r.Breakdown); err != nil {
			return nil, fmt.Errorf("unmarshal score breakdown: %w", err)
		}
		r.ID = recordID
		r.AssetID = aID
		r.Tier = models.TierName(tier)
		out = append(out, &r)
	}
	return out, rows.Err()
}
