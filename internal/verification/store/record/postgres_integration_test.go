//go:build integration

package record_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	assetmodels "tessera/internal/asset/models"
	assetstore "tessera/internal/asset/store"
	"tessera/internal/verification/models"
	"tessera/internal/verification/store/record"
	"tessera/pkg/domain"
	"tessera/pkg/testutil/containers"
)

type PostgresRecordSuite struct {
	suite.Suite
	ctx     context.Context
	pg      *containers.PostgresContainer
	store   *record.Postgres
	assetID domain.AssetID
}

func TestPostgresRecordSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresRecordSuite))
}

func (s *PostgresRecordSuite) SetupSuite() {
	s.ctx = context.Background()
	s.pg = containers.NewPostgresContainer(s.T())
	s.store = record.NewPostgres(s.pg.Pool)
}

func (s *PostgresRecordSuite) SetupTest() {
	s.Require().NoError(s.pg.TruncateTables(s.ctx, "verification_records", "assets"))

	// Records reference an asset row, so seed one per test.
	now := time.Now().UTC().Truncate(time.Microsecond)
	asset, err := assetmodels.NewAsset(domain.NewAssetID(), "Warehouse Lot",
		assetmodels.CategoryEquipment, "Accra, Ghana", 25_000, 9, now)
	s.Require().NoError(err)
	s.Require().NoError(assetstore.NewPostgres(s.pg.Pool).Create(s.ctx, asset))
	s.assetID = asset.ID
}

func (s *PostgresRecordSuite) newRecord(createdAt time.Time) *models.VerificationRecord {
	return &models.VerificationRecord{
		ID:         domain.NewRecordID(),
		AssetID:    s.assetID,
		Tier:       models.TierFast,
		Status:     "VERIFIED",
		Confidence: 0.82,
		Breakdown: models.ScoreBreakdown{
			EvidenceQuality:      0.7,
			ValueReasonableness:  0.9,
			DocumentationQuality: 1,
			LocationScore:        1,
			OwnershipScore:       0.5,
			Confidence:           0.82,
		},
		ProcessingMinutes:   12.5,
		EvidenceFingerprint: "b7e23ec29af22b0b4e41da31e868d57226121c84",
		CreatedAt:           createdAt,
	}
}

func (s *PostgresRecordSuite) TestCreateAndListRoundTripsBreakdown() {
	rec := s.newRecord(time.Now().UTC().Truncate(time.Microsecond))
	s.Require().NoError(s.store.Create(s.ctx, rec))

	listed, err := s.store.ListByAsset(s.ctx, s.assetID)
	s.Require().NoError(err)
	s.Require().Len(listed, 1)

	got := listed[0]
	s.Equal(rec.ID, got.ID)
	s.Equal(rec.AssetID, got.AssetID)
	s.Equal(models.TierFast, got.Tier)
	s.Equal("VERIFIED", got.Status)
	s.Equal(0.82, got.Confidence)
	s.Equal(rec.Breakdown, got.Breakdown)
	s.Equal(12.5, got.ProcessingMinutes)
	s.Equal(rec.EvidenceFingerprint, got.EvidenceFingerprint)
	s.True(got.CreatedAt.Equal(rec.CreatedAt))
}

func (s *PostgresRecordSuite) TestListByAssetNewestFirst() {
	base := time.Now().UTC().Truncate(time.Microsecond)
	older := s.newRecord(base)
	newer := s.newRecord(base.Add(time.Second))
	newer.Status = "PENDING_MANUAL_REVIEW"
	s.Require().NoError(s.store.Create(s.ctx, older))
	s.Require().NoError(s.store.Create(s.ctx, newer))

	listed, err := s.store.ListByAsset(s.ctx, s.assetID)
	s.Require().NoError(err)
	s.Require().Len(listed, 2)
	s.Equal(newer.ID, listed[0].ID)
	s.Equal(older.ID, listed[1].ID)
}

func (s *PostgresRecordSuite) TestListByAssetEmpty() {
	listed, err := s.store.ListByAsset(s.ctx, domain.NewAssetID())
	s.Require().NoError(err)
	s.Empty(listed)
}
