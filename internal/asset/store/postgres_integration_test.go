//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"golang.org/x/sync/errgroup"

	"tessera/internal/asset/models"
	"tessera/internal/asset/store"
	"tessera/pkg/domain"
	"tessera/pkg/platform/sentinel"
	"tessera/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	ctx   context.Context
	pg    *containers.PostgresContainer
	store *store.Postgres
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.ctx = context.Background()
	s.pg = containers.NewPostgresContainer(s.T())
	s.store = store.NewPostgres(s.pg.Pool)
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.pg.TruncateTables(s.ctx, "verification_records", "assets"))
}

func (s *PostgresStoreSuite) newAsset(name string) *models.Asset {
	now := time.Now().UTC().Truncate(time.Microsecond)
	asset, err := models.NewAsset(domain.NewAssetID(), name, models.CategoryFarmland,
		"Kano, Nigeria", 5000, 12, now)
	s.Require().NoError(err)
	return asset
}

func (s *PostgresStoreSuite) TestCreateAndFindByID() {
	asset := s.newAsset("Maize Farm")
	s.Require().NoError(s.store.Create(s.ctx, asset))

	found, err := s.store.FindByID(s.ctx, asset.ID)
	s.Require().NoError(err)
	s.Equal(asset.ID, found.ID)
	s.Equal("Maize Farm", found.Name)
	s.Equal(models.CategoryFarmland, found.Category)
	s.Equal("Kano, Nigeria", found.Location)
	s.Equal(5000.0, found.DeclaredValue)
	s.Equal(12.0, found.ExpectedAPY)
	s.Equal(models.StatusPending, found.Status)
	s.True(found.CreatedAt.Equal(asset.CreatedAt))
}

func (s *PostgresStoreSuite) TestCreateDuplicateReturnsConflict() {
	asset := s.newAsset("Maize Farm")
	s.Require().NoError(s.store.Create(s.ctx, asset))

	err := s.store.Create(s.ctx, asset)
	s.ErrorIs(err, sentinel.ErrConflict)
}

func (s *PostgresStoreSuite) TestFindByIDNotFound() {
	_, err := s.store.FindByID(s.ctx, domain.NewAssetID())
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestListNewestFirst() {
	base := time.Now().UTC().Truncate(time.Microsecond)
	names := []string{"First", "Second", "Third"}
	for i, name := range names {
		asset, err := models.NewAsset(domain.NewAssetID(), name, models.CategoryVehicle,
			"Lagos, Nigeria", 8000, 10, base.Add(time.Duration(i)*time.Second))
		s.Require().NoError(err)
		s.Require().NoError(s.store.Create(s.ctx, asset))
	}

	listed, err := s.store.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(listed, 3)
	s.Equal("Third", listed[0].Name)
	s.Equal("Second", listed[1].Name)
	s.Equal("First", listed[2].Name)
}

func (s *PostgresStoreSuite) TestExecuteAppliesMutation() {
	asset := s.newAsset("Maize Farm")
	s.Require().NoError(s.store.Create(s.ctx, asset))

	now := time.Now().UTC().Truncate(time.Microsecond)
	updated, err := s.store.Execute(s.ctx, asset.ID,
		func(a *models.Asset) error { return a.CanVerify() },
		func(a *models.Asset) { a.ApplyVerification(models.StatusVerified, 87, now) },
	)
	s.Require().NoError(err)
	s.Equal(models.StatusVerified, updated.Status)
	s.Equal(87.0, updated.VerificationScore)

	found, err := s.store.FindByID(s.ctx, asset.ID)
	s.Require().NoError(err)
	s.Equal(models.StatusVerified, found.Status)
	s.Equal(87.0, found.VerificationScore)
	s.True(found.UpdatedAt.Equal(now))
}

func (s *PostgresStoreSuite) TestExecuteValidateFailureLeavesRowUnchanged() {
	asset := s.newAsset("Maize Farm")
	s.Require().NoError(s.store.Create(s.ctx, asset))

	_, err := s.store.Execute(s.ctx, asset.ID,
		func(a *models.Asset) error {
			a.Status = models.StatusVerified
			return sentinel.ErrConflict
		},
		func(a *models.Asset) { a.VerificationScore = 99 },
	)
	s.ErrorIs(err, sentinel.ErrConflict)

	found, err := s.store.FindByID(s.ctx, asset.ID)
	s.Require().NoError(err)
	s.Equal(models.StatusPending, found.Status)
	s.Equal(0.0, found.VerificationScore)
}

func (s *PostgresStoreSuite) TestExecuteNotFound() {
	_, err := s.store.Execute(s.ctx, domain.NewAssetID(), nil, nil)
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestExecuteSerializesConcurrentUpdates() {
	asset := s.newAsset("Maize Farm")
	s.Require().NoError(s.store.Create(s.ctx, asset))

	const workers = 10
	var g errgroup.Group
	for range workers {
		g.Go(func() error {
			_, err := s.store.Execute(s.ctx, asset.ID, nil,
				func(a *models.Asset) { a.VerificationScore++ })
			return err
		})
	}
	s.Require().NoError(g.Wait())

	found, err := s.store.FindByID(s.ctx, asset.ID)
	s.Require().NoError(err)
	// FOR UPDATE makes each increment observe the previous one.
	s.Equal(float64(workers), found.VerificationScore)
}
