//go:build integration

package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"tessera/internal/risk/cache"
	"tessera/internal/risk/models"
	"tessera/pkg/domain"
	"tessera/pkg/testutil/containers"
)

type RedisCacheSuite struct {
	suite.Suite
	ctx   context.Context
	redis *containers.RedisContainer
	cache *cache.Redis
}

func TestRedisCacheSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisCacheSuite))
}

func (s *RedisCacheSuite) SetupSuite() {
	s.ctx = context.Background()
	s.redis = containers.NewRedisContainer(s.T())
	s.cache = cache.NewRedis(s.redis.Client, 0)
}

func (s *RedisCacheSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(s.ctx))
}

func (s *RedisCacheSuite) newAssessment() *models.RiskAssessment {
	weather := 0.5
	return &models.RiskAssessment{
		ID:        domain.NewAssessmentID(),
		AssetID:   domain.NewAssetID(),
		RiskScore: 0.4925,
		RiskLevel: models.RiskMedium,
		Factors: models.RiskFactors{
			MarketVolatility: 0.5,
			LocationRisk:     0.4,
			AssetLiquidity:   0.7,
			RegulatoryRisk:   0.6,
			WeatherRisk:      &weather,
			EconomicRisk:     0.5,
		},
		Recommendations: []string{"Consider hedging against market volatility"},
		Timestamp:       time.Now().UTC().Truncate(time.Millisecond),
	}
}

func (s *RedisCacheSuite) TestGetMissReturnsNil() {
	got, err := s.cache.Get(s.ctx, domain.NewAssetID())
	s.Require().NoError(err)
	s.Nil(got)
}

func (s *RedisCacheSuite) TestSetGetRoundTrip() {
	assessment := s.newAssessment()
	s.Require().NoError(s.cache.Set(s.ctx, assessment))

	got, err := s.cache.Get(s.ctx, assessment.AssetID)
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal(assessment.ID, got.ID)
	s.Equal(assessment.RiskScore, got.RiskScore)
	s.Equal(assessment.RiskLevel, got.RiskLevel)
	s.Equal(assessment.Factors, got.Factors)
	s.Equal(assessment.Recommendations, got.Recommendations)
	s.True(got.Timestamp.Equal(assessment.Timestamp))
}

func (s *RedisCacheSuite) TestSetOverwritesPreviousAssessment() {
	first := s.newAssessment()
	s.Require().NoError(s.cache.Set(s.ctx, first))

	second := s.newAssessment()
	second.AssetID = first.AssetID
	second.RiskScore = 0.2
	second.RiskLevel = models.RiskLow
	s.Require().NoError(s.cache.Set(s.ctx, second))

	got, err := s.cache.Get(s.ctx, first.AssetID)
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal(second.ID, got.ID)
	s.Equal(0.2, got.RiskScore)
}

func (s *RedisCacheSuite) TestEntriesExpireAfterTTL() {
	short := cache.NewRedis(s.redis.Client, 100*time.Millisecond)
	assessment := s.newAssessment()
	s.Require().NoError(short.Set(s.ctx, assessment))

	got, err := short.Get(s.ctx, assessment.AssetID)
	s.Require().NoError(err)
	s.Require().NotNil(got)

	time.Sleep(200 * time.Millisecond)

	got, err = short.Get(s.ctx, assessment.AssetID)
	s.Require().NoError(err)
	s.Nil(got)
}
