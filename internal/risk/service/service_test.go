package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	assetmodels "tessera/internal/asset/models"
	assetstore "tessera/internal/asset/store"
	"tessera/internal/risk/engine"
	"tessera/internal/risk/models"
	"tessera/internal/risk/ports/mocks"
	"tessera/pkg/domain"
	dErrors "tessera/pkg/domain-errors"
	"tessera/pkg/events"
	eventsmemory "tessera/pkg/events/memory"
)

type RiskServiceSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	assets    *assetstore.InMemory
	market    *mocks.MockMarketDataSource
	publisher *eventsmemory.Publisher
	ctx       context.Context
}

func (s *RiskServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.assets = assetstore.NewInMemory()
	s.market = mocks.NewMockMarketDataSource(s.ctrl)
	s.publisher = eventsmemory.New()
	s.ctx = context.Background()
}

func TestRiskServiceSuite(t *testing.T) {
	suite.Run(t, new(RiskServiceSuite))
}

func (s *RiskServiceSuite) newService(opts ...Option) *Service {
	opts = append(opts, WithPublisher(s.publisher))
	svc, err := New(engine.New(engine.DefaultTables()), s.assets, s.market, opts...)
	s.Require().NoError(err)
	return svc
}

func (s *RiskServiceSuite) newAsset(category assetmodels.AssetCategory, location string, apy float64) *assetmodels.Asset {
	asset, err := assetmodels.NewAsset(domain.NewAssetID(), "Test Asset", category, location, 50_000, apy, time.Now())
	s.Require().NoError(err)
	s.Require().NoError(s.assets.Create(s.ctx, asset))
	return asset
}

func (s *RiskServiceSuite) TestNew() {
	eng := engine.New(engine.DefaultTables())

	_, err := New(nil, s.assets, s.market)
	s.Require().EqualError(err, "risk engine is required")

	_, err = New(eng, nil, s.market)
	s.Require().EqualError(err, "asset store is required")

	_, err = New(eng, s.assets, nil)
	s.Require().EqualError(err, "market data source is required")
}

func (s *RiskServiceSuite) TestAssessNonAgricultural() {
	asset := s.newAsset(assetmodels.CategoryRealEstate, "Lagos, Nigeria", 12)
	s.market.EXPECT().
		GetVolatility(gomock.Any(), assetmodels.CategoryRealEstate, "Lagos, Nigeria").
		Return(0.4, nil)
	// No weather lookup for real estate.

	assessment, err := s.newService().Assess(s.ctx, asset.ID, AssessParams{})
	s.Require().NoError(err)

	s.Equal(asset.ID, assessment.AssetID)
	s.False(assessment.ID.IsNil())
	s.InDelta(0.4, assessment.Factors.MarketVolatility, 1e-9)
	s.InDelta(0.3, assessment.Factors.LocationRisk, 1e-9)
	s.InDelta(0.7, assessment.Factors.AssetLiquidity, 1e-9)
	s.InDelta(0.5, assessment.Factors.RegulatoryRisk, 1e-9)
	s.InDelta(0.35, assessment.Factors.EconomicRisk, 1e-9)
	s.Nil(assessment.Factors.WeatherRisk)

	// 0.4*0.25 + 0.3*0.2 + 0.7*0.15 + 0.5*0.15 + 0.35*0.15 + 12/50
	s.InDelta(0.4925, assessment.RiskScore, 1e-9)
	s.Equal(models.RiskMedium, assessment.RiskLevel)
	s.NotEmpty(assessment.Recommendations)

	emitted := s.publisher.ByName(events.EventRiskAssessed)
	s.Require().Len(emitted, 1)
	s.Equal(asset.ID.String(), emitted[0].AssetID)
}

func (s *RiskServiceSuite) TestAssessAgriculturalWithCoordinates() {
	asset := s.newAsset(assetmodels.CategoryFarmland, "Kano, Nigeria", 15)
	s.market.EXPECT().
		GetVolatility(gomock.Any(), assetmodels.CategoryFarmland, "Kano, Nigeria").
		Return(0.5, nil)
	s.market.EXPECT().
		GetWeather(gomock.Any(), 12.0, 8.5).
		Return(&models.Weather{Temperature: 40, Precipitation: 5, WindSpeed: 25}, nil)

	assessment, err := s.newService().Assess(s.ctx, asset.ID, AssessParams{
		Coordinates: &Coordinates{Lat: 12.0, Lng: 8.5},
	})
	s.Require().NoError(err)

	s.Require().NotNil(assessment.Factors.WeatherRisk)
	s.InDelta(0.5, *assessment.Factors.WeatherRisk, 1e-9)
}

func (s *RiskServiceSuite) TestAssessAgriculturalWithoutCoordinates() {
	asset := s.newAsset(assetmodels.CategoryProduce, "Accra, Ghana", 10)
	s.market.EXPECT().
		GetVolatility(gomock.Any(), assetmodels.CategoryProduce, "Accra, Ghana").
		Return(0.3, nil)
	// No coordinates means no weather lookup; the default applies.

	assessment, err := s.newService().Assess(s.ctx, asset.ID, AssessParams{})
	s.Require().NoError(err)

	s.Require().NotNil(assessment.Factors.WeatherRisk)
	s.InDelta(engine.DefaultWeatherRisk, *assessment.Factors.WeatherRisk, 1e-9)
}

func (s *RiskServiceSuite) TestAssessDegradesOnSourceFailure() {
	asset := s.newAsset(assetmodels.CategoryFarmland, "Nairobi, Kenya", 10)
	s.market.EXPECT().
		GetVolatility(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(0.0, errors.New("provider timeout"))
	s.market.EXPECT().
		GetWeather(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("provider timeout"))

	assessment, err := s.newService().Assess(s.ctx, asset.ID, AssessParams{
		Coordinates: &Coordinates{Lat: -1.29, Lng: 36.82},
	})
	s.Require().NoError(err)

	s.InDelta(engine.DefaultVolatility, assessment.Factors.MarketVolatility, 1e-9)
	s.Require().NotNil(assessment.Factors.WeatherRisk)
	s.InDelta(engine.DefaultWeatherRisk, *assessment.Factors.WeatherRisk, 1e-9)
}

func (s *RiskServiceSuite) TestAssessServesCachedAssessment() {
	asset := s.newAsset(assetmodels.CategoryRealEstate, "Abuja", 8)
	cache := mocks.NewMockAssessmentCache(s.ctrl)
	cached := &models.RiskAssessment{
		ID:        domain.NewAssessmentID(),
		AssetID:   asset.ID,
		RiskScore: 0.42,
		RiskLevel: models.RiskMedium,
	}
	cache.EXPECT().Get(gomock.Any(), asset.ID).Return(cached, nil)
	// No market call and no Set on a cache hit.

	assessment, err := s.newService(WithCache(cache)).Assess(s.ctx, asset.ID, AssessParams{})
	s.Require().NoError(err)
	s.Equal(cached, assessment)
	s.Empty(s.publisher.Events())
}

func (s *RiskServiceSuite) TestAssessRefreshBypassesCache() {
	asset := s.newAsset(assetmodels.CategoryRealEstate, "Abuja", 8)
	cache := mocks.NewMockAssessmentCache(s.ctrl)
	cache.EXPECT().Set(gomock.Any(), gomock.Any()).Return(nil)
	s.market.EXPECT().
		GetVolatility(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(0.4, nil)

	_, err := s.newService(WithCache(cache)).Assess(s.ctx, asset.ID, AssessParams{Refresh: true})
	s.Require().NoError(err)
}

func (s *RiskServiceSuite) TestAssessToleratesCacheFailures() {
	asset := s.newAsset(assetmodels.CategoryRealEstate, "Abuja", 8)
	cache := mocks.NewMockAssessmentCache(s.ctrl)
	cache.EXPECT().Get(gomock.Any(), asset.ID).Return(nil, errors.New("redis down"))
	cache.EXPECT().Set(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
	s.market.EXPECT().
		GetVolatility(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(0.4, nil)

	assessment, err := s.newService(WithCache(cache)).Assess(s.ctx, asset.ID, AssessParams{})
	s.Require().NoError(err)
	s.NotNil(assessment)
}

func (s *RiskServiceSuite) TestAssessInputErrors() {
	s.Run("nil asset id", func() {
		_, err := s.newService().Assess(s.ctx, domain.AssetID{}, AssessParams{})
		s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
	})

	s.Run("unknown asset", func() {
		_, err := s.newService().Assess(s.ctx, domain.NewAssetID(), AssessParams{})
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}
