// Package service collects risk factors from collaborators and the static
// tables, scores them through the risk engine, and caches the result.
// Risk scoring is advisory: collaborator failures degrade to documented
// defaults instead of aborting.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	assetmodels "tessera/internal/asset/models"
	"tessera/internal/risk/engine"
	rmetrics "tessera/internal/risk/metrics"
	"tessera/internal/risk/models"
	"tessera/internal/risk/ports"
	"tessera/pkg/domain"
	dErrors "tessera/pkg/domain-errors"
	"tessera/pkg/events"
	"tessera/pkg/platform/sentinel"
	"tessera/pkg/requestcontext"
)

// Type aliases for shared interfaces.
type (
	AssetStore       = ports.AssetStore
	MarketDataSource = ports.MarketDataSource
	AssessmentCache  = ports.AssessmentCache
	EventPublisher   = ports.EventPublisher
)

// Service runs risk assessments.
type Service struct {
	engine    *engine.Engine
	assets    AssetStore
	market    MarketDataSource
	cache     AssessmentCache
	publisher EventPublisher
	logger    *slog.Logger
	metrics   *rmetrics.Metrics
	tracer    trace.Tracer
}

// Option configures the service.
type Option func(*Service)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithCache sets the assessment cache.
func WithCache(cache AssessmentCache) Option {
	return func(s *Service) { s.cache = cache }
}

// WithPublisher sets the lifecycle event publisher.
func WithPublisher(publisher EventPublisher) Option {
	return func(s *Service) { s.publisher = publisher }
}

// WithMetrics sets the prometheus metrics.
func WithMetrics(m *rmetrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// New creates the risk service.
func New(eng *engine.Engine, assets AssetStore, market MarketDataSource, opts ...Option) (*Service, error) {
	if eng == nil {
		return nil, errors.New("risk engine is required")
	}
	if assets == nil {
		return nil, errors.New("asset store is required")
	}
	if market == nil {
		return nil, errors.New("market data source is required")
	}

	svc := &Service{
		engine: eng,
		assets: assets,
		market: market,
		tracer: otel.Tracer("tessera/risk"),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// AssessParams carries optional inputs for one assessment.
type AssessParams struct {
	// Coordinates enable the weather lookup for agricultural assets. Without
	// them the documented default weather risk applies.
	Coordinates *Coordinates

	// Refresh skips the cache and forces a fresh computation.
	Refresh bool
}

// Coordinates is a WGS84 point.
type Coordinates struct {
	Lat float64
	Lng float64
}

// Assess returns the asset's risk assessment, serving a cached one when fresh
// enough and recomputing otherwise. Assessments are replaced, never mutated.
func (s *Service) Assess(ctx context.Context, assetID domain.AssetID, params AssessParams) (*models.RiskAssessment, error) {
	ctx, span := s.tracer.Start(ctx, "risk.Assess")
	defer span.End()
	span.SetAttributes(attribute.String("asset_id", assetID.String()))

	start := time.Now()

	if assetID.IsNil() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "asset_id is required")
	}

	if s.cache != nil && !params.Refresh {
		cached, err := s.cache.Get(ctx, assetID)
		if err != nil && s.logger != nil {
			s.logger.WarnContext(ctx, "risk cache read failed", "asset_id", assetID, "error", err)
		}
		if cached != nil {
			return cached, nil
		}
	}

	asset, err := s.assets.FindByID(ctx, assetID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.Newf(dErrors.CodeNotFound, "asset %s not found", assetID)
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load asset")
	}

	factors := s.collectFactors(ctx, asset, params)

	score := s.engine.Score(factors, asset.ExpectedAPY)
	level := engine.Level(score)

	assessment := &models.RiskAssessment{
		ID:              domain.NewAssessmentID(),
		AssetID:         assetID,
		RiskScore:       score,
		RiskLevel:       level,
		Factors:         factors,
		Recommendations: engine.Recommendations(factors, level),
		Timestamp:       requestcontext.Now(ctx),
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, assessment); err != nil && s.logger != nil {
			s.logger.WarnContext(ctx, "risk cache write failed", "asset_id", assetID, "error", err)
		}
	}

	s.emitAssessed(ctx, assessment)

	s.metrics.IncrementLevel(string(level))
	s.metrics.ObserveAssessLatency(time.Since(start))

	if s.logger != nil {
		s.logger.InfoContext(ctx, "risk assessed",
			"asset_id", assetID, "score", score, "level", level)
	}
	return assessment, nil
}

// collectFactors gathers the six factors: volatility and weather from the
// market collaborator (in parallel), the rest from the static tables. Failed
// lookups degrade to the documented defaults.
func (s *Service) collectFactors(ctx context.Context, asset *assetmodels.Asset, params AssessParams) models.RiskFactors {
	tables := s.engine.Tables()

	var (
		volatility = engine.DefaultVolatility
		weather    *models.Weather
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v, err := s.market.GetVolatility(gctx, asset.Category, asset.Location)
		if err != nil {
			s.metrics.IncrementSourceFailure("market")
			if s.logger != nil {
				s.logger.WarnContext(gctx, "market volatility unavailable, using default",
					"asset_id", asset.ID, "error", err)
			}
			return nil
		}
		volatility = v
		return nil
	})
	if asset.Category.IsAgricultural() && params.Coordinates != nil {
		g.Go(func() error {
			w, err := s.market.GetWeather(gctx, params.Coordinates.Lat, params.Coordinates.Lng)
			if err != nil {
				s.metrics.IncrementSourceFailure("weather")
				if s.logger != nil {
					s.logger.WarnContext(gctx, "weather unavailable, using default risk",
						"asset_id", asset.ID, "error", err)
				}
				return nil
			}
			weather = w
			return nil
		})
	}
	// Errors are swallowed into defaults above; Wait only synchronizes.
	_ = g.Wait()

	return models.RiskFactors{
		MarketVolatility: volatility,
		LocationRisk:     tables.LocationFor(asset.Location),
		AssetLiquidity:   tables.LiquidityFor(asset.Category),
		RegulatoryRisk:   tables.RegulatoryFor(asset.Category),
		WeatherRisk:      s.engine.WeatherRisk(asset.Category, weather),
		EconomicRisk:     tables.EconomicFor(asset.Location),
	}
}

func (s *Service) emitAssessed(ctx context.Context, assessment *models.RiskAssessment) {
	if s.publisher == nil {
		return
	}
	event := events.Event{
		Name:      events.EventRiskAssessed,
		AssetID:   assessment.AssetID.String(),
		Timestamp: assessment.Timestamp,
		RequestID: requestcontext.RequestID(ctx),
		Payload: map[string]any{
			"risk_score": assessment.RiskScore,
			"risk_level": string(assessment.RiskLevel),
		},
	}
	if err := s.publisher.Emit(ctx, event); err != nil && s.logger != nil {
		s.logger.WarnContext(ctx, "failed to emit risk event",
			"asset_id", assessment.AssetID, "error", err)
	}
}
