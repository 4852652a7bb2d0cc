// Package service orchestrates asset verification: evidence validation, tier
// selection, confidence scoring, the approval policy, and persistence of the
// outcome via collaborator ports.
package service

import (
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"tessera/internal/verification/engine"
	vmetrics "tessera/internal/verification/metrics"
	"tessera/internal/verification/ports"
)

// Type aliases for shared interfaces.
type (
	AssetStore     = ports.AssetStore
	RecordStore    = ports.RecordStore
	EventPublisher = ports.EventPublisher
)

// Service is the verification orchestrator. It holds no state between calls;
// different assets' verifications may run fully in parallel.
type Service struct {
	engine    *engine.Engine
	assets    AssetStore
	records   RecordStore
	publisher EventPublisher
	logger    *slog.Logger
	metrics   *vmetrics.Metrics
	tracer    trace.Tracer
}

// Option configures the service.
type Option func(*Service)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithPublisher sets the lifecycle event publisher.
func WithPublisher(publisher EventPublisher) Option {
	return func(s *Service) {
		s.publisher = publisher
	}
}

// WithMetrics sets the prometheus metrics.
func WithMetrics(m *vmetrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// New creates the verification orchestrator.
func New(eng *engine.Engine, assets AssetStore, records RecordStore, opts ...Option) (*Service, error) {
	if eng == nil {
		return nil, errors.New("verification engine is required")
	}
	if assets == nil {
		return nil, errors.New("asset store is required")
	}
	if records == nil {
		return nil, errors.New("record store is required")
	}

	svc := &Service{
		engine:  eng,
		assets:  assets,
		records: records,
		tracer:  otel.Tracer("tessera/verification"),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}
