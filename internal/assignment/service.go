package assignment

import (
	"context"
	"errors"
	"log/slog"

	assignmodels "tessera/internal/assignment/models"
	"tessera/internal/assignment/ports"
	"tessera/internal/assignment/randomness"
	"tessera/pkg/domain"
	dErrors "tessera/pkg/domain-errors"
	"tessera/pkg/events"
	"tessera/pkg/requestcontext"
)

// Confidence constants reflect trust in the randomness source.
const (
	// VerifiableConfidence applies when the draw came from the beacon.
	VerifiableConfidence = 0.95
	// FallbackConfidence applies when the local non-verifiable fallback was
	// used.
	FallbackConfidence = 0.75
)

// Service assigns a managing party per asset using the randomness
// collaborator, degrading to a local draw when it is unavailable.
type Service struct {
	source    ports.RandomnessSource
	fallback  ports.RandomnessSource
	publisher ports.EventPublisher
	logger    *slog.Logger
}

// Option configures the service.
type Option func(*Service)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithPublisher sets the lifecycle event publisher.
func WithPublisher(publisher ports.EventPublisher) Option {
	return func(s *Service) { s.publisher = publisher }
}

// New creates the assignment service.
func New(source ports.RandomnessSource, opts ...Option) (*Service, error) {
	if source == nil {
		return nil, errors.New("randomness source is required")
	}
	svc := &Service{
		source:   source,
		fallback: randomness.Local{},
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// Assign picks one manager from the candidate pool for the asset. Assignment
// is advisory infrastructure selection, so a failing randomness collaborator
// degrades to a local draw with reduced confidence instead of aborting.
func (s *Service) Assign(ctx context.Context, assetID domain.AssetID, pool []string) (*assignmodels.AMCAssignment, error) {
	if assetID.IsNil() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "asset_id is required")
	}
	if len(pool) == 0 {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "candidate pool cannot be empty")
	}

	confidence := VerifiableConfidence
	randomHex, err := s.source.RequestRandomHex(ctx)
	if err == nil && !validHex(randomHex) {
		// A garbage response is a collaborator failure, same as no response.
		err = dErrors.Newf(dErrors.CodeUnavailable, "beacon returned non-hex value %q", randomHex)
	}
	if err != nil {
		if s.logger != nil {
			s.logger.WarnContext(ctx, "randomness source unavailable, falling back to local draw",
				"asset_id", assetID, "error", err)
		}
		confidence = FallbackConfidence
		randomHex, err = s.fallback.RequestRandomHex(ctx)
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "no randomness available")
		}
	}

	selected, reason, err := Select(randomHex, pool)
	if err != nil {
		return nil, err
	}

	assignment := &assignmodels.AMCAssignment{
		ID:            domain.NewAssignmentID(),
		AssetID:       assetID,
		CandidatePool: pool,
		Selected:      selected,
		Reason:        reason,
		Confidence:    confidence,
		RandomHex:     randomHex,
		Timestamp:     requestcontext.Now(ctx),
	}

	s.emitAssigned(ctx, assignment)

	if s.logger != nil {
		s.logger.InfoContext(ctx, "amc assigned",
			"asset_id", assetID, "selected", selected, "pool_size", len(pool))
	}
	return assignment, nil
}

func (s *Service) emitAssigned(ctx context.Context, assignment *assignmodels.AMCAssignment) {
	if s.publisher == nil {
		return
	}
	event := events.Event{
		Name:      events.EventAMCAssigned,
		AssetID:   assignment.AssetID.String(),
		Timestamp: assignment.Timestamp,
		RequestID: requestcontext.RequestID(ctx),
		Payload: map[string]any{
			"selected":   assignment.Selected,
			"pool_size":  len(assignment.CandidatePool),
			"confidence": assignment.Confidence,
		},
	}
	if err := s.publisher.Emit(ctx, event); err != nil && s.logger != nil {
		s.logger.WarnContext(ctx, "failed to emit assignment event",
			"asset_id", assignment.AssetID, "error", err)
	}
}
