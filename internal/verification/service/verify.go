package service

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"

	assetmodels "tessera/internal/asset/models"
	"tessera/internal/verification/models"
	"tessera/pkg/domain"
	dErrors "tessera/pkg/domain-errors"
	"tessera/pkg/events"
	"tessera/pkg/platform/sentinel"
	"tessera/pkg/requestcontext"
)

// Verify runs one full verification for the asset: tier selection, confidence
// scoring, the approval policy, then status update, record write, and a
// lifecycle event. Storage failures surface with their cause attached; no
// score update is visible when the call fails.
func (s *Service) Verify(ctx context.Context, assetID domain.AssetID, declaredValue float64, evidence *models.EvidenceBundle) (*models.VerificationResult, error) {
	ctx, span := s.tracer.Start(ctx, "verification.Verify")
	defer span.End()
	span.SetAttributes(attribute.String("asset_id", assetID.String()))

	start := time.Now()

	if assetID.IsNil() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "asset_id is required")
	}
	if declaredValue <= 0 {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "declared value must be positive")
	}
	// Malformed evidence is rejected before any scoring is attempted.
	if err := evidence.Validate(); err != nil {
		return nil, err
	}

	asset, err := s.assets.FindByID(ctx, assetID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.Newf(dErrors.CodeNotFound, "asset %s not found", assetID)
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load asset")
	}
	if err := asset.CanVerify(); err != nil {
		return nil, err
	}

	result := s.engine.Evaluate(declaredValue, evidence)
	result.ProcessingMinutes = time.Since(start).Minutes()

	status := assetmodels.StatusPendingManualReview
	if result.Approved {
		status = assetmodels.StatusVerified
	}
	score := result.Confidence * 100
	now := requestcontext.Now(ctx)

	if _, err := s.assets.Execute(ctx, assetID,
		func(a *assetmodels.Asset) error { return a.CanVerify() },
		func(a *assetmodels.Asset) { a.ApplyVerification(status, score, now) },
	); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.Newf(dErrors.CodeNotFound, "asset %s not found", assetID)
		}
		if dErrors.HasCode(err, dErrors.CodeInvariantViolation) {
			return nil, err
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to update asset status")
	}

	record := &models.VerificationRecord{
		ID:                  domain.NewRecordID(),
		AssetID:             assetID,
		Tier:                result.Tier.Name,
		Status:              string(status),
		Confidence:          result.Confidence,
		Breakdown:           result.Breakdown,
		ProcessingMinutes:   result.ProcessingMinutes,
		EvidenceFingerprint: evidence.Fingerprint(),
		CreatedAt:           now,
	}
	if err := s.records.Create(ctx, record); err != nil {
		// The status transition above is already durable. Roll it back so the
		// outcome is all or nothing and the asset stays verifiable on retry.
		s.revertVerification(ctx, asset)
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to persist verification record")
	}

	s.emitOutcome(ctx, assetID, &result)

	s.metrics.IncrementOutcome(string(result.Tier.Name), string(status))
	s.metrics.ObserveConfidence(result.Confidence)
	s.metrics.ObserveVerifyLatency(time.Since(start))

	if s.logger != nil {
		s.logger.InfoContext(ctx, "verification completed",
			"asset_id", assetID,
			"tier", result.Tier.Name,
			"approved", result.Approved,
			"confidence", result.Confidence,
		)
	}
	return &result, nil
}

// revertVerification restores the asset's pre-verification status and score
// after a failed record write. prev is the snapshot loaded at the start of
// Verify, before any mutation.
func (s *Service) revertVerification(ctx context.Context, prev *assetmodels.Asset) {
	_, err := s.assets.Execute(ctx, prev.ID, nil, func(a *assetmodels.Asset) {
		a.Status = prev.Status
		a.VerificationScore = prev.VerificationScore
		a.UpdatedAt = prev.UpdatedAt
	})
	if err != nil && s.logger != nil {
		s.logger.ErrorContext(ctx, "failed to revert asset after record write failure",
			"asset_id", prev.ID, "error", err)
	}
}

// emitOutcome publishes the lifecycle event for the decision. Event delivery
// is advisory: a publish failure is logged, not surfaced, because the
// verification outcome is already durable at this point.
func (s *Service) emitOutcome(ctx context.Context, assetID domain.AssetID, result *models.VerificationResult) {
	if s.publisher == nil {
		return
	}

	event := events.Event{
		AssetID:   assetID.String(),
		Timestamp: requestcontext.Now(ctx),
		RequestID: requestcontext.RequestID(ctx),
	}
	if result.Approved {
		event.Name = events.EventVerificationCompleted
		event.Payload = map[string]any{
			"tier":               string(result.Tier.Name),
			"confidence":         result.Confidence,
			"processing_minutes": result.ProcessingMinutes,
		}
	} else {
		event.Name = events.EventVerificationRequiresReview
		event.Payload = map[string]any{
			"tier":    string(result.Tier.Name),
			"reasons": result.Reasons,
		}
	}

	if err := s.publisher.Emit(ctx, event); err != nil && s.logger != nil {
		s.logger.WarnContext(ctx, "failed to emit verification event",
			"event", event.Name, "asset_id", assetID, "error", err)
	}
}

// History returns an asset's verification records, newest first.
func (s *Service) History(ctx context.Context, assetID domain.AssetID) ([]*models.VerificationRecord, error) {
	if assetID.IsNil() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "asset_id is required")
	}
	records, err := s.records.ListByAsset(ctx, assetID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list verification records")
	}
	return records, nil
}
