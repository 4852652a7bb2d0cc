// Package service manages asset registration and lookup.
package service

import (
	"context"
	"errors"
	"log/slog"

	"tessera/internal/asset/models"
	"tessera/internal/asset/store"
	"tessera/pkg/domain"
	dErrors "tessera/pkg/domain-errors"
	"tessera/pkg/platform/sentinel"
	"tessera/pkg/requestcontext"
)

// Service handles the asset lifecycle up to verification.
type Service struct {
	assets store.Store
	logger *slog.Logger
}

// Option configures the service.
type Option func(*Service)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// New creates the asset service.
func New(assets store.Store, opts ...Option) (*Service, error) {
	if assets == nil {
		return nil, errors.New("asset store is required")
	}
	svc := &Service{assets: assets}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// Register validates and stores a newly declared asset in PENDING status.
func (s *Service) Register(ctx context.Context, name string, category models.AssetCategory, location string, declaredValue, expectedAPY float64) (*models.Asset, error) {
	asset, err := models.NewAsset(domain.NewAssetID(), name, category, location, declaredValue, expectedAPY, requestcontext.Now(ctx))
	if err != nil {
		return nil, err
	}
	if err := s.assets.Create(ctx, asset); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, dErrors.New(dErrors.CodeConflict, "asset already exists")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create asset")
	}
	if s.logger != nil {
		s.logger.InfoContext(ctx, "asset registered",
			"asset_id", asset.ID, "category", asset.Category, "declared_value", asset.DeclaredValue)
	}
	return asset, nil
}

// Get returns the asset by ID.
func (s *Service) Get(ctx context.Context, assetID domain.AssetID) (*models.Asset, error) {
	if assetID.IsNil() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "asset_id is required")
	}
	asset, err := s.assets.FindByID(ctx, assetID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.Newf(dErrors.CodeNotFound, "asset %s not found", assetID)
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load asset")
	}
	return asset, nil
}

// List returns all assets, newest first.
func (s *Service) List(ctx context.Context) ([]*models.Asset, error) {
	assets, err := s.assets.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list assets")
	}
	return assets, nil
}
