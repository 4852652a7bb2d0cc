package store

import (
	"context"
	"sort"
	"sync"

	"tessera/internal/asset/models"
	"tessera/pkg/domain"
	"tessera/pkg/platform/sentinel"
)

// InMemory is a mutex-guarded asset store for tests and single-process
// deployments.
type InMemory struct {
	mu     sync.RWMutex
	assets map[domain.AssetID]*models.Asset
}

// NewInMemory creates an empty in-memory store.
func NewInMemory() *InMemory {
	return &InMemory{assets: make(map[domain.AssetID]*models.Asset)}
}

func (s *InMemory) Create(_ context.Context, asset *models.Asset) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.assets[asset.ID]; exists {
		return sentinel.ErrConflict
	}
	cp := *asset
	s.assets[asset.ID] = &cp
	return nil
}

func (s *InMemory) FindByID(_ context.Context, assetID domain.AssetID) (*models.Asset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	asset, exists := s.assets[assetID]
	if !exists {
		return nil, sentinel.ErrNotFound
	}
	cp := *asset
	return &cp, nil
}

func (s *InMemory) List(_ context.Context) ([]*models.Asset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Asset, 0, len(s.assets))
	for _, asset := range s.assets {
		cp := *asset
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Execute holds the write lock across validate and mutate so the transition
// is atomic.
func (s *InMemory) Execute(_ context.Context, assetID domain.AssetID,
	validate func(*models.Asset) error,
	mutate func(*models.Asset)) (*models.Asset, error) {

	s.mu.Lock()
	defer s.mu.Unlock()

	asset, exists := s.assets[assetID]
	if !exists {
		return nil, sentinel.ErrNotFound
	}
	if validate != nil {
		if err := validate(asset); err != nil {
			return nil, err
		}
	}
	if mutate != nil {
		mutate(asset)
	}
	cp := *asset
	return &cp, nil
}
