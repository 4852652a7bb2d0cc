// Package record persists verification records.
package record

import (
	"context"
	"sync"

	"tessera/internal/verification/models"
	"tessera/pkg/domain"
)

// InMemory is a mutex-guarded record store for tests and single-process
// deployments.
type InMemory struct {
	mu      sync.RWMutex
	records map[domain.AssetID][]*models.VerificationRecord
}

// NewInMemory creates an empty in-memory record store.
func NewInMemory() *InMemory {
	return &InMemory{records: make(map[domain.AssetID][]*models.VerificationRecord)}
}

func (s *InMemory) Create(_ context.Context, record *models.VerificationRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *record
	// Prepend so ListByAsset returns newest first without sorting.
	s.records[record.AssetID] = append([]*models.VerificationRecord{&cp}, s.records[record.AssetID]...)
	return nil
}

func (s *InMemory) ListByAsset(_ context.Context, assetID domain.AssetID) ([]*models.VerificationRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := s.records[assetID]
	out := make([]*models.VerificationRecord, 0, len(records))
	for _, r := range records {
		cp := *r
		out = append(out, &cp)
	}
	return out, nil
}
