// Package memory provides in-process stores used when no database is configured and in tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/SscSPs/asset_compass/internal/apperrors"
	"github.com/SscSPs/asset_compass/internal/core/domain"
	portsrepo "github.com/SscSPs/asset_compass/internal/core/ports/repositories"
)

// HoldingRepository keeps holdings in a map guarded by a RWMutex.
type HoldingRepository struct {
	mu       sync.RWMutex
	holdings map[string]domain.Holding
}

// NewHoldingRepository creates an empty holding store.
func NewHoldingRepository() *HoldingRepository {
	return &HoldingRepository{holdings: make(map[string]domain.Holding)}
}

var _ portsrepo.HoldingRepositoryFacade = (*HoldingRepository)(nil)

func (r *HoldingRepository) SaveHolding(_ context.Context, holding domain.Holding) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.holdings[holding.HoldingID] = holding
	return nil
}

func (r *HoldingRepository) FindHoldingByID(_ context.Context, holdingID string) (*domain.Holding, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.holdings[holdingID]
	if !ok {
		return nil, apperrors.NewNotFoundError("holding not found: " + holdingID)
	}
	return &h, nil
}

func (r *HoldingRepository) FindHoldingsByOwner(_ context.Context, ownerRef string) ([]domain.Holding, error) {
	r.mu.RLock()
	out := []domain.Holding{}
	for _, h := range r.holdings {
		if h.OwnerRef == ownerRef {
			out = append(out, h)
		}
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].AcquiredAt.Equal(out[j].AcquiredAt) {
			return out[i].AcquiredAt.Before(out[j].AcquiredAt)
		}
		return out[i].HoldingID < out[j].HoldingID
	})
	return out, nil
}

func (r *HoldingRepository) DeleteHolding(_ context.Context, holdingID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.holdings[holdingID]; !ok {
		return apperrors.NewNotFoundError("holding not found: " + holdingID)
	}
	delete(r.holdings, holdingID)
	return nil
}
