package memory

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/SscSPs/asset_compass/internal/core/domain"
	portsrepo "github.com/SscSPs/asset_compass/internal/core/ports/repositories"
)

// RateCache keeps one atomic cell per currency pair. Loads never take a lock.
type RateCache struct {
	cells sync.Map // domain.CurrencyPair -> *atomic.Pointer[domain.RateCell]
}

// NewRateCache creates an empty cache.
func NewRateCache() *RateCache {
	return &RateCache{}
}

var _ portsrepo.RateCache = (*RateCache)(nil)

func (c *RateCache) Load(_ context.Context, pair domain.CurrencyPair) (domain.RateCell, bool, error) {
	v, ok := c.cells.Load(pair)
	if !ok {
		return domain.RateCell{}, false, nil
	}
	cell := v.(*atomic.Pointer[domain.RateCell]).Load()
	if cell == nil {
		return domain.RateCell{}, false, nil
	}
	return *cell, true, nil
}

// Store replaces the cell of pair. The last writer wins.
func (c *RateCache) Store(_ context.Context, pair domain.CurrencyPair, cell domain.RateCell) error {
	v, _ := c.cells.LoadOrStore(pair, new(atomic.Pointer[domain.RateCell]))
	v.(*atomic.Pointer[domain.RateCell]).Store(&cell)
	return nil
}
