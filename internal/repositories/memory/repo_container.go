package memory

import (
	portsrepo "github.com/SscSPs/asset_compass/internal/core/ports/repositories"
)

// NewRepositoryProvider wires in-process stores around the given rate cache.
func NewRepositoryProvider(rateCache portsrepo.RateCache) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		HoldingRepo: NewHoldingRepository(),
		LedgerRepo:  NewLedgerRepository(),
		RateCache:   rateCache,
	}
}
