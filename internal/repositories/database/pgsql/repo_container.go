package pgsql

import (
	portsrepo "github.com/SscSPs/asset_compass/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the Postgres-backed stores. rateCache is passed through since
// exchange rates are not kept in Postgres.
func NewRepositoryProvider(dbPool *pgxpool.Pool, rateCache portsrepo.RateCache) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		HoldingRepo: newPgxHoldingRepository(dbPool),
		LedgerRepo:  newPgxLedgerRepository(dbPool),
		RateCache:   rateCache,
	}
}
