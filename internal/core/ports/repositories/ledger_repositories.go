package repositories

import (
	"context"

	"github.com/SscSPs/asset_compass/internal/core/domain"
)

// LedgerReader defines read operations for ledger entries
type LedgerReader interface {
	// FindEntriesByHolding returns entries of a holding ordered by timestamp descending.
	// A limit of 0 returns everything. The returned token is nil on the last page.
	FindEntriesByHolding(ctx context.Context, holdingRef string, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error)
}

// LedgerWriter defines the only write operation the ledger supports.
type LedgerWriter interface {
	// AppendEntry persists a new entry. Entries are never updated or deleted.
	AppendEntry(ctx context.Context, entry domain.LedgerEntry) error
}

// LedgerRepositoryFacade combines all ledger-related repository interfaces
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}
