package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/SscSPs/asset_compass/internal/apperrors"
	"github.com/SscSPs/asset_compass/internal/core/domain"
	portsrepo "github.com/SscSPs/asset_compass/internal/core/ports/repositories"
	"github.com/SscSPs/asset_compass/internal/utils/pagination"
)

// LedgerRepository is an append-only slice of entries per holding.
type LedgerRepository struct {
	mu      sync.RWMutex
	entries map[string][]domain.LedgerEntry
}

// NewLedgerRepository creates an empty ledger store.
func NewLedgerRepository() *LedgerRepository {
	return &LedgerRepository{entries: make(map[string][]domain.LedgerEntry)}
}

var _ portsrepo.LedgerRepositoryFacade = (*LedgerRepository)(nil)

func (r *LedgerRepository) AppendEntry(_ context.Context, entry domain.LedgerEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[entry.HoldingRef] = append(r.entries[entry.HoldingRef], entry)
	return nil
}

func (r *LedgerRepository) FindEntriesByHolding(_ context.Context, holdingRef string, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	r.mu.RLock()
	entries := make([]domain.LedgerEntry, len(r.entries[holdingRef]))
	copy(entries, r.entries[holdingRef])
	r.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool {
		return after(entries[i], entries[j])
	})

	if nextToken != nil && *nextToken != "" {
		lastTS, lastID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", err)
		}
		cursor := domain.LedgerEntry{Timestamp: lastTS, EntryID: lastID}
		start := sort.Search(len(entries), func(i int) bool {
			return after(cursor, entries[i])
		})
		entries = entries[start:]
	}

	var next *string
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
		last := entries[len(entries)-1]
		token := pagination.EncodeToken(last.Timestamp, last.EntryID)
		next = &token
	}
	return entries, next, nil
}

// after orders entries newest first, entry id descending on equal timestamps.
func after(a, b domain.LedgerEntry) bool {
	if !a.Timestamp.Equal(b.Timestamp) {
		return a.Timestamp.After(b.Timestamp)
	}
	return a.EntryID > b.EntryID
}
