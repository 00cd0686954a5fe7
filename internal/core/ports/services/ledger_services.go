package services

import (
	"context"

	"github.com/SscSPs/asset_compass/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerSvc is the append-only value history of holdings.
type LedgerSvc interface {
	// Append records a new entry stamped with the current time.
	Append(ctx context.Context, holdingRef string, kind domain.EntryKind, valueAtTime decimal.Decimal) (*domain.LedgerEntry, error)

	// History returns every entry of a holding, newest first.
	History(ctx context.Context, holdingRef string) ([]domain.LedgerEntry, error)

	// HistoryPage returns one page of History and the token of the next one (nil on the last page).
	HistoryPage(ctx context.Context, holdingRef string, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error)
}
