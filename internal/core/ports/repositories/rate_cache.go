package repositories

import (
	"context"

	"github.com/SscSPs/asset_compass/internal/core/domain"
)

// RateCache holds the last good exchange rate per currency pair.
// Writes are last-writer-wins; readers never block writers.
type RateCache interface {
	// Load returns the cell for pair and whether one exists.
	Load(ctx context.Context, pair domain.CurrencyPair) (domain.RateCell, bool, error)

	// Store replaces the cell for pair.
	Store(ctx context.Context, pair domain.CurrencyPair, cell domain.RateCell) error
}
