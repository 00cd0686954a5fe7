package services

import (
	"context"

	"github.com/SscSPs/asset_compass/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PriceOracleSvc resolves unit prices and exchange rates, absorbing upstream failures.
type PriceOracleSvc interface {
	// GetUnitPrice returns the live USD price of ticker, or its deterministic fallback price.
	// It fails only with apperrors.ErrPriceUnavailable when no fallback can be built.
	GetUnitPrice(ctx context.Context, ticker string) (decimal.Decimal, error)

	// GetExchangeRate never fails: it returns the live rate, or the cached/seeded one.
	GetExchangeRate(ctx context.Context, pair domain.CurrencyPair) domain.RateQuote

	// SearchInstruments runs an instrument search with a deterministic offline fallback.
	SearchInstruments(ctx context.Context, query string) ([]domain.InstrumentMatch, error)
}
