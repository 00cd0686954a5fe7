package providers

import (
	"context"

	"github.com/SscSPs/asset_compass/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MarketDataProvider fetches live quotes from an upstream feed.
// Implementations return an error for any failure; fallback policy lives in the price oracle.
type MarketDataProvider interface {
	// FetchUnitPrice returns the latest USD unit price for ticker.
	FetchUnitPrice(ctx context.Context, ticker string) (decimal.Decimal, error)

	// SearchInstruments runs an upstream symbol search.
	SearchInstruments(ctx context.Context, query string) ([]domain.InstrumentMatch, error)
}

// FXProvider fetches live exchange rates.
type FXProvider interface {
	// FetchExchangeRate returns how many pair.Quote units one pair.Base unit buys.
	FetchExchangeRate(ctx context.Context, pair domain.CurrencyPair) (decimal.Decimal, error)
}

// TradeNotifier delivers a trade confirmation to the owner.
type TradeNotifier interface {
	NotifyTrade(ctx context.Context, n domain.TradeNotification) error
}
