package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/asset_compass/internal/apperrors"
	"github.com/SscSPs/asset_compass/internal/core/domain"
	"github.com/SscSPs/asset_compass/internal/core/ports/providers"
	portsrepo "github.com/SscSPs/asset_compass/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/asset_compass/internal/core/ports/services"
	"github.com/SscSPs/asset_compass/internal/platform/metrics"
	"github.com/SscSPs/asset_compass/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

const defaultFetchTimeout = 5 * time.Second

// Lookup sources reported to metrics.
const (
	sourceLive     = "live"
	sourceFallback = "fallback"
	sourceCached   = "cached"
	sourceSeed     = "seed"
	sourceParity   = "parity"
)

// PriceOracleOption configures optional dependencies for the price oracle
type PriceOracleOption func(*priceOracle)

// WithFetchTimeout bounds every upstream call made by the oracle.
func WithFetchTimeout(d time.Duration) PriceOracleOption {
	return func(o *priceOracle) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// WithSeedRates sets the cold-start USD/<code> rates used when nothing was ever fetched.
func WithSeedRates(seeds map[string]decimal.Decimal) PriceOracleOption {
	return func(o *priceOracle) {
		for code, rate := range seeds {
			if rate.IsPositive() {
				o.seeds[domain.USDTo(code)] = rate
			}
		}
	}
}

// WithOracleClock overrides the time source, for tests.
func WithOracleClock(now func() time.Time) PriceOracleOption {
	return func(o *priceOracle) {
		o.now = now
	}
}

type priceOracle struct {
	BaseService
	market  providers.MarketDataProvider
	fx      providers.FXProvider
	cache   portsrepo.RateCache
	seeds   map[domain.CurrencyPair]decimal.Decimal
	timeout time.Duration
	now     func() time.Time
}

// NewPriceOracle creates the price oracle. market and fx may be nil, in which case
// every lookup resolves offline.
func NewPriceOracle(market providers.MarketDataProvider, fx providers.FXProvider, cache portsrepo.RateCache, opts ...PriceOracleOption) portssvc.PriceOracleSvc {
	o := &priceOracle{
		market:  market,
		fx:      fx,
		cache:   cache,
		seeds:   make(map[domain.CurrencyPair]decimal.Decimal),
		timeout: defaultFetchTimeout,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// GetUnitPrice tries the market feed on every call and falls back to the deterministic price.
// A positive live quote is kept at its published precision, up to QuotePriceScale places.
func (o *priceOracle) GetUnitPrice(ctx context.Context, ticker string) (decimal.Decimal, error) {
	t, err := NormalizeTicker(ticker)
	if err != nil {
		return decimal.Zero, err
	}

	if o.market != nil {
		fetchCtx, cancel := context.WithTimeout(ctx, o.timeout)
		price, fetchErr := o.market.FetchUnitPrice(fetchCtx, t)
		cancel()
		if fetchErr == nil && price.IsPositive() {
			quoted := accounting.RoundHalfDown(price, domain.QuotePriceScale)
			if !quoted.IsPositive() {
				return decimal.Zero, apperrors.NewPriceUnavailableError(
					fmt.Sprintf("quote %s for %s is below the stored price precision", price, t))
			}
			metrics.PriceLookups.WithLabelValues(sourceLive).Inc()
			return quoted, nil
		}
		if fetchErr != nil {
			o.LogWarn(ctx, "Live price fetch failed, using fallback price",
				slog.String("ticker", t), slog.String("error", fetchErr.Error()))
		} else {
			o.LogWarn(ctx, "Live price was not positive, using fallback price",
				slog.String("ticker", t), slog.String("price", price.String()))
		}
	}

	fallback, err := FallbackUnitPrice(t)
	if err != nil {
		return decimal.Zero, err
	}
	metrics.PriceLookups.WithLabelValues(sourceFallback).Inc()
	return fallback, nil
}

// GetExchangeRate returns a live rate and remembers it, or the last remembered one flagged stale.
func (o *priceOracle) GetExchangeRate(ctx context.Context, pair domain.CurrencyPair) domain.RateQuote {
	pair = domain.NewCurrencyPair(pair.Base, pair.Quote)
	if pair.Identity() {
		return domain.RateQuote{Pair: pair, Rate: decimal.NewFromInt(1), LastFetchedAt: o.now().UTC()}
	}

	if o.fx != nil {
		fetchCtx, cancel := context.WithTimeout(ctx, o.timeout)
		rate, err := o.fx.FetchExchangeRate(fetchCtx, pair)
		cancel()
		if err == nil {
			rate = accounting.RoundHalfDown(rate, domain.ExchangeRateScale)
		}
		if err == nil && rate.IsPositive() {
			cell := domain.RateCell{Rate: rate, LastFetchedAt: o.now().UTC()}
			if storeErr := o.cache.Store(ctx, pair, cell); storeErr != nil {
				o.LogError(ctx, storeErr, "Failed to store exchange rate in cache", slog.String("pair", pair.String()))
			}
			metrics.RateLookups.WithLabelValues(pair.String(), sourceLive).Inc()
			return domain.RateQuote{Pair: pair, Rate: cell.Rate, LastFetchedAt: cell.LastFetchedAt}
		}
		if err != nil {
			o.LogWarn(ctx, "Live exchange rate fetch failed, using last known rate",
				slog.String("pair", pair.String()), slog.String("error", err.Error()))
		} else {
			o.LogWarn(ctx, "Live exchange rate was not positive, using last known rate",
				slog.String("pair", pair.String()), slog.String("rate", rate.String()))
		}
	}

	cell, ok, err := o.cache.Load(ctx, pair)
	if err != nil {
		o.LogError(ctx, err, "Failed to load exchange rate from cache", slog.String("pair", pair.String()))
	}
	if ok && cell.Rate.IsPositive() {
		metrics.RateLookups.WithLabelValues(pair.String(), sourceCached).Inc()
		return domain.RateQuote{Pair: pair, Rate: cell.Rate, LastFetchedAt: cell.LastFetchedAt, Stale: true}
	}

	if seed, ok := o.seedFor(pair); ok {
		metrics.RateLookups.WithLabelValues(pair.String(), sourceSeed).Inc()
		return domain.RateQuote{Pair: pair, Rate: seed, Stale: true}
	}

	o.LogWarn(ctx, "No exchange rate known for pair, assuming parity", slog.String("pair", pair.String()))
	metrics.RateLookups.WithLabelValues(pair.String(), sourceParity).Inc()
	return domain.RateQuote{Pair: pair, Rate: decimal.NewFromInt(1), Stale: true}
}

// seedFor resolves a seed for pair, inverting USD/X seeds for X/USD.
func (o *priceOracle) seedFor(pair domain.CurrencyPair) (decimal.Decimal, bool) {
	if seed, ok := o.seeds[pair]; ok {
		return seed, true
	}
	if pair.Quote == domain.USD {
		if seed, ok := o.seeds[domain.USDTo(pair.Base)]; ok {
			inverted := accounting.DivRoundHalfDown(decimal.NewFromInt(1), seed, domain.ExchangeRateScale)
			if inverted.IsPositive() {
				return inverted, true
			}
		}
	}
	return decimal.Zero, false
}

// SearchInstruments queries the market feed, answering with an offline result when it is unreachable.
func (o *priceOracle) SearchInstruments(ctx context.Context, query string) ([]domain.InstrumentMatch, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperrors.NewValidationError("search query must not be empty")
	}

	if o.market != nil {
		fetchCtx, cancel := context.WithTimeout(ctx, o.timeout)
		matches, err := o.market.SearchInstruments(fetchCtx, query)
		cancel()
		if err == nil {
			metrics.SearchLookups.WithLabelValues(sourceLive).Inc()
			if matches == nil {
				matches = []domain.InstrumentMatch{}
			}
			return matches, nil
		}
		o.LogWarn(ctx, "Instrument search failed, using offline result",
			slog.String("query", query), slog.String("error", err.Error()))
	}

	metrics.SearchLookups.WithLabelValues(sourceFallback).Inc()
	return syntheticMatches(query), nil
}
