package services_test

import (
	"context"

	"github.com/SscSPs/asset_compass/internal/core/domain"
	"github.com/SscSPs/asset_compass/internal/core/ports/providers"
	portssvc "github.com/SscSPs/asset_compass/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock MarketDataProvider ---
type MockMarketData struct {
	mock.Mock
}

func (m *MockMarketData) FetchUnitPrice(ctx context.Context, ticker string) (decimal.Decimal, error) {
	args := m.Called(ctx, ticker)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockMarketData) SearchInstruments(ctx context.Context, query string) ([]domain.InstrumentMatch, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InstrumentMatch), args.Error(1)
}

var _ providers.MarketDataProvider = (*MockMarketData)(nil)

// --- Mock FXProvider ---
type MockFX struct {
	mock.Mock
}

func (m *MockFX) FetchExchangeRate(ctx context.Context, pair domain.CurrencyPair) (decimal.Decimal, error) {
	args := m.Called(ctx, pair)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

var _ providers.FXProvider = (*MockFX)(nil)

// --- Mock TradeNotifier ---
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifyTrade(ctx context.Context, n domain.TradeNotification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

var _ providers.TradeNotifier = (*MockNotifier)(nil)

// --- Mock PriceOracle ---
type MockPriceOracle struct {
	mock.Mock
}

func (m *MockPriceOracle) GetUnitPrice(ctx context.Context, ticker string) (decimal.Decimal, error) {
	args := m.Called(ctx, ticker)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockPriceOracle) GetExchangeRate(ctx context.Context, pair domain.CurrencyPair) domain.RateQuote {
	args := m.Called(ctx, pair)
	return args.Get(0).(domain.RateQuote)
}

func (m *MockPriceOracle) SearchInstruments(ctx context.Context, query string) ([]domain.InstrumentMatch, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InstrumentMatch), args.Error(1)
}

var _ portssvc.PriceOracleSvc = (*MockPriceOracle)(nil)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) Append(ctx context.Context, holdingRef string, kind domain.EntryKind, valueAtTime decimal.Decimal) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, holdingRef, kind, valueAtTime)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerService) History(ctx context.Context, holdingRef string) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, holdingRef)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerService) HistoryPage(ctx context.Context, holdingRef string, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	args := m.Called(ctx, holdingRef, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]domain.LedgerEntry), nil, args.Error(2)
}

var _ portssvc.LedgerSvc = (*MockLedgerService)(nil)

func usdQuote(code, rate string, stale bool) domain.RateQuote {
	return domain.RateQuote{Pair: domain.USDTo(code), Rate: decimal.RequireFromString(rate), Stale: stale}
}
