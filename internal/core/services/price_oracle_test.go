package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/asset_compass/internal/apperrors"
	"github.com/SscSPs/asset_compass/internal/core/domain"
	portssvc "github.com/SscSPs/asset_compass/internal/core/ports/services"
	"github.com/SscSPs/asset_compass/internal/core/services"
	"github.com/SscSPs/asset_compass/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

var errUpstream = errors.New("upstream unavailable")

// --- Test Suite ---
type PriceOracleTestSuite struct {
	suite.Suite
	market *MockMarketData
	fx     *MockFX
	cache  *memory.RateCache
	now    time.Time
	oracle portssvc.PriceOracleSvc
}

func (suite *PriceOracleTestSuite) SetupTest() {
	suite.market = new(MockMarketData)
	suite.fx = new(MockFX)
	suite.cache = memory.NewRateCache()
	suite.now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	suite.oracle = services.NewPriceOracle(suite.market, suite.fx, suite.cache,
		services.WithFetchTimeout(50*time.Millisecond),
		services.WithSeedRates(map[string]decimal.Decimal{"ZAR": decimal.RequireFromString("18.50")}),
		services.WithOracleClock(func() time.Time { return suite.now }),
	)
}

// --- Test Cases ---

func (suite *PriceOracleTestSuite) TestGetUnitPrice_LiveKeepsPublishedPrecision() {
	ctx := context.Background()
	suite.market.On("FetchUnitPrice", mock.Anything, "AAPL").Return(decimal.RequireFromString("255.12345"), nil).Once()

	price, err := suite.oracle.GetUnitPrice(ctx, " aapl ")

	suite.Require().NoError(err)
	suite.Equal("255.12345", price.String())
	suite.market.AssertExpectations(suite.T())
}

func (suite *PriceOracleTestSuite) TestGetUnitPrice_SubCentQuoteIsNotReplaced() {
	ctx := context.Background()
	suite.market.On("FetchUnitPrice", mock.Anything, "SHIB").Return(decimal.RequireFromString("0.00001234"), nil).Once()

	price, err := suite.oracle.GetUnitPrice(ctx, "SHIB")

	suite.Require().NoError(err)
	suite.Equal("0.00001234", price.String())
	fallback, _ := services.FallbackUnitPrice("SHIB")
	suite.False(price.Equal(fallback))
}

func (suite *PriceOracleTestSuite) TestGetUnitPrice_QuoteBeyondStoredScale() {
	ctx := context.Background()
	suite.market.On("FetchUnitPrice", mock.Anything, "DUST").Return(decimal.RequireFromString("0.000000000123456"), nil).Once()
	suite.market.On("FetchUnitPrice", mock.Anything, "MOTE").Return(decimal.RequireFromString("0.00000000004"), nil).Once()

	price, err := suite.oracle.GetUnitPrice(ctx, "DUST")
	suite.Require().NoError(err)
	suite.Equal("0.0000000001", price.String())

	_, err = suite.oracle.GetUnitPrice(ctx, "MOTE")
	suite.ErrorIs(err, apperrors.ErrPriceUnavailable)
}

func (suite *PriceOracleTestSuite) TestGetUnitPrice_FallbackIsDeterministic() {
	ctx := context.Background()
	suite.market.On("FetchUnitPrice", mock.Anything, "ZZZZ").Return(decimal.Zero, errUpstream)

	first, err := suite.oracle.GetUnitPrice(ctx, "ZZZZ")
	suite.Require().NoError(err)
	second, err := suite.oracle.GetUnitPrice(ctx, "zzzz")
	suite.Require().NoError(err)

	suite.True(first.Equal(second))
	suite.True(first.GreaterThanOrEqual(decimal.NewFromInt(10)))
	suite.True(first.LessThan(decimal.NewFromInt(1000)))
	suite.LessOrEqual(first.Exponent(), int32(0))
	suite.GreaterOrEqual(first.Exponent(), int32(-2))
}

func (suite *PriceOracleTestSuite) TestGetUnitPrice_NonPositiveLivePriceFallsBack() {
	ctx := context.Background()
	suite.market.On("FetchUnitPrice", mock.Anything, "MSFT").Return(decimal.RequireFromString("-3.50"), nil).Once()

	price, err := suite.oracle.GetUnitPrice(ctx, "MSFT")

	suite.Require().NoError(err)
	expected, _ := services.FallbackUnitPrice("MSFT")
	suite.True(expected.Equal(price))
}

func (suite *PriceOracleTestSuite) TestGetUnitPrice_SlowUpstreamFallsBack() {
	oracle := services.NewPriceOracle(slowMarket{}, nil, suite.cache, services.WithFetchTimeout(20*time.Millisecond))

	start := time.Now()
	price, err := oracle.GetUnitPrice(context.Background(), "ZZZZ")

	suite.Require().NoError(err)
	suite.Less(time.Since(start), time.Second)
	expected, _ := services.FallbackUnitPrice("ZZZZ")
	suite.True(expected.Equal(price))
}

func (suite *PriceOracleTestSuite) TestGetUnitPrice_MalformedTicker() {
	for _, ticker := range []string{"", "   ", "AA PL", "$$$", "THIS-TICKER-IS-FAR-TOO-LONG"} {
		_, err := suite.oracle.GetUnitPrice(context.Background(), ticker)
		suite.ErrorIs(err, apperrors.ErrPriceUnavailable, ticker)
	}
	suite.market.AssertNotCalled(suite.T(), "FetchUnitPrice", mock.Anything, mock.Anything)
}

func (suite *PriceOracleTestSuite) TestGetExchangeRate_LiveThenCached() {
	ctx := context.Background()
	pair := domain.USDTo("EUR")
	suite.fx.On("FetchExchangeRate", mock.Anything, pair).Return(decimal.RequireFromString("0.92345"), nil).Once()
	suite.fx.On("FetchExchangeRate", mock.Anything, pair).Return(decimal.Zero, errUpstream)

	live := suite.oracle.GetExchangeRate(ctx, pair)
	suite.False(live.Stale)
	suite.Equal("0.9234", live.Rate.StringFixed(4))
	suite.Equal(suite.now, live.LastFetchedAt)

	suite.now = suite.now.Add(time.Hour)
	for i := 0; i < 3; i++ {
		cached := suite.oracle.GetExchangeRate(ctx, pair)
		suite.True(cached.Stale)
		suite.True(live.Rate.Equal(cached.Rate))
		suite.Equal(live.LastFetchedAt, cached.LastFetchedAt)
	}
}

func (suite *PriceOracleTestSuite) TestGetExchangeRate_SeedAndInverse() {
	ctx := context.Background()
	suite.fx.On("FetchExchangeRate", mock.Anything, mock.Anything).Return(decimal.Zero, errUpstream)

	seeded := suite.oracle.GetExchangeRate(ctx, domain.USDTo("zar"))
	suite.True(seeded.Stale)
	suite.True(seeded.Rate.Equal(decimal.RequireFromString("18.50")))
	suite.True(seeded.LastFetchedAt.IsZero())

	inverse := suite.oracle.GetExchangeRate(ctx, domain.NewCurrencyPair("ZAR", "USD"))
	suite.True(inverse.Stale)
	suite.Equal("0.0540", inverse.Rate.StringFixed(4))
}

func (suite *PriceOracleTestSuite) TestGetExchangeRate_ParityWhenNothingKnown() {
	suite.fx.On("FetchExchangeRate", mock.Anything, mock.Anything).Return(decimal.Zero, errUpstream)

	quote := suite.oracle.GetExchangeRate(context.Background(), domain.USDTo("JPY"))

	suite.True(quote.Stale)
	suite.True(quote.Rate.Equal(decimal.NewFromInt(1)))
}

func (suite *PriceOracleTestSuite) TestGetExchangeRate_Identity() {
	quote := suite.oracle.GetExchangeRate(context.Background(), domain.USDTo("USD"))

	suite.False(quote.Stale)
	suite.True(quote.Rate.Equal(decimal.NewFromInt(1)))
	suite.fx.AssertNotCalled(suite.T(), "FetchExchangeRate", mock.Anything, mock.Anything)
}

func (suite *PriceOracleTestSuite) TestGetExchangeRate_NonPositiveLiveRateIsIgnored() {
	pair := domain.USDTo("GBP")
	suite.fx.On("FetchExchangeRate", mock.Anything, pair).Return(decimal.RequireFromString("-1"), nil).Once()

	quote := suite.oracle.GetExchangeRate(context.Background(), pair)

	suite.True(quote.Stale)
	suite.True(quote.Rate.IsPositive())
	_, ok, _ := suite.cache.Load(context.Background(), pair)
	suite.False(ok)
}

func (suite *PriceOracleTestSuite) TestSearchInstruments() {
	ctx := context.Background()

	_, err := suite.oracle.SearchInstruments(ctx, "  ")
	suite.ErrorIs(err, apperrors.ErrValidation)

	live := []domain.InstrumentMatch{{Symbol: "AAPL", Name: "Apple Inc.", Type: "Equity", Region: "United States", Currency: "USD"}}
	suite.market.On("SearchInstruments", mock.Anything, "apple").Return(live, nil).Once()
	matches, err := suite.oracle.SearchInstruments(ctx, "apple")
	suite.Require().NoError(err)
	suite.Equal(live, matches)

	suite.market.On("SearchInstruments", mock.Anything, "btc-usd coin").Return(nil, errUpstream).Once()
	matches, err = suite.oracle.SearchInstruments(ctx, "btc-usd coin")
	suite.Require().NoError(err)
	suite.Require().Len(matches, 1)
	suite.Equal("BTC-USD", matches[0].Symbol)
	suite.Equal(string(domain.Crypto), matches[0].Type)
	suite.True(matches[0].Synthetic)
}

// --- Run Test Suite ---
func TestPriceOracleTestSuite(t *testing.T) {
	suite.Run(t, new(PriceOracleTestSuite))
}

// slowMarket never answers before its context is done.
type slowMarket struct{}

func (slowMarket) FetchUnitPrice(ctx context.Context, _ string) (decimal.Decimal, error) {
	<-ctx.Done()
	return decimal.Zero, ctx.Err()
}

func (slowMarket) SearchInstruments(ctx context.Context, _ string) ([]domain.InstrumentMatch, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestFallbackUnitPrice_SpreadsAcrossRange(t *testing.T) {
	seen := map[string]bool{}
	for _, ticker := range []string{"AAPL", "MSFT", "GOOG", "TSLA", "BTC-USD", "^GSPC", "BRK.B", "EURUSD=X"} {
		price, err := services.FallbackUnitPrice(ticker)
		require.NoError(t, err, ticker)
		assert.True(t, price.GreaterThanOrEqual(decimal.NewFromInt(10)), ticker)
		assert.True(t, price.LessThan(decimal.NewFromInt(1000)), ticker)
		seen[price.String()] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestNormalizeTicker(t *testing.T) {
	got, err := services.NormalizeTicker("  brk.b ")
	require.NoError(t, err)
	assert.Equal(t, "BRK.B", got)

	_, err = services.NormalizeTicker("A B")
	assert.ErrorIs(t, err, apperrors.ErrPriceUnavailable)
}
