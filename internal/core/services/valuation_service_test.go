package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/asset_compass/internal/apperrors"
	"github.com/SscSPs/asset_compass/internal/core/domain"
	"github.com/SscSPs/asset_compass/internal/core/services"
	"github.com/SscSPs/asset_compass/internal/repositories/memory"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func seedHolding(t *testing.T, repo *memory.HoldingRepository, owner, qty, price string, acquired time.Time) {
	t.Helper()
	require.NoError(t, repo.SaveHolding(context.Background(), domain.Holding{
		HoldingID:              uuid.NewString(),
		OwnerRef:               owner,
		Ticker:                 "T",
		Quantity:               decimal.RequireFromString(qty),
		UnitPriceAtAcquisition: decimal.RequireFromString(price),
		AcquiredAt:             acquired,
	}))
}

func TestNetWorth_ConvertsOnce(t *testing.T) {
	repo := memory.NewHoldingRepository()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	seedHolding(t, repo, "owner-1", "1.0598823529", "255", base)
	seedHolding(t, repo, "owner-1", "2", "100.5", base.Add(time.Hour))
	seedHolding(t, repo, "owner-2", "100", "100", base)

	oracle := new(MockPriceOracle)
	oracle.On("GetExchangeRate", mock.Anything, domain.USDTo("ZAR")).Return(usdQuote("ZAR", "18.5", false)).Once()

	svc := services.NewValuationService(repo, oracle, "zar")
	nw, err := svc.NetWorth(context.Background(), "owner-1")

	require.NoError(t, err)
	expectedUSD := decimal.RequireFromString("1.0598823529").Mul(decimal.NewFromInt(255)).Add(decimal.RequireFromString("201"))
	assert.True(t, expectedUSD.Equal(nw.TotalUSD), nw.TotalUSD.String())
	assert.True(t, expectedUSD.Mul(decimal.RequireFromString("18.5")).Equal(nw.Total), nw.Total.String())
	assert.Equal(t, "ZAR", nw.ReferenceCurrency)
	assert.Equal(t, 2, nw.HoldingCount)
	assert.False(t, nw.RateStale)
	oracle.AssertExpectations(t)
}

func TestNetWorth_OrderDoesNotMatter(t *testing.T) {
	values := [][2]string{{"0.3333333333", "99.9999"}, {"12.5", "10.01"}, {"1", "0.0001"}, {"7.0000000001", "420.4242"}}
	oracle := new(MockPriceOracle)
	oracle.On("GetExchangeRate", mock.Anything, mock.Anything).Return(usdQuote("EUR", "0.9234", true))
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	var totals []decimal.Decimal
	for _, order := range [][]int{{0, 1, 2, 3}, {3, 2, 1, 0}, {2, 0, 3, 1}} {
		repo := memory.NewHoldingRepository()
		for i, idx := range order {
			seedHolding(t, repo, "owner", values[idx][0], values[idx][1], base.Add(time.Duration(i)*time.Minute))
		}
		nw, err := services.NewValuationService(repo, oracle, "EUR").NetWorth(context.Background(), "owner")
		require.NoError(t, err)
		assert.True(t, nw.RateStale)
		totals = append(totals, nw.Total)
	}
	for _, total := range totals[1:] {
		assert.True(t, totals[0].Equal(total))
	}
}

func TestNetWorth_EmptyPortfolio(t *testing.T) {
	oracle := new(MockPriceOracle)
	oracle.On("GetExchangeRate", mock.Anything, domain.USDTo("USD")).Return(usdQuote("USD", "1", false))

	nw, err := services.NewValuationService(memory.NewHoldingRepository(), oracle, "").NetWorth(context.Background(), "nobody")

	require.NoError(t, err)
	assert.True(t, nw.Total.IsZero())
	assert.Equal(t, domain.USD, nw.ReferenceCurrency)
	assert.Zero(t, nw.HoldingCount)
}

func TestNetWorth_RequiresOwner(t *testing.T) {
	_, err := services.NewValuationService(memory.NewHoldingRepository(), new(MockPriceOracle), "USD").NetWorth(context.Background(), " ")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
