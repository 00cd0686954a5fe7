package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/asset_compass/internal/apperrors"
	"github.com/SscSPs/asset_compass/internal/core/domain"
	"github.com/SscSPs/asset_compass/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHoldingRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewHoldingRepository()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	h := domain.Holding{HoldingID: "b", OwnerRef: "o1", Quantity: decimal.NewFromInt(1), AcquiredAt: base}
	require.NoError(t, repo.SaveHolding(ctx, h))
	require.NoError(t, repo.SaveHolding(ctx, domain.Holding{HoldingID: "a", OwnerRef: "o1", AcquiredAt: base}))
	require.NoError(t, repo.SaveHolding(ctx, domain.Holding{HoldingID: "c", OwnerRef: "o1", AcquiredAt: base.Add(-time.Hour)}))
	require.NoError(t, repo.SaveHolding(ctx, domain.Holding{HoldingID: "d", OwnerRef: "o2", AcquiredAt: base}))

	got, err := repo.FindHoldingByID(ctx, "b")
	require.NoError(t, err)
	got.Quantity = decimal.NewFromInt(99)
	again, _ := repo.FindHoldingByID(ctx, "b")
	assert.True(t, again.Quantity.Equal(decimal.NewFromInt(1)), "callers get a copy")

	list, err := repo.FindHoldingsByOwner(ctx, "o1")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"c", "a", "b"}, []string{list[0].HoldingID, list[1].HoldingID, list[2].HoldingID})

	h.Quantity = decimal.NewFromInt(2)
	require.NoError(t, repo.SaveHolding(ctx, h))
	updated, _ := repo.FindHoldingByID(ctx, "b")
	assert.True(t, updated.Quantity.Equal(decimal.NewFromInt(2)))

	require.NoError(t, repo.DeleteHolding(ctx, "b"))
	_, err = repo.FindHoldingByID(ctx, "b")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.ErrorIs(t, repo.DeleteHolding(ctx, "b"), apperrors.ErrNotFound)

	none, err := repo.FindHoldingsByOwner(ctx, "nobody")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestLedgerRepository_PagesWithTiedTimestamps(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewLedgerRepository()
	ts := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	ids := []string{"e1", "e2", "e3", "e4", "e5"}
	for i, id := range ids {
		stamp := ts
		if i >= 3 {
			stamp = ts.Add(time.Second)
		}
		require.NoError(t, repo.AppendEntry(ctx, domain.LedgerEntry{EntryID: id, HoldingRef: "h", Kind: domain.Buy, Timestamp: stamp}))
	}
	require.NoError(t, repo.AppendEntry(ctx, domain.LedgerEntry{EntryID: "x", HoldingRef: "other", Timestamp: ts}))

	var got []string
	var token *string
	for {
		page, next, err := repo.FindEntriesByHolding(ctx, "h", 2, token)
		require.NoError(t, err)
		for _, e := range page {
			got = append(got, e.EntryID)
		}
		if next == nil {
			break
		}
		token = next
	}
	assert.Equal(t, []string{"e5", "e4", "e3", "e2", "e1"}, got)

	all, next, err := repo.FindEntriesByHolding(ctx, "h", 0, nil)
	require.NoError(t, err)
	assert.Nil(t, next)
	assert.Len(t, all, 5)

	bad := "%%%"
	_, _, err = repo.FindEntriesByHolding(ctx, "h", 2, &bad)
	assert.Equal(t, 400, apperrors.StatusCode(err))
}

func TestRateCache_LastWriterWins(t *testing.T) {
	ctx := context.Background()
	cache := memory.NewRateCache()
	pair := domain.USDTo("ZAR")

	_, ok, err := cache.Load(ctx, pair)
	require.NoError(t, err)
	assert.False(t, ok)

	var wg sync.WaitGroup
	for i := 1; i <= 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = cache.Store(ctx, pair, domain.RateCell{Rate: decimal.NewFromInt(int64(i)), LastFetchedAt: time.Now()})
		}(i)
	}
	wg.Wait()

	cell, ok, err := cache.Load(ctx, pair)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, cell.Rate.IsPositive())

	last := domain.RateCell{Rate: decimal.RequireFromString("18.25"), LastFetchedAt: time.Now().UTC()}
	require.NoError(t, cache.Store(ctx, pair, last))
	cell, _, _ = cache.Load(ctx, pair)
	assert.True(t, last.Rate.Equal(cell.Rate))
}
