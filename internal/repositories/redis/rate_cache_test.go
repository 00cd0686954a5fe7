package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/asset_compass/internal/core/domain"
	"github.com/SscSPs/asset_compass/internal/repositories/memory"
	"github.com/SscSPs/asset_compass/internal/repositories/redis"
	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCache(t *testing.T) (*redis.RateCache, *miniredis.Miniredis, *memory.RateCache) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	local := memory.NewRateCache()
	return redis.NewRateCache(client, local), srv, local
}

func TestRateCache_StoreAndLoad(t *testing.T) {
	ctx := context.Background()
	cache, srv, _ := newCache(t)
	pair := domain.USDTo("ZAR")
	fetched := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	_, ok, err := cache.Load(ctx, pair)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.Store(ctx, pair, domain.RateCell{Rate: decimal.RequireFromString("18.5"), LastFetchedAt: fetched}))
	assert.True(t, srv.Exists("asset_compass:fx:USD/ZAR"))

	cell, ok, err := cache.Load(ctx, pair)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, decimal.RequireFromString("18.50").Equal(cell.Rate))
	assert.True(t, fetched.Equal(cell.LastFetchedAt))
}

func TestRateCache_SharedBetweenInstances(t *testing.T) {
	ctx := context.Background()
	srv := miniredis.RunT(t)
	clientA := goredis.NewClient(&goredis.Options{Addr: srv.Addr()})
	clientB := goredis.NewClient(&goredis.Options{Addr: srv.Addr()})
	defer clientA.Close()
	defer clientB.Close()

	a := redis.NewRateCache(clientA, memory.NewRateCache())
	b := redis.NewRateCache(clientB, memory.NewRateCache())
	pair := domain.USDTo("EUR")

	require.NoError(t, a.Store(ctx, pair, domain.RateCell{Rate: decimal.RequireFromString("0.9150"), LastFetchedAt: time.Now()}))

	cell, ok, err := b.Load(ctx, pair)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "0.915", cell.Rate.String())
}

func TestRateCache_FallsBackToLocalWhenRedisIsDown(t *testing.T) {
	ctx := context.Background()
	cache, srv, local := newCache(t)
	pair := domain.USDTo("GBP")

	require.NoError(t, cache.Store(ctx, pair, domain.RateCell{Rate: decimal.RequireFromString("0.79"), LastFetchedAt: time.Now()}))
	srv.Close()

	cell, ok, err := cache.Load(ctx, pair)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "0.79", cell.Rate.String())

	// Stores still reach the local mirror before failing on Redis.
	err = cache.Store(ctx, pair, domain.RateCell{Rate: decimal.RequireFromString("0.80"), LastFetchedAt: time.Now()})
	assert.Error(t, err)
	localCell, ok, _ := local.Load(ctx, pair)
	require.True(t, ok)
	assert.Equal(t, "0.8", localCell.Rate.String())
}

func TestRateCache_CorruptValue(t *testing.T) {
	ctx := context.Background()
	cache, srv, _ := newCache(t)
	require.NoError(t, srv.Set("asset_compass:fx:USD/JPY", "not msgpack"))

	_, ok, err := cache.Load(ctx, domain.USDTo("JPY"))
	assert.Error(t, err)
	assert.False(t, ok)
}
