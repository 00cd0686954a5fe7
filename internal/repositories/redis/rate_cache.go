// Package redis shares the exchange rate cache between processes.
package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/asset_compass/internal/core/domain"
	portsrepo "github.com/SscSPs/asset_compass/internal/core/ports/repositories"
	"github.com/SscSPs/asset_compass/internal/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/vmihailenco/msgpack/v5"
)

const keyPrefix = "asset_compass:fx:"

// wireCell is the msgpack form of a domain.RateCell.
type wireCell struct {
	Rate      string `msgpack:"r"`
	FetchedAt int64  `msgpack:"t"` // unix nanoseconds
}

// RateCache stores rate cells in Redis and mirrors them into a local cache.
// When Redis is unreachable reads are served from the local mirror.
type RateCache struct {
	client *goredis.Client
	local  portsrepo.RateCache
}

// NewRateCache wraps client. local receives every successful Store and serves reads Redis cannot.
func NewRateCache(client *goredis.Client, local portsrepo.RateCache) *RateCache {
	return &RateCache{client: client, local: local}
}

// NewClient parses a redis:// URL and checks the server answers.
func NewClient(ctx context.Context, url string) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	client := goredis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("unable to reach redis: %w", err)
	}
	return client, nil
}

var _ portsrepo.RateCache = (*RateCache)(nil)

func (c *RateCache) Load(ctx context.Context, pair domain.CurrencyPair) (domain.RateCell, bool, error) {
	raw, err := c.client.Get(ctx, key(pair)).Bytes()
	switch {
	case errors.Is(err, goredis.Nil):
		return c.local.Load(ctx, pair)
	case err != nil:
		middleware.GetLoggerFromCtx(ctx).Warn("Redis rate lookup failed, using local cache",
			slog.String("pair", pair.String()), slog.String("error", err.Error()))
		return c.local.Load(ctx, pair)
	}

	cell, err := decode(raw)
	if err != nil {
		return domain.RateCell{}, false, fmt.Errorf("corrupt rate cell for %s: %w", pair, err)
	}
	return cell, true, nil
}

// Store writes the cell locally first so a Redis outage never loses it.
func (c *RateCache) Store(ctx context.Context, pair domain.CurrencyPair, cell domain.RateCell) error {
	if err := c.local.Store(ctx, pair, cell); err != nil {
		return err
	}
	raw, err := msgpack.Marshal(wireCell{Rate: cell.Rate.String(), FetchedAt: cell.LastFetchedAt.UnixNano()})
	if err != nil {
		return fmt.Errorf("failed to encode rate cell: %w", err)
	}
	if err := c.client.Set(ctx, key(pair), raw, 0).Err(); err != nil {
		return fmt.Errorf("failed to store rate %s in redis: %w", pair, err)
	}
	return nil
}

func decode(raw []byte) (domain.RateCell, error) {
	var w wireCell
	if err := msgpack.Unmarshal(raw, &w); err != nil {
		return domain.RateCell{}, err
	}
	rate, err := decimal.NewFromString(w.Rate)
	if err != nil {
		return domain.RateCell{}, err
	}
	return domain.RateCell{Rate: rate, LastFetchedAt: time.Unix(0, w.FetchedAt).UTC()}, nil
}

func key(pair domain.CurrencyPair) string {
	return keyPrefix + pair.String()
}
