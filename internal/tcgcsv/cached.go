package tcgcsv

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pokepack/pokepack-tracker/internal/cache"
	"github.com/pokepack/pokepack-tracker/internal/metrics"
)

// Per-resource TTLs. Group listings barely change, catalogs change on
// release days, price quotes move all day.
const (
	groupsTTL   = time.Hour
	productsTTL = 30 * time.Minute
	pricesTTL   = 15 * time.Minute
)

// CachedClient wraps a Client with the shared TTL cache so repeated
// lookups within a TTL window cost no network calls.
type CachedClient struct {
	inner Client
	cache *cache.TTLCache
}

// NewCachedClient wraps inner with c.
func NewCachedClient(inner Client, c *cache.TTLCache) *CachedClient {
	return &CachedClient{inner: inner, cache: c}
}

// Groups returns the cached group listing, fetching on expiry.
func (c *CachedClient) Groups(ctx context.Context) ([]Group, error) {
	return cachedFetch(ctx, c.cache, "groups", groupsTTL, func(ctx context.Context) ([]Group, error) {
		return c.inner.Groups(ctx)
	})
}

// Products returns the cached product catalog for a group.
func (c *CachedClient) Products(ctx context.Context, groupID int) ([]Product, error) {
	key := fmt.Sprintf("products/%d", groupID)
	return cachedFetch(ctx, c.cache, key, productsTTL, func(ctx context.Context) ([]Product, error) {
		return c.inner.Products(ctx, groupID)
	})
}

// Prices returns the cached price quotes for a group.
func (c *CachedClient) Prices(ctx context.Context, groupID int) ([]PriceRow, error) {
	key := fmt.Sprintf("prices/%d", groupID)
	return cachedFetch(ctx, c.cache, key, pricesTTL, func(ctx context.Context) ([]PriceRow, error) {
		return c.inner.Prices(ctx, groupID)
	})
}

func cachedFetch[T any](
	ctx context.Context,
	c *cache.TTLCache,
	key string,
	ttl time.Duration,
	fetch func(ctx context.Context) ([]T, error),
) ([]T, error) {
	fetched := false
	payload, err := c.GetOrFetch(ctx, key, ttl, func(ctx context.Context) (json.RawMessage, error) {
		fetched = true
		metrics.CacheMissesTotal.Inc()
		rows, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		return json.Marshal(rows)
	})
	if err != nil {
		return nil, err
	}
	if !fetched {
		metrics.CacheHitsTotal.Inc()
	}

	var rows []T
	if err := json.Unmarshal(payload, &rows); err != nil {
		return nil, fmt.Errorf("decoding cached %s: %w", key, err)
	}
	return rows, nil
}
