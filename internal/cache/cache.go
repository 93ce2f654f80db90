// Package cache provides a time-bounded memoization layer for remote
// lookups, keyed by logical resource name. Callers choose the TTL per
// resource class; the cache itself is TTL-parametric.
package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

// FetchFunc loads the payload for a key on a cache miss.
type FetchFunc func(ctx context.Context) (json.RawMessage, error)

// Entry is one cached payload with its freshness metadata.
type Entry struct {
	Payload   json.RawMessage
	FetchedAt time.Time
	TTL       time.Duration
}

// TTLCache memoizes fetch results until their TTL elapses. Concurrent
// callers that miss on the same key share a single in-flight fetch, so
// a burst of lookups costs at most one upstream call per key.
type TTLCache struct {
	now func() time.Time

	mu       sync.Mutex
	entries  map[string]Entry
	inflight map[string]*call
}

type call struct {
	done    chan struct{}
	payload json.RawMessage
	err     error
}

// Option configures a TTLCache.
type Option func(*TTLCache)

// WithClock injects a clock, used by tests to control expiry.
func WithClock(now func() time.Time) Option {
	return func(c *TTLCache) {
		c.now = now
	}
}

// New creates an empty TTLCache.
func New(opts ...Option) *TTLCache {
	c := &TTLCache{
		now:      time.Now,
		entries:  make(map[string]Entry),
		inflight: make(map[string]*call),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetOrFetch returns the cached payload for key if it is younger than
// ttl, otherwise runs fetch. A successful fetch is stored with
// FetchedAt set to now; a failed fetch stores nothing, so the next call
// attempts a real fetch again.
func (c *TTLCache) GetOrFetch(
	ctx context.Context,
	key string,
	ttl time.Duration,
	fetch FetchFunc,
) (json.RawMessage, error) {
	c.mu.Lock()

	if e, ok := c.entries[key]; ok && c.now().Sub(e.FetchedAt) < e.TTL {
		c.mu.Unlock()
		return e.Payload, nil
	}

	// Join an in-flight fetch for the same key if one exists.
	if fl, ok := c.inflight[key]; ok {
		c.mu.Unlock()
		select {
		case <-fl.done:
			return fl.payload, fl.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	fl := &call{done: make(chan struct{})}
	c.inflight[key] = fl
	c.mu.Unlock()

	payload, err := fetch(ctx)

	c.mu.Lock()
	delete(c.inflight, key)
	if err == nil {
		c.entries[key] = Entry{
			Payload:   payload,
			FetchedAt: c.now(),
			TTL:       ttl,
		}
	}
	c.mu.Unlock()

	fl.payload = payload
	fl.err = err
	close(fl.done)

	return payload, err
}

// Invalidate drops a single key.
func (c *TTLCache) Invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// Clear drops every cached entry.
func (c *TTLCache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]Entry)
	c.mu.Unlock()
}

// Len reports the number of stored entries, expired or not.
func (c *TTLCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
