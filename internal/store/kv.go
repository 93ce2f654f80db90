// Package store provides the persistence layer: an opaque key-value
// abstraction plus the alert, watchlist, and settings stores built on
// top of it. Business logic depends on the KV interface, never on a
// concrete backend, so tests run against the in-memory implementation.
package store

import (
	"context"
)

// Logical keys. The KV layer addresses everything by these fixed names.
const (
	KeyAlerts     = "alerts"
	KeyWatchlist  = "watchlist"
	KeyWebhookURL = "webhook_url"
)

// KV is an opaque key-value store of JSON-serializable values.
// Last-write-wins; no transactional guarantees.
type KV interface {
	// Get returns the stored value for key, with ok=false when absent.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
}
