package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	domain "github.com/pokepack/pokepack-tracker/pkg/types"
)

// WatchlistStore persists saved pack snapshots. Items are denormalized
// at save time and never re-synced with live pricing.
type WatchlistStore struct {
	kv KV
	mu sync.Mutex
}

// NewWatchlistStore creates a WatchlistStore over kv.
func NewWatchlistStore(kv KV) *WatchlistStore {
	return &WatchlistStore{kv: kv}
}

// List returns all saved items.
func (s *WatchlistStore) List(ctx context.Context) ([]domain.WatchlistItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// Add saves an item; adding an already-saved pack replaces its
// snapshot.
func (s *WatchlistStore) Add(ctx context.Context, item domain.WatchlistItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range items {
		if items[i].ID == item.ID {
			items[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		items = append(items, item)
	}

	return s.save(ctx, items)
}

// Remove deletes the item with the given pack ID.
func (s *WatchlistStore) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load(ctx)
	if err != nil {
		return err
	}

	kept := items[:0]
	for _, it := range items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}

	return s.save(ctx, kept)
}

// Clear removes every saved item.
func (s *WatchlistStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx, nil)
}

func (s *WatchlistStore) load(ctx context.Context) ([]domain.WatchlistItem, error) {
	raw, ok, err := s.kv.Get(ctx, KeyWatchlist)
	if err != nil {
		return nil, fmt.Errorf("loading watchlist: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var items []domain.WatchlistItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decoding watchlist: %w", err)
	}
	return items, nil
}

func (s *WatchlistStore) save(ctx context.Context, items []domain.WatchlistItem) error {
	if items == nil {
		items = []domain.WatchlistItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encoding watchlist: %w", err)
	}
	if err := s.kv.Set(ctx, KeyWatchlist, raw); err != nil {
		return fmt.Errorf("saving watchlist: %w", err)
	}
	return nil
}
