package client

import (
	"context"
	"net/url"

	domain "github.com/pokepack/pokepack-tracker/pkg/types"
)

type addWatchlistRequest struct {
	PackID string `json:"pack_id"`
}

// ListWatchlist fetches all saved watchlist items.
func (c *Client) ListWatchlist(ctx context.Context) ([]domain.WatchlistItem, error) {
	var items []domain.WatchlistItem
	if err := c.get(ctx, "/api/v1/watchlist", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// AddToWatchlist saves a pack snapshot to the watchlist.
func (c *Client) AddToWatchlist(ctx context.Context, packID string) (*domain.WatchlistItem, error) {
	var item domain.WatchlistItem
	if err := c.post(ctx, "/api/v1/watchlist", addWatchlistRequest{PackID: packID}, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// RemoveFromWatchlist deletes one watchlist item.
func (c *Client) RemoveFromWatchlist(ctx context.Context, id string) error {
	return c.del(ctx, "/api/v1/watchlist/"+url.PathEscape(id), nil)
}

// ClearWatchlist deletes all watchlist items.
func (c *Client) ClearWatchlist(ctx context.Context) error {
	return c.del(ctx, "/api/v1/watchlist", nil)
}
