package client

import (
	"context"
	"net/url"
	"time"

	domain "github.com/pokepack/pokepack-tracker/pkg/types"
)

// PackView mirrors the API's annotated pack representation.
type PackView struct {
	domain.Pack
	ReferencePrice float64            `json:"reference_price"`
	PriceStatus    domain.PriceStatus `json:"price_status"`
	DiffPct        float64            `json:"diff_pct"`
}

// PacksResponse is the list-packs response body.
type PacksResponse struct {
	Packs      []PackView `json:"packs"`
	Total      int        `json:"total"`
	IsRealData bool       `json:"is_real_data"`
}

// SetsResponse is the list-sets response body.
type SetsResponse struct {
	Sets  []domain.Set `json:"sets"`
	Total int          `json:"total"`
}

// StatsResponse is the catalog stats response body.
type StatsResponse struct {
	domain.CatalogStats
	LastRefreshed *time.Time `json:"last_refreshed,omitempty"`
}

// ListPacksParams are the optional filters for ListPacks.
type ListPacksParams struct {
	Set         string
	Series      string
	ProductType string
	PriceStatus string
	Query       string
}

// ListPacks fetches the current pack snapshot with optional filters.
func (c *Client) ListPacks(ctx context.Context, params *ListPacksParams) (*PacksResponse, error) {
	path := "/api/v1/packs"
	if params != nil {
		q := url.Values{}
		if params.Set != "" {
			q.Set("set", params.Set)
		}
		if params.Series != "" {
			q.Set("series", params.Series)
		}
		if params.ProductType != "" {
			q.Set("product_type", params.ProductType)
		}
		if params.PriceStatus != "" {
			q.Set("price_status", params.PriceStatus)
		}
		if params.Query != "" {
			q.Set("q", params.Query)
		}
		if encoded := q.Encode(); encoded != "" {
			path += "?" + encoded
		}
	}

	var resp PacksResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetPack fetches a single pack by ID.
func (c *Client) GetPack(ctx context.Context, id string) (*PackView, error) {
	var view PackView
	if err := c.get(ctx, "/api/v1/packs/"+url.PathEscape(id), &view); err != nil {
		return nil, err
	}
	return &view, nil
}

// ListSets fetches the sets in the current snapshot.
func (c *Client) ListSets(ctx context.Context) (*SetsResponse, error) {
	var resp SetsResponse
	if err := c.get(ctx, "/api/v1/sets", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetStats fetches the catalog summary.
func (c *Client) GetStats(ctx context.Context) (*StatsResponse, error) {
	var resp StatsResponse
	if err := c.get(ctx, "/api/v1/stats", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Refresh triggers an immediate catalog refresh.
func (c *Client) Refresh(ctx context.Context) error {
	return c.post(ctx, "/api/v1/refresh", nil, nil)
}
