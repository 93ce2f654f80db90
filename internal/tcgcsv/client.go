// Package tcgcsv provides a client for the tcgcsv.com TCGPlayer data
// exports, abstracted behind an interface for testability.
package tcgcsv

import (
	"context"
	"errors"
)

// PokemonCategoryID is the TCGPlayer category for Pokémon products.
const PokemonCategoryID = 3

// ErrSourceUnavailable wraps any transport, HTTP, or decode failure from
// the pricing source. Callers recover by falling back to synthetic data.
var ErrSourceUnavailable = errors.New("pricing source unavailable")

// Group is one raw set/group row from the source.
type Group struct {
	GroupID     int    `json:"groupId"`
	Name        string `json:"name"`
	CategoryID  int    `json:"categoryId"`
	PublishedOn string `json:"publishedOn"`
}

// Product is one raw catalog row for a group.
type Product struct {
	ProductID  int    `json:"productId"`
	Name       string `json:"name"`
	CategoryID int    `json:"categoryId"`
	GroupID    int    `json:"groupId"`
	ImageURL   string `json:"imageUrl"`
	URL        string `json:"url"`
}

// PriceRow is one source-provided price observation for a product.
// Missing variants come through as zero.
type PriceRow struct {
	ProductID   int     `json:"productId"`
	LowPrice    float64 `json:"lowPrice"`
	MidPrice    float64 `json:"midPrice"`
	MarketPrice float64 `json:"marketPrice"`
	SubTypeName string  `json:"subTypeName"`
}

// Client defines the three read-only resource classes the pricing
// source exposes.
type Client interface {
	Groups(ctx context.Context) ([]Group, error)
	Products(ctx context.Context, groupID int) ([]Product, error)
	Prices(ctx context.Context, groupID int) ([]PriceRow, error)
}
