// Package domain defines the core business types for pokepack-tracker.
package domain

import (
	"time"
)

// ProductType represents the category of sealed product.
type ProductType string

// Product type constants. These mirror the TCGPlayer sealed-product
// taxonomy the keyword classifier maps names into.
const (
	ProductBoosterPack        ProductType = "booster-pack"
	ProductBoosterBox         ProductType = "booster-box"
	ProductETB                ProductType = "etb"
	ProductBlister3Pack       ProductType = "blister-3pack"
	ProductBlister1Pack       ProductType = "blister-1pack"
	ProductCollectionBox      ProductType = "collection-box"
	ProductPremiumCollection  ProductType = "premium-collection"
	ProductUltraPremium       ProductType = "ultra-premium"
	ProductBoosterBundle      ProductType = "booster-bundle"
	ProductBuildBattleStadium ProductType = "build-battle-stadium"
	ProductPosterCollection   ProductType = "poster-collection"
	ProductSpecialCollection  ProductType = "special-collection"
)

// PriceStatus buckets a current price relative to its reference price.
type PriceStatus string

// Price status constants.
const (
	StatusGreatDeal      PriceStatus = "great-deal"
	StatusBelowReference PriceStatus = "below-reference"
	StatusAtReference    PriceStatus = "at-reference"
	StatusAboveReference PriceStatus = "above-reference"
	StatusOverpriced     PriceStatus = "overpriced"
	StatusUnknown        PriceStatus = "unknown"
)

// SetImages holds the image asset URLs for a set.
type SetImages struct {
	Logo   string `json:"logo,omitempty"`
	Symbol string `json:"symbol,omitempty"`
}

// Set represents a released card-set grouping. Sets are immutable once
// loaded for a session and replaced wholesale on refresh.
type Set struct {
	ID          string    `json:"id"`
	GroupID     int       `json:"group_id,omitempty"`
	Name        string    `json:"name"`
	Series      string    `json:"series"`
	ReleaseDate string    `json:"release_date"`
	Total       int       `json:"total"`
	Images      SetImages `json:"images"`
}

// Pack represents a sealed, purchasable product tied to a set. Packs are
// recreated in full on every refresh cycle and never mutated in place.
type Pack struct {
	ID        string `json:"id"`
	ProductID int    `json:"product_id,omitempty"`
	Name      string `json:"name"`

	SetID   string `json:"set_id"`
	SetName string `json:"set_name"`
	Series  string `json:"series"`

	ProductType ProductType `json:"product_type"`

	CurrentPrice float64  `json:"current_price"`
	MarketPrice  *float64 `json:"market_price,omitempty"`
	MidPrice     *float64 `json:"mid_price,omitempty"`
	LowPrice     *float64 `json:"low_price,omitempty"`

	ReleaseDate   string    `json:"release_date"`
	IsHolographic bool      `json:"is_holographic"`
	ImageURL      string    `json:"image_url,omitempty"`
	BuyURL        string    `json:"buy_url,omitempty"`
	LastUpdated   time.Time `json:"last_updated"`

	// IsRealData distinguishes live-sourced packs from synthetic
	// fallback records. A refresh never mixes the two.
	IsRealData bool `json:"is_real_data"`
}

// PriceAlert is a user-defined target-price alert for one pack. At most
// one alert exists per PackID; the evaluator only ever flips Triggered.
type PriceAlert struct {
	PackID      string      `json:"pack_id"`
	PackName    string      `json:"pack_name"`
	SetName     string      `json:"set_name"`
	ProductType ProductType `json:"product_type"`
	TargetPrice float64     `json:"target_price"`
	NotifyOnce  bool        `json:"notify_once"`
	CreatedAt   time.Time   `json:"created_at"`
	Triggered   bool        `json:"triggered"`
}

// WatchlistItem is a denormalized snapshot of a Pack taken when the user
// saved it. It is not kept in sync with live pricing.
type WatchlistItem struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	SetName      string      `json:"set_name"`
	ProductType  ProductType `json:"product_type"`
	CurrentPrice float64     `json:"current_price"`
	ImageURL     string      `json:"image_url,omitempty"`
	SavedAt      time.Time   `json:"saved_at"`
}

// SnapshotFromPack builds a WatchlistItem from the pack's current state.
func SnapshotFromPack(p *Pack, now time.Time) WatchlistItem {
	return WatchlistItem{
		ID:           p.ID,
		Name:         p.Name,
		SetName:      p.SetName,
		ProductType:  p.ProductType,
		CurrentPrice: p.CurrentPrice,
		ImageURL:     p.ImageURL,
		SavedAt:      now,
	}
}

// CatalogStats summarizes the current pack snapshot.
type CatalogStats struct {
	TotalPacks     int     `json:"total_packs"`
	WithPrices     int     `json:"with_prices"`
	AveragePrice   float64 `json:"average_price"`
	BelowReference int     `json:"below_reference"`
	GreatDeals     int     `json:"great_deals"`
	IsRealData     bool    `json:"is_real_data"`
}
