// Package catalog turns raw source groups, products, and price rows
// into normalized Set and Pack records, with a synthetic fallback when
// the source yields nothing usable.
package catalog

import (
	"strings"

	domain "github.com/pokepack/pokepack-tracker/pkg/types"
)

// sealedKeywords marks a product as sealed when its name contains any
// of these, case-insensitively.
var sealedKeywords = []string{
	"booster box", "booster pack", "elite trainer box", "etb",
	"collection box", "blister", "bundle", "premium collection",
	"ultra premium", "build & battle", "build and battle",
	"sleeved booster", "check lane", "poster box", "special collection",
}

// typeKeywords maps product names to product types. Order matters:
// the first matching group wins, so the more specific entries come
// first. Ambiguous names can still misclassify; that is an accepted
// limitation of name-based inference, not something to paper over.
var typeKeywords = []struct {
	Type     domain.ProductType
	Keywords []string
}{
	{domain.ProductBoosterBox, []string{"booster box", "36 pack", "36-pack"}},
	{domain.ProductETB, []string{"elite trainer box", "etb"}},
	{domain.ProductBoosterPack, []string{"booster pack", "sleeved booster"}},
	{domain.ProductBlister3Pack, []string{"3 pack blister", "3-pack blister", "check lane"}},
	{domain.ProductCollectionBox, []string{"collection box", "ex box", "v box"}},
	{domain.ProductPremiumCollection, []string{"premium collection"}},
	{domain.ProductUltraPremium, []string{"ultra premium", "ultra-premium"}},
	{domain.ProductBoosterBundle, []string{"booster bundle", "6 pack"}},
	{domain.ProductBuildBattleStadium, []string{"build & battle", "build and battle"}},
	{domain.ProductPosterCollection, []string{"poster collection", "poster box"}},
	{domain.ProductSpecialCollection, []string{"special collection"}},
	{domain.ProductBlister1Pack, []string{"1 pack blister", "single blister"}},
}

// IsSealedProduct reports whether a product name looks like a sealed
// product rather than an individual card.
func IsSealedProduct(name string) bool {
	lower := strings.ToLower(name)
	for _, kw := range sealedKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// InferProductType maps a product name to a product type via the
// ordered keyword table. Unmatched names land in the default
// collection-box bucket.
func InferProductType(name string) domain.ProductType {
	lower := strings.ToLower(name)
	for _, entry := range typeKeywords {
		for _, kw := range entry.Keywords {
			if strings.Contains(lower, kw) {
				return entry.Type
			}
		}
	}
	return domain.ProductCollectionBox
}
