// Package pricing holds the reference-price table and the price-status
// classifier used to grade current prices against MSRP.
package pricing

import (
	domain "github.com/pokepack/pokepack-tracker/pkg/types"
)

// ReferencePrice pairs a display name with the manufacturer-suggested
// retail price for one product type.
type ReferencePrice struct {
	Name string
	MSRP float64
}

// referencePrices is the static MSRP table (Scarlet & Violet era
// pricing). Read-only, process-wide.
var referencePrices = map[domain.ProductType]ReferencePrice{
	domain.ProductBoosterPack:        {Name: "Booster Pack", MSRP: 4.49},
	domain.ProductBoosterBox:         {Name: "Booster Box (36 packs)", MSRP: 143.64},
	domain.ProductETB:                {Name: "Elite Trainer Box", MSRP: 49.99},
	domain.ProductBlister3Pack:       {Name: "3-Pack Blister", MSRP: 14.99},
	domain.ProductBlister1Pack:       {Name: "Single Blister", MSRP: 5.99},
	domain.ProductCollectionBox:      {Name: "Collection Box", MSRP: 24.99},
	domain.ProductPremiumCollection:  {Name: "Premium Collection", MSRP: 49.99},
	domain.ProductUltraPremium:       {Name: "Ultra Premium Collection", MSRP: 119.99},
	domain.ProductBoosterBundle:      {Name: "Booster Bundle (6 packs)", MSRP: 24.99},
	domain.ProductBuildBattleStadium: {Name: "Build & Battle Stadium", MSRP: 44.99},
	domain.ProductPosterCollection:   {Name: "Poster Collection", MSRP: 29.99},
	domain.ProductSpecialCollection:  {Name: "Special Collection", MSRP: 39.99},
}

// Reference returns the reference price entry for a product type. The
// second return is false for unrecognized types.
func Reference(pt domain.ProductType) (ReferencePrice, bool) {
	ref, ok := referencePrices[pt]
	return ref, ok
}

// MSRP returns the reference MSRP for a product type, or 0 when the type
// is unknown.
func MSRP(pt domain.ProductType) float64 {
	return referencePrices[pt].MSRP
}

// DisplayName returns the human-readable name for a product type,
// falling back to the raw type string.
func DisplayName(pt domain.ProductType) string {
	if ref, ok := referencePrices[pt]; ok {
		return ref.Name
	}
	return string(pt)
}

// ProductTypes returns all product types with a reference price, in no
// particular order.
func ProductTypes() []domain.ProductType {
	types := make([]domain.ProductType, 0, len(referencePrices))
	for pt := range referencePrices {
		types = append(types, pt)
	}
	return types
}
