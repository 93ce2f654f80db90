package pricing

import (
	domain "github.com/pokepack/pokepack-tracker/pkg/types"
)

// Classify buckets a current price against a reference price. A missing
// (zero or negative) current or reference price yields StatusUnknown.
//
// Thresholds are evaluated in order with inclusive upper bounds, so a
// diff of exactly -15% is a great deal while -14.999% is merely below
// reference. Callers depend on this boundary being reproducible.
func Classify(current, reference float64) domain.PriceStatus {
	if current <= 0 || reference <= 0 {
		return domain.StatusUnknown
	}

	diffPct := (current - reference) / reference * 100

	switch {
	case diffPct <= -15:
		return domain.StatusGreatDeal
	case diffPct <= -5:
		return domain.StatusBelowReference
	case diffPct <= 5:
		return domain.StatusAtReference
	case diffPct <= 15:
		return domain.StatusAboveReference
	default:
		return domain.StatusOverpriced
	}
}

// ClassifyPack grades a pack against the reference price for its product
// type.
func ClassifyPack(p *domain.Pack) domain.PriceStatus {
	return Classify(p.CurrentPrice, MSRP(p.ProductType))
}

// DiffPct returns the percentage difference between current and
// reference, or 0 when either is missing.
func DiffPct(current, reference float64) float64 {
	if current <= 0 || reference <= 0 {
		return 0
	}
	return (current - reference) / reference * 100
}
