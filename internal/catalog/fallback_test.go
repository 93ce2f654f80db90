package catalog

import (
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokepack/pokepack-tracker/pkg/pricing"
	domain "github.com/pokepack/pokepack-tracker/pkg/types"
)

func TestFallbackSets_FixedList(t *testing.T) {
	t.Parallel()

	sets := FallbackSets()
	require.Len(t, sets, 15)
	assert.Equal(t, "sv8", sets[0].ID)
	assert.Equal(t, "https://images.pokemontcg.io/sv8/logo.png", sets[0].Images.Logo)

	// Mutating the returned slice must not leak into the next call.
	sets[0].Name = "clobbered"
	assert.Equal(t, "Surging Sparks", FallbackSets()[0].Name)
}

func TestFallbackGenerate_ShapeAndBounds(t *testing.T) {
	t.Parallel()

	now := time.Unix(1700000000, 0)
	g := NewFallbackGenerator(
		WithFallbackRand(rand.New(rand.NewPCG(42, 7))),
		WithFallbackClock(func() time.Time { return now }),
	)

	sets := FallbackSets()
	packs := g.Generate(sets)
	require.NotEmpty(t, packs)

	perSet := map[string]int{}
	for _, p := range packs {
		perSet[p.SetID]++

		assert.False(t, p.IsRealData)
		assert.Equal(t, now, p.LastUpdated)
		assert.NotEmpty(t, p.Name)

		msrp := pricing.MSRP(p.ProductType)
		require.Positive(t, msrp)
		ratio := p.CurrentPrice / msrp
		assert.GreaterOrEqual(t, ratio, 0.70-0.005, "price below multiplier floor: %s", p.ID)
		assert.LessOrEqual(t, ratio, 1.20+0.005, "price above multiplier ceiling: %s", p.ID)

		// Rounded to cents.
		cents := p.CurrentPrice * 100
		assert.InDelta(t, math.Round(cents), cents, 1e-9)
	}

	assert.Len(t, perSet, 15)
	for setID, count := range perSet {
		assert.GreaterOrEqual(t, count, 4, "set %s", setID)
		assert.LessOrEqual(t, count, 7, "set %s", setID)
	}
}

func TestFallbackGenerate_BoundsSetPrefix(t *testing.T) {
	t.Parallel()

	g := testGenerator()

	sets := make([]domain.Set, 0, 30)
	for range 2 {
		sets = append(sets, FallbackSets()...)
	}

	packs := g.Generate(sets)
	seen := map[string]bool{}
	for _, p := range packs {
		seen[p.SetID] = true
	}
	assert.LessOrEqual(t, len(seen), fallbackSetLimit)
}

func TestFallbackGenerate_Deterministic(t *testing.T) {
	t.Parallel()

	mk := func() []domain.Pack {
		g := NewFallbackGenerator(
			WithFallbackRand(rand.New(rand.NewPCG(9, 9))),
			WithFallbackClock(func() time.Time { return time.Unix(0, 0) }),
		)
		return g.Generate(FallbackSets())
	}

	assert.Equal(t, mk(), mk())
}
