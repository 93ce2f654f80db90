package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	domain "github.com/pokepack/pokepack-tracker/pkg/types"
)

func TestIsSealedProduct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		product string
		want    bool
	}{
		{name: "booster box", product: "Surging Sparks Booster Box", want: true},
		{name: "case insensitive", product: "SURGING SPARKS ELITE TRAINER BOX", want: true},
		{name: "etb abbreviation", product: "Paldea Evolved ETB Exclusive", want: true},
		{name: "blister", product: "Stellar Crown 3 Pack Blister [Duraludon]", want: true},
		{name: "sleeved booster", product: "151 Sleeved Booster Pack", want: true},
		{name: "check lane", product: "Obsidian Flames Check Lane Blister", want: true},
		{name: "single card", product: "Pikachu ex 238/191", want: false},
		{name: "theme deck", product: "Battle Deck Display", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsSealedProduct(tt.product))
		})
	}
}

func TestInferProductType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		product string
		want    domain.ProductType
	}{
		{name: "booster box", product: "Surging Sparks Booster Box", want: domain.ProductBoosterBox},
		{name: "36 pack counts as box", product: "Paradox Rift 36 Pack Display", want: domain.ProductBoosterBox},
		{name: "etb", product: "Stellar Crown Elite Trainer Box", want: domain.ProductETB},
		{name: "sleeved booster is a pack", product: "151 Sleeved Booster Pack", want: domain.ProductBoosterPack},
		{name: "three pack blister", product: "Temporal Forces 3 Pack Blister", want: domain.ProductBlister3Pack},
		{name: "ex box", product: "Charizard ex Box", want: domain.ProductCollectionBox},
		{name: "premium collection", product: "Paldean Fates Premium Collection", want: domain.ProductPremiumCollection},
		{name: "ultra premium", product: "Crown Zenith Ultra Premium Collection", want: domain.ProductUltraPremium},
		{name: "bundle", product: "Shrouded Fable Booster Bundle", want: domain.ProductBoosterBundle},
		{name: "build and battle", product: "Twilight Masquerade Build & Battle Stadium", want: domain.ProductBuildBattleStadium},
		{name: "poster collection", product: "151 Poster Collection", want: domain.ProductPosterCollection},
		{name: "special collection", product: "Greninja ex Special Collection", want: domain.ProductSpecialCollection},
		{name: "unmatched defaults to collection box", product: "Mystery Sealed Case", want: domain.ProductCollectionBox},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, InferProductType(tt.product))
		})
	}
}

// A name matching several groups resolves to the earliest table entry.
func TestInferProductType_FirstMatchWins(t *testing.T) {
	t.Parallel()

	// "Elite Trainer Box" also contains no booster keywords, but a
	// hypothetical "Booster Box Elite Trainer Box" combo must resolve
	// to booster-box because that entry comes first.
	assert.Equal(t, domain.ProductBoosterBox, InferProductType("Booster Box + Elite Trainer Box Combo"))
}

func TestInferSeries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		setName string
		want    string
	}{
		{setName: "Surging Sparks", want: "Scarlet & Violet"},
		{setName: "Paldea Evolved", want: "Scarlet & Violet"},
		{setName: "151", want: "Scarlet & Violet"},
		{setName: "Crown Zenith", want: "Sword & Shield"},
		{setName: "Astral Radiance", want: "Sword & Shield"},
		{setName: "Sun & Moon Base", want: "Sun & Moon"},
		{setName: "XY Evolutions", want: "XY"},
		{setName: "Base Set 2", want: "Other"},
	}

	for _, tt := range tests {
		t.Run(tt.setName, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, InferSeries(tt.setName))
		})
	}
}

func TestInferSetCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "sv8", InferSetCode("Surging Sparks"))
	assert.Equal(t, "sv3pt5", InferSetCode("Pokemon 151"))
	assert.Equal(t, "sv1", InferSetCode("Some Future Set"), "unknown names fall back to sv1")
}
