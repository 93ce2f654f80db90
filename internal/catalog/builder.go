package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/pokepack/pokepack-tracker/internal/tcgcsv"
	domain "github.com/pokepack/pokepack-tracker/pkg/types"
)

const (
	defaultMaxSets       = 50
	defaultSetsPerCycle  = 10
	defaultFetchWorkers  = 4
	defaultReleaseDate   = "2024-01-01"
	tcgplayerProductBase = "https://www.tcgplayer.com/product"
)

// SealedProduct is a catalog row joined with its price quotes and the
// derived lowest price.
type SealedProduct struct {
	Product     tcgcsv.Product
	Rows        []tcgcsv.PriceRow
	LowestPrice float64
	LowPrice    *float64
	MidPrice    *float64
	MarketPrice *float64
}

// Builder assembles normalized Sets and Packs from the pricing source.
type Builder struct {
	client   tcgcsv.Client
	fallback *FallbackGenerator
	log      *slog.Logger

	maxSets      int
	setsPerCycle int
	fetchWorkers int
	now          func() time.Time
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) BuilderOption {
	return func(b *Builder) {
		b.log = l
	}
}

// WithMaxSets caps how many sets survive normalization.
func WithMaxSets(n int) BuilderOption {
	return func(b *Builder) {
		if n > 0 {
			b.maxSets = n
		}
	}
}

// WithSetsPerCycle bounds how many sets get product/price fetches per
// refresh. This is backpressure on outbound calls, not correctness.
func WithSetsPerCycle(n int) BuilderOption {
	return func(b *Builder) {
		b.setsPerCycle = n
	}
}

// WithFetchWorkers caps concurrent per-set fetches.
func WithFetchWorkers(n int) BuilderOption {
	return func(b *Builder) {
		b.fetchWorkers = n
	}
}

// WithClock injects a clock.
func WithClock(now func() time.Time) BuilderOption {
	return func(b *Builder) {
		b.now = now
	}
}

// NewBuilder creates a Builder over the given source client.
func NewBuilder(client tcgcsv.Client, fallback *FallbackGenerator, opts ...BuilderOption) *Builder {
	b := &Builder{
		client:       client,
		fallback:     fallback,
		log:          slog.Default(),
		maxSets:      defaultMaxSets,
		setsPerCycle: defaultSetsPerCycle,
		fetchWorkers: defaultFetchWorkers,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// ListSets fetches the group listing and normalizes it into Sets:
// promotional-only groups are dropped, the result is capped, series are
// derived from the set name, and sets are ordered newest first. Total
// source failure returns the fixed fallback list; callers never see a
// hard error here.
func (b *Builder) ListSets(ctx context.Context) []domain.Set {
	groups, err := b.client.Groups(ctx)
	if err != nil {
		b.log.Warn("group listing failed, using fallback sets", "error", err)
		return FallbackSets()
	}
	if len(groups) == 0 {
		return FallbackSets()
	}

	filtered := make([]tcgcsv.Group, 0, len(groups))
	for _, g := range groups {
		if g.Name == "" || strings.Contains(g.Name, "Promo") {
			continue
		}
		filtered = append(filtered, g)
	}
	if len(filtered) > b.maxSets {
		filtered = filtered[:b.maxSets]
	}

	sets := make([]domain.Set, 0, len(filtered))
	for _, g := range filtered {
		release := g.PublishedOn
		if release == "" {
			release = defaultReleaseDate
		}
		code := InferSetCode(g.Name)
		sets = append(sets, domain.Set{
			ID:          fmt.Sprintf("tcg-%d", g.GroupID),
			GroupID:     g.GroupID,
			Name:        g.Name,
			Series:      InferSeries(g.Name),
			ReleaseDate: release,
			Images: domain.SetImages{
				Logo:   logoURL(code),
				Symbol: symbolURL(code),
			},
		})
	}

	sort.SliceStable(sets, func(i, j int) bool {
		return sets[i].ReleaseDate > sets[j].ReleaseDate
	})

	return sets
}

// SealedProducts fetches a set's product catalog and price quotes
// concurrently, then joins them: only sealed products in the Pokémon
// category survive, and each needs at least one derivable price.
func (b *Builder) SealedProducts(ctx context.Context, set domain.Set) ([]SealedProduct, error) {
	var (
		products []tcgcsv.Product
		prices   []tcgcsv.PriceRow
		prodErr  error
		priceErr error
	)

	done := make(chan struct{})
	go func() {
		defer close(done)
		prices, priceErr = b.client.Prices(ctx, set.GroupID)
	}()
	products, prodErr = b.client.Products(ctx, set.GroupID)
	<-done

	if prodErr != nil {
		return nil, fmt.Errorf("products for group %d: %w", set.GroupID, prodErr)
	}
	if priceErr != nil {
		return nil, fmt.Errorf("prices for group %d: %w", set.GroupID, priceErr)
	}

	rowsByProduct := make(map[int][]tcgcsv.PriceRow)
	for _, row := range prices {
		rowsByProduct[row.ProductID] = append(rowsByProduct[row.ProductID], row)
	}

	var sealed []SealedProduct
	for _, p := range products {
		if p.CategoryID != tcgcsv.PokemonCategoryID || !IsSealedProduct(p.Name) {
			continue
		}

		rows := rowsByProduct[p.ProductID]
		lowest := lowestQuote(rows)
		if lowest == 0 {
			continue
		}

		sp := SealedProduct{
			Product:     p,
			Rows:        rows,
			LowestPrice: lowest,
		}
		if len(rows) > 0 {
			sp.LowPrice = nonZero(rows[0].LowPrice)
			sp.MidPrice = nonZero(rows[0].MidPrice)
			sp.MarketPrice = nonZero(rows[0].MarketPrice)
		}
		sealed = append(sealed, sp)
	}

	return sealed, nil
}

// lowestQuote returns the minimum of the present low/mid/market fields
// across all quote rows. Zero fields do not compete; an all-zero input
// yields 0, meaning no derivable price.
func lowestQuote(rows []tcgcsv.PriceRow) float64 {
	var lowest float64
	consider := func(v float64) {
		if v > 0 && (lowest == 0 || v < lowest) {
			lowest = v
		}
	}
	for _, row := range rows {
		consider(row.LowPrice)
		consider(row.MidPrice)
		consider(row.MarketPrice)
	}
	return lowest
}

func nonZero(v float64) *float64 {
	if v <= 0 {
		return nil
	}
	return &v
}

// BuildPacks fetches sealed products for a bounded prefix of sets that
// carry a source grouping key and flattens them into Pack records. An
// empty result (all sources failed or nothing sealed matched) falls
// through to the synthetic generator; live and synthetic packs are
// never mixed.
func (b *Builder) BuildPacks(ctx context.Context, sets []domain.Set) []domain.Pack {
	eligible := make([]domain.Set, 0, b.setsPerCycle)
	for _, s := range sets {
		if s.GroupID > 0 {
			eligible = append(eligible, s)
		}
		if len(eligible) == b.setsPerCycle {
			break
		}
	}

	perSet := make([][]domain.Pack, len(eligible))

	workers := b.fetchWorkers
	if workers > len(eligible) {
		workers = len(eligible)
	}

	jobs := make(chan int)
	done := make(chan struct{})

	for range workers {
		go func() {
			for i := range jobs {
				perSet[i] = b.packsForSet(ctx, eligible[i])
				done <- struct{}{}
			}
		}()
	}

	go func() {
		for i := range eligible {
			jobs <- i
		}
		close(jobs)
	}()

	for range eligible {
		<-done
	}

	var packs []domain.Pack
	for _, ps := range perSet {
		packs = append(packs, ps...)
	}

	if len(packs) == 0 {
		b.log.Warn("no live packs built, generating synthetic catalog")
		return b.fallback.Generate(sets)
	}

	return packs
}

func (b *Builder) packsForSet(ctx context.Context, set domain.Set) []domain.Pack {
	sealed, err := b.SealedProducts(ctx, set)
	if err != nil {
		b.log.Warn("sealed product fetch failed", "set", set.Name, "error", err)
		return nil
	}

	now := b.now()
	packs := make([]domain.Pack, 0, len(sealed))

	for _, sp := range sealed {
		price := bestQuote(sp)
		if price == 0 {
			continue
		}

		imageURL := sp.Product.ImageURL
		if imageURL == "" {
			imageURL = set.Images.Logo
		}

		packs = append(packs, domain.Pack{
			ID:            fmt.Sprintf("%s-%d", set.ID, sp.Product.ProductID),
			ProductID:     sp.Product.ProductID,
			Name:          sp.Product.Name,
			SetID:         set.ID,
			SetName:       set.Name,
			Series:        set.Series,
			ProductType:   InferProductType(sp.Product.Name),
			CurrentPrice:  price,
			MarketPrice:   sp.MarketPrice,
			MidPrice:      sp.MidPrice,
			LowPrice:      sp.LowPrice,
			ReleaseDate:   set.ReleaseDate,
			IsHolographic: strings.Contains(strings.ToLower(sp.Product.Name), "holo"),
			ImageURL:      imageURL,
			BuyURL:        fmt.Sprintf("%s/%d", tcgplayerProductBase, sp.Product.ProductID),
			LastUpdated:   now,
			IsRealData:    true,
		})
	}

	return packs
}

// bestQuote picks the current price: low preferred, then market, then
// mid.
func bestQuote(sp SealedProduct) float64 {
	switch {
	case sp.LowPrice != nil:
		return *sp.LowPrice
	case sp.MarketPrice != nil:
		return *sp.MarketPrice
	case sp.MidPrice != nil:
		return *sp.MidPrice
	default:
		return 0
	}
}
