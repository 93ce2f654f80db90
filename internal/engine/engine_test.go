package engine

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokepack/pokepack-tracker/internal/catalog"
	"github.com/pokepack/pokepack-tracker/internal/metrics"
	"github.com/pokepack/pokepack-tracker/internal/notify"
	"github.com/pokepack/pokepack-tracker/internal/store"
	"github.com/pokepack/pokepack-tracker/internal/tcgcsv"
	"github.com/pokepack/pokepack-tracker/pkg/logger"
	domain "github.com/pokepack/pokepack-tracker/pkg/types"
)

// fakeSource is a scripted tcgcsv.Client. Prices can vary per call so a
// test can tell which refresh produced the installed snapshot.
type fakeSource struct {
	groups   []tcgcsv.Group
	products map[int][]tcgcsv.Product
	pricesFn func(call int32, groupID int) []tcgcsv.PriceRow
	err      error

	groupGate  chan struct{} // first Groups call blocks on this when set
	groupCalls atomic.Int32
	priceCalls atomic.Int32
}

func (f *fakeSource) Groups(context.Context) ([]tcgcsv.Group, error) {
	call := f.groupCalls.Add(1)
	if call == 1 && f.groupGate != nil {
		<-f.groupGate
	}
	return f.groups, f.err
}

func (f *fakeSource) Products(_ context.Context, groupID int) ([]tcgcsv.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.products[groupID], nil
}

func (f *fakeSource) Prices(_ context.Context, groupID int) ([]tcgcsv.PriceRow, error) {
	if f.err != nil {
		return nil, f.err
	}
	call := f.priceCalls.Add(1)
	return f.pricesFn(call, groupID), nil
}

// fakeNotifier records sends and returns scripted results in order.
type fakeNotifier struct {
	mu      sync.Mutex
	results []notify.Result
	sends   []sentAlert
}

type sentAlert struct {
	PackID string
	Target float64
}

func (f *fakeNotifier) SendPriceAlert(_ context.Context, pack *domain.Pack, target float64) notify.Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sends = append(f.sends, sentAlert{PackID: pack.ID, Target: target})
	if len(f.results) == 0 {
		return notify.Result{Delivered: true}
	}
	res := f.results[0]
	f.results = f.results[1:]
	return res
}

func (f *fakeNotifier) TestWebhook(context.Context) notify.Result {
	return notify.Result{Delivered: true}
}

func (f *fakeNotifier) sendCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sends)
}

func testSource(price float64) *fakeSource {
	return &fakeSource{
		groups: []tcgcsv.Group{
			{GroupID: 1, Name: "Surging Sparks", CategoryID: 3, PublishedOn: "2024-11-08"},
		},
		products: map[int][]tcgcsv.Product{
			1: {{ProductID: 610, Name: "Surging Sparks Booster Box", CategoryID: 3, GroupID: 1}},
		},
		pricesFn: func(_ int32, _ int) []tcgcsv.PriceRow {
			return []tcgcsv.PriceRow{{ProductID: 610, LowPrice: price, MarketPrice: price + 5}}
		},
	}
}

func testEngine(src tcgcsv.Client, alerts *store.AlertStore, n notify.Notifier) *Engine {
	log := logger.Discard()
	b := catalog.NewBuilder(src, catalog.NewFallbackGenerator(), catalog.WithLogger(log))
	return NewEngine(b, alerts, n, WithLogger(log))
}

func TestRefresh_BuildsSnapshot(t *testing.T) {
	t.Parallel()

	alerts := store.NewAlertStore(store.NewMemoryKV())
	eng := testEngine(testSource(120), alerts, &fakeNotifier{})

	assert.True(t, eng.LastRefreshed().IsZero())
	require.NoError(t, eng.Refresh(context.Background()))

	packs := eng.Packs()
	require.Len(t, packs, 1)
	assert.Equal(t, "tcg-1-610", packs[0].ID)
	assert.InDelta(t, 120.0, packs[0].CurrentPrice, 0.001)
	assert.True(t, packs[0].IsRealData)
	assert.False(t, eng.LastRefreshed().IsZero())

	got, ok := eng.Pack("tcg-1-610")
	require.True(t, ok)
	assert.Equal(t, "Surging Sparks Booster Box", got.Name)

	_, ok = eng.Pack("ghost")
	assert.False(t, ok)

	sets := eng.Sets()
	require.Len(t, sets, 1)
	assert.Equal(t, "Surging Sparks", sets[0].Name)
}

func TestRefresh_SourceFailureFallsBack(t *testing.T) {
	t.Parallel()

	src := &fakeSource{err: errors.New("boom")}
	alerts := store.NewAlertStore(store.NewMemoryKV())
	eng := testEngine(src, alerts, &fakeNotifier{})

	require.NoError(t, eng.Refresh(context.Background()), "source failure is not a refresh error")

	packs := eng.Packs()
	require.NotEmpty(t, packs, "fallback guarantees a non-empty catalog")
	for i := range packs {
		assert.False(t, packs[i].IsRealData)
	}

	stats := eng.Stats()
	assert.Equal(t, len(packs), stats.TotalPacks)
	assert.False(t, stats.IsRealData)
}

func TestRefresh_NotifyOnceFiresExactlyOnce(t *testing.T) {
	t.Parallel()

	alerts := store.NewAlertStore(store.NewMemoryKV())
	notifier := &fakeNotifier{}
	eng := testEngine(testSource(120), alerts, notifier)

	ctx := context.Background()
	require.NoError(t, alerts.Upsert(ctx, domain.PriceAlert{
		PackID:      "tcg-1-610",
		PackName:    "Surging Sparks Booster Box",
		TargetPrice: 125,
		NotifyOnce:  true,
	}))

	require.NoError(t, eng.Refresh(ctx))
	require.NoError(t, eng.Refresh(ctx))

	assert.Equal(t, 1, notifier.sendCount(), "notify-once alert fires at most once")

	a, ok, err := alerts.Get(ctx, "tcg-1-610")
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, a.Triggered)
}

func TestRefresh_FailedDispatchRetriesNextCycle(t *testing.T) {
	t.Parallel()

	alerts := store.NewAlertStore(store.NewMemoryKV())
	notifier := &fakeNotifier{results: []notify.Result{
		{Delivered: false, Reason: "discord returned 502"},
		{Delivered: true},
	}}
	eng := testEngine(testSource(120), alerts, notifier)

	ctx := context.Background()
	require.NoError(t, alerts.Upsert(ctx, domain.PriceAlert{
		PackID:      "tcg-1-610",
		TargetPrice: 125,
		NotifyOnce:  true,
	}))

	require.NoError(t, eng.Refresh(ctx))

	a, _, err := alerts.Get(ctx, "tcg-1-610")
	require.NoError(t, err)
	assert.False(t, a.Triggered, "failed send must not mark the alert triggered")

	require.NoError(t, eng.Refresh(ctx))

	assert.Equal(t, 2, notifier.sendCount())
	a, _, err = alerts.Get(ctx, "tcg-1-610")
	require.NoError(t, err)
	assert.True(t, a.Triggered)
}

func TestRefresh_RepeatingAlertFiresEveryCycle(t *testing.T) {
	t.Parallel()

	alerts := store.NewAlertStore(store.NewMemoryKV())
	notifier := &fakeNotifier{}
	eng := testEngine(testSource(120), alerts, notifier)

	ctx := context.Background()
	require.NoError(t, alerts.Upsert(ctx, domain.PriceAlert{
		PackID:      "tcg-1-610",
		TargetPrice: 125,
		NotifyOnce:  false,
	}))

	require.NoError(t, eng.Refresh(ctx))
	require.NoError(t, eng.Refresh(ctx))

	assert.Equal(t, 2, notifier.sendCount())

	a, _, err := alerts.Get(ctx, "tcg-1-610")
	require.NoError(t, err)
	assert.False(t, a.Triggered, "repeating alerts are never marked triggered")
}

func TestEvaluateAlerts_SkipsAboveTargetAndMissingPacks(t *testing.T) {
	t.Parallel()

	alerts := store.NewAlertStore(store.NewMemoryKV())
	notifier := &fakeNotifier{}
	eng := testEngine(testSource(130), alerts, notifier)

	ctx := context.Background()
	require.NoError(t, alerts.Upsert(ctx, domain.PriceAlert{
		PackID:      "tcg-1-610",
		TargetPrice: 125, // current price 130, not met
	}))
	require.NoError(t, alerts.Upsert(ctx, domain.PriceAlert{
		PackID:      "tcg-9-999", // not in the snapshot
		TargetPrice: 1000,
	}))

	require.NoError(t, eng.Refresh(ctx))
	assert.Zero(t, notifier.sendCount())
}

func TestEvaluateAlerts_PriceEqualToTargetFires(t *testing.T) {
	t.Parallel()

	alerts := store.NewAlertStore(store.NewMemoryKV())
	notifier := &fakeNotifier{}
	eng := testEngine(testSource(125), alerts, notifier)

	ctx := context.Background()
	require.NoError(t, alerts.Upsert(ctx, domain.PriceAlert{
		PackID:      "tcg-1-610",
		TargetPrice: 125,
	}))

	require.NoError(t, eng.Refresh(ctx))
	require.Equal(t, 1, notifier.sendCount())
}

func getSupersededCount() float64 {
	ch := make(chan prometheus.Metric, 1)
	metrics.RefreshSupersededTotal.Collect(ch)
	m := <-ch
	pb := &dto.Metric{}
	_ = m.Write(pb)
	return pb.GetCounter().GetValue()
}

func TestRefresh_SupersededResultsDiscarded(t *testing.T) {
	t.Parallel()

	src := testSource(0)
	src.groupGate = make(chan struct{})
	// The blocked first refresh reaches Prices last, so it observes 90
	// while the newer refresh observes 100.
	src.pricesFn = func(call int32, _ int) []tcgcsv.PriceRow {
		price := 100.0
		if call > 1 {
			price = 90.0
		}
		return []tcgcsv.PriceRow{{ProductID: 610, LowPrice: price}}
	}

	alerts := store.NewAlertStore(store.NewMemoryKV())
	eng := testEngine(src, alerts, &fakeNotifier{})
	ctx := context.Background()

	before := getSupersededCount()

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = eng.Refresh(ctx) // blocks in Groups until the gate opens
	}()

	// Wait for the first refresh to reach the source.
	require.Eventually(t, func() bool {
		return src.groupCalls.Load() >= 1
	}, time.Second, time.Millisecond)

	// A newer refresh lands while the first is still in flight.
	require.NoError(t, eng.Refresh(ctx))
	close(src.groupGate)
	<-done

	packs := eng.Packs()
	require.Len(t, packs, 1)
	assert.InDelta(t, 100.0, packs[0].CurrentPrice, 0.001,
		"the superseded refresh must not overwrite the newer snapshot")
	assert.Greater(t, getSupersededCount(), before)
}

func TestStats_ClassifiesSnapshot(t *testing.T) {
	t.Parallel()

	src := &fakeSource{
		groups: []tcgcsv.Group{
			{GroupID: 1, Name: "Surging Sparks", CategoryID: 3, PublishedOn: "2024-11-08"},
		},
		products: map[int][]tcgcsv.Product{
			1: {
				{ProductID: 1, Name: "Surging Sparks Booster Box", CategoryID: 3, GroupID: 1},
				{ProductID: 2, Name: "Surging Sparks Elite Trainer Box", CategoryID: 3, GroupID: 1},
			},
		},
		pricesFn: func(_ int32, _ int) []tcgcsv.PriceRow {
			return []tcgcsv.PriceRow{
				// Booster box reference 143.64: 120 is a great deal.
				{ProductID: 1, LowPrice: 120},
				// ETB reference 49.99: 48 is within 5 percent.
				{ProductID: 2, LowPrice: 48},
			}
		},
	}

	alerts := store.NewAlertStore(store.NewMemoryKV())
	eng := testEngine(src, alerts, &fakeNotifier{})
	require.NoError(t, eng.Refresh(context.Background()))

	stats := eng.Stats()
	assert.Equal(t, 2, stats.TotalPacks)
	assert.Equal(t, 2, stats.WithPrices)
	assert.InDelta(t, 84.0, stats.AveragePrice, 0.001)
	assert.Equal(t, 1, stats.GreatDeals)
	assert.Equal(t, 1, stats.BelowReference)
	assert.True(t, stats.IsRealData)
}
