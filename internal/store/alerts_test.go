package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokepack/pokepack-tracker/internal/store"
	domain "github.com/pokepack/pokepack-tracker/pkg/types"
)

func testAlert(packID string, target float64) domain.PriceAlert {
	return domain.PriceAlert{
		PackID:      packID,
		PackName:    "Surging Sparks Booster Box",
		SetName:     "Surging Sparks",
		ProductType: domain.ProductBoosterBox,
		TargetPrice: target,
		NotifyOnce:  true,
		CreatedAt:   time.Unix(1700000000, 0).UTC(),
	}
}

func TestAlertStore_UpsertReplacesByPackID(t *testing.T) {
	t.Parallel()

	s := store.NewAlertStore(store.NewMemoryKV())
	ctx := context.Background()

	require.NoError(t, s.Upsert(ctx, testAlert("p1", 120)))
	require.NoError(t, s.Upsert(ctx, testAlert("p2", 45)))

	// Same pack, new target: must replace, not append.
	updated := testAlert("p1", 110)
	updated.NotifyOnce = false
	require.NoError(t, s.Upsert(ctx, updated))

	alerts, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, alerts, 2)

	var p1 []domain.PriceAlert
	for _, a := range alerts {
		if a.PackID == "p1" {
			p1 = append(p1, a)
		}
	}
	require.Len(t, p1, 1, "at most one alert per pack")
	assert.InDelta(t, 110.0, p1[0].TargetPrice, 0.001)
	assert.False(t, p1[0].NotifyOnce)
}

func TestAlertStore_Remove(t *testing.T) {
	t.Parallel()

	s := store.NewAlertStore(store.NewMemoryKV())
	ctx := context.Background()

	require.NoError(t, s.Upsert(ctx, testAlert("p1", 120)))
	require.NoError(t, s.Upsert(ctx, testAlert("p2", 45)))
	require.NoError(t, s.Remove(ctx, "p1"))

	alerts, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "p2", alerts[0].PackID)

	// Removing a missing pack is a no-op.
	require.NoError(t, s.Remove(ctx, "ghost"))
}

func TestAlertStore_MarkTriggered(t *testing.T) {
	t.Parallel()

	s := store.NewAlertStore(store.NewMemoryKV())
	ctx := context.Background()

	require.NoError(t, s.Upsert(ctx, testAlert("p1", 120)))
	require.NoError(t, s.MarkTriggered(ctx, "p1"))

	a, ok, err := s.Get(ctx, "p1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, a.Triggered)

	// Idempotent, and missing packs are fine.
	require.NoError(t, s.MarkTriggered(ctx, "p1"))
	require.NoError(t, s.MarkTriggered(ctx, "ghost"))
}

func TestAlertStore_EmptyList(t *testing.T) {
	t.Parallel()

	s := store.NewAlertStore(store.NewMemoryKV())
	alerts, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, alerts)
}

func TestWatchlistStore_AddRemoveClear(t *testing.T) {
	t.Parallel()

	s := store.NewWatchlistStore(store.NewMemoryKV())
	ctx := context.Background()

	item := domain.WatchlistItem{ID: "p1", Name: "Booster Box", CurrentPrice: 120}
	require.NoError(t, s.Add(ctx, item))

	// Re-adding replaces the snapshot.
	item.CurrentPrice = 115
	require.NoError(t, s.Add(ctx, item))

	items, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.InDelta(t, 115.0, items[0].CurrentPrice, 0.001)

	require.NoError(t, s.Remove(ctx, "p1"))
	items, err = s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	require.NoError(t, s.Add(ctx, domain.WatchlistItem{ID: "a"}))
	require.NoError(t, s.Add(ctx, domain.WatchlistItem{ID: "b"}))
	require.NoError(t, s.Clear(ctx))
	items, err = s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSettingsStore_WebhookURL(t *testing.T) {
	t.Parallel()

	s := store.NewSettingsStore(store.NewMemoryKV())
	ctx := context.Background()

	url, err := s.WebhookURL(ctx)
	require.NoError(t, err)
	assert.Empty(t, url, "unset endpoint reads as empty")

	require.NoError(t, s.SetWebhookURL(ctx, "https://discord.com/api/webhooks/1/abc"))
	url, err = s.WebhookURL(ctx)
	require.NoError(t, err)
	assert.Equal(t, "https://discord.com/api/webhooks/1/abc", url)
}
