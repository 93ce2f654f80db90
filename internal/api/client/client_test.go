package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/pokepack/pokepack-tracker/pkg/types"
)

func TestClient_ConnectionRefused(t *testing.T) {
	t.Parallel()

	c := New("http://127.0.0.1:1") // nothing listening
	_, err := c.ListAlerts(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API server not running")
}

func TestClient_HTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.ListAlerts(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API error (HTTP 500)")
}

func TestClient_ListPacks(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/packs", r.URL.Path)
		assert.Equal(t, "booster-box", r.URL.Query().Get("product_type"))
		assert.Equal(t, "great-deal", r.URL.Query().Get("price_status"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(PacksResponse{
			Packs: []PackView{{
				Pack:           domain.Pack{ID: "tcg-23821-610188", Name: "Surging Sparks Booster Box", CurrentPrice: 119.99},
				ReferencePrice: 143.64,
				PriceStatus:    domain.StatusGreatDeal,
			}},
			Total:      1,
			IsRealData: true,
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.ListPacks(context.Background(), &ListPacksParams{
		ProductType: "booster-box",
		PriceStatus: "great-deal",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	require.Len(t, resp.Packs, 1)
	assert.Equal(t, "tcg-23821-610188", resp.Packs[0].ID)
	assert.Equal(t, domain.StatusGreatDeal, resp.Packs[0].PriceStatus)
}

func TestClient_GetPack_EscapesID(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/packs/tcg-1-2", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(PackView{Pack: domain.Pack{ID: "tcg-1-2"}})
	}))
	defer srv.Close()

	c := New(srv.URL)
	view, err := c.GetPack(context.Background(), "tcg-1-2")
	require.NoError(t, err)
	assert.Equal(t, "tcg-1-2", view.ID)
}

func TestClient_SetAlert(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v1/alerts/tcg-1-2", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req upsertAlertRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.InDelta(t, 125.0, req.TargetPrice, 0.001)
		assert.True(t, req.NotifyOnce)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(domain.PriceAlert{
			PackID:      "tcg-1-2",
			TargetPrice: req.TargetPrice,
			NotifyOnce:  req.NotifyOnce,
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	alert, err := c.SetAlert(context.Background(), "tcg-1-2", 125.0, true)
	require.NoError(t, err)
	assert.Equal(t, "tcg-1-2", alert.PackID)
	assert.True(t, alert.NotifyOnce)
}

func TestClient_DeleteAlert(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v1/alerts/tcg-1-2", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL)
	require.NoError(t, c.DeleteAlert(context.Background(), "tcg-1-2"))
}

func TestClient_Watchlist(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/v1/watchlist":
			var req addWatchlistRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(domain.WatchlistItem{ID: req.PackID, Name: "Saved"})
		case r.Method == http.MethodGet && r.URL.Path == "/api/v1/watchlist":
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode([]domain.WatchlistItem{{ID: "tcg-1-2"}})
		case r.Method == http.MethodDelete && r.URL.Path == "/api/v1/watchlist":
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	ctx := context.Background()

	item, err := c.AddToWatchlist(ctx, "tcg-1-2")
	require.NoError(t, err)
	assert.Equal(t, "tcg-1-2", item.ID)

	items, err := c.ListWatchlist(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	require.NoError(t, c.ClearWatchlist(ctx))
}

func TestClient_Webhook(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPut && r.URL.Path == "/api/v1/settings/webhook":
			var req setWebhookRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(WebhookSettings{WebhookURL: req.WebhookURL, Configured: req.WebhookURL != ""})
		case r.Method == http.MethodPost && r.URL.Path == "/api/v1/settings/webhook/test":
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(WebhookTestResult{Delivered: true})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	ctx := context.Background()

	settings, err := c.SetWebhook(ctx, "https://discord.com/api/webhooks/123/abc")
	require.NoError(t, err)
	assert.True(t, settings.Configured)

	result, err := c.TestWebhook(ctx)
	require.NoError(t, err)
	assert.True(t, result.Delivered)
}

func TestClient_Refresh(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/refresh", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"refresh completed"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	require.NoError(t, c.Refresh(context.Background()))
}
