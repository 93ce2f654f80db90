package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/pokepack/pokepack-tracker/internal/cache"
	"github.com/pokepack/pokepack-tracker/internal/catalog"
	"github.com/pokepack/pokepack-tracker/internal/config"
	"github.com/pokepack/pokepack-tracker/internal/engine"
	"github.com/pokepack/pokepack-tracker/internal/notify"
	"github.com/pokepack/pokepack-tracker/internal/store"
	"github.com/pokepack/pokepack-tracker/internal/tcgcsv"
)

// app bundles the wired components shared by the serve and refresh
// commands. close releases the storage backend.
type app struct {
	engine    *engine.Engine
	alerts    *store.AlertStore
	watchlist *store.WatchlistStore
	settings  *store.SettingsStore
	notifier  notify.Notifier
	pinger    *store.PostgresKV // nil unless the postgres backend is active
	close     func()
}

func buildApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*app, error) {
	kv, pg, closeKV, err := openKV(ctx, cfg)
	if err != nil {
		return nil, err
	}

	alerts := store.NewAlertStore(kv)
	watchlist := store.NewWatchlistStore(kv)
	settings := store.NewSettingsStore(kv)

	// A config-supplied webhook seeds the settings store once; anything
	// set through the settings API afterwards wins.
	if cfg.Notifications.Discord.Enabled && cfg.Notifications.Discord.WebhookURL != "" {
		existing, err := settings.WebhookURL(ctx)
		if err != nil {
			closeKV()
			return nil, fmt.Errorf("reading stored webhook: %w", err)
		}
		if existing == "" {
			if err := settings.SetWebhookURL(ctx, cfg.Notifications.Discord.WebhookURL); err != nil {
				closeKV()
				return nil, fmt.Errorf("seeding webhook: %w", err)
			}
		}
	}

	source := tcgcsv.NewHTTPClient(
		tcgcsv.WithBaseURL(cfg.Source.BaseURL),
		tcgcsv.WithHTTPClient(&http.Client{Timeout: cfg.Source.Timeout}),
		tcgcsv.WithRateLimiter(tcgcsv.NewRateLimiter(
			cfg.Source.RateLimit.PerSecond,
			cfg.Source.RateLimit.Burst,
		)),
	)
	cached := tcgcsv.NewCachedClient(source, cache.New())

	builder := catalog.NewBuilder(cached, catalog.NewFallbackGenerator(),
		catalog.WithLogger(logger),
		catalog.WithMaxSets(cfg.Source.MaxSets),
		catalog.WithSetsPerCycle(cfg.Source.SetsPerCycle),
		catalog.WithFetchWorkers(cfg.Source.FetchWorkers),
	)

	// The settings store is the endpoint source, so webhook changes made
	// through the API apply to the next send without a restart.
	notifier := notify.NewDiscordNotifier(settings)

	eng := engine.NewEngine(builder, alerts, notifier,
		engine.WithLogger(logger),
		engine.WithDispatchWorkers(cfg.Alerts.DispatchWorkers),
	)

	return &app{
		engine:    eng,
		alerts:    alerts,
		watchlist: watchlist,
		settings:  settings,
		notifier:  notifier,
		pinger:    pg,
		close:     closeKV,
	}, nil
}

func openKV(ctx context.Context, cfg *config.Config) (store.KV, *store.PostgresKV, func(), error) {
	switch cfg.Storage.Backend {
	case "file":
		kv, err := store.NewFileKV(cfg.Storage.File.Path)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("opening file store: %w", err)
		}
		return kv, nil, func() {}, nil
	case "postgres":
		kv, err := store.NewPostgresKV(ctx, cfg.Storage.Postgres.DSN())
		if err != nil {
			return nil, nil, nil, fmt.Errorf("connecting to postgres: %w", err)
		}
		return kv, kv, kv.Close, nil
	default:
		return store.NewMemoryKV(), nil, func() {}, nil
	}
}
