package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/pokepack/pokepack-tracker/internal/api/handlers"
	"github.com/pokepack/pokepack-tracker/internal/api/middleware"
	"github.com/pokepack/pokepack-tracker/internal/config"
	"github.com/pokepack/pokepack-tracker/internal/engine"
	"github.com/pokepack/pokepack-tracker/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and refresh scheduler",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := buildApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer a.close()

	e := newRouter(a, log)

	// First snapshot before the server accepts traffic, so /api/v1/packs
	// never serves an empty catalog.
	if err := a.engine.Refresh(ctx); err != nil {
		log.Warn("initial refresh failed", "error", err)
	}

	sched, err := engine.NewScheduler(a.engine, cfg.Schedule.RefreshInterval, log)
	if err != nil {
		return fmt.Errorf("building scheduler: %w", err)
	}
	sched.Start()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server", "addr", addr, "storage", cfg.Storage.Backend)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	<-sched.Stop().Done()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}

func newRouter(a *app, log *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestLog(log))
	e.Use(middleware.Metrics())
	e.Use(middleware.Recovery(log))

	var pinger handlers.Pinger
	if a.pinger != nil {
		pinger = a.pinger
	}
	health := handlers.NewHealthHandler(pinger)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := humaecho.New(e, huma.DefaultConfig("PokePack Tracker API", Version))
	handlers.RegisterPackRoutes(api, handlers.NewPacksHandler(a.engine))
	handlers.RegisterSetRoutes(api, handlers.NewSetsHandler(a.engine))
	handlers.RegisterRefreshRoutes(api, handlers.NewRefreshHandler(a.engine))

	alerts := handlers.NewAlertHandler(a.alerts, a.engine)
	e.GET("/api/v1/alerts", alerts.List)
	e.PUT("/api/v1/alerts/:packId", alerts.Upsert)
	e.DELETE("/api/v1/alerts/:packId", alerts.Delete)

	watchlist := handlers.NewWatchlistHandler(a.watchlist, a.engine)
	e.GET("/api/v1/watchlist", watchlist.List)
	e.POST("/api/v1/watchlist", watchlist.Add)
	e.DELETE("/api/v1/watchlist/:id", watchlist.Remove)
	e.DELETE("/api/v1/watchlist", watchlist.Clear)

	settings := handlers.NewSettingsHandler(a.settings, a.notifier)
	e.GET("/api/v1/settings/webhook", settings.GetWebhook)
	e.PUT("/api/v1/settings/webhook", settings.SetWebhook)
	e.POST("/api/v1/settings/webhook/test", settings.TestWebhook)

	return e
}
