package main

import "errors"

// KnownMetrics is the set of metric names exported by pokepack-tracker
// plus recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"pokepack_http_request_duration_seconds":        true,
	"pokepack_http_request_duration_seconds_bucket": true,
	"pokepack_http_requests_total":                  true,

	// Health metrics.
	"pokepack_healthz_up": true,
	"pokepack_readyz_up":  true,

	// Refresh cycle metrics.
	"pokepack_refresh_duration_seconds":        true,
	"pokepack_refresh_duration_seconds_bucket": true,
	"pokepack_refresh_packs_built":             true,
	"pokepack_refresh_fallbacks_total":         true,
	"pokepack_refresh_superseded_total":        true,

	// Pricing source metrics.
	"pokepack_source_requests_total": true,
	"pokepack_source_failures_total": true,
	"pokepack_cache_hits_total":      true,
	"pokepack_cache_misses_total":    true,

	// Alert metrics.
	"pokepack_alerts_evaluated_total":      true,
	"pokepack_alerts_fired_total":          true,
	"pokepack_notification_failures_total": true,

	// Recording rules.
	"pokepack:http_requests:rate5m":   true,
	"pokepack:http_errors:rate5m":     true,
	"pokepack:source_requests:rate5m": true,
	"pokepack:source_failures:rate5m": true,
	"pokepack:alerts_fired:rate5m":    true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
