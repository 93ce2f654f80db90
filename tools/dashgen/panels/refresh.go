package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// RefreshDuration returns a timeseries panel showing the p95 catalog
// refresh duration.
func RefreshDuration() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Refresh Duration (p95)").
		Description("95th percentile catalog refresh cycle duration").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`histogram_quantile(0.95, sum(rate(pokepack_refresh_duration_seconds_bucket{job="pokepack-tracker"}[5m])) by (le))`,
			"p95",
			"A",
		)).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// FallbackRefreshes returns a stat panel showing refreshes served by
// synthetic fallback data in the past 24 hours.
func FallbackRefreshes() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Fallback Refreshes (24h)").
		Description("Refresh cycles that fell back to synthetic prices in the last 24 hours").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`increase(pokepack_refresh_fallbacks_total{job="pokepack-tracker"}[24h])`, "", "A")).
		Thresholds(ThresholdsGreenYellowRed(1, 10)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}

// SupersededRefreshes returns a stat panel showing refreshes discarded
// because a newer one started.
func SupersededRefreshes() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Superseded Refreshes (24h)").
		Description("Refresh cycles discarded because a newer cycle started first").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`increase(pokepack_refresh_superseded_total{job="pokepack-tracker"}[24h])`, "", "A")).
		Thresholds(ThresholdsGreenYellowRed(5, 20)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}
