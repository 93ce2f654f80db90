package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// SourceRequestRate returns a timeseries panel showing the pricing source
// request rate.
func SourceRequestRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Source Requests").
		Description("Pricing source requests per second").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`pokepack:source_requests:rate5m`, "req/s", "A")).
		Unit("reqps").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// SourceFailureRate returns a timeseries panel showing pricing source
// failures as a percentage of requests.
func SourceFailureRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Source Failure %").
		Description("Failed pricing source requests as percentage of total").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`pokepack:source_failures:rate5m / pokepack:source_requests:rate5m * 100`,
			"failure %", "A",
		)).
		Unit("percent").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(5, 25)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}
