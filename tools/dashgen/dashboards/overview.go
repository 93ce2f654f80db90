// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/pokepack/pokepack-tracker/tools/dashgen/panels"
)

// BuildOverview constructs the PokePack Overview dashboard with all metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("PokePack Overview").
		Uid("pokepack-overview").
		Tags([]string{"pokepack", "pokepack-tracker"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	// Row 1: Overview.
	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.PacksBuiltStat()).
		WithPanel(panels.UptimeStat()))

	// Row 2: HTTP.
	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	// Row 3: Pricing source.
	b.WithRow(dashboard.NewRowBuilder("Pricing Source").
		WithPanel(panels.SourceRequestRate()).
		WithPanel(panels.SourceFailureRate()))

	// Row 4: Refresh.
	b.WithRow(dashboard.NewRowBuilder("Refresh").
		WithPanel(panels.RefreshDuration()).
		WithPanel(panels.FallbackRefreshes()).
		WithPanel(panels.SupersededRefreshes()))

	// Row 5: Alerts.
	b.WithRow(dashboard.NewRowBuilder("Alerts").
		WithPanel(panels.AlertsRate()).
		WithPanel(panels.NotificationFailures()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
