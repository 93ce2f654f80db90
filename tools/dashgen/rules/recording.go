package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return newCR("pokepack-recording-rules",
		RuleGroup{
			Name: "pokepack-recording",
			Rules: []Rule{
				{
					Record: "pokepack:http_requests:rate5m",
					Expr:   `sum(rate(pokepack_http_requests_total[5m]))`,
				},
				{
					Record: "pokepack:http_errors:rate5m",
					Expr:   `sum(rate(pokepack_http_requests_total{status=~"5.."}[5m]))`,
				},
				{
					Record: "pokepack:source_requests:rate5m",
					Expr:   `rate(pokepack_source_requests_total[5m])`,
				},
				{
					Record: "pokepack:source_failures:rate5m",
					Expr:   `rate(pokepack_source_failures_total[5m])`,
				},
				{
					Record: "pokepack:alerts_fired:rate5m",
					Expr:   `rate(pokepack_alerts_fired_total[5m])`,
				},
			},
		},
	)
}
