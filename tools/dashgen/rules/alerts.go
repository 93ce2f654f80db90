package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// pokepack-tracker operational monitoring.
func AlertRules() PrometheusRule {
	return newCR("pokepack-alerts",
		RuleGroup{
			Name: "pokepack-alerts",
			Rules: []Rule{
				{
					Alert: "PokepackDown",
					Expr:  `absent(up{job="pokepack-tracker"})`,
					For:   "2m",
					Labels: map[string]string{
						"severity": "critical",
					},
					Annotations: map[string]string{
						"summary":     "PokePack Tracker is down",
						"description": "The pokepack-tracker job has been absent for more than 2 minutes.",
					},
				},
				{
					Alert: "PokepackReadinessDown",
					Expr:  `pokepack_readyz_up == 0`,
					For:   "2m",
					Labels: map[string]string{
						"severity": "critical",
					},
					Annotations: map[string]string{
						"summary":     "PokePack Tracker readiness check is failing",
						"description": "The readiness probe has been reporting not-ready for more than 2 minutes.",
					},
				},
				{
					Alert: "PokepackHighErrorRate",
					Expr:  `pokepack:http_errors:rate5m / pokepack:http_requests:rate5m > 0.05`,
					For:   "5m",
					Labels: map[string]string{
						"severity": "warning",
					},
					Annotations: map[string]string{
						"summary":     "High HTTP error rate on PokePack Tracker",
						"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
					},
				},
				{
					Alert: "PokepackSourceFailures",
					Expr:  `pokepack:source_failures:rate5m > 0`,
					For:   "10m",
					Labels: map[string]string{
						"severity": "warning",
					},
					Annotations: map[string]string{
						"summary":     "Pricing source requests are failing",
						"description": "Requests to the pricing source have been failing for more than 10 minutes.",
					},
				},
				{
					Alert: "PokepackFallbackActive",
					Expr:  `increase(pokepack_refresh_fallbacks_total[30m]) > 0`,
					For:   "0m",
					Labels: map[string]string{
						"severity": "warning",
					},
					Annotations: map[string]string{
						"summary":     "Catalog is serving synthetic fallback prices",
						"description": "One or more refresh cycles in the last 30 minutes fell back to generated prices because the source was unreachable.",
					},
				},
				{
					Alert: "PokepackNotificationFailures",
					Expr:  `increase(pokepack_notification_failures_total[5m]) > 0`,
					For:   "1m",
					Labels: map[string]string{
						"severity": "warning",
					},
					Annotations: map[string]string{
						"summary":     "Notification delivery failures detected",
						"description": "One or more price alerts (Discord webhooks) have failed to send.",
					},
				},
			},
		},
	)
}
