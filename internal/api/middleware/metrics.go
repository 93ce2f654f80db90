// Package middleware provides Echo middleware for pokepack-tracker.
package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/pokepack/pokepack-tracker/internal/metrics"
)

// Probe endpoints are tracked as 0/1 gauges instead of request
// histograms; a kubelet probing every few seconds is not traffic worth
// a time series per status code.
var probeGauges = map[string]prometheus.Gauge{
	"/healthz": metrics.HealthzUp,
	"/readyz":  metrics.ReadyzUp,
}

// Metrics returns Echo middleware recording request count and duration,
// labeled by method, route, and status. The /metrics scrape endpoint
// itself is not measured.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}

			if path == "/metrics" {
				return next(c)
			}

			if gauge, ok := probeGauges[path]; ok {
				err := next(c)
				if s := c.Response().Status; s >= 200 && s < 300 {
					gauge.Set(1)
				} else {
					gauge.Set(0)
				}
				return err
			}

			start := time.Now()
			err := next(c)

			status := strconv.Itoa(c.Response().Status)
			method := c.Request().Method

			metrics.HTTPRequestDuration.
				WithLabelValues(method, path, status).
				Observe(time.Since(start).Seconds())
			metrics.HTTPRequestsTotal.
				WithLabelValues(method, path, status).
				Inc()

			return err
		}
	}
}
