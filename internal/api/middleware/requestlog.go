package middleware

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestIDHeader carries the request ID between client and server. A
// client-supplied ID is reused so log lines correlate across services.
const RequestIDHeader = "X-Request-ID"

// healthPaths are probed every few seconds by orchestrators; logging
// every successful probe would drown out real traffic.
var healthPaths = map[string]struct{}{
	"/healthz": {},
	"/readyz":  {},
}

// RequestLog returns Echo middleware that logs one structured line per
// request, tagged with a request ID (minted when the client sent none).
// Successful health probes are logged once and then suppressed until
// the probe fails; failures are always logged at WARN.
func RequestLog(log *slog.Logger) echo.MiddlewareFunc {
	var mu sync.Mutex
	probeOK := make(map[string]bool)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			reqID := c.Request().Header.Get(RequestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}
			c.Set("request_id", reqID)
			c.Response().Header().Set(RequestIDHeader, reqID)

			err := next(c)

			path := c.Request().URL.Path
			status := c.Response().Status

			attrs := []any{
				"method", c.Request().Method,
				"path", path,
				"status", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", reqID,
			}
			if err != nil {
				attrs = append(attrs, "error", err.Error())
			}

			if _, probe := healthPaths[path]; probe {
				ok := status >= 200 && status < 300
				mu.Lock()
				wasOK := probeOK[path]
				probeOK[path] = ok
				mu.Unlock()

				if !ok {
					log.Warn("request", attrs...)
					return err
				}
				if wasOK {
					return err
				}
			}

			log.Info("request", attrs...)
			return err
		}
	}
}
