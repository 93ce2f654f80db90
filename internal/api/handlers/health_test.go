package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokepack/pokepack-tracker/internal/api/handlers"
)

type fakePinger struct {
	err error
}

func (f *fakePinger) Ping(context.Context) error { return f.err }

func TestHealthHandler_Healthz(t *testing.T) {
	t.Parallel()

	h := handlers.NewHealthHandler(nil)
	e := echo.New()
	e.GET("/healthz", h.Healthz)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", http.NoBody))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestHealthHandler_Readyz(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		pinger     handlers.Pinger
		wantStatus int
	}{
		{name: "no backend connection is always ready", pinger: nil, wantStatus: http.StatusOK},
		{name: "reachable backend", pinger: &fakePinger{}, wantStatus: http.StatusOK},
		{
			name:       "unreachable backend",
			pinger:     &fakePinger{err: errors.New("connection refused")},
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := handlers.NewHealthHandler(tt.pinger)
			e := echo.New()
			e.GET("/readyz", h.Readyz)

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", http.NoBody))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
