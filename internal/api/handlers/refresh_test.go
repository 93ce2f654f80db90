package handlers_test

import (
	"context"
	"errors"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokepack/pokepack-tracker/internal/api/handlers"
)

type fakeRefresher struct {
	calls int
	err   error
}

func (f *fakeRefresher) Refresh(context.Context) error {
	f.calls++
	return f.err
}

func TestRefreshHandler_Refresh(t *testing.T) {
	t.Parallel()

	r := &fakeRefresher{}
	_, api := humatest.New(t)
	handlers.RegisterRefreshRoutes(api, handlers.NewRefreshHandler(r))

	resp := api.Post("/api/v1/refresh")
	require.Equal(t, 200, resp.Code)
	assert.Contains(t, resp.Body.String(), "refresh completed")
	assert.Equal(t, 1, r.calls)
}

func TestRefreshHandler_RefreshError(t *testing.T) {
	t.Parallel()

	r := &fakeRefresher{err: errors.New("boom")}
	_, api := humatest.New(t)
	handlers.RegisterRefreshRoutes(api, handlers.NewRefreshHandler(r))

	resp := api.Post("/api/v1/refresh")
	assert.Equal(t, 500, resp.Code)
}
