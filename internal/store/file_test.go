package store_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokepack/pokepack-tracker/internal/store"
)

func TestMemoryKV_RoundTrip(t *testing.T) {
	t.Parallel()

	kv := store.NewMemoryKV()
	ctx := context.Background()

	_, ok, err := kv.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set(ctx, "k", []byte(`{"a":1}`)))
	v, ok, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"a":1}`, string(v))
}

func TestMemoryKV_CopiesValues(t *testing.T) {
	t.Parallel()

	kv := store.NewMemoryKV()
	ctx := context.Background()

	buf := []byte(`"value"`)
	require.NoError(t, kv.Set(ctx, "k", buf))
	buf[1] = 'x'

	v, _, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `"value"`, string(v))
}

func TestFileKV_PersistsAcrossInstances(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "data", "pokepack.json")
	ctx := context.Background()

	kv, err := store.NewFileKV(path)
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, "alerts", []byte(`[{"packId":"p1"}]`)))
	require.NoError(t, kv.Set(ctx, "webhook_url", []byte(`"https://example.com"`)))

	reopened, err := store.NewFileKV(path)
	require.NoError(t, err)

	v, ok, err := reopened.Get(ctx, "alerts")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[{"packId":"p1"}]`, string(v))

	v, ok, err = reopened.Get(ctx, "webhook_url")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `"https://example.com"`, string(v))
}

func TestFileKV_CorruptFileStartsEmpty(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "pokepack.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	kv, err := store.NewFileKV(path)
	require.NoError(t, err)

	_, ok, err := kv.Get(context.Background(), "alerts")
	require.NoError(t, err)
	assert.False(t, ok)
}
