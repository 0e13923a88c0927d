package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileBackend_LoadMissing(t *testing.T) {
	b, err := NewFileBackend(t.TempDir())
	require.NoError(t, err)

	_, ok, err := b.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileBackend_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	b, err := NewFileBackend(dir)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, b.Store(ctx, []byte(`{"v":1}`)))

	data, ok, err := b.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte(`{"v":1}`), data)

	// Snapshot file is named after the versioned key; no temp file remains.
	_, err = os.Stat(filepath.Join(dir, SnapshotKey+".json"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, SnapshotKey+".json.tmp"))
	assert.True(t, os.IsNotExist(err))
}

func TestFileBackend_StoreOverwrites(t *testing.T) {
	b, err := NewFileBackend(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, b.Store(ctx, []byte("one")))
	require.NoError(t, b.Store(ctx, []byte("two")))

	data, ok, err := b.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("two"), data)
}

func TestFileBackend_Clear(t *testing.T) {
	b, err := NewFileBackend(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, b.Store(ctx, []byte("x")))
	require.NoError(t, b.Clear(ctx))

	_, ok, err := b.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	// Clearing twice is fine.
	require.NoError(t, b.Clear(ctx))
}
