package cart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Store("cart-1", []byte(`[{"quantity":2}]`)))

	raw, err := store.Load("cart-1")
	require.NoError(t, err)
	assert.Equal(t, `[{"quantity":2}]`, string(raw))

	require.NoError(t, store.Store("cart-1", []byte(`[]`)))
	raw, err = store.Load("cart-1")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(raw))
}

func TestFileStoreLoadMissingKey(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Load("cart-404")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStoreDelete(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Store("cart-1", []byte(`[]`)))
	require.NoError(t, store.Delete("cart-1"))

	_, err = store.Load("cart-1")
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting a missing key is fine.
	require.NoError(t, store.Delete("cart-1"))
}

func TestFileStoreCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "carts")

	_, err := NewFileStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestFileStoreLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Store("cart-1", []byte(`[]`)))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "cart-1.json", entries[0].Name())
}
