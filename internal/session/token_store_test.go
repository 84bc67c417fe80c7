// ABOUTME: Tests for the file-backed credential slot
// ABOUTME: Covers empty slot reads, save/load round-trip, permissions, and clear

package session

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileTokenStore_MissingFileIsEmptySlot(t *testing.T) {
	store := NewFileTokenStore(filepath.Join(t.TempDir(), "token"))

	token, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestFileTokenStore_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "token")
	store := NewFileTokenStore(path)

	require.NoError(t, store.Save("tok-xyz"))

	token, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-xyz", token)
}

func TestFileTokenStore_FileIsOperatorPrivate(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permissions only")
	}
	path := filepath.Join(t.TempDir(), "token")
	store := NewFileTokenStore(path)
	require.NoError(t, store.Save("tok-xyz"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileTokenStore_LoadTrimsWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	require.NoError(t, os.WriteFile(path, []byte("  tok-xyz\n"), 0o600))
	store := NewFileTokenStore(path)

	token, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-xyz", token)
}

func TestFileTokenStore_Clear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	store := NewFileTokenStore(path)
	require.NoError(t, store.Save("tok-xyz"))

	require.NoError(t, store.Clear())

	token, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)

	// Clearing an empty slot is fine too.
	require.NoError(t, store.Clear())
}
