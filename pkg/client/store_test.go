package client

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	store := NewFileStore(path)

	_, ok := store.Get("adminToken")
	assert.False(t, ok)

	require.NoError(t, store.Set("adminToken", "T"))
	require.NoError(t, store.Set("adminUser", `{"username":"admin"}`))

	// A fresh store on the same path sees the persisted values.
	reopened := NewFileStore(path)
	token, ok := reopened.Get("adminToken")
	require.True(t, ok)
	assert.Equal(t, "T", token)

	require.NoError(t, reopened.Delete("adminToken"))
	_, ok = store.Get("adminToken")
	assert.False(t, ok)
	_, ok = store.Get("adminUser")
	assert.True(t, ok)
}
