package db_test

import (
	"path/filepath"
	"testing"

	"github.com/balkashynov/logbook/internal/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *db.KVStore {
	t.Helper()
	store, err := db.Open(filepath.Join(t.TempDir(), "nested", "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, store.Close())
	})
	return store
}

func TestKVStore_GetMissing(t *testing.T) {
	store := openTestStore(t)

	value, found, err := store.Get("tracker_items")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, value)
}

func TestKVStore_SetGetOverwrite(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Set("tracker_items", `[]`))
	value, found, err := store.Get("tracker_items")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[]`, value)

	require.NoError(t, store.Set("tracker_items", `[{"id":"a"}]`))
	value, found, err = store.Get("tracker_items")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"id":"a"}]`, value)
}

func TestKVStore_KeysAndDelete(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Set("workout_seeded", "true"))
	require.NoError(t, store.Set("tracker_settings", "{}"))

	keys, err := store.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"tracker_settings", "workout_seeded"}, keys)

	require.NoError(t, store.Delete("workout_seeded"))
	require.NoError(t, store.Delete("never-set"))

	_, found, err := store.Get("workout_seeded")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestKVStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logbook.db")

	store, err := db.Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Set("workout_entries", `[]`))
	require.NoError(t, store.Close())

	store, err = db.Open(path)
	require.NoError(t, err)
	defer store.Close()

	value, found, err := store.Get("workout_entries")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[]`, value)
}

func TestMemoryKV(t *testing.T) {
	kv := db.NewMemoryKV()

	_, found, err := kv.Get("a")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, kv.Set("b", "2"))
	require.NoError(t, kv.Set("a", "1"))
	keys, err := kv.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, keys)

	require.NoError(t, kv.Delete("a"))
	_, found, _ = kv.Get("a")
	assert.False(t, found)
}
