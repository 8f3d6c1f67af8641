package progress

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memKV map[string][]byte

func (m memKV) Get(key string) ([]byte, bool, error) { v, ok := m[key]; return v, ok, nil }
func (m memKV) Set(key string, value []byte) error   { m[key] = value; return nil }

func TestToggleFavoriteTwiceRestoresSetAndStorage(t *testing.T) {
	kv := memKV{}
	tr := Load(kv)

	require.NoError(t, tr.ToggleFavorite(5))
	assert.True(t, tr.IsFavorite(5))
	assert.JSONEq(t, "[5]", string(kv["slang.favorites"]))

	require.NoError(t, tr.ToggleFavorite(5))
	assert.False(t, tr.IsFavorite(5))
	assert.Equal(t, "[]", string(kv["slang.favorites"]))
}

func TestMarkDoneIsIdempotent(t *testing.T) {
	kv := memKV{}
	tr := Load(kv)

	require.NoError(t, tr.MarkDone(9))
	require.NoError(t, tr.MarkDone(9))

	assert.Equal(t, 1, tr.DoneCount())
	assert.JSONEq(t, "[9]", string(kv["slang.completed"]))
}

func TestPersistedSetsAreSorted(t *testing.T) {
	kv := memKV{}
	tr := Load(kv)

	for _, id := range []int{30, 4, 17} {
		require.NoError(t, tr.ToggleFavorite(id))
	}

	assert.Equal(t, "[4,17,30]", string(kv["slang.favorites"]))
}

func TestLoadHydratesFromStorage(t *testing.T) {
	kv := memKV{
		"slang.favorites": []byte("[1,2,3]"),
		"slang.completed": []byte("[7]"),
	}
	tr := Load(kv)

	assert.Equal(t, 3, tr.FavoriteCount())
	assert.True(t, tr.IsFavorite(2))
	assert.True(t, tr.IsDone(7))
	assert.False(t, tr.IsDone(1))
}

func TestMalformedStoredValueFallsBackToEmpty(t *testing.T) {
	kv := memKV{"slang.favorites": []byte("{not json")}

	tr := Load(kv)

	assert.Equal(t, 0, tr.FavoriteCount())
	// The set must still be usable after the fallback.
	require.NoError(t, tr.ToggleFavorite(1))
	assert.True(t, tr.IsFavorite(1))
}

func TestSetsAreIndependent(t *testing.T) {
	kv := memKV{}
	tr := Load(kv)

	require.NoError(t, tr.ToggleFavorite(1))
	require.NoError(t, tr.MarkDone(1))
	require.NoError(t, tr.ToggleFavorite(1))

	assert.False(t, tr.IsFavorite(1))
	assert.True(t, tr.IsDone(1), "un-favoriting must not touch the completed set")
}

func TestResetClearsBothSets(t *testing.T) {
	kv := memKV{}
	tr := Load(kv)
	require.NoError(t, tr.ToggleFavorite(1))
	require.NoError(t, tr.MarkDone(2))

	require.NoError(t, Reset(kv))

	reloaded := Load(kv)
	assert.Equal(t, 0, reloaded.FavoriteCount())
	assert.Equal(t, 0, reloaded.DoneCount())
}

func TestFileKVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.json")

	kv, err := OpenFileKV(path)
	require.NoError(t, err)
	require.NoError(t, kv.Set("slang.favorites", []byte("[1,2]")))

	reopened, err := OpenFileKV(path)
	require.NoError(t, err)
	v, ok, err := reopened.Get("slang.favorites")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, "[1,2]", string(v))
}

func TestFileKVMalformedFileStartsFresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	kv, err := OpenFileKV(path)
	require.NoError(t, err)
	_, ok, err := kv.Get("slang.favorites")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileKVWritesValidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.json")
	kv, err := OpenFileKV(path)
	require.NoError(t, err)
	require.NoError(t, kv.Set("k", []byte(`[1]`)))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Contains(t, decoded, "k")
}
