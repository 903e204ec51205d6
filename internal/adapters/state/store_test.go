package state_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/defaultdata/defaultdata/internal/adapters/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_LoadMissingFileYieldsEmptyMap(t *testing.T) {
	store := state.NewStore()

	fingerprints, err := store.Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Empty(t, fingerprints)
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".defaultdata.state.json")
	store := state.NewStore()

	in := map[string]string{
		"happiness": "00000000deadbeef",
		"gdp":       "00000000cafef00d",
	}
	require.NoError(t, store.Save(path, in))

	out, err := store.Load(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestStore_LoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".defaultdata.state.json")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	fingerprints, err := state.NewStore().Load(path)
	require.NoError(t, err)
	assert.Empty(t, fingerprints)
}

func TestStore_LoadCorruptFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".defaultdata.state.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	_, err := state.NewStore().Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read package state")
}
