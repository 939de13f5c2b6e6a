package session_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Adnan7389/Compliance-Tracker-client/pkg/session"
)

func TestFileSnapshotStore_Roundtrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "state", "identity.json")
	store := session.NewFileSnapshotStore(path)

	identity := session.Identity{
		ID:           "u-7",
		Name:         "Jonas",
		Role:         session.RoleStaff,
		BusinessID:   "b-2",
		BusinessName: "Harbor Cafe",
		Email:        "jonas@example.com",
	}

	require.NoError(t, store.Save(identity))

	loaded, ok, err := store.Load()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, identity, loaded)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileSnapshotStore_LoadMissing(t *testing.T) {
	t.Parallel()

	store := session.NewFileSnapshotStore(filepath.Join(t.TempDir(), "nope.json"))

	_, ok, err := store.Load()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileSnapshotStore_ClearIsIdempotent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "identity.json")
	store := session.NewFileSnapshotStore(path)

	require.NoError(t, store.Save(session.Identity{ID: "u-1"}))
	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear(), "clearing an empty store is fine")

	_, ok, err := store.Load()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileSnapshotStore_CorruptFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "identity.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	store := session.NewFileSnapshotStore(path)
	_, _, err := store.Load()
	assert.ErrorIs(t, err, session.ErrSnapshotDecode)
}

func TestNewFromConfig_ChoosesFileBackend(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "identity.json")
	client := &fakeAuthClient{}
	store := session.NewFromConfig(session.Config{SnapshotPath: path}, client)

	store.ClearSnapshot() // exercises the file backend without error
	_, ok := store.CachedIdentity()
	assert.False(t, ok)
}
