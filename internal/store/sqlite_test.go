package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestSQLite(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "game.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenSQLite_EmptyPath(t *testing.T) {
	_, err := OpenSQLite("")
	assert.Error(t, err)
}

func TestSQLiteStore_LoadWithoutSave(t *testing.T) {
	s := openTestSQLite(t)

	_, err := s.LoadSnapshot()
	assert.ErrorIs(t, err, ErrNoSnapshot)
}

func TestSQLiteStore_SaveLoad(t *testing.T) {
	s := openTestSQLite(t)
	snap := sampleSnapshot()

	require.NoError(t, s.SaveSnapshot(snap))

	loaded, err := s.LoadSnapshot()
	require.NoError(t, err)
	assert.Equal(t, snap.Phase, loaded.Phase)
	assert.Equal(t, snap.Round, loaded.Round)
	assert.Equal(t, snap.Active, loaded.Active)
	assert.Equal(t, snap.Players, loaded.Players)
	assert.True(t, snap.TakenAt.Equal(loaded.TakenAt), "TakenAt = %v, want %v", loaded.TakenAt, snap.TakenAt)
}

func TestSQLiteStore_SaveReplaces(t *testing.T) {
	s := openTestSQLite(t)
	require.NoError(t, s.SaveSnapshot(sampleSnapshot()))

	second := sampleSnapshot()
	second.Round = 7
	second.Players = second.Players[:1]
	require.NoError(t, s.SaveSnapshot(second))

	loaded, err := s.LoadSnapshot()
	require.NoError(t, err)
	assert.Equal(t, 7, loaded.Round)
	assert.Len(t, loaded.Players, 1)
}

func TestSQLiteStore_PlayerOrderSurvives(t *testing.T) {
	s := openTestSQLite(t)
	snap := sampleSnapshot()
	require.NoError(t, s.SaveSnapshot(snap))

	loaded, err := s.LoadSnapshot()
	require.NoError(t, err)
	require.Len(t, loaded.Players, 3)
	for i, p := range snap.Players {
		assert.Equal(t, p.Name, loaded.Players[i].Name, "registration order must survive the round trip")
	}
}

func TestSQLiteStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.db")

	s, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s.SaveSnapshot(sampleSnapshot()))
	require.NoError(t, s.Close())

	reopened, err := OpenSQLite(path)
	require.NoError(t, err)
	defer reopened.Close()

	loaded, err := reopened.LoadSnapshot()
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.Round)
	assert.Len(t, loaded.Players, 3)
}
