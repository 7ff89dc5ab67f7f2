package localstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmquest-india/farmquest/farmquest/models"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestSessionRoundTrip(t *testing.T) {
	s := testStore(t)

	user := models.User{
		ID:           "user_1",
		Name:         "Rajesh Kumar",
		Email:        "rajesh@example.com",
		TotalPoints:  2450,
		Achievements: []string{"first_quest"},
	}
	require.NoError(t, s.SaveSession(user))

	loaded, err := s.LoadSession()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, user, *loaded)
}

func TestLoadSessionMissing(t *testing.T) {
	s := testStore(t)

	loaded, err := s.LoadSession()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestLoadSessionCorruptRecordDiscarded(t *testing.T) {
	s := testStore(t)
	require.NoError(t, os.WriteFile(s.sessionPath(), []byte("{not json"), 0o644))

	loaded, err := s.LoadSession()
	require.NoError(t, err, "corrupt records are discarded, not surfaced")
	assert.Nil(t, loaded)
}

func TestLoadSessionEmptyIDDiscarded(t *testing.T) {
	s := testStore(t)
	require.NoError(t, os.WriteFile(s.sessionPath(), []byte(`{"name":"ghost"}`), 0o644))

	loaded, err := s.LoadSession()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestClearSession(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.SaveSession(models.User{ID: "user_1"}))
	require.NoError(t, s.ClearSession())

	_, err := os.Stat(s.sessionPath())
	assert.True(t, os.IsNotExist(err))

	// Clearing again is fine.
	require.NoError(t, s.ClearSession())
}

func TestSaveSessionOverwrites(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.SaveSession(models.User{ID: "user_1", TotalPoints: 100}))
	require.NoError(t, s.SaveSession(models.User{ID: "user_1", TotalPoints: 350}))

	loaded, err := s.LoadSession()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, 350, loaded.TotalPoints)

	// No temp file left behind.
	entries, err := os.ReadDir(filepath.Dir(s.sessionPath()))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
