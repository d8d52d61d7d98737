package storage

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestWordListFileStore_SeedsDefaultsWhenAbsent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "mots_interdits.txt")
	store := NewWordListFileStore(path, testLogger())

	words, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultForbiddenWords, words)

	// The seed is persisted so the next load does not reseed.
	_, err = os.Stat(path)
	assert.NoError(t, err)

	again, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, words, again)
}

func TestWordListFileStore_LoadSkipsCommentsAndBlanks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mots.txt")
	content := "# liste des mots interdits\n\nmerde\n  PUTAIN  \n# autre commentaire\ncon\n\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	store := NewWordListFileStore(path, testLogger())
	words, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"merde", "putain", "con"}, words)
}

func TestWordListFileStore_PersistRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mots.txt")
	store := NewWordListFileStore(path, testLogger())

	words := []string{"merde", "trou du cul", "nul"}
	require.NoError(t, store.Persist(words))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, words, loaded)
}

func TestWordListFileStore_PersistReplacesPreviousContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mots.txt")
	store := NewWordListFileStore(path, testLogger())

	require.NoError(t, store.Persist([]string{"merde", "con"}))
	require.NoError(t, store.Persist([]string{"merde"}))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"merde"}, loaded)
}

func TestWordListFileStore_PersistCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "mots.txt")
	store := NewWordListFileStore(path, testLogger())

	require.NoError(t, store.Persist([]string{"merde"}))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"merde"}, loaded)
}
