package disk

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helicon-labs/minuta-cli/internal/core/domain"
	"github.com/helicon-labs/minuta-cli/internal/syncdir"
)

// --- Helpers ---

func setupStore(t *testing.T) (*ContentStore, string) {
	t.Helper()
	root := t.TempDir()
	dir := filepath.Join(root, "d1")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, syncdir.NotesFile), []byte("# Notes"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, syncdir.TranscriptFile), []byte("Joe: hello"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, syncdir.MetadataFile), []byte(`{"id":"d1"}`), 0o644))
	return NewContentStore(root, time.Minute), root
}

// --- Tests ---

func TestNotes(t *testing.T) {
	store, _ := setupStore(t)

	got, err := store.Notes(context.Background(), "d1")

	require.NoError(t, err)
	assert.Equal(t, "# Notes", got)
}

func TestTranscript(t *testing.T) {
	store, _ := setupStore(t)

	got, err := store.Transcript(context.Background(), "d1")

	require.NoError(t, err)
	assert.Equal(t, "Joe: hello", got)
}

func TestRawMetadata(t *testing.T) {
	store, _ := setupStore(t)

	got, err := store.RawMetadata(context.Background(), "d1")

	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"d1"}`, string(got))
}

func TestMissingFileIsNotFound(t *testing.T) {
	store, _ := setupStore(t)

	_, err := store.Transcript(context.Background(), "unknown")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCacheServesAfterFileRemoval(t *testing.T) {
	store, root := setupStore(t)

	first, err := store.Notes(context.Background(), "d1")
	require.NoError(t, err)

	require.NoError(t, os.Remove(filepath.Join(root, "d1", syncdir.NotesFile)))

	second, err := store.Notes(context.Background(), "d1")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAbsenceIsCached(t *testing.T) {
	store, root := setupStore(t)

	_, err := store.Notes(context.Background(), "d2")
	require.ErrorIs(t, err, domain.ErrNotFound)

	// The file shows up after the miss was cached; the store keeps
	// reporting absence until the entry expires.
	dir := filepath.Join(root, "d2")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, syncdir.NotesFile), []byte("late"), 0o644))

	_, err = store.Notes(context.Background(), "d2")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestZeroTTLUsesDefault(t *testing.T) {
	store := NewContentStore(t.TempDir(), 0)
	assert.NotNil(t, store.cache)
}
