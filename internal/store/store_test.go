package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testStore opens a store in a fresh temp directory and closes it with the
// test.
func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "skope.db"))
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, s.Close()) })
	return s
}

func TestOpenAppliesPragmas(t *testing.T) {
	s := testStore(t)

	assert.NoError(t, s.verifyPragma("journal_mode", "wal"))
	assert.NoError(t, s.verifyPragma("synchronous", "1")) // NORMAL
	assert.NoError(t, s.verifyPragma("busy_timeout", "5000"))
	assert.NoError(t, s.verifyPragma("foreign_keys", "1"))
}

func TestOpenSetsSchemaVersion(t *testing.T) {
	s := testStore(t)

	assert.NoError(t, s.verifyPragma("user_version", "1"))
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skope.db")

	first, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, first.Save(context.Background(), SavedQuery{
		Name:    "drought-sw",
		Dataset: "lbda",
	}))
	require.NoError(t, first.Close())

	// Reopening reapplies schema and migrations without disturbing data.
	second, err := Open(path)
	require.NoError(t, err)
	defer second.Close()

	q, err := second.GetByName(context.Background(), "drought-sw")
	require.NoError(t, err)
	assert.Equal(t, "lbda", q.Dataset)
}

func TestCloseIsSafeOnZeroStore(t *testing.T) {
	var s Store
	assert.NoError(t, s.Close())
}
