package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmcphillips/skope-interface/internal/store"
)

// seedSavedQueries writes fixture queries into a fresh store and returns
// its path.
func seedSavedQueries(t *testing.T) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "skope.db")
	st, err := store.Open(dbPath)
	require.NoError(t, err)
	defer func() { require.NoError(t, st.Close()) }()

	ctx := context.Background()
	queries := []store.SavedQuery{
		{
			Name: "drought-sw", Dataset: "lbda", Variable: "PDSI",
			Start: "1200-01", End: "1400-12", Seq: 1,
			Token:  "0190a5e4-0000-7000-8000-000000000001",
			Filter: map[string]interface{}{"wet": float64(1)},
		},
		{
			Name: "gdd-classic", Dataset: "paleocar", Variable: "GDD",
			Start: "0600", End: "1300", Seq: 2,
			Token: "0190a5e4-0000-7000-8000-000000000002",
		},
	}
	for _, q := range queries {
		require.NoError(t, st.Save(ctx, q))
	}
	return dbPath
}

func TestSavedListShowsQueries(t *testing.T) {
	dbPath := seedSavedQueries(t)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewSavedCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"list", "--db", dbPath})

	err := cmd.Execute()
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "drought-sw")
	assert.Contains(t, output, "gdd-classic")
	assert.Contains(t, output, "1200-01 - 1400-12")
}

func TestSavedListFiltersByDataset(t *testing.T) {
	dbPath := seedSavedQueries(t)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewSavedCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"list", "--db", dbPath, "--dataset", "paleocar"})

	err := cmd.Execute()
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "gdd-classic")
	assert.NotContains(t, output, "drought-sw")
}

func TestSavedListEmptyStore(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "skope.db")

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewSavedCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"list", "--db", dbPath})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Equal(t, "No saved queries.\n", buf.String())
}

func TestSavedListLimit(t *testing.T) {
	dbPath := seedSavedQueries(t)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewSavedCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"list", "--db", dbPath, "--limit", "1"})

	err := cmd.Execute()
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "drought-sw")
	assert.NotContains(t, output, "gdd-classic")
}

func TestSavedListLimitClampsToOne(t *testing.T) {
	dbPath := seedSavedQueries(t)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewSavedCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"list", "--db", dbPath, "--limit=-3"})

	err := cmd.Execute()
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "drought-sw")
	assert.NotContains(t, output, "gdd-classic")
}

func TestSavedListJSON(t *testing.T) {
	dbPath := seedSavedQueries(t)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	cmd := NewSavedCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"list", "--db", dbPath})

	err := cmd.Execute()
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)

	queries := resp.Data.([]interface{})
	require.Len(t, queries, 2)

	// List is ordered by name.
	first := queries[0].(map[string]interface{})
	assert.Equal(t, "drought-sw", first["name"])
	assert.Equal(t, "lbda", first["dataset"])
}

func TestSavedShow(t *testing.T) {
	dbPath := seedSavedQueries(t)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewSavedCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"show", "gdd-classic", "--db", dbPath})

	err := cmd.Execute()
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "gdd-classic")
	assert.Contains(t, output, "paleocar")
	assert.Contains(t, output, "0600 - 1300")
}

func TestSavedShowRendersFilter(t *testing.T) {
	dbPath := seedSavedQueries(t)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewSavedCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"show", "drought-sw", "--db", dbPath})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `{"wet":1}`)
}

func TestSavedShowMissing(t *testing.T) {
	dbPath := seedSavedQueries(t)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewSavedCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"show", "absent", "--db", dbPath})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "E302")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, buf.String(), "absent")
}

func TestSavedRemove(t *testing.T) {
	dbPath := seedSavedQueries(t)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewSavedCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"rm", "drought-sw", "--db", dbPath})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Equal(t, "Deleted drought-sw\n", buf.String())

	st, err := store.Open(dbPath)
	require.NoError(t, err)
	defer st.Close()
	_, err = st.GetByName(context.Background(), "drought-sw")
	assert.True(t, store.IsNotFound(err))
}

func TestSavedRemoveMissing(t *testing.T) {
	dbPath := seedSavedQueries(t)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewSavedCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"rm", "absent", "--db", dbPath})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "E302")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestSavedRequiresDB(t *testing.T) {
	cmd := NewSavedCommand(&RootOptions{Format: "text"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"list"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db")
}
