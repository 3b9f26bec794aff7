package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShiftYearsBack(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewShiftCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"1200", "--by=-250", "--resolution", "year"})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Equal(t, "0950\n", buf.String())
}

func TestShiftMonthCarriesYear(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewShiftCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"2020-01", "--by=-1", "--resolution", "month"})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Equal(t, "2019-12\n", buf.String())
}

func TestShiftForward(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewShiftCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"2020-01", "--by=25", "--resolution", "month"})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Equal(t, "2022-02\n", buf.String())
}

func TestShiftIntoYearZero(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewShiftCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"1", "--by=-1", "--resolution", "year"})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Equal(t, "0000\n", buf.String())
}

func TestShiftJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	cmd := NewShiftCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"1200", "--by=-250", "--resolution", "year"})

	err := cmd.Execute()
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)

	data := resp.Data.(map[string]interface{})
	assert.Equal(t, float64(-250), data["offset"])
	assert.Equal(t, "0950", data["date"])
}

func TestShiftRequiresBy(t *testing.T) {
	cmd := NewShiftCommand(&RootOptions{Format: "text"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"1200"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "by")
}

func TestShiftMalformedDate(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewShiftCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"twelve hundred", "--by=1", "--resolution", "year"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "E101")
	assert.Equal(t, ExitFailure, GetExitCode(err))
}
