package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/hubdispo/hubdispo/internal/synth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestGenerateJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fleet.json")

	_, err := run(t, "generate", "--seed", "7", "--shipments", "3", "--groups", "2", "--alerts", "4", "--out", path)
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var ds synth.Dataset
	require.NoError(t, json.Unmarshal(raw, &ds))
	assert.Len(t, ds.Shipments, 3)
	assert.Len(t, ds.Groups, 2)
	assert.Len(t, ds.Alerts, 4)
	assert.Equal(t, "SHP-000001", ds.Shipments[0].ID)
}

func TestGenerateUnknownFormat(t *testing.T) {
	_, err := run(t, "generate", "--format", "xml")
	assert.Error(t, err)
	format = "json"
}

func TestAlertsCommand(t *testing.T) {
	out, err := run(t, "alerts", "--limit", "3")
	require.NoError(t, err)

	assert.Contains(t, out, "Showing 3 of 12 alerts")
	assert.Contains(t, out, "ALT-003")
	assert.NotContains(t, out, "ALT-004")
}
