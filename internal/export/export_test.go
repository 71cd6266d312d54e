package export

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/hubdispo/hubdispo/internal/synth"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func testDataset(t *testing.T) *synth.Dataset {
	t.Helper()
	now := time.Date(2025, time.June, 2, 8, 30, 0, 0, time.UTC)
	g := synth.New(synth.WithSeed(12), synth.WithClock(func() time.Time { return now }))
	ds, err := synth.Build(g, synth.Counts{Shipments: 15, Groups: 4, Alerts: 6})
	require.NoError(t, err)
	return ds
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]string{
		"json":    FormatJSON,
		" YAML ":  FormatYAML,
		"yml":     FormatYAML,
		"Parquet": FormatParquet,
	} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := ParseFormat("csv")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestWrite_JSON(t *testing.T) {
	ds := testDataset(t)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, ds, FormatJSON))

	var decoded synth.Dataset
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Len(t, decoded.Shipments, 15)
	assert.Len(t, decoded.Groups, 4)
	assert.Len(t, decoded.Alerts, 6)
	assert.Equal(t, ds.Shipments[3].ShippingCost, decoded.Shipments[3].ShippingCost)
	assert.Contains(t, buf.String(), `"consolidationGroups"`)
	assert.Contains(t, buf.String(), `"trackingNumber"`)
}

func TestWrite_YAML(t *testing.T) {
	ds := testDataset(t)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, ds, FormatYAML))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Len(t, decoded["shipments"], 15)
	assert.Len(t, decoded["consolidationGroups"], 4)
	assert.Len(t, decoded["alerts"], 6)
}

func TestWrite_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, testDataset(t), FormatParquet)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestWriteParquet(t *testing.T) {
	ds := testDataset(t)
	dir := filepath.Join(t.TempDir(), "out")

	require.NoError(t, WriteParquet(dir, ds))

	shipments, err := parquet.ReadFile[ShipmentRow](filepath.Join(dir, ShipmentsFile))
	require.NoError(t, err)
	require.Len(t, shipments, len(ds.Shipments))
	assert.Equal(t, ds.Shipments[0].ID, shipments[0].ID)
	assert.Equal(t, ds.Shipments[0].ShippingCost, shipments[0].ShippingCostEUR)
	assert.Equal(t, ds.Shipments[0].CreatedAt.UnixMilli(), shipments[0].CreatedAt)

	groups, err := parquet.ReadFile[ConsolidationRow](filepath.Join(dir, ConsolidationsFile))
	require.NoError(t, err)
	require.Len(t, groups, len(ds.Groups))
	assert.Equal(t, int32(ds.Groups[1].Participants), groups[1].Participants)

	alerts, err := parquet.ReadFile[AlertRow](filepath.Join(dir, AlertsFile))
	require.NoError(t, err)
	require.Len(t, alerts, len(ds.Alerts))
	require.NotNil(t, alerts[0].EstimatedDelay)
	assert.Equal(t, int32(*ds.Alerts[0].EstimatedDelay), *alerts[0].EstimatedDelay)
	assert.Nil(t, alerts[2].EstimatedDelay)
}
