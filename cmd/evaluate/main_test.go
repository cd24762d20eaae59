package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"route-evaluator/trip"
)

const testLocations = `{
  "HOME": {"lat": 41.481, "lon": -81.784},
  "A": {"lat": 41.5, "lon": -81.7},
  "B": {"lat": 41.6, "lon": -81.6}
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRun_Flags(t *testing.T) {
	t.Setenv("HOME_BASE", "HOME")
	locs := writeFile(t, "locations.json", testLocations)

	var out bytes.Buffer
	err := run([]string{"-locations", locs, "-pickup", "A", "-dropoff", "B", "-payout", "100", "-legs"}, &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Cost to Complete: $29.37")
	assert.Contains(t, out.String(), "Net Gain if Taken: $70.63")
	assert.Contains(t, out.String(), "TAKE IT")
	assert.Contains(t, out.String(), "paid     A -> B")
}

func TestRun_InputsFile(t *testing.T) {
	t.Setenv("HOME_BASE", "HOME")
	locs := writeFile(t, "locations.json", testLocations)
	in := writeFile(t, "inputs.json", `{"pickup": "A", "dropoff": "B", "payout": 10, "timestamp": "2025-06-01T09:30:00"}`)

	var out bytes.Buffer
	require.NoError(t, run([]string{"-locations", locs, "-inputs", in, "-debug"}, &out))

	assert.Contains(t, out.String(), "SKIP IT")
	assert.Contains(t, out.String(), "Accepted:")
}

func TestRun_BundledTable(t *testing.T) {
	t.Setenv("LOCATIONS_FILE", "")
	t.Setenv("HOME_BASE", trip.DefaultHomeBase)

	var out bytes.Buffer
	require.NoError(t, run([]string{"-pickup", "44111", "-dropoff", "44106", "-payout", "71"}, &out))
	assert.Contains(t, out.String(), "ending at home base (44107)")
}

func TestRun_Errors(t *testing.T) {
	t.Setenv("HOME_BASE", "HOME")
	locs := writeFile(t, "locations.json", testLocations)

	cases := map[string][]string{
		"missing dropoff": {"-locations", locs, "-pickup", "A"},
		"negative payout": {"-locations", locs, "-pickup", "A", "-dropoff", "B", "-payout", "-1"},
		"unknown zip":     {"-locations", locs, "-pickup", "A", "-dropoff", "ZZ", "-payout", "5"},
		"missing file":    {"-locations", filepath.Join(t.TempDir(), "none.json"), "-pickup", "A", "-dropoff", "B"},
		"bad inputs file": {"-locations", locs, "-inputs", writeFile(t, "bad.json", "{")},
		"unknown flag":    {"-nope"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			assert.Error(t, run(args, &out))
		})
	}
}
