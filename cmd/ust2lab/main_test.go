package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ieee0824/ust2lab-go/config"
	"github.com/ieee0824/ust2lab-go/plan"
	"github.com/ieee0824/ust2lab-go/segment"
)

func testPlan() *plan.Plan {
	segs := []segment.Segment{
		{Name: "k", Start: 0, End: 50, Points: []float64{}, Extras: []string{}},
		{Name: "a", Start: 50, End: 300, Points: []float64{}, Extras: []string{}},
	}
	return plan.New("song", "song.ust", segment.DefaultConfig(), segs)
}

func TestWriteOutputLabels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "song.lab")
	require.NoError(t, writeOutput(path, testPlan(), "hts"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "0 500000 k\n500000 3000000 a\n", string(data))
}

func TestWriteOutputPlan(t *testing.T) {
	p := testPlan()
	path := filepath.Join(t.TempDir(), "song.plan")
	require.NoError(t, writeOutput(path, p, config.FormatPlan))

	got, err := plan.Load(path)
	require.NoError(t, err)
	require.Equal(t, p.ID, got.ID)
	require.Len(t, got.Segments, 2)
}

func TestWriteOutputErrors(t *testing.T) {
	dir := t.TempDir()
	require.Error(t, writeOutput(filepath.Join(dir, "missing", "song.lab"), testPlan(), "hts"))
	require.Error(t, writeOutput(filepath.Join(dir, "song.json"), testPlan(), "json"))
}
