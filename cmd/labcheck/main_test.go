package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ieee0824/ust2lab-go/lab"
	"github.com/ieee0824/ust2lab-go/plan"
	"github.com/ieee0824/ust2lab-go/segment"
)

func TestReadLabelsByExtension(t *testing.T) {
	dir := t.TempDir()
	want := []lab.Label{{Start: 0, End: 50, Name: "k"}, {Start: 50, End: 300, Name: "a"}}

	hts := filepath.Join(dir, "song.lab")
	require.NoError(t, os.WriteFile(hts, []byte("0 500000 k\n500000 3000000 a\n"), 0o644))
	got, err := readLabels(hts, "")
	require.NoError(t, err)
	require.Equal(t, want, got)

	segs := []segment.Segment{
		{Sample: "song", Name: "k", Start: 0, End: 50, Points: []float64{}, Extras: []string{}},
		{Sample: "song", Name: "a", Start: 50, End: 300, Points: []float64{}, Extras: []string{}},
	}
	planPath := filepath.Join(dir, "song.plan")
	require.NoError(t, plan.Save(planPath, plan.New("song", "song.ust", segment.DefaultConfig(), segs)))
	got, err = readLabels(planPath, "")
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestReadLabelsErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "song.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))
	_, err := readLabels(path, "")
	require.Error(t, err)

	_, err = readLabels(filepath.Join(dir, "missing.plan"), "")
	require.Error(t, err)
}
