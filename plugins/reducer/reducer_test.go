package reducer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sakkammadam/phasemr/internal/wirefmt"
	"github.com/sakkammadam/phasemr/mrerrors"
	"github.com/sakkammadam/phasemr/stage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCounts(t *testing.T, dir, name string, counts stage.OrderedCounts) {
	t.Helper()
	f, err := os.Create(filepath.Join(dir, name))
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, wirefmt.WriteCounts(f, counts))
}

func TestReducer_Run_AggregatesAcrossPartitions(t *testing.T) {
	dir := t.TempDir()
	fileDir := filepath.Join(dir, "a.txt")
	require.NoError(t, os.MkdirAll(fileDir, 0o755))

	writeCounts(t, fileDir, "part-00", stage.OrderedCounts{{Word: "cat", Count: 1}, {Word: "the", Count: 2}})
	writeCounts(t, fileDir, "part-01", stage.OrderedCounts{{Word: "mat", Count: 1}, {Word: "the", Count: 1}})

	r := New()
	res, err := r.Run(fileDir)
	require.NoError(t, err)

	assert.Equal(t, "a.txt", res.File)
	require.True(t, res.Counts.IsSorted())
	assert.Equal(t, stage.OrderedCounts{
		{Word: "cat", Count: 1},
		{Word: "mat", Count: 1},
		{Word: "the", Count: 3},
	}, res.Counts)
}

func TestReducer_Run_EmptyDirectory(t *testing.T) {
	dir := t.TempDir()
	fileDir := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.MkdirAll(fileDir, 0o755))

	r := New()
	res, err := r.Run(fileDir)
	require.NoError(t, err)
	assert.Empty(t, res.Counts)
}

func TestReducer_Run_MissingDirectory(t *testing.T) {
	r := New()
	_, err := r.Run(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	var missing mrerrors.ReduceInputMissing
	assert.ErrorAs(t, err, &missing)
}
