package shuffler

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

func writePartition(t *testing.T, dir, name string, triples stage.MapPartition) {
	t.Helper()
	f, err := os.Create(filepath.Join(dir, name))
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, wirefmt.WriteTriples(f, triples))
}

func TestShuffler_Run_AggregatesPerPartitionOnly(t *testing.T) {
	dir := t.TempDir()
	fileDir := filepath.Join(dir, "a.txt")
	require.NoError(t, os.MkdirAll(fileDir, 0o755))

	writePartition(t, fileDir, "part-00", stage.MapPartition{
		{Word: "the", Count: 1, Partition: 0},
		{Word: "cat", Count: 1, Partition: 0},
		{Word: "the", Count: 1, Partition: 0},
	})
	writePartition(t, fileDir, "part-01", stage.MapPartition{
		{Word: "the", Count: 1, Partition: 1},
		{Word: "mat", Count: 1, Partition: 1},
	})

	s := New()
	out, err := s.Run(fileDir)
	require.NoError(t, err)

	assert.Equal(t, "a.txt", out.File)
	require.Len(t, out.Partitions, 2)

	assert.Equal(t, 0, out.Partitions[0].Partition)
	assert.True(t, out.Partitions[0].Counts.IsSorted())
	assert.Equal(t, stage.OrderedCounts{{Word: "cat", Count: 1}, {Word: "the", Count: 2}}, out.Partitions[0].Counts)

	assert.Equal(t, 1, out.Partitions[1].Partition)
	assert.Equal(t, stage.OrderedCounts{{Word: "mat", Count: 1}, {Word: "the", Count: 1}}, out.Partitions[1].Counts)
}

func TestShuffler_Run_PartitionSumMatchesTripleCount(t *testing.T) {
	// spec P3.
	dir := t.TempDir()
	fileDir := filepath.Join(dir, "a.txt")
	require.NoError(t, os.MkdirAll(fileDir, 0o755))
	triples := stage.MapPartition{
		{Word: "a", Count: 1, Partition: 0},
		{Word: "b", Count: 1, Partition: 0},
		{Word: "a", Count: 1, Partition: 0},
	}
	writePartition(t, fileDir, "part-00", triples)

	s := New()
	out, err := s.Run(fileDir)
	require.NoError(t, err)
	require.Len(t, out.Partitions, 1)
	assert.Equal(t, len(triples), out.Partitions[0].Counts.Sum())
}

func TestShuffler_Run_MissingDirectory(t *testing.T) {
	s := New()
	_, err := s.Run(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	var missing mrerrors.ShuffleInputMissing
	assert.ErrorAs(t, err, &missing)
}
