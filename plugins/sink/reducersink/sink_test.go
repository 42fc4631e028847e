package reducersink

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sakkammadam/phasemr/internal/wirefmt"
	"github.com/sakkammadam/phasemr/stage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSink_Write_SingleFinalFile(t *testing.T) {
	root := t.TempDir()
	s := New(root)

	result := stage.ReduceResult{File: "a.txt", Counts: stage.OrderedCounts{{Word: "cat", Count: 1}, {Word: "the", Count: 2}}}
	gotRoot, err := s.Write(result)
	require.NoError(t, err)
	assert.Equal(t, root, gotRoot)

	f, err := os.Open(filepath.Join(root, "a.txt"))
	require.NoError(t, err)
	defer f.Close()
	counts, err := wirefmt.ReadCounts(f)
	require.NoError(t, err)
	assert.Equal(t, result.Counts, counts)
}

func TestSink_Write_EmptyCountsStillCreatesFile(t *testing.T) {
	// spec.md §4.8: a zero-line input file must still appear under
	// final_root with an empty output file (I3).
	root := t.TempDir()
	s := New(root)

	_, err := s.Write(stage.ReduceResult{File: "empty.txt"})
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(root, "empty.txt"))
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}
