package input

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sakkammadam/phasemr/mrerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestReader_Run_SingleSmallFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.txt", "the cat sat\nthe mat\n")

	r := New()
	res, err := r.Run(path)
	require.NoError(t, err)

	assert.Equal(t, "a.txt", res.File)
	require.Len(t, res.Partitions, 1)
	assert.Equal(t, []string{"the cat sat", "the mat"}, []string(res.Partitions[0]))
}

func TestReader_Run_MultiPartition(t *testing.T) {
	dir := t.TempDir()
	var b strings.Builder
	for i := 0; i < 4500; i++ {
		b.WriteString("x\n")
	}
	path := writeFile(t, dir, "big.txt", b.String())

	r := New()
	res, err := r.Run(path)
	require.NoError(t, err)

	require.Len(t, res.Partitions, 3)
	assert.Len(t, res.Partitions[0], 2000)
	assert.Len(t, res.Partitions[1], 2000)
	assert.Len(t, res.Partitions[2], 500)
}

func TestReader_Run_PartitionsReproduceFileVerbatim(t *testing.T) {
	// spec P1.
	dir := t.TempDir()
	lines := make([]string, 0, 5000)
	for i := 0; i < 5000; i++ {
		lines = append(lines, "line")
	}
	content := strings.Join(lines, "\n") + "\n"
	path := writeFile(t, dir, "f.txt", content)

	r := New()
	res, err := r.Run(path)
	require.NoError(t, err)

	var got []string
	for _, p := range res.Partitions {
		got = append(got, p...)
	}
	assert.Equal(t, lines, got)
}

func TestReader_Run_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "empty.txt", "")

	r := New()
	res, err := r.Run(path)
	require.NoError(t, err)

	assert.Equal(t, "empty.txt", res.File)
	assert.Empty(t, res.Partitions)
}

func TestReader_Run_CustomPartitionSize(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "f.txt", "a\nb\nc\nd\ne\n")

	r := &Reader{PartitionSize: 2}
	res, err := r.Run(path)
	require.NoError(t, err)

	require.Len(t, res.Partitions, 3)
	assert.Len(t, res.Partitions[0], 2)
	assert.Len(t, res.Partitions[2], 1)
}

func TestReader_Run_MissingFile(t *testing.T) {
	r := New()
	_, err := r.Run(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	var unreadable mrerrors.InputUnreadable
	assert.ErrorAs(t, err, &unreadable)
}
