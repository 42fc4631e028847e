// Package input is the default InputReader plugin: it reads one file and
// splits its lines into bounded partitions (spec §4.2).
package input

import (
	"bufio"
	"os"
	"path/filepath"

	"github.com/sakkammadam/phasemr/mrerrors"
	"github.com/sakkammadam/phasemr/stage"
)

// Reader is the default InputReader implementation.
type Reader struct {
	// PartitionSize overrides stage.MaxPartitionRecords when positive.
	// Exposed so engine.Options can tune it without a plugin rebuild.
	PartitionSize int
}

// New returns a Reader using the spec's default partition size.
func New() *Reader {
	return &Reader{PartitionSize: stage.MaxPartitionRecords}
}

// SetPartitionSize implements stage.PartitionSizer, letting engine.Run apply
// engine.WithPartitionSize to a Reader built through the opaque
// pluginloader.CreateInputFunc factory.
func (r *Reader) SetPartitionSize(n int) {
	r.PartitionSize = n
}

func (r *Reader) partitionSize() int {
	if r.PartitionSize <= 0 {
		return stage.MaxPartitionRecords
	}
	return r.PartitionSize
}

// Run reads path and returns it split into ordered, bounded partitions. No
// line is dropped or duplicated, and partitions concatenated in index
// order reproduce the file verbatim (spec P1).
func (r *Reader) Run(path string) (stage.InputResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return stage.InputResult{}, mrerrors.InputUnreadable{Path: path, Err: err}
	}
	defer f.Close()

	var partitions []stage.InputPartition
	var current stage.InputPartition

	size := r.partitionSize()
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		current = append(current, scanner.Text())
		if len(current) >= size {
			partitions = append(partitions, current)
			current = nil
		}
	}
	if err := scanner.Err(); err != nil {
		return stage.InputResult{}, mrerrors.InputUnreadable{Path: path, Err: err}
	}
	if len(current) > 0 {
		partitions = append(partitions, current)
	}

	return stage.InputResult{
		File:       filepath.Base(path),
		Partitions: partitions,
	}, nil
}
