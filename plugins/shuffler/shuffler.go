// Package shuffler is the default Shuffler plugin: it aggregates one
// file's mapped partitions by word, within each partition, never across
// partitions (spec §4.5).
package shuffler

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/sakkammadam/phasemr/internal/wirefmt"
	"github.com/sakkammadam/phasemr/mrerrors"
	"github.com/sakkammadam/phasemr/stage"
)

// Shuffler is the default Shuffler implementation.
type Shuffler struct{}

// New returns a default Shuffler.
func New() *Shuffler { return &Shuffler{} }

// Run reads dir (a mapper_root/<file> sub-directory of part-<k> triple
// files) and aggregates each partition's triples into an OrderedCounts,
// in partition order. Partition index is recovered by directory iteration
// order, never by parsing the file name (spec §4.8).
func (s *Shuffler) Run(dir string) (stage.ShuffleOutput, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return stage.ShuffleOutput{}, mrerrors.ShuffleInputMissing{Path: dir, Err: err}
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	partitions := make([]stage.PartitionCounts, 0, len(names))
	for idx, name := range names {
		path := filepath.Join(dir, name)
		f, err := os.Open(path)
		if err != nil {
			return stage.ShuffleOutput{}, mrerrors.ShuffleInputMissing{Path: path, Err: err}
		}
		triples, err := wirefmt.ReadTriples(f)
		closeErr := f.Close()
		if err != nil {
			return stage.ShuffleOutput{}, mrerrors.ShuffleInputMissing{Path: path, Err: err}
		}
		if closeErr != nil {
			return stage.ShuffleOutput{}, mrerrors.ShuffleInputMissing{Path: path, Err: closeErr}
		}

		counts := make(map[stage.Word]int, len(triples))
		for _, t := range triples {
			counts[t.Word] += t.Count
		}

		partitions = append(partitions, stage.PartitionCounts{
			Partition: idx,
			Counts:    stage.NewOrderedCounts(counts),
		})
	}

	return stage.ShuffleOutput{
		File:       filepath.Base(dir),
		Partitions: partitions,
	}, nil
}
