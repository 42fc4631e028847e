// Package reducer is the default Reducer plugin: it aggregates one file's
// shuffled partitions into a single word-count map (spec §4.7).
package reducer

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/sakkammadam/phasemr/internal/wirefmt"
	"github.com/sakkammadam/phasemr/mrerrors"
	"github.com/sakkammadam/phasemr/stage"
)

// Reducer is the default Reducer implementation.
type Reducer struct{}

// New returns a default Reducer.
func New() *Reducer { return &Reducer{} }

// Run reads dir (a shuffler_root/<file> sub-directory of part-<k>
// word-count files) and merges all of them into one key-ordered
// OrderedCounts (spec P5).
func (r *Reducer) Run(dir string) (stage.ReduceResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return stage.ReduceResult{}, mrerrors.ReduceInputMissing{Path: dir, Err: err}
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	totals := make(map[stage.Word]int)
	for _, name := range names {
		path := filepath.Join(dir, name)
		f, err := os.Open(path)
		if err != nil {
			return stage.ReduceResult{}, mrerrors.ReduceInputMissing{Path: path, Err: err}
		}
		counts, err := wirefmt.ReadCounts(f)
		closeErr := f.Close()
		if err != nil {
			return stage.ReduceResult{}, mrerrors.ReduceInputMissing{Path: path, Err: err}
		}
		if closeErr != nil {
			return stage.ReduceResult{}, mrerrors.ReduceInputMissing{Path: path, Err: closeErr}
		}
		for _, wc := range counts {
			totals[wc.Word] += wc.Count
		}
	}

	return stage.ReduceResult{
		File:   filepath.Base(dir),
		Counts: stage.NewOrderedCounts(totals),
	}, nil
}
