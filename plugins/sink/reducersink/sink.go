// Package reducersink is the default ReducerSink plugin: it persists one
// Reducer result as a single final output file, <root>/<file> (spec §4.7,
// §6).
package reducersink

import (
	"os"
	"path/filepath"

	"github.com/sakkammadam/phasemr/internal/wirefmt"
	"github.com/sakkammadam/phasemr/mrerrors"
	"github.com/sakkammadam/phasemr/stage"
)

// Sink is the default ReducerSink implementation.
type Sink struct {
	Root string
}

// New returns a Sink rooted at root.
func New(root string) *Sink {
	return &Sink{Root: root}
}

// Write persists result as a single key-ordered "word\tcount" file at
// Root/<file> and returns Root as the learned final_root. A file with no
// counts is still created, empty (spec's zero-line-input edge case is
// handled by the orchestrator calling this with an empty ReduceResult).
func (s *Sink) Write(result stage.ReduceResult) (string, error) {
	if err := os.MkdirAll(s.Root, 0o755); err != nil {
		return "", mrerrors.SinkWriteFailed{Stage: "reduce", Path: s.Root, Err: err}
	}

	path := filepath.Join(s.Root, result.File)
	f, err := os.Create(path)
	if err != nil {
		return "", mrerrors.SinkWriteFailed{Stage: "reduce", Path: path, Err: err}
	}
	err = wirefmt.WriteCounts(f, result.Counts)
	closeErr := f.Close()
	if err != nil {
		return "", mrerrors.SinkWriteFailed{Stage: "reduce", Path: path, Err: err}
	}
	if closeErr != nil {
		return "", mrerrors.SinkWriteFailed{Stage: "reduce", Path: path, Err: closeErr}
	}

	return s.Root, nil
}
