// Package mapsink is the default MapSink plugin: it persists one Mapper
// result under <root>/<file>/part-<partition> (spec §4.4).
package mapsink

import (
	"os"
	"path/filepath"

	"github.com/sakkammadam/phasemr/internal/partname"
	"github.com/sakkammadam/phasemr/internal/wirefmt"
	"github.com/sakkammadam/phasemr/mrerrors"
	"github.com/sakkammadam/phasemr/stage"
)

// Sink is the default MapSink implementation.
type Sink struct {
	// Root is the mapper_root directory all results are written under.
	Root string
}

// New returns a Sink rooted at root.
func New(root string) *Sink {
	return &Sink{Root: root}
}

// Write persists result under Root/<file>/part-<partition> and returns
// Root as the learned mapper_root (spec §6: the orchestrator learns its
// roots from the first completed sink task).
func (s *Sink) Write(result stage.MapResult) (string, error) {
	dir := filepath.Join(s.Root, result.File)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", mrerrors.SinkWriteFailed{Stage: "map", Path: dir, Err: err}
	}

	// TotalPartitions is stamped onto result by the orchestrator, which is
	// the only party that knows how many Mapper tasks a file's partitions
	// were split across (spec.md §4.8). The fallback below only protects
	// against a caller that bypasses engine.Run entirely.
	total := result.TotalPartitions
	if total <= result.Partition {
		total = result.Partition + 1
	}
	name := partname.Name(result.Partition, total)
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", mrerrors.SinkWriteFailed{Stage: "map", Path: path, Err: err}
	}
	defer f.Close()

	if err := wirefmt.WriteTriples(f, result.Triples); err != nil {
		return "", mrerrors.SinkWriteFailed{Stage: "map", Path: path, Err: err}
	}

	return s.Root, nil
}
