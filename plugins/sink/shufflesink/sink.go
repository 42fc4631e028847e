// Package shufflesink is the default ShuffleSink plugin: it persists one
// Shuffler result's partitions under <root>/<file>/part-<partition>, each
// file a key-ordered "word\tcount" listing (spec §4.6).
package shufflesink

import (
	"os"
	"path/filepath"

	"github.com/sakkammadam/phasemr/internal/partname"
	"github.com/sakkammadam/phasemr/internal/wirefmt"
	"github.com/sakkammadam/phasemr/mrerrors"
	"github.com/sakkammadam/phasemr/stage"
)

// Sink is the default ShuffleSink implementation.
type Sink struct {
	Root string
}

// New returns a Sink rooted at root.
func New(root string) *Sink {
	return &Sink{Root: root}
}

// Write persists output's partitions under Root/<file>/part-<k> and
// returns Root as the learned shuffler_root.
func (s *Sink) Write(output stage.ShuffleOutput) (string, error) {
	dir := filepath.Join(s.Root, output.File)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", mrerrors.SinkWriteFailed{Stage: "shuffle", Path: dir, Err: err}
	}

	total := len(output.Partitions)
	for _, pc := range output.Partitions {
		name := partname.Name(pc.Partition, total)
		path := filepath.Join(dir, name)

		f, err := os.Create(path)
		if err != nil {
			return "", mrerrors.SinkWriteFailed{Stage: "shuffle", Path: path, Err: err}
		}
		err = wirefmt.WriteCounts(f, pc.Counts)
		closeErr := f.Close()
		if err != nil {
			return "", mrerrors.SinkWriteFailed{Stage: "shuffle", Path: path, Err: err}
		}
		if closeErr != nil {
			return "", mrerrors.SinkWriteFailed{Stage: "shuffle", Path: path, Err: closeErr}
		}
	}

	return s.Root, nil
}
