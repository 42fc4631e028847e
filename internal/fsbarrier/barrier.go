// Package fsbarrier implements the filesystem-observation barriers spec.md
// §4.8/§5 describes: B1 (mapper_root sub-directory count reaches the
// input-file count) and B2 (every mapper_root/<file>/part-k has a matching
// shuffler_root/<file>/part-k). A fsnotify watcher wakes the poll loop on
// directory writes; a bounded ticker is the fallback for sinks whose
// writes don't reliably generate watchable events.
package fsbarrier

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Options configures a barrier wait.
type Options struct {
	// PollInterval bounds how long the fallback ticker waits between
	// checks when no fsnotify event arrives.
	PollInterval time.Duration
	// Logger receives a debug line on every poll tick with the currently
	// observed count (SPEC_FULL.md §3's progress-narration supplement).
	Logger *zap.SugaredLogger
}

func (o Options) pollInterval() time.Duration {
	if o.PollInterval <= 0 {
		return 20 * time.Millisecond
	}
	return o.PollInterval
}

func (o Options) logger() *zap.SugaredLogger {
	if o.Logger == nil {
		return zap.NewNop().Sugar()
	}
	return o.Logger
}

// WaitForCount blocks until root contains at least want sub-directories,
// or ctx is done. Regular files under root are not counted. This
// implements barrier B1.
func WaitForCount(ctx context.Context, root string, want int, opts Options) error {
	log := opts.logger()

	watcher, err := fsnotify.NewWatcher()
	if err == nil {
		defer watcher.Close()
		_ = watcher.Add(root)
	}

	ticker := time.NewTicker(opts.pollInterval())
	defer ticker.Stop()

	for {
		entries, err := os.ReadDir(root)
		if err != nil {
			return fmt.Errorf("fsbarrier: reading %s: %w", root, err)
		}
		dirs := 0
		for _, e := range entries {
			if e.IsDir() {
				dirs++
			}
		}
		log.Debugw("barrier poll", "root", root, "observed", dirs, "want", want)
		if dirs >= want {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		case <-watcherEvents(watcher):
		}
	}
}

// WaitForMatch blocks until every file under mapperRoot/<file>/part-* has a
// same-named counterpart under shufflerRoot/<file>/part-*, or ctx is done.
// This implements barrier B2, which is stronger than B1 because it checks
// per-partition-file correspondence, not just directory cardinality.
func WaitForMatch(ctx context.Context, mapperRoot, shufflerRoot string, opts Options) error {
	log := opts.logger()

	watcher, err := fsnotify.NewWatcher()
	if err == nil {
		defer watcher.Close()
		_ = watcher.Add(shufflerRoot)
	}

	ticker := time.NewTicker(opts.pollInterval())
	defer ticker.Stop()

	for {
		missing, err := missingShufflePartitions(mapperRoot, shufflerRoot)
		if err != nil {
			return err
		}
		log.Debugw("barrier poll", "mapperRoot", mapperRoot, "shufflerRoot", shufflerRoot, "missing", len(missing))
		if len(missing) == 0 {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		case <-watcherEvents(watcher):
		}
	}
}

func missingShufflePartitions(mapperRoot, shufflerRoot string) ([]string, error) {
	fileDirs, err := os.ReadDir(mapperRoot)
	if err != nil {
		return nil, fmt.Errorf("fsbarrier: reading %s: %w", mapperRoot, err)
	}

	var missing []string
	for _, fd := range fileDirs {
		if !fd.IsDir() {
			continue
		}
		parts, err := os.ReadDir(filepath.Join(mapperRoot, fd.Name()))
		if err != nil {
			return nil, fmt.Errorf("fsbarrier: reading %s: %w", filepath.Join(mapperRoot, fd.Name()), err)
		}
		for _, part := range parts {
			if part.IsDir() {
				continue
			}
			want := filepath.Join(shufflerRoot, fd.Name(), part.Name())
			if _, err := os.Stat(want); err != nil {
				missing = append(missing, want)
			}
		}
	}
	return missing, nil
}

// watcherEvents returns a channel that fires on any fsnotify event, or a
// nil channel (blocks forever) if watcher is nil.
func watcherEvents(watcher *fsnotify.Watcher) <-chan fsnotify.Event {
	if watcher == nil {
		return nil
	}
	return watcher.Events
}
