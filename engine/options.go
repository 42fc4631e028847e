package engine

import (
	"runtime"
	"time"

	"github.com/sakkammadam/phasemr/reporter"
	"github.com/sakkammadam/phasemr/stage"
	"go.uber.org/zap"
)

// Options tunes the orchestrator. The shipped CLI doesn't expose flags for
// any of these (spec.md §6 pins the CLI to one positional argument with no
// flags), but an embedding program can configure them via functional
// options (SPEC_FULL.md §1.3).
type Options struct {
	WorkerPoolSize int
	PartitionSize  int
	PollInterval   time.Duration
	Reporter       reporter.Reporter
}

// Option configures Options.
type Option func(*Options)

// WithWorkerPoolSize bounds the number of concurrent tasks per stage. The
// default is runtime.GOMAXPROCS(0).
func WithWorkerPoolSize(n int) Option {
	return func(o *Options) { o.WorkerPoolSize = n }
}

// WithPartitionSize overrides stage.MaxPartitionRecords. engine.Run applies
// it to any InputReader that implements stage.PartitionSizer (the default
// plugins/input.Reader does); InputReader plugins that don't implement it
// keep their own fixed partitioning policy.
func WithPartitionSize(n int) Option {
	return func(o *Options) { o.PartitionSize = n }
}

// WithPollInterval bounds how often the B1/B2 filesystem barriers fall
// back to polling when no fsnotify event arrives.
func WithPollInterval(d time.Duration) Option {
	return func(o *Options) { o.PollInterval = d }
}

// WithReporter overrides the run-narration sink. The default discards.
func WithReporter(r reporter.Reporter) Option {
	return func(o *Options) { o.Reporter = r }
}

func resolveOptions(opts []Option) Options {
	o := Options{
		WorkerPoolSize: runtime.GOMAXPROCS(0),
		PartitionSize:  stage.MaxPartitionRecords,
		PollInterval:   20 * time.Millisecond,
	}
	for _, apply := range opts {
		apply(&o)
	}
	if o.WorkerPoolSize <= 0 {
		o.WorkerPoolSize = runtime.GOMAXPROCS(0)
	}
	if o.PartitionSize <= 0 {
		o.PartitionSize = stage.MaxPartitionRecords
	}
	if o.PollInterval <= 0 {
		o.PollInterval = 20 * time.Millisecond
	}
	if o.Reporter == nil {
		o.Reporter = reporter.New(zap.NewNop().Sugar())
	}
	return o
}
