// Package reporter narrates run progress and counters. It keeps the
// teacher's two-entry-point shape (Statusln, IncrCounter) but, unlike the
// Hadoop-streaming protocol dmrgo spoke over stderr, targets a structured
// zap logger by default (see SPEC_FULL.md §1.1).
package reporter

import (
	"bufio"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Reporter narrates job status and counters.
type Reporter interface {
	Statusln(args ...any)
	Statusf(format string, args ...any)
	IncrCounter(group, counter string, amount int)
}

// zapReporter is the default Reporter, backed by a zap.SugaredLogger.
type zapReporter struct {
	log *zap.SugaredLogger
}

// New returns the default Reporter, backed by log.
func New(log *zap.SugaredLogger) Reporter {
	return &zapReporter{log: log}
}

func (r *zapReporter) Statusln(args ...any) {
	r.log.Info(fmt.Sprintln(args...))
}

func (r *zapReporter) Statusf(format string, args ...any) {
	r.log.Infof(format, args...)
}

func (r *zapReporter) IncrCounter(group, counter string, amount int) {
	r.log.Infow("counter", "group", group, "counter", counter, "amount", amount)
}

// streamingReporter reproduces dmrgo's original Hadoop streaming status
// protocol verbatim, for a stage plugin that still shells out to a real
// Hadoop streaming harness.
type streamingReporter struct {
	w *bufio.Writer
}

// NewStreamingReporter returns a Reporter that writes the literal Hadoop
// streaming status/counter protocol to w.
func NewStreamingReporter(w io.Writer) Reporter {
	return &streamingReporter{w: bufio.NewWriter(w)}
}

func (r *streamingReporter) Statusln(args ...any) {
	s := fmt.Sprintln(args...)
	fmt.Fprintf(r.w, "reporter:status:%s", s) // \n is already in s
	r.w.Flush()
}

func (r *streamingReporter) Statusf(format string, args ...any) {
	s := fmt.Sprintf(format, args...)
	fmt.Fprintf(r.w, "reporter:status:%s\n", s)
	r.w.Flush()
}

func (r *streamingReporter) IncrCounter(group, counter string, amount int) {
	fmt.Fprintf(r.w, "reporter:counter:%s,%s,%d\n", group, counter, amount)
	r.w.Flush()
}
