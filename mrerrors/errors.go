// Package mrerrors defines the error taxonomy from spec.md §7: a closed
// set of concrete types the orchestrator and stage plugins return, so
// callers can distinguish failure kinds with errors.As instead of string
// matching.
package mrerrors

import "fmt"

// PluginOpenError reports that a plugin artifact could not be opened.
type PluginOpenError struct {
	Path    string
	Message string
}

func (e PluginOpenError) Error() string {
	return fmt.Sprintf("cannot load library: %s: %s", e.Path, e.Message)
}

// SymbolMissing reports that a factory or destructor symbol was absent (or
// of the wrong type) in an opened plugin artifact.
type SymbolMissing struct {
	Path    string
	Symbol  string
	Message string
}

func (e SymbolMissing) Error() string {
	return fmt.Sprintf("cannot load symbol from %s: %s: %s", e.Path, e.Symbol, e.Message)
}

// InputValidationError reports a problem with the input directory itself
// (missing, not a directory, or empty).
type InputValidationError struct {
	Path    string
	Message string
}

func (e InputValidationError) Error() string {
	return fmt.Sprintf("input directory %s: %s", e.Path, e.Message)
}

// DuplicateInputName reports that two input files share a leaf name.
type DuplicateInputName struct {
	Leaf string
}

func (e DuplicateInputName) Error() string {
	return fmt.Sprintf("duplicate input file name: %s", e.Leaf)
}

// InputUnreadable reports that an InputReader could not open its file.
type InputUnreadable struct {
	Path string
	Err  error
}

func (e InputUnreadable) Error() string {
	return fmt.Sprintf("input unreadable: %s: %v", e.Path, e.Err)
}

func (e InputUnreadable) Unwrap() error { return e.Err }

// MapperFailed reports that a Mapper task failed for one partition of one
// file.
type MapperFailed struct {
	File      string
	Partition int
	Err       error
}

func (e MapperFailed) Error() string {
	return fmt.Sprintf("mapper failed: file=%s partition=%d: %v", e.File, e.Partition, e.Err)
}

func (e MapperFailed) Unwrap() error { return e.Err }

// ShuffleInputMissing reports that a Shuffler could not read its
// temp_mapper/<file> sub-directory or one of its partition files.
type ShuffleInputMissing struct {
	Path string
	Err  error
}

func (e ShuffleInputMissing) Error() string {
	return fmt.Sprintf("shuffle input missing: %s: %v", e.Path, e.Err)
}

func (e ShuffleInputMissing) Unwrap() error { return e.Err }

// ReduceInputMissing reports that a Reducer could not read a shuffled
// partition file.
type ReduceInputMissing struct {
	Path string
	Err  error
}

func (e ReduceInputMissing) Error() string {
	return fmt.Sprintf("reduce input missing: %s: %v", e.Path, e.Err)
}

func (e ReduceInputMissing) Unwrap() error { return e.Err }

// SinkWriteFailed reports that a persistence sink failed to write its
// output.
type SinkWriteFailed struct {
	Stage string
	Path  string
	Err   error
}

func (e SinkWriteFailed) Error() string {
	return fmt.Sprintf("%s sink write failed: %s: %v", e.Stage, e.Path, e.Err)
}

func (e SinkWriteFailed) Unwrap() error { return e.Err }

// ReconciliationFailed reports that the final output file set did not
// match the input file set (spec I3 / P6). Both directions of the
// mismatch are recorded (see SPEC_FULL.md §3).
type ReconciliationFailed struct {
	MissingInOutput []string
	MissingInInput  []string
}

func (e ReconciliationFailed) Error() string {
	return fmt.Sprintf(
		"reconciliation failed: %d file(s) missing in output, %d file(s) missing in input",
		len(e.MissingInOutput), len(e.MissingInInput),
	)
}
