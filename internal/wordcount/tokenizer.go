// Package wordcount is the default Map-stage tokenizer. spec.md §4.3 treats
// word normalization as a black box owned by the Mapper plugin; this is
// dmrgo's own tokenizer (examples/wordcount.go), carried over as the
// default implementation.
package wordcount

import "strings"

// Tokenize splits line into lowercase, whitespace-separated words, in
// order, with duplicates preserved (Map-stage output is one triple per
// occurrence, not per distinct word; spec §4.3).
func Tokenize(line string) []string {
	return strings.Fields(strings.ToLower(strings.TrimSpace(line)))
}
