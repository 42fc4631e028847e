// Package wirefmt is the line-oriented text encoding shared by the four
// persistence sinks, generalized from dmrgo's printEmitter
// ("key<TAB>value\n", see dmrgo/runners.go) to the two record shapes the
// pipeline's sinks actually persist: map triples and word counts. Spec.md
// §6 leaves the on-disk encoding to each sink; this is the one this repo's
// sinks share.
package wirefmt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sakkammadam/phasemr/stage"
)

// WriteTriples writes triples to w, one per line, as
// "word\tcount\tpartition", in the given order.
func WriteTriples(w io.Writer, triples stage.MapPartition) error {
	bw := bufio.NewWriter(w)
	for _, t := range triples {
		if _, err := fmt.Fprintf(bw, "%s\t%d\t%d\n", t.Word, t.Count, t.Partition); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadTriples parses the format WriteTriples produces.
func ReadTriples(r io.Reader) (stage.MapPartition, error) {
	var out stage.MapPartition
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 3 {
			return nil, fmt.Errorf("wirefmt: malformed triple line %q", line)
		}
		count, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("wirefmt: malformed triple count in %q: %w", line, err)
		}
		partition, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, fmt.Errorf("wirefmt: malformed triple partition in %q: %w", line, err)
		}
		out = append(out, stage.MapTriple{Word: fields[0], Count: count, Partition: partition})
	}
	return out, sc.Err()
}

// WriteCounts writes counts to w, one per line, as "word\tcount", in the
// slice's existing order (callers pass key-ordered OrderedCounts).
func WriteCounts(w io.Writer, counts stage.OrderedCounts) error {
	bw := bufio.NewWriter(w)
	for _, wc := range counts {
		if _, err := fmt.Fprintf(bw, "%s\t%d\n", wc.Word, wc.Count); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadCounts parses the format WriteCounts produces.
func ReadCounts(r io.Reader) (stage.OrderedCounts, error) {
	var out stage.OrderedCounts
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		fields := strings.SplitN(line, "\t", 2)
		if len(fields) != 2 {
			return nil, fmt.Errorf("wirefmt: malformed count line %q", line)
		}
		count, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("wirefmt: malformed count in %q: %w", line, err)
		}
		out = append(out, stage.WordCount{Word: fields[0], Count: count})
	}
	return out, sc.Err()
}
