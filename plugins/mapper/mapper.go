// Package mapper is the default Mapper plugin: it tokenizes one partition's
// lines and emits one MapTriple per token occurrence (spec §4.3).
package mapper

import (
	"github.com/sakkammadam/phasemr/internal/wordcount"
	"github.com/sakkammadam/phasemr/stage"
)

// Mapper is the default Mapper implementation, using the wordcount
// tokenizer as its black-box normalization step.
type Mapper struct {
	emitted int
}

// New returns a default Mapper.
func New() *Mapper {
	return &Mapper{}
}

// Emitted returns the number of triples emitted across all Run calls on
// this instance, mirroring dmrgo's MRWordCount.mappedWords counter.
func (m *Mapper) Emitted() int { return m.emitted }

// Run tokenizes lines and emits one MapTriple per occurrence, in order,
// via an in-memory emitter adapted from dmrgo's Emitter interface
// (Emit/Flush) — see DESIGN.md.
func (m *Mapper) Run(file stage.FileName, partition stage.PartitionIndex, lines stage.InputPartition) (stage.MapResult, error) {
	e := newTripleEmitter(partition)
	for _, line := range lines {
		for _, word := range wordcount.Tokenize(line) {
			e.Emit(word)
		}
	}
	e.Flush()
	m.emitted += len(e.triples)

	return stage.MapResult{
		File:      file,
		Partition: partition,
		Triples:   e.triples,
	}, nil
}

// tripleEmitter accumulates MapTriples for one partition, adapted from
// dmrgo/emitter.go's Emitter interface: Emit appends a value, Flush is a
// no-op here because there is no underlying writer to drain.
type tripleEmitter struct {
	partition stage.PartitionIndex
	triples   stage.MapPartition
}

func newTripleEmitter(partition stage.PartitionIndex) *tripleEmitter {
	return &tripleEmitter{partition: partition}
}

func (e *tripleEmitter) Emit(word stage.Word) {
	e.triples = append(e.triples, stage.MapTriple{Word: word, Count: 1, Partition: e.partition})
}

func (e *tripleEmitter) Flush() {}
