package stage

// InputResult is the output of one InputReader run against one file: the
// file's lines split into ordered, bounded partitions. Concatenating
// Partitions in index order reproduces the file verbatim (spec P1).
type InputResult struct {
	File       FileName
	Partitions []InputPartition
}

// InputReader reads one input file and partitions its lines. Implementations
// are the Input-stage plugin (spec §4.2).
type InputReader interface {
	Run(path string) (InputResult, error)
}

// PartitionSizer is an optional capability an InputReader may implement to
// accept a non-default partition size from the orchestrator (engine.Options,
// engine.WithPartitionSize). Plugins that don't implement it keep their own
// fixed partitioning policy.
type PartitionSizer interface {
	SetPartitionSize(n int)
}

// MapResult is the output of one Mapper run against one partition of one
// file.
type MapResult struct {
	File      FileName
	Partition PartitionIndex
	Triples   MapPartition
	// TotalPartitions is the file's total partition count, known only to
	// the orchestrator (it dispatched one Mapper task per partition) and
	// stamped onto the result before it reaches MapSink. MapSink needs it
	// to compute the zero-padded part-<k> width per spec.md §4.8 — the
	// same width ShuffleSink derives from len(ShuffleOutput.Partitions).
	TotalPartitions int
}

// Mapper maps the lines of one partition of one file into word triples.
// Implementations are the Map-stage plugin (spec §4.3); tokenization and
// normalization are a black box from the core's point of view.
type Mapper interface {
	Run(file FileName, partition PartitionIndex, lines InputPartition) (MapResult, error)
}

// MapSink persists one Mapper result under <root>/<file>/part-<partition>.
// Implementations choose the root directory and the on-disk encoding
// (spec §4.4); the returned root is learned by the orchestrator from the
// first completed sink task.
type MapSink interface {
	Write(result MapResult) (root string, err error)
}

// PartitionCounts is one partition's word-count aggregation within a
// single file's Shuffle output.
type PartitionCounts struct {
	Partition PartitionIndex
	Counts    OrderedCounts
}

// ShuffleOutput is the output of one Shuffler run against one
// <mapper_root>/<file> sub-directory: the per-partition aggregations for
// that file, in partition order.
type ShuffleOutput struct {
	File       FileName
	Partitions []PartitionCounts
}

// Shuffler aggregates one file's mapped partitions by word, within each
// partition (no cross-partition aggregation; spec §4.5).
type Shuffler interface {
	Run(dir string) (ShuffleOutput, error)
}

// ShuffleSink persists one Shuffler result under
// <root>/<file>/part-<partition> (spec §4.6).
type ShuffleSink interface {
	Write(output ShuffleOutput) (root string, err error)
}

// ReduceResult is the output of one Reducer run against one
// <shuffler_root>/<file> sub-directory: the file's word counts aggregated
// across all of its shuffled partitions.
type ReduceResult struct {
	File   FileName
	Counts OrderedCounts
}

// Reducer aggregates one file's shuffled partitions into a single word
// count map (spec §4.7).
type Reducer interface {
	Run(dir string) (ReduceResult, error)
}

// ReducerSink persists one Reducer result as a single file under
// <root>/<file> — the final pipeline output (spec §4.7, §6).
type ReducerSink interface {
	Write(result ReduceResult) (root string, err error)
}
