// Package engine is the Orchestrator: it validates an input directory,
// drives the Input/Map/Shuffle/Reduce stages to completion across the
// filesystem barriers spec.md §4.8 defines, and reconciles the final
// output set against the input set.
package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sakkammadam/phasemr/internal/fsbarrier"
	"github.com/sakkammadam/phasemr/mrerrors"
	"github.com/sakkammadam/phasemr/reporter"
	"github.com/sakkammadam/phasemr/stage"
)

// Run drives the full pipeline against inputDir and returns nil only after
// SUCCESS.ind has been written under the learned final_root.
func Run(ctx context.Context, inputDir string, plugins Plugins, opts ...Option) error {
	o := resolveOptions(opts)
	rep := o.Reporter

	files, err := validateInputDir(inputDir)
	if err != nil {
		return err
	}
	rep.Statusf("validated input directory %s: %d file(s)", inputDir, len(files))

	// Stage 1: Input.
	inputResults, err := runFanOut(ctx, o.WorkerPoolSize, len(files), func(_ context.Context, i int) (stage.InputResult, error) {
		r := plugins.NewInput()
		defer plugins.DestroyInput(r)
		if ps, ok := r.(stage.PartitionSizer); ok {
			ps.SetPartitionSize(o.PartitionSize)
		}
		res, err := r.Run(filepath.Join(inputDir, files[i]))
		if err != nil {
			return stage.InputResult{}, err
		}
		return res, nil
	})
	if err != nil {
		return err
	}
	rep.Statusln("input stage complete")

	// Stage 2/3: Map + MapSink, for every (file, partition) pair across
	// every input result. Files with zero partitions get no Mapper or
	// MapSink task (spec.md §4.8 edge case).
	type mapUnit struct {
		file      stage.FileName
		partition stage.PartitionIndex
		lines     stage.InputPartition
		total     int
	}
	var mapUnits []mapUnit
	for _, ir := range inputResults {
		for p, lines := range ir.Partitions {
			mapUnits = append(mapUnits, mapUnit{file: ir.File, partition: p, lines: lines, total: len(ir.Partitions)})
		}
	}

	mapResults, err := runFanOut(ctx, o.WorkerPoolSize, len(mapUnits), func(_ context.Context, i int) (stage.MapResult, error) {
		u := mapUnits[i]
		m := plugins.NewMapper()
		defer plugins.DestroyMapper(m)
		res, err := m.Run(u.file, u.partition, u.lines)
		if err != nil {
			return stage.MapResult{}, mrerrors.MapperFailed{File: u.file, Partition: u.partition, Err: err}
		}
		res.TotalPartitions = u.total
		return res, nil
	})
	if err != nil {
		return err
	}
	rep.Statusf("map stage complete: %d partition(s)", len(mapResults))

	mapRoots, err := runFanOut(ctx, o.WorkerPoolSize, len(mapResults), func(_ context.Context, i int) (string, error) {
		s := plugins.NewMapSink()
		defer plugins.DestroyMapSink(s)
		root, err := s.Write(mapResults[i])
		if err != nil {
			return "", err
		}
		return root, nil
	})
	if err != nil {
		return err
	}

	mapperRoot, err := learnRoot(mapRoots, plugins.NewMapSink, plugins.DestroyMapSink, inputResults, files)
	if err != nil {
		return err
	}
	rep.Statusf("mapper_root is %s", mapperRoot)

	// Zero-partition files never had a Mapper/MapSink task dispatched;
	// the orchestrator creates their placeholder sub-directory directly
	// so Shuffle still sees one mapper_root entry per input file (I1).
	for _, ir := range inputResults {
		if len(ir.Partitions) == 0 {
			if err := os.MkdirAll(filepath.Join(mapperRoot, ir.File), 0o755); err != nil {
				return mrerrors.SinkWriteFailed{Stage: "map", Path: filepath.Join(mapperRoot, ir.File), Err: err}
			}
		}
	}

	// Barrier B1.
	if err := fsbarrier.WaitForCount(ctx, mapperRoot, len(files), fsbarrier.Options{
		PollInterval: o.PollInterval,
	}); err != nil {
		return fmt.Errorf("barrier B1: %w", err)
	}
	rep.Statusln("barrier B1 satisfied")

	// Stage 4/5: Shuffle + ShuffleSink, one task per mapper_root sub-directory.
	mapperDirs, err := listSubdirs(mapperRoot, func(path string, err error) error {
		return mrerrors.ShuffleInputMissing{Path: path, Err: err}
	})
	if err != nil {
		return err
	}

	shuffleResults, err := runFanOut(ctx, o.WorkerPoolSize, len(mapperDirs), func(_ context.Context, i int) (stage.ShuffleOutput, error) {
		sh := plugins.NewShuffler()
		defer plugins.DestroyShuffler(sh)
		return sh.Run(filepath.Join(mapperRoot, mapperDirs[i]))
	})
	if err != nil {
		return err
	}
	rep.Statusf("shuffle stage complete: %d file(s)", len(shuffleResults))

	shuffleRoots, err := runFanOut(ctx, o.WorkerPoolSize, len(shuffleResults), func(_ context.Context, i int) (string, error) {
		s := plugins.NewShuffleSink()
		defer plugins.DestroyShuffleSink(s)
		return s.Write(shuffleResults[i])
	})
	if err != nil {
		return err
	}
	if len(shuffleRoots) == 0 {
		return mrerrors.InputValidationError{Path: inputDir, Message: "no shuffle output produced"}
	}
	shufflerRoot := shuffleRoots[0]
	rep.Statusf("shuffler_root is %s", shufflerRoot)

	// Barrier B2.
	if err := fsbarrier.WaitForMatch(ctx, mapperRoot, shufflerRoot, fsbarrier.Options{
		PollInterval: o.PollInterval,
	}); err != nil {
		return fmt.Errorf("barrier B2: %w", err)
	}
	rep.Statusln("barrier B2 satisfied")

	// Stage 6/7: Reduce + ReducerSink, one task per shuffler_root sub-directory.
	shufflerDirs, err := listSubdirs(shufflerRoot, func(path string, err error) error {
		return mrerrors.ReduceInputMissing{Path: path, Err: err}
	})
	if err != nil {
		return err
	}

	reduceResults, err := runFanOut(ctx, o.WorkerPoolSize, len(shufflerDirs), func(_ context.Context, i int) (stage.ReduceResult, error) {
		r := plugins.NewReducer()
		defer plugins.DestroyReducer(r)
		return r.Run(filepath.Join(shufflerRoot, shufflerDirs[i]))
	})
	if err != nil {
		return err
	}
	rep.Statusf("reduce stage complete: %d file(s)", len(reduceResults))

	finalRoots, err := runFanOut(ctx, o.WorkerPoolSize, len(reduceResults), func(_ context.Context, i int) (string, error) {
		s := plugins.NewReducerSink()
		defer plugins.DestroyReducerSink(s)
		return s.Write(reduceResults[i])
	})
	if err != nil {
		return err
	}
	if len(finalRoots) == 0 {
		return mrerrors.InputValidationError{Path: inputDir, Message: "no reduce output produced"}
	}
	finalRoot := finalRoots[0]
	rep.Statusf("final_root is %s", finalRoot)

	return reconcile(finalRoot, files, rep)
}

// learnRoot returns the root the orchestrator's sink tasks agreed on
// (roots[0], mirroring the original's "read the first dispatched future's
// return value"). If no MapSink task ran at all — every input file has
// zero lines, a degenerate case outside spec.md §8's concrete scenarios —
// one throwaway sink write against the first input file learns the root
// instead.
func learnRoot(
	roots []string,
	newSink func() stage.MapSink,
	destroySink func(stage.MapSink),
	inputResults []stage.InputResult,
	files []string,
) (string, error) {
	if len(roots) > 0 {
		return roots[0], nil
	}
	if len(inputResults) == 0 {
		return "", mrerrors.InputValidationError{Path: "", Message: "no input results to learn mapper_root from"}
	}
	s := newSink()
	defer destroySink(s)
	root, err := s.Write(stage.MapResult{File: inputResults[0].File, Partition: 0, Triples: nil, TotalPartitions: 1})
	if err != nil {
		return "", err
	}
	return root, nil
}

func listSubdirs(root string, wrapErr func(path string, err error) error) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, wrapErr(root, err)
	}
	var dirs []string
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, e.Name())
		}
	}
	return dirs, nil
}

func validateInputDir(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, mrerrors.InputValidationError{Path: path, Message: "does not exist"}
	}
	if !info.IsDir() {
		return nil, mrerrors.InputValidationError{Path: path, Message: "is not a directory"}
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, mrerrors.InputValidationError{Path: path, Message: err.Error()}
	}

	seen := make(map[string]bool, len(entries))
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if seen[name] {
			return nil, mrerrors.DuplicateInputName{Leaf: name}
		}
		seen[name] = true
		files = append(files, name)
	}

	if len(files) == 0 {
		return nil, mrerrors.InputValidationError{Path: path, Message: "contains no regular files"}
	}
	return files, nil
}

// reconcile implements spec.md §4.8 step 11 and §8 P6, checking both
// directions of the set difference (SPEC_FULL.md §3's supplemented
// two-sided diagnostic) before writing SUCCESS.ind.
func reconcile(finalRoot string, inputFiles []string, rep reporter.Reporter) error {
	inputSet := make(map[string]bool, len(inputFiles))
	for _, f := range inputFiles {
		inputSet[f] = true
	}

	entries, err := os.ReadDir(finalRoot)
	if err != nil {
		return mrerrors.ReduceInputMissing{Path: finalRoot, Err: err}
	}
	outputSet := make(map[string]bool, len(entries))
	for _, e := range entries {
		if e.IsDir() || e.Name() == "SUCCESS.ind" {
			continue
		}
		outputSet[e.Name()] = true
	}

	var missingInOutput, missingInInput []string
	for f := range inputSet {
		if !outputSet[f] {
			missingInOutput = append(missingInOutput, f)
		}
	}
	for f := range outputSet {
		if !inputSet[f] {
			missingInInput = append(missingInInput, f)
		}
	}

	if len(missingInOutput) > 0 || len(missingInInput) > 0 {
		return mrerrors.ReconciliationFailed{
			MissingInOutput: missingInOutput,
			MissingInInput:  missingInInput,
		}
	}

	marker := filepath.Join(finalRoot, "SUCCESS.ind")
	f, err := os.Create(marker)
	if err != nil {
		return mrerrors.SinkWriteFailed{Stage: "reconcile", Path: marker, Err: err}
	}
	defer f.Close()

	rep.Statusln("reconciliation passed, SUCCESS.ind written")
	return nil
}
