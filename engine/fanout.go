package engine

import (
	"context"
	"sync"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"
)

// runFanOut dispatches n independent tasks, bounded to limit concurrent at
// once, and gathers their results by index. This is the one fan-out/fan-in
// shape every stage uses (spec.md §5): tasks within a stage have no
// happens-before relation between them. Each task writes only its own
// index of the results slice, and the slice is returned only after every
// task has finished; the gathering goroutine itself writes no results.
//
// Every task is allowed to run to completion even after one fails — no
// in-flight task is interrupted (spec.md §5's cancellation policy). Every
// task's error is accumulated, and the first one to be recorded is the
// error runFanOut returns.
func runFanOut[T any](ctx context.Context, limit, n int, work func(ctx context.Context, i int) (T, error)) ([]T, error) {
	results := make([]T, n)
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	var mu sync.Mutex
	var errs *multierror.Error

	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			r, err := work(gctx, i)
			if err != nil {
				mu.Lock()
				errs = multierror.Append(errs, err)
				mu.Unlock()
				return err
			}
			results[i] = r
			return nil
		})
	}

	first := g.Wait()
	if first == nil {
		return results, nil
	}
	if errs != nil {
		return results, errs.Errors[0]
	}
	return results, first
}
