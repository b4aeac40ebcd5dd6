// Package fanout runs one function over many items with a fixed number of
// workers and returns the results in input order. The board service uses it
// to preload workspace boards at startup.
package fanout

import (
	"context"
	"errors"
	"sync"
)

// Result holds the outcome of processing a single item.
// Either Value is populated (on success) or Err is non-nil (on failure).
type Result[R any] struct {
	Value R
	Err   error
}

// Run executes fn for each item using at most maxWorkers concurrent calls.
// Results are returned in the same order as items.
//
// An item still waiting for a worker slot when ctx is canceled records
// ctx.Err() and fn is not called for it. Calls already running are left to
// observe ctx themselves.
//
// Run blocks until every item is processed. An empty items slice yields an
// empty non-nil result slice. A maxWorkers below one is treated as one.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	if len(items) == 0 {
		return []Result[R]{}
	}
	if maxWorkers < 1 {
		maxWorkers = 1
	}

	results := make([]Result[R], len(items))
	sem := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for i, item := range items {
		wg.Go(func() {
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[i] = Result[R]{Err: ctx.Err()}
				return
			}

			val, err := fn(ctx, item)
			results[i] = Result[R]{Value: val, Err: err}
		})
	}

	wg.Wait()
	return results
}

// Err joins the errors of all failed results, or returns nil when every item
// succeeded.
func Err[R any](results []Result[R]) error {
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	return errors.Join(errs...)
}
