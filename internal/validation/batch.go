package validation

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/zeekay/persona/internal/types"
)

// batchBounds splits n items into consecutive [start, end) ranges of
// ceil(n/workers) items each.
func batchBounds(n, workers int) [][2]int {
	if n == 0 {
		return nil
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	size := (n + workers - 1) / workers

	bounds := make([][2]int, 0, workers)
	for start := 0; start < n; start += size {
		bounds = append(bounds, [2]int{start, min(start+size, n)})
	}
	return bounds
}

// ValidateBatches validates entries in parallel batches. Each result is written at
// its entry's index, so the output is identical to a sequential run for any number
// of workers. A non-positive worker count uses one worker per CPU.
func (v *Validator) ValidateBatches(ctx context.Context, entries []Entry, workers int) ([]types.FileResult, error) {
	results := make([]types.FileResult, len(entries))

	g, gCtx := errgroup.WithContext(ctx)
	for _, b := range batchBounds(len(entries), workers) {
		start, end := b[0], b[1]
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := gCtx.Err(); err != nil {
					return err
				}
				results[i] = v.ValidateEntry(entries[i])
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// ValidateCollectionParallel is ValidateCollection with batched parallel record validation.
func (v *Validator) ValidateCollectionParallel(ctx context.Context, entries []Entry, workers int) (*types.CollectionReport, error) {
	results, err := v.ValidateBatches(ctx, entries, workers)
	if err != nil {
		return nil, err
	}
	return Assemble(entries, results), nil
}
