// Package workerpool runs bounded concurrent work over a slice.
package workerpool

import (
	"context"
	"slices"
	"sync"
)

// Process calls process for every item on workerCount goroutines. The first error cancels the
// remaining work and is returned; a canceled parent context returns its error.
func Process[T any](ctx context.Context, workerCount int, items []T, process func(context.Context, T) error) error {
	if workerCount < 1 {
		workerCount = 1
	}
	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	tasks := make(chan T)
	var wg sync.WaitGroup
	for range workerCount {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range tasks {
				if ctx.Err() != nil {
					return
				}
				if err := process(ctx, item); err != nil {
					cancel(err)
					return
				}
			}
		}()
	}

feed:
	for _, item := range items {
		select {
		case <-ctx.Done():
			break feed
		case tasks <- item:
		}
	}
	close(tasks)
	wg.Wait()

	return context.Cause(ctx)
}

// Chunk splits items into consecutive slices of at most size elements. The chunks share the
// backing array of items.
func Chunk[T any](items []T, size int) [][]T {
	if size < 1 {
		size = 1
	}
	return slices.Collect(slices.Chunk(items, size))
}
