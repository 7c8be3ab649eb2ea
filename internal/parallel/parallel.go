// Package parallel runs independent per-channel tasks on a bounded worker
// pool.
package parallel

import (
	"context"
	"sync"
	"sync/atomic"
)

// ForEach calls fn(i) for every i in [0, n) on at most workers goroutines.
// Each index is handed out once; fn must only write state owned by i.
//
// Once ctx is done no further indices are started and ForEach returns
// ctx.Err() after the running calls finish. A cancellation that arrives
// after every index has run is not reported.
func ForEach(ctx context.Context, n, workers int, fn func(i int)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if n <= 0 {
		return nil
	}

	workers = max(1, min(workers, n))

	jobs := make(chan int)

	var (
		wg   sync.WaitGroup
		done atomic.Int64
	)

	for range workers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for i := range jobs {
				if ctx.Err() != nil {
					continue
				}

				fn(i)
				done.Add(1)
			}
		}()
	}

feed:
	for i := range n {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- i:
		}
	}

	close(jobs)
	wg.Wait()

	if done.Load() == int64(n) {
		return nil
	}

	return ctx.Err()
}
