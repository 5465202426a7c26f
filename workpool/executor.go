// SPDX-License-Identifier: MIT
// Package: hamcycle/workpool
//
// executor.go - Sequential, Parallel and Adaptive map executors.
//
// Contract:
//   • Map(ctx, n, fn) calls fn exactly once for every i in [0,n) unless an
//     error or cancellation stops the run early.
//   • The first non-nil error from fn is returned; ctx.Err() wins over it when
//     the caller's context was cancelled.
//   • n ≤ 0 is a no-op.
//
// Concurrency:
//   • fn must be safe for concurrent calls with distinct indices when the
//     executor is Parallel/Adaptive. Writing to slot i of a pre-sized slice is.

package workpool

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// MapFunc processes the item at index i.
type MapFunc func(ctx context.Context, i int) error

// Executor maps fn over [0,n).
type Executor interface {
	Map(ctx context.Context, n int, fn MapFunc) error
}

// Sequential runs every index on the calling goroutine in ascending order.
type Sequential struct{}

// Map implements Executor.
func (Sequential) Map(ctx context.Context, n int, fn MapFunc) error {
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(ctx, i); err != nil {
			return err
		}
	}

	return nil
}

// Defaults for Parallel when fields are left zero.
const (
	defaultChunkSize = 1024
	minWorkers       = 1
)

// Parallel splits [0,n) into contiguous chunks and runs them on at most
// Workers goroutines.
//
// Workers ≤ 0 means runtime.GOMAXPROCS(0); ChunkSize ≤ 0 means 1024.
type Parallel struct {
	Workers   int
	ChunkSize int
}

// Map implements Executor.
func (p Parallel) Map(ctx context.Context, n int, fn MapFunc) error {
	if n <= 0 {
		return nil
	}
	workers := p.workers()
	chunk := p.ChunkSize
	if chunk <= 0 {
		chunk = defaultChunkSize
	}
	// Spread small inputs across all workers instead of one oversized chunk.
	if perWorker := (n + workers - 1) / workers; perWorker < chunk {
		chunk = perWorker
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for start := 0; start < n; start += chunk {
		lo, hi := start, min(start+chunk, n)
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				if err := fn(gctx, i); err != nil {
					return err
				}
			}
			return nil
		})
	}
	err := g.Wait()
	if cerr := ctx.Err(); cerr != nil {
		return cerr
	}

	return err
}

func (p Parallel) workers() int {
	w := p.Workers
	if w <= 0 {
		w = runtime.GOMAXPROCS(0)
	}
	if w < minWorkers {
		w = minWorkers
	}

	return w
}

// DefaultThreshold is the input size under which Adaptive stays sequential.
const DefaultThreshold = 4096

// Adaptive runs Sequential for n < Threshold and Parallel otherwise.
// Threshold ≤ 0 means DefaultThreshold.
type Adaptive struct {
	Threshold int
	Parallel  Parallel
}

// Map implements Executor.
func (a Adaptive) Map(ctx context.Context, n int, fn MapFunc) error {
	threshold := a.Threshold
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	if n < threshold || a.Parallel.workers() == 1 {
		return Sequential{}.Map(ctx, n, fn)
	}

	return a.Parallel.Map(ctx, n, fn)
}

// Default returns the executor used when callers inject none.
func Default() Executor {
	return Adaptive{}
}
