// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent worker pool that splits ranges
// of bit patterns across goroutines. A Pool is created once per sweep and
// reused for every batch, so checking billions of inputs spawns no more
// goroutines than the pool holds.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.ParallelFor(0, 1<<32, func(start, end uint64) {
//	    for u := start; u < end; u++ {
//	        check(math.Float32frombits(uint32(u)))
//	    }
//	})
package workerpool

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. Workers are spawned once at creation
// and reused.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a pool with numWorkers workers. If numWorkers <= 0, it uses
// GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the pool. Pending work completes. Calling Close more
// than once is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// run hands fn to workers goroutines and waits for all of them.
func (p *Pool) run(workers int, fn func(w int)) {
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := range workers {
		p.workC <- workItem{
			fn:      func() { fn(w) },
			barrier: &wg,
		}
	}
	wg.Wait()
}

// ParallelFor calls fn on contiguous, disjoint chunks covering [from, to),
// one chunk per worker. It blocks until all chunks are done. A closed pool
// runs fn(from, to) on the caller's goroutine.
func (p *Pool) ParallelFor(from, to uint64, fn func(start, end uint64)) {
	if to <= from {
		return
	}
	n := to - from
	workers := uint64(p.numWorkers)
	if p.closed.Load() || workers == 1 || n == 1 {
		fn(from, to)
		return
	}
	workers = min(workers, n)

	chunk := n / workers
	if n%workers != 0 {
		chunk++
	}
	p.run(int(workers), func(w int) {
		start := from + uint64(w)*chunk
		if start >= to || start < from {
			return
		}
		fn(start, start+min(chunk, to-start))
	})
}

// ParallelForBatched covers [from, to) with batches of at most batchSize
// values, which workers grab from a shared counter. It stops handing out
// batches once ctx is done or fn returns an error, and returns the first
// error, or ctx.Err() if the context ended before all batches ran.
func (p *Pool) ParallelForBatched(
	ctx context.Context, from, to, batchSize uint64, fn func(start, end uint64) error,
) error {
	if to <= from {
		return ctx.Err()
	}
	if batchSize == 0 {
		batchSize = 1
	}
	n := to - from
	numBatches := n / batchSize
	if n%batchSize != 0 {
		numBatches++
	}

	var (
		next     atomic.Uint64
		errOnce  sync.Once
		firstErr error
		failed   atomic.Bool
	)
	work := func(int) {
		for !failed.Load() {
			b := next.Add(1) - 1
			if b >= numBatches {
				return
			}
			err := ctx.Err()
			if err == nil {
				start := from + b*batchSize
				err = fn(start, start+min(batchSize, to-start))
			}
			if err != nil {
				errOnce.Do(func() { firstErr = err })
				failed.Store(true)
				return
			}
		}
	}

	workers := min(uint64(p.numWorkers), numBatches)
	if p.closed.Load() || workers == 1 {
		work(0)
	} else {
		p.run(int(workers), work)
	}
	return firstErr
}
