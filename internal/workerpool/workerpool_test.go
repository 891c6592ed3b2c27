// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"context"
	"math"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/cockroachdb/errors"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if pool.NumWorkers() != 4 {
		t.Errorf("NumWorkers() = %d, want 4", pool.NumWorkers())
	}
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	if pool.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", pool.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

// coverage records which values of [from, to) fn was called on.
type coverage struct {
	mu   sync.Mutex
	from uint64
	hits []int
}

func newCoverage(from, to uint64) *coverage {
	return &coverage{from: from, hits: make([]int, to-from)}
}

func (c *coverage) add(start, end uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for u := start; u < end; u++ {
		c.hits[u-c.from]++
	}
}

func (c *coverage) check(t *testing.T) {
	t.Helper()
	for i, h := range c.hits {
		if h != 1 {
			t.Fatalf("value %d visited %d times, want 1", c.from+uint64(i), h)
		}
	}
}

func TestParallelFor(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, tc := range []struct {
		name     string
		from, to uint64
	}{
		{"even", 0, 100},
		{"uneven", 7, 110},
		{"fewer than workers", 10, 13},
		{"single", 5, 6},
		{"high bits", math.MaxUint64 - 50, math.MaxUint64},
	} {
		t.Run(tc.name, func(t *testing.T) {
			c := newCoverage(tc.from, tc.to)
			pool.ParallelFor(tc.from, tc.to, c.add)
			c.check(t)
		})
	}
}

func TestParallelForEmpty(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	var called bool
	pool.ParallelFor(10, 10, func(start, end uint64) { called = true })
	pool.ParallelFor(10, 5, func(start, end uint64) { called = true })
	if called {
		t.Error("ParallelFor over an empty range should not call fn")
	}
}

func TestParallelForBatched(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, batch := range []uint64{0, 1, 3, 10, 1000} {
		c := newCoverage(1000, 1257)
		err := pool.ParallelForBatched(context.Background(), 1000, 1257, batch, func(start, end uint64) error {
			if end-start > max(batch, 1) {
				t.Errorf("batch [%d, %d) larger than %d", start, end, batch)
			}
			c.add(start, end)
			return nil
		})
		if err != nil {
			t.Fatalf("batch %d: %v", batch, err)
		}
		c.check(t)
	}
}

func TestParallelForBatchedError(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	boom := errors.New("boom")
	var after atomic.Int32
	err := pool.ParallelForBatched(context.Background(), 0, 1<<20, 16, func(start, end uint64) error {
		if start == 64 {
			return boom
		}
		if start > 1<<19 {
			after.Add(1)
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
	// Workers stop grabbing batches soon after the failure.
	if n := after.Load(); n > 1<<14 {
		t.Errorf("%d batches ran past the failure", n)
	}
}

func TestParallelForBatchedCancel(t *testing.T) {
	pool := New(2)
	defer pool.Close()

	ctx, cancel := context.WithCancel(context.Background())
	var ran atomic.Int32
	err := pool.ParallelForBatched(ctx, 0, 1000, 1, func(start, end uint64) error {
		if ran.Add(1) == 10 {
			cancel()
		}
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if n := ran.Load(); n >= 1000 {
		t.Errorf("all %d batches ran after cancel", n)
	}
}

func TestCloseMultipleTimes(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close() // Should not panic
}

func TestClosedPoolFallback(t *testing.T) {
	pool := New(4)
	pool.Close()

	c := newCoverage(0, 100)
	pool.ParallelFor(0, 100, c.add)
	c.check(t)

	c = newCoverage(0, 100)
	err := pool.ParallelForBatched(context.Background(), 0, 100, 7, func(start, end uint64) error {
		c.add(start, end)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	c.check(t)
}

func BenchmarkParallelFor(b *testing.B) {
	pool := New(0)
	defer pool.Close()

	var sink atomic.Uint64
	for i := 0; i < b.N; i++ {
		pool.ParallelFor(0, 1<<16, func(start, end uint64) {
			var s uint64
			for u := start; u < end; u++ {
				s += u
			}
			sink.Add(s)
		})
	}
}

func BenchmarkParallelForBatched(b *testing.B) {
	pool := New(0)
	defer pool.Close()

	ctx := context.Background()
	var sink atomic.Uint64
	for i := 0; i < b.N; i++ {
		_ = pool.ParallelForBatched(ctx, 0, 1<<16, 256, func(start, end uint64) error {
			sink.Add(end - start)
			return nil
		})
	}
}
