// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package sweep checks crmath functions against the decimal oracle over
// ranges of bit patterns or pseudo-random samples, in parallel.
package sweep

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ajroetker/go-crmath/crmath"
	"github.com/ajroetker/go-crmath/internal/oracle"
	"github.com/ajroetker/go-crmath/internal/workerpool"
	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"
)

// Run performs the sweep described by cfg. A ULP failure is recorded in
// the report; the returned error is reserved for invalid configurations,
// oracle failures and cancellation.
func Run(ctx context.Context, cfg Config) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}
	f, _ := lookup(cfg.Func)
	log := cfg.logger().With(slog.String("func", f.Name))

	from, to := cfg.From, cfg.To
	if cfg.Samples > 0 {
		from, to = 0, cfg.Samples
	}
	total := to - from
	s := &sweeper{
		f:           f,
		cfg:         &cfg,
		bound:       f.MaxULP + cfg.slack(),
		maxFindings: cfg.maxFindings(),
		report:      Report{Func: f.Name},
	}

	pool := workerpool.New(cfg.Workers)
	defer pool.Close()

	log.Info("sweep started",
		slog.Uint64("inputs", total),
		slog.Int("workers", pool.NumWorkers()),
		slog.Bool("classes_only", cfg.ClassesOnly))
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	done := make(chan struct{})
	g.Go(func() error {
		defer close(done)
		return pool.ParallelForBatched(gctx, from, to, cfg.batchSize(), s.batch)
	})
	g.Go(func() error {
		t := time.NewTicker(cfg.progressInterval())
		defer t.Stop()
		for {
			select {
			case <-done:
				return nil
			case <-gctx.Done():
				return nil
			case <-t.C:
				n := s.visited.Load()
				log.Info("sweep progress",
					slog.Uint64("visited", n),
					slog.Float64("percent", 100*float64(n)/float64(total)),
					slog.Uint64("failures", s.failures.Load()))
			}
		}
	})
	if err := g.Wait(); err != nil {
		log.Error("sweep aborted", slog.Any("error", err))
		return Report{}, errors.Wrapf(err, "sweeping %s", f.Name)
	}

	r := s.report
	log.Info("sweep finished",
		slog.Duration("elapsed", time.Since(start)),
		slog.Uint64("checked", r.Checked),
		slog.Uint64("skipped", r.Skipped),
		slog.Uint64("failures", r.Failures),
		slog.Float64("max_ulp", r.MaxULP))
	for _, fd := range r.Findings {
		log.Debug("failure",
			slog.String("bits", bitsString(fd.Bits, f.Bits)),
			slog.Float64("input", fd.Input),
			slog.Float64("got", fd.Got),
			slog.Float64("want", fd.Want),
			slog.Float64("ulp", fd.ULP))
	}
	return r, nil
}

type sweeper struct {
	f           crmath.Func
	cfg         *Config
	bound       float64
	maxFindings int

	visited  atomic.Uint64
	failures atomic.Uint64

	mu     sync.Mutex
	report Report
}

// batch checks the inputs with indices [start, end). In sample mode the
// generator is seeded from the batch start, so the inputs do not depend
// on scheduling.
func (s *sweeper) batch(start, end uint64) error {
	var rng *rand.Rand
	if s.cfg.Samples > 0 {
		rng = rand.New(rand.NewPCG(s.cfg.Seed, start))
	}
	var part Report
	for i := start; i < end; i++ {
		u := i
		if rng != nil {
			u = rng.Uint64()
		}
		if s.f.Bits == 32 {
			u &= math.MaxUint32
		}
		if err := s.check(u, &part); err != nil {
			return err
		}
	}

	s.visited.Add(end - start)
	s.failures.Add(part.Failures)
	s.mu.Lock()
	s.report.merge(&part, s.maxFindings)
	s.mu.Unlock()
	return nil
}

func (s *sweeper) check(u uint64, r *Report) error {
	x := fromBits(u, s.f.Bits)
	r.Inputs++
	r.Classes[s.f.Classify(x)]++
	if s.cfg.ClassesOnly {
		return nil
	}

	got := s.f.Eval(x)
	want, err := oracle.Eval(s.f.Name, x, 0)
	if errors.Is(err, oracle.ErrNoResult) {
		r.Skipped++
		return nil
	}
	if err != nil {
		return err
	}

	var d float64
	if s.f.Bits == 32 {
		d, err = oracle.ULPDistance32(float32(got), want)
	} else {
		d, err = oracle.ULPDistance64(got, want)
	}
	if err != nil {
		return errors.Wrapf(err, "%s(%v)", s.f.Name, x)
	}
	w, err := oracle.Round(want, s.f.Bits)
	if err != nil {
		return err
	}
	r.observe(Finding{Bits: u, Input: x, Got: got, Want: w, ULP: d}, d > s.bound, s.maxFindings)
	return nil
}

func fromBits(u uint64, bits int) float64 {
	if bits == 32 {
		return float64(math.Float32frombits(uint32(u)))
	}
	return math.Float64frombits(u)
}

func bitsString(u uint64, bits int) string {
	if bits == 32 {
		return fmt.Sprintf("0x%08x", u)
	}
	return fmt.Sprintf("0x%016x", u)
}
