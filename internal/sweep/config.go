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

package sweep

import (
	"log/slog"
	"math"
	"time"

	"github.com/ajroetker/go-crmath/crmath"
	"github.com/cockroachdb/errors"
)

// Defaults applied to zero Config fields.
const (
	DefaultBatchSize        = 1024
	DefaultMaxFindings      = 16
	DefaultSlack            = 1.0 / 1024
	DefaultProgressInterval = 10 * time.Second
)

// Config selects the function and the inputs a sweep checks.
//
// A sweep covers either the contiguous range of bit patterns [From, To) or
// Samples pseudo-random bit patterns drawn from Seed. Exactly one of the two
// must be set.
type Config struct {
	Func string

	From, To uint64

	Samples uint64
	Seed    uint64

	// Workers is the number of goroutines; 0 means GOMAXPROCS.
	Workers int
	// BatchSize is the number of inputs a worker takes at a time.
	BatchSize uint64
	// Slack is added to the function's ULP bound before an input counts
	// as a failure. It absorbs the oracle's own rounding. Zero selects
	// DefaultSlack.
	Slack float64
	// MaxFindings caps the failures kept in the report.
	MaxFindings int
	// ClassesOnly skips the oracle and only counts input classes.
	ClassesOnly bool

	Logger           *slog.Logger
	ProgressInterval time.Duration
}

// Validate checks that the configuration describes a sweep that can run.
func (c *Config) Validate() error {
	f, ok := lookup(c.Func)
	if !ok {
		return errors.Newf("unknown function %q", c.Func)
	}
	hasRange := c.To > c.From
	switch {
	case hasRange && c.Samples > 0:
		return errors.New("a sweep takes either a bit range or a sample count, not both")
	case !hasRange && c.Samples == 0:
		if c.To != 0 || c.From != 0 {
			return errors.Newf("empty bit range [%#x, %#x)", c.From, c.To)
		}
		return errors.New("a sweep needs a bit range or a sample count")
	case f.Bits == 32 && c.To > 1<<32:
		return errors.Newf("bit range end %#x exceeds the float32 encodings", c.To)
	case c.Workers < 0:
		return errors.Newf("negative worker count %d", c.Workers)
	case c.Slack < 0 || math.IsNaN(c.Slack):
		return errors.Newf("invalid slack %v", c.Slack)
	case c.MaxFindings < 0:
		return errors.Newf("negative finding limit %d", c.MaxFindings)
	}
	return nil
}

func (c *Config) batchSize() uint64 {
	if c.BatchSize == 0 {
		return DefaultBatchSize
	}
	return c.BatchSize
}

func (c *Config) maxFindings() int {
	if c.MaxFindings == 0 {
		return DefaultMaxFindings
	}
	return c.MaxFindings
}

func (c *Config) slack() float64 {
	if c.Slack == 0 {
		return DefaultSlack
	}
	return c.Slack
}

func (c *Config) progressInterval() time.Duration {
	if c.ProgressInterval <= 0 {
		return DefaultProgressInterval
	}
	return c.ProgressInterval
}

func (c *Config) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}

// lookup is replaced in tests to sweep deliberately wrong functions.
var lookup = crmath.Lookup
