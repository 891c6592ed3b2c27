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

package main

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"runtime"
	"strconv"
	"strings"

	"github.com/ajroetker/go-crmath/crmath"
	"github.com/ajroetker/go-crmath/internal/sweep"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// bitsFlag is an input given either as a bit pattern (0x3f800000) or as a
// float (1.5, -0x1p-3). Floats are resolved once the function precision is
// known.
type bitsFlag struct {
	s string
}

var _ pflag.Value = (*bitsFlag)(nil)

func (b *bitsFlag) String() string { return b.s }

func (b *bitsFlag) Type() string { return "bits|float" }

func (b *bitsFlag) Set(s string) error {
	if isBitPattern(s) {
		if _, err := strconv.ParseUint(s, 0, 64); err != nil {
			return err
		}
	} else if _, err := strconv.ParseFloat(s, 64); err != nil {
		return err
	}
	b.s = s
	return nil
}

// isBitPattern reports whether s is a hexadecimal integer rather than a
// hexadecimal float.
func isBitPattern(s string) bool {
	return strings.HasPrefix(s, "0x") && !strings.ContainsAny(s, ".pP")
}

func (b *bitsFlag) resolve(bits int) (uint64, error) {
	if isBitPattern(b.s) {
		return strconv.ParseUint(b.s, 0, 64)
	}
	x, err := strconv.ParseFloat(b.s, bits)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, err
	}
	if bits == 32 {
		return uint64(math.Float32bits(float32(x))), nil
	}
	return math.Float64bits(x), nil
}

type sweepFlags struct {
	fn        string
	from, to  bitsFlag
	n         uint64
	seed      uint64
	workers   int
	batch     uint64
	slack     float64
	findings  int
	classOnly bool
}

func (fl *sweepFlags) addFuncFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&fl.fn, "func", "f", "", "function to check (required)")
	fs.IntVarP(&fl.workers, "workers", "w", runtime.GOMAXPROCS(0), "number of worker goroutines")
	fs.Uint64Var(&fl.batch, "batch", sweep.DefaultBatchSize, "inputs per work unit")
}

func (fl *sweepFlags) addCheckFlags(fs *pflag.FlagSet) {
	fs.Float64Var(&fl.slack, "slack", sweep.DefaultSlack, "ulps tolerated above the bound")
	fs.IntVar(&fl.findings, "max-findings", sweep.DefaultMaxFindings, "failures listed in the report")
}

func (fl *sweepFlags) config(logger *slog.Logger) (sweep.Config, error) {
	f, err := lookupFunc(fl.fn)
	if err != nil {
		return sweep.Config{}, err
	}
	cfg := sweep.Config{
		Func:        f.Name,
		Samples:     fl.n,
		Seed:        fl.seed,
		Workers:     fl.workers,
		BatchSize:   fl.batch,
		Slack:       fl.slack,
		MaxFindings: fl.findings,
		ClassesOnly: fl.classOnly,
		Logger:      logger,
	}
	if fl.from.s != "" || fl.to.s != "" {
		if cfg.From, err = fl.from.resolve(f.Bits); err != nil {
			return sweep.Config{}, errors.Wrap(err, "--from")
		}
		if cfg.To, err = fl.to.resolve(f.Bits); err != nil {
			return sweep.Config{}, errors.Wrap(err, "--to")
		}
		// Negative floats have descending bit patterns.
		if cfg.From > cfg.To {
			cfg.From, cfg.To = cfg.To, cfg.From
		}
	}
	return cfg, nil
}

func newSweepCmd(logger func() *slog.Logger) *cobra.Command {
	var fl sweepFlags
	cmd := &cobra.Command{
		Use:   "sweep --func <name> --from <x> --to <y>",
		Short: "check every input in a range of bit patterns",
		Long: `
Checks every input whose bit pattern lies in [from, to) against the oracle.
Bounds are bit patterns (0x3f800000) or floats (1.5). A range of negative
floats may be given in either order; a range crossing zero has to be split
into its negative and positive halves.
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if fl.from.s == "" || fl.to.s == "" {
				return errors.New("sweep needs --from and --to")
			}
			return runSweep(cmd, &fl, logger())
		},
	}
	fl.addFuncFlags(cmd.Flags())
	fl.addCheckFlags(cmd.Flags())
	cmd.Flags().Var(&fl.from, "from", "first input")
	cmd.Flags().Var(&fl.to, "to", "end of the range, exclusive")
	_ = cmd.MarkFlagRequired("func")
	return cmd
}

func newSampleCmd(logger func() *slog.Logger) *cobra.Command {
	var fl sweepFlags
	cmd := &cobra.Command{
		Use:   "sample --func <name> --n <count>",
		Short: "check pseudo-random inputs",
		Long: `
Checks n inputs with uniformly random bit patterns. The same seed checks the
same inputs regardless of the number of workers.
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSweep(cmd, &fl, logger())
		},
	}
	fl.addFuncFlags(cmd.Flags())
	fl.addCheckFlags(cmd.Flags())
	cmd.Flags().Uint64Var(&fl.n, "n", 10000, "number of samples")
	cmd.Flags().Uint64Var(&fl.seed, "seed", 1, "random seed")
	_ = cmd.MarkFlagRequired("func")
	return cmd
}

func newClassesCmd(logger func() *slog.Logger) *cobra.Command {
	var fl sweepFlags
	cmd := &cobra.Command{
		Use:   "classes --func <name> [--from <x> --to <y>]",
		Short: "count the input classes over a range",
		Long: `
Classifies every input in [from, to) without evaluating the oracle. For the
float32 functions the range defaults to all 2^32 bit patterns.
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fl.classOnly = true
			if fl.from.s == "" && fl.to.s == "" {
				f, err := lookupFunc(fl.fn)
				if err != nil {
					return err
				}
				if f.Bits != 32 {
					return errors.Newf("%s needs --from and --to", f.Name)
				}
				fl.from.s, fl.to.s = "0x0", "0x100000000"
			}
			return runSweep(cmd, &fl, logger())
		},
	}
	fl.addFuncFlags(cmd.Flags())
	cmd.Flags().Var(&fl.from, "from", "first input")
	cmd.Flags().Var(&fl.to, "to", "end of the range, exclusive")
	_ = cmd.MarkFlagRequired("func")
	return cmd
}

func runSweep(cmd *cobra.Command, fl *sweepFlags, logger *slog.Logger) error {
	cfg, err := fl.config(logger)
	if err != nil {
		return err
	}
	r, err := sweep.Run(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	f, _ := crmath.Lookup(cfg.Func)
	printReport(cmd.OutOrStdout(), f, &r, cfg.ClassesOnly)
	if !r.Passed() {
		return errors.Newf("%s: %d inputs exceed %g ulp", f.Name, r.Failures, f.MaxULP+cfg.Slack)
	}
	return nil
}

func printReport(w io.Writer, f crmath.Func, r *sweep.Report, classesOnly bool) {
	fmt.Fprintf(w, "%s: %d inputs\n", f.Name, r.Inputs)
	fmt.Fprint(w, "classes:")
	for c := range crmath.NumClasses {
		fmt.Fprintf(w, " %s=%d", crmath.Class(c), r.Classes[c])
	}
	fmt.Fprintln(w)
	if classesOnly {
		return
	}
	fmt.Fprintf(w, "checked: %d, skipped: %d, failures: %d\n", r.Checked, r.Skipped, r.Failures)
	if r.Checked > 0 {
		fmt.Fprintf(w, "max ulp: %.6f at %s(%s) = %s, want %s\n", r.MaxULP, f.Name,
			formatFloat(r.Worst.Input, f.Bits), formatFloat(r.Worst.Got, f.Bits),
			formatFloat(r.Worst.Want, f.Bits))
	}
	for _, fd := range r.Findings {
		fmt.Fprintf(w, "  %s %s(%s) = %s %s, want %s %s (%.6f ulp)\n",
			formatBits(fd.Input, f.Bits), f.Name, formatFloat(fd.Input, f.Bits),
			formatFloat(fd.Got, f.Bits), formatBits(fd.Got, f.Bits),
			formatFloat(fd.Want, f.Bits), formatBits(fd.Want, f.Bits), fd.ULP)
	}
}
