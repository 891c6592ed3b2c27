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
	"math"
	"strconv"

	"github.com/ajroetker/go-crmath/crmath"
	"github.com/ajroetker/go-crmath/internal/oracle"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

type evalFlags struct {
	bits   bool
	oracle bool
	digits uint32
}

func newEvalCmd() *cobra.Command {
	var fl evalFlags
	cmd := &cobra.Command{
		Use:   "eval <func> <x>...",
		Short: "evaluate a function at the given arguments",
		Long: `
Evaluates a function and prints each result with its bit pattern and input
class. Arguments are decimal or hexadecimal floats (0x1.8p-3), or raw bit
patterns with --bits. With --oracle the exact value and the error in ulps
are printed as well.
`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := lookupFunc(args[0])
			if err != nil {
				return err
			}
			for _, a := range args[1:] {
				x, err := parseArg(a, f.Bits, fl.bits)
				if err != nil {
					return err
				}
				if err := evalOne(cmd, f, x, fl); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&fl.bits, "bits", false, "arguments are bit patterns")
	cmd.Flags().BoolVar(&fl.oracle, "oracle", false, "also print the exact value and the ulp error")
	cmd.Flags().Uint32Var(&fl.digits, "digits", oracle.DefaultPrecision, "significant digits of the exact value")
	return cmd
}

func parseArg(s string, bits int, raw bool) (float64, error) {
	if raw {
		u, err := strconv.ParseUint(s, 0, bits)
		if err != nil {
			return 0, errors.Wrapf(err, "bit pattern %q", s)
		}
		if bits == 32 {
			return float64(math.Float32frombits(uint32(u))), nil
		}
		return math.Float64frombits(u), nil
	}
	x, err := strconv.ParseFloat(s, bits)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, errors.Wrapf(err, "argument %q", s)
	}
	return x, nil
}

func formatBits(x float64, bits int) string {
	if bits == 32 {
		return fmt.Sprintf("0x%08x", math.Float32bits(float32(x)))
	}
	return fmt.Sprintf("0x%016x", math.Float64bits(x))
}

func formatFloat(x float64, bits int) string {
	return strconv.FormatFloat(x, 'g', -1, bits)
}

func evalOne(cmd *cobra.Command, f crmath.Func, x float64, fl evalFlags) error {
	y := f.Eval(x)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s(%s) = %s %s %s\n", f.Name, formatFloat(x, f.Bits),
		formatFloat(y, f.Bits), formatBits(y, f.Bits), f.Classify(x))
	if !fl.oracle {
		return nil
	}

	want, err := oracle.Eval(f.Name, x, fl.digits)
	if errors.Is(err, oracle.ErrNoResult) {
		fmt.Fprintf(out, "  exact: none\n")
		return nil
	}
	if err != nil {
		return err
	}
	var d float64
	if f.Bits == 32 {
		d, err = oracle.ULPDistance32(float32(y), want)
	} else {
		d, err = oracle.ULPDistance64(y, want)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "  exact: %s\n  ulp:   %.6f\n", want, d)
	return nil
}
