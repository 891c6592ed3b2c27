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

// Command crcheck evaluates and verifies the correctly rounded functions of
// package crmath against an arbitrary-precision decimal oracle.
//
// Usage:
//
//	crcheck eval exp10 2.5 0x1p-3          # results with bit patterns
//	crcheck eval --oracle cotf 1e10        # plus the exact value and ulp error
//	crcheck sweep --func tanpif --from 0x3e800000 --to 0x3f000000
//	crcheck sample --func exp2 --n 100000 --seed 7
//	crcheck classes --func atanhf          # class histogram of all inputs
//
// Logs go to stderr as text, or as JSON with --json. --verbose enables debug
// logs, which list every failing input of a sweep.
package main

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ajroetker/go-crmath/crmath"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

type globalFlags struct {
	verbose bool
	json    bool
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var (
		g      globalFlags
		logger = slog.New(slog.DiscardHandler)
	)
	root := &cobra.Command{
		Use:   "crcheck",
		Short: "evaluate and verify correctly rounded math functions",
		Long: `
crcheck evaluates the functions of package crmath and checks them against a
decimal reference computed with enough digits to round correctly.

Functions: ` + strings.Join(funcNames(), ", ") + `
`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = newLogger(stderr, g)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().BoolVar(&g.json, "json", false, "log as JSON instead of text")

	getLogger := func() *slog.Logger { return logger }
	root.AddCommand(
		newEvalCmd(),
		newSweepCmd(getLogger),
		newSampleCmd(getLogger),
		newClassesCmd(getLogger),
	)
	return root
}

func newLogger(w io.Writer, g globalFlags) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if g.verbose {
		opts.Level = slog.LevelDebug
	}
	if g.json {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func funcNames() []string {
	var names []string
	for _, f := range crmath.Funcs() {
		names = append(names, f.Name)
	}
	return names
}

// lookupFunc is crmath.Lookup with an error listing the known names.
func lookupFunc(name string) (crmath.Func, error) {
	f, ok := crmath.Lookup(name)
	if !ok {
		return crmath.Func{}, errors.Newf("unknown function %q (known: %s)",
			name, strings.Join(funcNames(), ", "))
	}
	return f, nil
}
