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
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestEval(t *testing.T) {
	for _, tc := range []struct {
		name string
		args []string
		want string
	}{
		{"exp10", []string{"eval", "exp10", "2"},
			"exp10(2) = 100 0x4059000000000000 shortcut\n"},
		{"hex float", []string{"eval", "exp2", "0x1p-1"},
			"exp2(0.5) = 1.4142135623730951 0x3ff6a09e667f3bcd general\n"},
		{"float32 bits", []string{"eval", "--bits", "tanpif", "0x3e800000", "0x3f000000"},
			"tanpif(0.25) = 1 0x3f800000 shortcut\ntanpif(0.5) = +Inf 0x7f800000 shortcut\n"},
		{"nan", []string{"eval", "atanhf", "NaN"},
			"atanhf(NaN) = NaN 0x7fc00000 nan\n"},
		{"domain", []string{"eval", "atanhf", "2"},
			"atanhf(2) = NaN 0x7fc00000 nan\n"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := run(t, tc.args...)
			require.NoError(t, err)
			require.Equal(t, tc.want, out)
		})
	}
}

func TestEvalOracle(t *testing.T) {
	out, _, err := run(t, "eval", "--oracle", "--digits", "20", "exp2f", "0.5")
	require.NoError(t, err)
	require.Equal(t, "exp2f(0.5) = 1.4142135 0x3fb504f3 general\n"+
		"  exact: 1.4142135623730950488\n", out[:strings.Index(out, "  ulp:")])
	require.Contains(t, out, "  ulp:   0.")

	out, _, err = run(t, "eval", "--oracle", "cotf", "0")
	require.NoError(t, err)
	require.Equal(t, "cotf(0) = +Inf 0x7f800000 shortcut\n  exact: none\n", out)
}

func TestEvalErrors(t *testing.T) {
	_, _, err := run(t, "eval", "sin", "1")
	require.ErrorContains(t, err, "unknown function \"sin\"")

	_, _, err = run(t, "eval", "exp2", "one")
	require.ErrorContains(t, err, "argument \"one\"")

	_, _, err = run(t, "eval", "--bits", "cotf", "0x100000000")
	require.ErrorContains(t, err, "bit pattern")

	_, _, err = run(t, "eval", "exp2")
	require.Error(t, err)
}

func TestSweep(t *testing.T) {
	out, stderr, err := run(t, "sweep", "--func", "exp10f", "--from", "1", "--to", "0x3f800040", "-w", "2")
	require.NoError(t, err)
	require.Contains(t, out, "exp10f: 64 inputs\n")
	require.Contains(t, out, "classes: general=64 shortcut=0 nan=0 inf=0\n")
	require.Contains(t, out, "checked: 64, skipped: 0, failures: 0\n")
	require.Contains(t, stderr, "msg=\"sweep finished\"")
}

func TestSweepNegativeRange(t *testing.T) {
	out, _, err := run(t, "sweep", "-f", "atanhf", "--from", "-0.5", "--to", "-0x1.00002p-1")
	require.NoError(t, err)
	require.Contains(t, out, "atanhf: 16 inputs\n")
}

func TestSweepJSONLogs(t *testing.T) {
	_, stderr, err := run(t, "--json", "--verbose", "sample", "--func", "cotpif", "--n", "20", "--seed", "3")
	require.NoError(t, err)
	require.Contains(t, stderr, "\"msg\":\"sweep started\"")
	require.Contains(t, stderr, "\"func\":\"cotpif\"")
}

func TestSweepFlags(t *testing.T) {
	_, _, err := run(t, "sweep", "--func", "exp2")
	require.ErrorContains(t, err, "--from and --to")

	_, _, err = run(t, "sweep", "--from", "1", "--to", "2")
	require.ErrorContains(t, err, "required flag")

	_, _, err = run(t, "sweep", "--func", "exp2", "--from", "x1", "--to", "2")
	require.ErrorContains(t, err, "invalid argument")

	_, _, err = run(t, "classes", "--func", "exp10")
	require.ErrorContains(t, err, "exp10 needs --from and --to")
}

func TestClasses(t *testing.T) {
	out, _, err := run(t, "classes", "--func", "exp2", "--from", "0x7fefffffffffff9c", "--to", "0x7ff0000000000064")
	require.NoError(t, err)
	require.Equal(t, "exp2: 200 inputs\nclasses: general=0 shortcut=100 nan=99 inf=1\n", out)
}

func TestBitsFlag(t *testing.T) {
	for _, tc := range []struct {
		in   string
		bits int
		want uint64
	}{
		{"0x3f800000", 32, 0x3f800000},
		{"1", 32, 0x3f800000},
		{"1", 64, 0x3ff0000000000000},
		{"0x1p-1", 64, 0x3fe0000000000000},
		{"-2", 32, 0xc0000000},
		{"1e39", 32, 0x7f800000},
	} {
		var b bitsFlag
		require.NoError(t, b.Set(tc.in))
		got, err := b.resolve(tc.bits)
		require.NoError(t, err)
		require.Equal(t, tc.want, got, "%s as float%d", tc.in, tc.bits)
	}
	var b bitsFlag
	require.Error(t, b.Set("0xzz"))
	require.Error(t, b.Set("1.2.3"))
}
