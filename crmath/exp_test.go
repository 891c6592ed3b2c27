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

package crmath

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strconv"
	"testing"
)

func TestExp2Integers(t *testing.T) {
	for n := -1074; n <= 1023; n++ {
		want := math.Ldexp(1, n)
		if got := Exp2(float64(n)); got != want {
			t.Errorf("Exp2(%d) = %v, want %v", n, got, want)
		}
	}
}

func TestExp2Boundaries(t *testing.T) {
	tests := []struct {
		input float64
		want  float64
	}{
		{2, 4},
		{3, 8},
		{4, 16},
		{0.5, math.Sqrt2},
		{-0.5, math.Sqrt2 / 2},
		{1024, math.Inf(1)},
		{-1075, 0},
		{-1074.5, 0x1p-1074},
		{math.Inf(-1), 0},
	}
	for _, tt := range tests {
		if got := Exp2(tt.input); got != tt.want {
			t.Errorf("Exp2(%v) = %v, want %v", tt.input, got, tt.want)
		}
	}
	if got := Exp2(math.NaN()); !math.IsNaN(got) {
		t.Errorf("Exp2(NaN) = %v, want NaN", got)
	}
}

// TestExp10Powers compares integer powers with strconv, which rounds
// decimal literals correctly.
func TestExp10Powers(t *testing.T) {
	for k := -324; k <= 309; k++ {
		want, err := strconv.ParseFloat(fmt.Sprintf("1e%d", k), 64)
		if err != nil && !math.IsInf(want, 1) {
			t.Fatal(err)
		}
		if got := Exp10(float64(k)); got != want {
			t.Errorf("Exp10(%d) = %v, want %v", k, got, want)
		}
	}
}

func TestExp10IntegerShortcut(t *testing.T) {
	for n := 0; n < len(exp10Powers); n++ {
		class, got := classifyExp10(float64(n))
		if class != ClassShortcut || got != exp10Powers[n] {
			t.Errorf("classifyExp10(%d) = %v, %v, want shortcut %v", n, class, got, exp10Powers[n])
		}
	}
	for _, x := range []float64{32, 23.5, -1} {
		if class, _ := classifyExp10(x); class == ClassShortcut {
			t.Errorf("classifyExp10(%v) took the integer shortcut", x)
		}
	}
}

func TestExp10Boundaries(t *testing.T) {
	tests := []struct {
		input float64
		want  float64
	}{
		{0.5, math.Sqrt(10)},
		{308.25, 1.7782794100389228e+308},
		{308.3, math.Inf(1)},
		{-323.3, 0x1p-1074},
		{-324, 0},
		{-310, 1e-310},
		{math.Inf(-1), 0},
		{math.Inf(1), math.Inf(1)},
	}
	for _, tt := range tests {
		if got := Exp10(tt.input); got != tt.want {
			t.Errorf("Exp10(%v) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestExp10fPowers(t *testing.T) {
	for k := -46; k <= 39; k++ {
		want, err := strconv.ParseFloat(fmt.Sprintf("1e%d", k), 32)
		if err != nil && !math.IsInf(want, 1) {
			t.Fatal(err)
		}
		if got := Exp10f(float32(k)); got != float32(want) {
			t.Errorf("Exp10f(%d) = %v, want %v", k, got, float32(want))
		}
	}
}

func TestExp2fIntegers(t *testing.T) {
	for n := -149; n <= 127; n++ {
		want := float32(math.Ldexp(1, n))
		if got := Exp2f(float32(n)); got != want {
			t.Errorf("Exp2f(%d) = %v, want %v", n, got, want)
		}
	}
	if got := Exp2f(128); !math.IsInf(float64(got), 1) {
		t.Errorf("Exp2f(128) = %v, want +Inf", got)
	}
	if got := Exp2f(-150); got != 0 {
		t.Errorf("Exp2f(-150) = %v, want 0", got)
	}
}

// TestExpAccuratePaths checks that the double-double fallbacks agree with
// the fast paths on inputs where the rounding test passes.
func TestExpAccuratePaths(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 20000; i++ {
		x := r.Float64()*2100 - 1076
		if c, _ := classifyExp2(x); c == ClassGeneral {
			if got, want := exp2Accurate(x), Exp2(x); got != want {
				t.Fatalf("exp2Accurate(%v) = %v, Exp2 = %v", x, got, want)
			}
		}
		x = r.Float64()*640 - 325
		if c, _ := classifyExp10(x); c == ClassGeneral {
			if got, want := exp10Accurate(x), Exp10(x); got != want {
				t.Fatalf("exp10Accurate(%v) = %v, Exp10 = %v", x, got, want)
			}
		}
	}
}

// TestExpMatchesStdlib checks results against math.Exp2, which is accurate
// to about one ulp, and math.Pow, whose integer-power loop accumulates a
// few tens of ulps for large exponents.
func TestExpMatchesStdlib(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 20000; i++ {
		x := r.Float64()*2040 - 1020
		if got, want := Exp2(x), math.Exp2(x); ulps64(got, want) > 2 {
			t.Errorf("Exp2(%v) = %v, math.Exp2 = %v", x, got, want)
		}
		x = r.Float64()*600 - 300
		if got, want := Exp10(x), math.Pow(10, x); ulps64(got, want) > 64 {
			t.Errorf("Exp10(%v) = %v, math.Pow(10, x) = %v", x, got, want)
		}
	}
}

// TestExpfMatchesDouble rounds the correctly rounded float64 results to
// float32. That double rounding differs from the direct result only when
// the float64 lands exactly on a float32 midpoint, which the samples avoid.
func TestExpfMatchesDouble(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 50000; i++ {
		x := float32(r.Float64()*280 - 151)
		if got, want := Exp2f(x), float32(Exp2(float64(x))); got != want {
			t.Errorf("Exp2f(%v) = %v, want %v", x, got, want)
		}
		x = float32(r.Float64()*85 - 46)
		if got, want := Exp10f(x), float32(Exp10(float64(x))); got != want {
			t.Errorf("Exp10f(%v) = %v, want %v", x, got, want)
		}
	}
}

func TestExpMonotonic(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	xs := make([]float64, 5000)
	for i := range xs {
		xs[i] = r.Float64()*40 - 20
	}
	sort.Float64s(xs)
	for i := 1; i < len(xs); i++ {
		a, b := xs[i-1], xs[i]
		if Exp2(a) > Exp2(b) {
			t.Errorf("Exp2 decreases between %v and %v", a, b)
		}
		if Exp10(a) > Exp10(b) {
			t.Errorf("Exp10 decreases between %v and %v", a, b)
		}
		if Exp2f(float32(a)) > Exp2f(float32(b)) {
			t.Errorf("Exp2f decreases between %v and %v", a, b)
		}
		if Exp10f(float32(a)) > Exp10f(float32(b)) {
			t.Errorf("Exp10f decreases between %v and %v", a, b)
		}
	}
}

// ulps64 returns the number of float64 values between a and b.
func ulps64(a, b float64) uint64 {
	ia, ib := orderedBits(a), orderedBits(b)
	if ia > ib {
		return uint64(ia - ib)
	}
	return uint64(ib - ia)
}

// orderedBits maps a float64 onto an int64 that orders like the float.
func orderedBits(x float64) int64 {
	i := int64(math.Float64bits(x))
	if i < 0 {
		i = math.MinInt64 - i
	}
	return i
}

func BenchmarkExp2(b *testing.B) {
	var sink float64
	for i := 0; i < b.N; i++ {
		sink += Exp2(float64(i&1023) * 0.37)
	}
	_ = sink
}

func BenchmarkExp10(b *testing.B) {
	var sink float64
	for i := 0; i < b.N; i++ {
		sink += Exp10(float64(i&255) * 0.37)
	}
	_ = sink
}

func BenchmarkExp2f(b *testing.B) {
	var sink float32
	for i := 0; i < b.N; i++ {
		sink += Exp2f(float32(i&127) * 0.37)
	}
	_ = sink
}

func BenchmarkExp10f(b *testing.B) {
	var sink float32
	for i := 0; i < b.N; i++ {
		sink += Exp10f(float32(i&31) * 0.37)
	}
	_ = sink
}
