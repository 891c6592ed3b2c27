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

package dd

import (
	"math"
	"math/big"
	"math/rand"
	"testing"
)

// exactSum returns a+b with no rounding.
func exactSum(a, b float64) *big.Float {
	x := new(big.Float).SetPrec(2200).SetFloat64(a)
	y := new(big.Float).SetPrec(2200).SetFloat64(b)
	return x.Add(x, y)
}

// exactProduct returns a*b with no rounding.
func exactProduct(a, b float64) *big.Float {
	x := new(big.Float).SetPrec(2200).SetFloat64(a)
	y := new(big.Float).SetPrec(2200).SetFloat64(b)
	return x.Mul(x, y)
}

// randFloat returns a random float64 with an exponent in [-emax, emax].
func randFloat(r *rand.Rand, emax int) float64 {
	m := 1 + r.Float64()
	e := r.Intn(2*emax+1) - emax
	x := math.Ldexp(m, e)
	if r.Intn(2) == 0 {
		x = -x
	}
	return x
}

func TestExactAdd(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
	}{
		{"one plus tiny", 1, 0x1p-60},
		{"tiny plus one", 0x1p-60, 1},
		{"cancellation", 1 + 0x1p-52, -1},
		{"opposite signs", 0x1p100, -0x1p-100},
		{"equal", 3, 3},
		{"zeros", 0, -0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ExactAdd(tt.a, tt.b)
			if p.Hi != tt.a+tt.b {
				t.Errorf("ExactAdd(%v, %v).Hi = %v, want %v", tt.a, tt.b, p.Hi, tt.a+tt.b)
			}
			if exactSum(p.Hi, p.Lo).Cmp(exactSum(tt.a, tt.b)) != 0 {
				t.Errorf("ExactAdd(%v, %v) = %+v, not exact", tt.a, tt.b, p)
			}
		})
	}
}

func TestExactAddRandom(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for range 20000 {
		a, b := randFloat(r, 300), randFloat(r, 300)
		p := ExactAdd(a, b)
		if exactSum(p.Hi, p.Lo).Cmp(exactSum(a, b)) != 0 {
			t.Fatalf("ExactAdd(%v, %v) = %+v, not exact", a, b, p)
		}
		if a != 0 && math.Abs(a) >= math.Abs(b) {
			if q := FastAdd(a, b); q != p {
				t.Fatalf("FastAdd(%v, %v) = %+v, want %+v", a, b, q, p)
			}
		}
	}
}

func TestExactMulVariantsAgree(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for range 20000 {
		a, b := randFloat(r, 400), randFloat(r, 400)
		f := exactMulFMA(a, b)
		s := exactMulSplit(a, b)
		if f != s {
			t.Fatalf("exactMulFMA(%v, %v) = %+v, exactMulSplit = %+v", a, b, f, s)
		}
		if exactSum(f.Hi, f.Lo).Cmp(exactProduct(a, b)) != 0 {
			t.Fatalf("ExactMul(%v, %v) = %+v, not exact", a, b, f)
		}
	}
}

func TestExactMulCapability(t *testing.T) {
	for _, c := range []Capability{CapSplit, CapFMA} {
		t.Run(c.String(), func(t *testing.T) {
			defer setCapability(c)()
			if got := CurrentCapability(); got != c {
				t.Fatalf("CurrentCapability() = %v, want %v", got, c)
			}
			a, b := 1+0x1p-30, 1-0x1p-30
			p := ExactMul(a, b)
			if p.Hi != 1 || p.Lo != -0x1p-60 {
				t.Errorf("ExactMul(%v, %v) = %+v, want {1, -2^-60}", a, b, p)
			}
		})
	}
}

func TestSplit(t *testing.T) {
	tests := []float64{1, math.Pi, -math.E, 0x1p994 * 1.7, 0x1p1000 * 1.3, math.MaxFloat64, 0x1p-1000 * 1.9}
	for _, x := range tests {
		hi, lo := Split(x)
		if hi+lo != x {
			t.Errorf("Split(%v) = %v + %v, want sum %v", x, hi, lo, x)
		}
		if bits := 64 - trailingZeros(hi); bits > 26 {
			t.Errorf("Split(%v) hi = %v has %d significant bits, want <= 26", x, hi, bits)
		}
	}
}

// trailingZeros counts the zero bits at the bottom of the significand of x,
// including the implicit bit position.
func trailingZeros(x float64) int {
	m := math.Float64bits(x)&(1<<52-1) | 1<<52
	n := 11
	for m&1 == 0 {
		m >>= 1
		n++
	}
	return n
}

func TestMulAdd(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for range 5000 {
		a, b, c := randFloat(r, 20), randFloat(r, 20), randFloat(r, 40)
		p := MulAdd(a, b, c)
		want := exactProduct(a, b)
		want.Add(want, new(big.Float).SetFloat64(c))
		diff := exactSum(p.Hi, p.Lo)
		diff.Sub(diff, want).Abs(diff)
		bound := math.Max(math.Abs(a*b), math.Abs(c)) * 0x1p-103
		if diff.Cmp(big.NewFloat(bound)) > 0 {
			t.Fatalf("MulAdd(%v, %v, %v) = %+v, error %v above %v", a, b, c, p, diff, bound)
		}
	}
}

func TestPairProducts(t *testing.T) {
	third := FastAdd(0x1.5555555555555p-2, 0x1.5555555555555p-56)
	three := Pair{Hi: 3}

	tests := []struct {
		name string
		got  Pair
	}{
		{"Mult", Mult(third, three)},
		{"QuickMult", QuickMult(third, three)},
		{"MulF64", MulF64(third, 3)},
		{"QuickMulF64", QuickMulF64(third, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if d := math.Abs(tt.got.Hi - 1 + tt.got.Lo); d > 0x1p-100 {
				t.Errorf("%s(1/3, 3) = %+v, off by %g", tt.name, tt.got, d)
			}
		})
	}
}

func TestAdd(t *testing.T) {
	a := Pair{Hi: 1, Lo: 0x1p-60}
	b := Pair{Hi: -1, Lo: 0x1p-61}
	got := Add(a, b)
	if got.Hi != 0x1.8p-60 || got.Lo != 0 {
		t.Errorf("Add(%+v, %+v) = %+v, want {0x1.8p-60, 0}", a, b, got)
	}
	got = AddF64(a, 1)
	if got.Hi != 2 || got.Lo != 0x1p-60 {
		t.Errorf("AddF64(%+v, 1) = %+v, want {2, 2^-60}", a, got)
	}
}

func TestNoFMAEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"0", false},
		{"false", false},
		{"1", true},
		{"true", true},
		{"yes", true},
	}

	for _, tt := range tests {
		t.Setenv("CRMATH_NO_FMA", tt.val)
		if got := NoFMAEnv(); got != tt.want {
			t.Errorf("NoFMAEnv() with %q = %v, want %v", tt.val, got, tt.want)
		}
	}
}

func BenchmarkExactMul(b *testing.B) {
	for _, c := range []Capability{CapSplit, CapFMA} {
		b.Run(c.String(), func(b *testing.B) {
			defer setCapability(c)()
			x, y := math.Pi, math.E
			var sink Pair
			for i := 0; i < b.N; i++ {
				sink = ExactMul(x, y)
			}
			_ = sink
		})
	}
}
