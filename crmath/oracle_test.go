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
	"testing"

	"github.com/ajroetker/go-crmath/internal/oracle"
	"github.com/cockroachdb/errors"
)

// oracleSamplers draw arguments from the range where each function has
// work to do. Inputs outside the general class are also fine; the oracle
// decides them the same way.
var oracleSamplers = map[string]func(r *rand.Rand) float64{
	"exp2":  func(r *rand.Rand) float64 { return r.Float64()*2100 - 1077 },
	"exp10": func(r *rand.Rand) float64 { return r.Float64()*634 - 324 },
	"exp2f": func(r *rand.Rand) float64 { return float64(float32(r.Float64()*280 - 151)) },
	"exp10f": func(r *rand.Rand) float64 {
		return float64(float32(r.Float64()*84 - 45.5))
	},
	"atanhf": func(r *rand.Rand) float64 {
		// Half near the origin, half spread over (-1, 1).
		if r.Intn(2) == 0 {
			return float64(float32(math.Ldexp(r.Float64()*2-1, -r.Intn(20))))
		}
		return float64(float32(r.Float64()*2 - 1))
	},
	"cotf":   func(r *rand.Rand) float64 { return float64(randFloat32(r)) },
	"tanpif": sampleTrigPi,
	"cotpif": sampleTrigPi,
}

func sampleTrigPi(r *rand.Rand) float64 {
	if r.Intn(4) == 0 {
		return float64(randFloat32(r))
	}
	return float64(float32(math.Ldexp(r.Float64()*2-1, r.Intn(30)-6)))
}

func TestMatchesOracle(t *testing.T) {
	n := 200
	if testing.Short() {
		n = 25
	}
	for _, f := range Funcs() {
		sample, ok := oracleSamplers[f.Name]
		if !ok {
			t.Fatalf("no sampler for %s", f.Name)
		}
		t.Run(f.Name, func(t *testing.T) {
			r := rand.New(rand.NewSource(int64(len(f.Name))))
			for range n {
				x := sample(r)
				want, err := oracle.Correct(f.Name, x, f.Bits)
				if errors.Is(err, oracle.ErrNoResult) {
					continue
				}
				if err != nil {
					t.Fatalf("oracle %s(%v): %v", f.Name, x, err)
				}
				if got := f.Eval(x); got != want {
					t.Errorf("%s(%v) = %v (%#x), want %v (%#x)", f.Name, x,
						got, math.Float64bits(got), want, math.Float64bits(want))
				}
			}
		})
	}
}

// thresholdWindows are dense float32 bit ranges around the shortcut
// thresholds and the inputs whose results sit closest to a midpoint.
var thresholdWindows = []struct {
	name   string
	f      func(float32) float32
	approx func(float64) float64
	lo, hi uint32
}{
	{"exp10f", Exp10f, exp10Approx, 0x32700000, 0x32900000},
	{"exp10f", Exp10f, exp10Approx, 0xb2500000, 0xb2900000},
	{"exp2f", Exp2f, math.Exp2, 0x32f00000, 0x33100000},
	{"exp2f", Exp2f, math.Exp2, 0xb2f00000, 0xb3100000},
	{"exp2f", Exp2f, math.Exp2, 0x3b420000, 0x3b440000},
	{"exp2f", Exp2f, math.Exp2, 0xbcf30000, 0xbcf50000},
	{"cotpif", Cotpif, cotpiApprox, 0x32300000, 0x32500000},
	{"cotpif", Cotpif, cotpiApprox, 0xb2300000, 0xb2500000},
	{"cotpif", Cotpif, cotpiApprox, 0x3bf30000, 0x3bf40000},
}

func exp10Approx(x float64) float64 { return math.Pow(10, x) }

func cotpiApprox(x float64) float64 { return 1 / math.Tan(math.Pi*x) }

// nearMidpoint reports whether y is too close to halfway between two
// float32 values for a float64 approximation to decide the rounding.
func nearMidpoint(y float64) bool {
	f := float32(y)
	if math.IsInf(float64(f), 0) {
		return true
	}
	up := math.Nextafter32(f, float32(math.Inf(1)))
	down := math.Nextafter32(f, float32(math.Inf(-1)))
	half := math.Min(float64(up)-float64(f), float64(f)-float64(down)) / 2
	return half-math.Abs(y-float64(f)) < 0x1p-40*math.Abs(y)
}

// TestThresholdWindows checks every input in thresholdWindows. A float64
// approximation settles most of them; the rest go to the oracle.
func TestThresholdWindows(t *testing.T) {
	if testing.Short() {
		t.Skip("dense float32 sweep")
	}
	for _, w := range thresholdWindows {
		t.Run(fmt.Sprintf("%s/0x%08x", w.name, w.lo), func(t *testing.T) {
			var checked int
			for b := w.lo; b < w.hi; b++ {
				x := math.Float32frombits(b)
				got := w.f(x)
				y := w.approx(float64(x))
				if got == float32(y) && !nearMidpoint(y) {
					continue
				}
				checked++
				want, err := oracle.Correct(w.name, float64(x), 32)
				if err != nil {
					t.Fatalf("oracle %s(%v): %v", w.name, x, err)
				}
				if got != float32(want) {
					t.Errorf("%s(0x%08x) = 0x%08x, want 0x%08x", w.name, b,
						math.Float32bits(got), math.Float32bits(float32(want)))
				}
			}
			t.Logf("%d of %d inputs checked against the oracle", checked, w.hi-w.lo)
		})
	}
}
