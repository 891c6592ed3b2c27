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
	"math"

	"github.com/ajroetker/go-crmath/dd"
	"github.com/ajroetker/go-crmath/poly"
)

// Tanpif returns tan(pi*x) correctly rounded to the nearest float32.
//
// Special cases are:
//
//	Tanpif(±0) = ±0
//	Tanpif(n) = ±0 for integer n, with the sign of x for even n
//	Tanpif(n + 1/4) = ±1
//	Tanpif(n + 1/2) = +Inf for even n, -Inf for odd n
//	Tanpif(±Inf) = NaN
//	Tanpif(NaN) = NaN
//
// Algorithm: x = n + z with |z| <= 1/2 is exact in float32. tan(pi*z) comes
// from a rational approximation with the poles at ±1/2 factored out.
func Tanpif(x float32) float32 {
	if c, r := classifyTanpif(x); c != ClassGeneral {
		return r
	}
	r0, r1, den := tanpiRational(float64(tanpiFrac(x)))
	return float32(r0 * r1 / den)
}

// tanpiFrac returns x minus the nearest integer, which is exact.
func tanpiFrac(x float32) float32 {
	return x - float32(math.RoundToEven(float64(x)))
}

// tanpiRational returns r0, r1 and den with tan(pi*z) = r0*r1/den for
// |z| <= 1/2. r0 = z*(1-z^2) and den carries the factor 1/4 - z^2, so both
// the zero and the poles are exact.
func tanpiRational(z float64) (r0, r1, den float64) {
	z2 := z * z
	z4 := z2 * z2
	den = poly.Estrin4(z2, z4, tanpifD0_f64, tanpifD1_f64, tanpifD2_f64, tanpifD3_f64) * (0.25 - z2)
	r0 = math.FMA(-z, z2, z)
	r1 = poly.Estrin4(z2, z4, tanpifN0_f64, tanpifN1_f64, tanpifN2_f64, tanpifN3_f64)
	return r0, r1, den
}

// tanpiQuarter reports whether 4x is an integer and, if so, returns 4x mod 8.
func tanpiQuarter(x float32) (k int32, ok bool) {
	x4 := 4 * x
	if float64(x4) != math.RoundToEven(float64(x4)) {
		return 0, false
	}
	return int32(x4) & 7, true
}

func copysign32(v, sign float32) float32 {
	return float32(math.Copysign(float64(v), float64(sign)))
}

// signedResult rounds a stored odd-function result for an argument with
// the sign of s.
func signedResult(p dd.Pair32, s float32) float32 {
	if math.Signbit(float64(s)) {
		p = p.Neg()
	}
	return p.Float32()
}

func classifyTanpif(x float32) (Class, float32) {
	ix := math.Float32bits(x)
	e := ix & tanpifExpNaN
	if e > tanpifExpHuge {
		switch {
		case e != tanpifExpNaN:
			// Even integer.
			return ClassShortcut, copysign32(0, x)
		case ix<<9 == 0:
			return ClassInf, float32(math.NaN())
		default:
			return ClassNaN, x + x
		}
	}

	zf := tanpiFrac(x)
	if k, ok := tanpiQuarter(x); ok {
		switch {
		case k&1 != 0:
			return ClassShortcut, copysign32(1, zf)
		case k&6 == 0:
			return ClassShortcut, copysign32(0, x)
		case k&6 == 4:
			return ClassShortcut, -copysign32(0, x)
		case k&6 == 2:
			return ClassShortcut, float32(math.Inf(1))
		default:
			return ClassShortcut, float32(math.Inf(-1))
		}
	}

	switch math.Float32bits(zf) & 0x7fffffff {
	case tanpifHard0:
		return ClassShortcut, signedResult(tanpifHard0Result, zf)
	case tanpifHard1:
		return ClassShortcut, signedResult(tanpifHard1Result, zf)
	}
	return ClassGeneral, 0
}
