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

import "math"

// Cotpif returns cot(pi*x) correctly rounded to the nearest float32.
//
// Special cases are:
//
//	Cotpif(±0) = ±Inf
//	Cotpif(n) = ±Inf for integer n, with the sign of x
//	Cotpif(n + 1/2) = ±0 with the sign of x
//	Cotpif(n ± 1/4) = ±1
//	Cotpif(±Inf) = NaN
//	Cotpif(NaN) = NaN
//
// Algorithm: the reciprocal of the Tanpif rational approximation.
func Cotpif(x float32) float32 {
	if c, r := classifyCotpif(x); c != ClassGeneral {
		return r
	}
	r0, r1, den := tanpiRational(float64(tanpiFrac(x)))
	return float32(den / (r0 * r1))
}

func classifyCotpif(x float32) (Class, float32) {
	ix := math.Float32bits(x)
	e := ix & tanpifExpNaN
	if e > tanpifExpHuge {
		switch {
		case e != tanpifExpNaN:
			return ClassShortcut, copysign32(float32(math.Inf(1)), x)
		case ix<<9 == 0:
			return ClassInf, float32(math.NaN())
		default:
			return ClassNaN, x + x
		}
	}

	zf := tanpiFrac(x)
	switch az := math.Float32bits(zf) & 0x7fffffff; {
	case az == 0:
		return ClassShortcut, copysign32(float32(math.Inf(1)), x)
	case az == 0x3f000000:
		return ClassShortcut, copysign32(0, x)
	case az == 0x3e800000:
		return ClassShortcut, copysign32(1, zf)
	case az == cotpifHard0:
		return ClassShortcut, signedResult(cotpifHard0Result, zf)
	case az == cotpifHard1:
		return ClassShortcut, signedResult(cotpifHard1Result, zf)
	}
	return ClassGeneral, 0
}
