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

// Exp10f returns 10**x correctly rounded to the nearest float32.
//
// Special cases are:
//
//	Exp10f(+Inf) = +Inf
//	Exp10f(-Inf) = 0
//	Exp10f(x) = +Inf for x >= 38.53184
//	Exp10f(x) = 0 for x < -45.1545
//	Exp10f(NaN) = NaN
//
// Algorithm: x = (k + r*32*log2(10))/(32*log2(10)). 2^(k/32) comes from a
// 32-entry table and 10^r from a degree-5 polynomial, all in float64. The
// float64 error is small enough that the final conversion rounds
// correctly.
func Exp10f(x float32) float32 {
	if c, r := classifyExp10f(x); c != ClassGeneral {
		return r
	}

	xd := float64(x)
	kd := math.RoundToEven(exp10fLog2B_f64 * xd)
	mh := exp2MidScaled(int64(kd))
	dx := math.FMA(kd, exp10fLo_f64, math.FMA(kd, exp10fHi_f64, xd))
	dx2 := dx * dx

	c0 := math.FMA(dx, exp10fC0_f64, 1)
	c1 := math.FMA(dx, exp10fC2_f64, exp10fC1_f64)
	c2 := math.FMA(dx, exp10fC4_f64, exp10fC3_f64)
	p := math.FMA(dx2, c2, c1)
	return float32(math.FMA(p, dx2*mh, c0*mh))
}

func classifyExp10f(x float32) (Class, float32) {
	xu := math.Float32bits(x)
	xa := xu & 0x7fffffff
	if xa >= exp10fAbsHuge {
		switch {
		case xa > 0x7f800000:
			return ClassNaN, x + x
		case xa == 0x7f800000:
			if xu>>31 != 0 {
				return ClassInf, 0
			}
			return ClassInf, x
		case xu>>31 == 0:
			return ClassShortcut, float32(math.Inf(1))
		case xu > exp10fUnderflow:
			return ClassShortcut, 0
		}
	}
	if xa <= exp10fAbsTiny {
		// 1 + t + t^2/2 with t = x*ln(10). Near x = -1.29e-8 the result is
		// within 2^-51 of the midpoint 1 - 2^-25, so the quadratic term
		// and float64 evaluation are both needed.
		t := float64(x) * exp10fC0_f64
		return ClassShortcut, float32(1 + math.FMA(t, 0.5*t, t))
	}
	return ClassGeneral, 0
}
