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

	"github.com/ajroetker/go-crmath/poly"
)

// Exp2f returns 2**x correctly rounded to the nearest float32.
//
// Special cases are:
//
//	Exp2f(+Inf) = +Inf
//	Exp2f(-Inf) = 0
//	Exp2f(x) = +Inf for x >= 128
//	Exp2f(x) = 0 for x <= -150
//	Exp2f(NaN) = NaN
//
// Algorithm: x = (k + r)/32 with |r| <= 1/2, 2^(k/32) from a table and
// 2^(r/32) from a degree-6 polynomial evaluated in float64.
func Exp2f(x float32) float32 {
	if c, r := classifyExp2f(x); c != ClassGeneral {
		return r
	}

	xd := float64(x)
	kd := math.RoundToEven(32 * xd)
	mh := exp2MidScaled(int64(kd))
	dx := math.FMA(kd, -1.0/32, xd)
	dx2 := dx * dx

	c0 := math.FMA(dx, exp2fC1_f64, 1)
	q := poly.Horner(dx, exp2fC2_f64, exp2fC3_f64, exp2fC4_f64, exp2fC5_f64, exp2fC6_f64)
	return float32(math.FMA(q, dx2*mh, c0*mh))
}

func classifyExp2f(x float32) (Class, float32) {
	xu := math.Float32bits(x)
	xa := xu & 0x7fffffff
	switch {
	case xa > 0x7f800000:
		return ClassNaN, x + x
	case xa == 0x7f800000:
		if xu>>31 != 0 {
			return ClassInf, 0
		}
		return ClassInf, x
	case xa >= exp2fAbsHuge:
		if xu>>31 == 0 {
			return ClassShortcut, float32(math.Inf(1))
		}
		if xu >= exp2fUnderflow {
			return ClassShortcut, 0
		}
	case xa <= exp2fAbsTiny:
		return ClassShortcut, float32(1 + float64(x))
	case xu == exp2fHard0:
		return ClassShortcut, exp2fHard0Result.Float32()
	case xu == exp2fHard1:
		return ClassShortcut, exp2fHard1Result.Float32()
	}
	return ClassGeneral, 0
}
