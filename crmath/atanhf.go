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

// Atanhf returns the inverse hyperbolic tangent of x correctly rounded to
// the nearest float32.
//
// Special cases are:
//
//	Atanhf(±0) = ±0
//	Atanhf(±1) = ±Inf
//	Atanhf(x) = NaN if |x| > 1
//	Atanhf(NaN) = NaN
//
// Algorithm: for |x| < 0.1 an odd Taylor series in float64. Otherwise
// atanh(x) = (log(1+x) - log(1-x))/2 with both logarithms in double-double,
// rounded to float32 through round-to-odd.
func Atanhf(x float32) float32 {
	if c, r := classifyAtanhf(x); c != ClassGeneral {
		return r
	}

	xa := math.Float32bits(x) & 0x7fffffff
	xd := float64(x)
	if xa <= atanhfAbsSmall {
		x2 := xd * xd
		pe := poly.Horner(x2, atanhfC3_f64, atanhfC5_f64, atanhfC7_f64, atanhfC9_f64,
			atanhfC11_f64, atanhfC13_f64, atanhfC15_f64)
		pe *= x2
		return float32(math.FMA(xd, pe, xd))
	}

	// 1+a and 1-a are exact in float64.
	a := math.Abs(xd)
	d := dd.Add(logDD(1+a), logDD(1-a).Neg())
	r := d.Scale(0.5).Float32()
	return float32(math.Copysign(float64(r), xd))
}

func classifyAtanhf(x float32) (Class, float32) {
	xa := math.Float32bits(x) & 0x7fffffff
	switch {
	case xa > atanhfAbsInf:
		return ClassNaN, x + x
	case xa == atanhfAbsInf:
		return ClassInf, float32(math.NaN())
	case xa > atanhfAbsOne:
		return ClassNaN, float32(math.NaN())
	case xa == atanhfAbsOne:
		return ClassShortcut, float32(math.Copysign(math.Inf(1), float64(x)))
	case xa == 0:
		return ClassShortcut, x
	case xa <= atanhfAbsTiny:
		xd := float64(x)
		return ClassShortcut, float32(xd + atanhfC3_f64*xd*xd*xd)
	}
	return ClassGeneral, 0
}
