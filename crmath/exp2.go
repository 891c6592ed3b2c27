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

// Exp2 returns 2**x correctly rounded to nearest.
//
// Special cases are:
//
//	Exp2(±0) = 1
//	Exp2(+Inf) = +Inf
//	Exp2(-Inf) = 0
//	Exp2(x) = +Inf for x >= 1024
//	Exp2(x) = 0 for x <= -1075
//	Exp2(NaN) = NaN
//
// Algorithm: x*4096 = k + z with |z| <= 1/2. 2^(k/4096) comes from two
// 64-entry tables and 2^(z/4096) from a degree-4 polynomial. If the result
// is too close to a rounding boundary the evaluation is redone in
// double-double arithmetic.
func Exp2(x float64) float64 {
	if c, r := classifyExp2(x); c != ClassGeneral {
		return r
	}

	ix := math.Float64bits(x)
	ax := ix << 1
	// frac is nonzero iff x is not an integer. Integer inputs have exact
	// results and skip the rounding test.
	ex := (ax >> 53) - 0x3ff
	frac := ex>>63 | (ix<<12)<<(ex&63)

	sx := 4096 * x
	fx := math.RoundToEven(sx)
	z := sx - fx
	k := int64(fx)
	_, _, ie := expIndex(k)
	t := expBase(k)

	p := poly.Estrin4(z, z*z, exp2C0_f64, exp2C1_f64, exp2C2_f64, exp2C3_f64)
	fh := t.Hi
	fl := math.FMA(t.Hi*z, p, t.Lo)

	if ix <= exp2Subnormal {
		if frac != 0 {
			r, ok := fastRound(fh, fl, exp2Eps_f64)
			if !ok {
				return exp2Accurate(x)
			}
			fh = r
		}
		return ldexp(fh, ie)
	}

	s := dd.ExactAdd(denormalBias(ie), fh)
	fh, fl = s.Hi, fl+s.Lo
	if frac != 0 {
		r, ok := fastRound(fh, fl, exp2Eps_f64)
		if !ok {
			return exp2Accurate(x)
		}
		fh = r
	}
	return toDenormal(fh, ie)
}

// exp2Accurate evaluates 2^x with a relative error below 2^-100.
func exp2Accurate(x float64) float64 {
	sx := 4096 * x
	fx := math.RoundToEven(sx)
	z := sx - fx
	k := int64(fx)
	_, _, ie := expIndex(k)
	t := expBaseAccurate(k)

	f := poly.HornerPair(z, exp2PolyDD)
	f = dd.MulF64(f, z)
	f = dd.Add(t, dd.Mult(f, t))
	return expFinish(f, ie, math.Float64bits(x) > exp2Subnormal)
}

func classifyExp2(x float64) (Class, float64) {
	ix := math.Float64bits(x)
	ax := ix << 1
	switch {
	case ax == 0:
		return ClassShortcut, 1
	case ax > exp2AbsInf:
		return ClassNaN, x + x
	case ax == exp2AbsInf:
		if ix>>63 != 0 {
			return ClassInf, 0
		}
		return ClassInf, x
	case ax >= exp2AbsHuge:
		if ix>>63 == 0 {
			return ClassShortcut, math.Inf(1)
		}
		if ix >= exp2Underflow {
			return ClassShortcut, 0
		}
	case ax <= exp2AbsTiny:
		return ClassShortcut, 1 + math.Copysign(0x1p-54, x)
	}
	return ClassGeneral, 0
}
