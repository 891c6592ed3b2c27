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

// Exp10 returns 10**x correctly rounded to nearest.
//
// Special cases are:
//
//	Exp10(+Inf) = +Inf
//	Exp10(-Inf) = 0
//	Exp10(x) = +Inf for x > 308.2547155599167
//	Exp10(x) = 0 for x < -323.60766
//	Exp10(n) = 10^n for integer 0 <= n <= 31, exact up to 22
//	Exp10(NaN) = NaN
//
// Algorithm: x = (k + r)*log10(2)/4096 with log10(2)/4096 split in three
// parts. 2^(k/4096) comes from the exp2 tables and 10^r from a degree-4
// polynomial. A rounding test sends hard cases to a double-double Taylor
// evaluation.
func Exp10(x float64) float64 {
	if c, r := classifyExp10(x); c != ClassGeneral {
		return r
	}

	ix := math.Float64bits(x)
	t := math.RoundToEven(exp10InvL_f64 * x)
	k := int64(t)
	_, _, ie := expIndex(k)
	tz := expBase(k)

	dx := math.FMA(-exp10L1_f64, t, math.FMA(-exp10L0_f64, t, x))
	p := poly.Estrin4(dx, dx*dx, exp10C0_f64, exp10C1_f64, exp10C2_f64, exp10C3_f64)
	fh := tz.Hi
	fl := math.FMA(tz.Hi*dx, p, tz.Lo)

	if ix < exp10Subnormal {
		r, ok := fastRound(fh, fl, exp10Eps_f64)
		if !ok {
			return exp10Accurate(x)
		}
		return ldexp(r, ie)
	}

	s := dd.ExactAdd(denormalBias(ie), fh)
	r, ok := fastRound(s.Hi, fl+s.Lo, exp10Eps_f64)
	if !ok {
		return exp10Accurate(x)
	}
	return toDenormal(r, ie)
}

// exp10Accurate evaluates 10^x with a relative error below 2^-100.
func exp10Accurate(x float64) float64 {
	t := math.RoundToEven(exp10InvL_f64 * x)
	k := int64(t)
	_, _, ie := expIndex(k)
	dt := expBaseAccurate(k)

	// dx = x - t*log10(2)/4096 as a pair.
	a := math.FMA(-exp10L0_f64, t, x)
	m := dd.MulAdd(-exp10L1_f64, t, a)
	dx := dd.FastAdd(m.Hi, math.FMA(-exp10L2_f64, t, m.Lo))

	f := poly.HornerPair(dx.Hi, exp10PolyDD)
	f = dd.MulF64(f, dx.Hi)
	f = dd.AddF64(f, dx.Lo*exp10Ln10Hi_f64)
	f = dd.Add(dt, dd.Mult(f, dt))
	return expFinish(f, ie, math.Float64bits(x) >= exp10Subnormal)
}

func classifyExp10(x float64) (Class, float64) {
	ix := math.Float64bits(x)
	aix := ix & (1<<63 - 1)
	if aix > exp10AbsHuge {
		switch {
		case aix > exp10AbsInf:
			return ClassNaN, x + x
		case aix == exp10AbsInf:
			if ix>>63 != 0 {
				return ClassInf, 0
			}
			return ClassInf, x
		case ix>>63 == 0:
			return ClassShortcut, math.Inf(1)
		case aix > exp10Underflow:
			return ClassShortcut, 0
		}
	}
	if ix<<exp10PowTrailer == 0 && aix < exp10MaxIntPow {
		if n := math.RoundToEven(x); n == x && n >= 0 {
			return ClassShortcut, exp10Powers[int(n)]
		}
	}
	if aix <= exp10AbsTiny {
		return ClassShortcut, 1 + x
	}
	return ClassGeneral, 0
}
