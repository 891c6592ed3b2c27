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
	"math/bits"

	"github.com/ajroetker/go-crmath/poly"
)

// Cotf returns the cotangent of x correctly rounded to the nearest float32.
//
// Special cases are:
//
//	Cotf(±0) = ±Inf
//	Cotf(±Inf) = NaN
//	Cotf(NaN) = NaN
//
// Algorithm: tiny arguments use 1/x with Taylor corrections. Otherwise
// x = (i + z)*pi/2 with |z| <= 1/2, by a two-constant reduction below 2^28
// and by a 256-bit Payne-Hanek reduction above. A rational approximation of
// tan(z*pi/2) gives cot(x) as D/N for even i and -N/D for odd i.
func Cotf(x float32) float32 {
	if c, r := classifyCotf(x); c != ClassGeneral {
		return r
	}

	t := math.Float32bits(x)
	e := (t >> 23) & 0xff
	xd := float64(x)
	switch {
	case e < cotfExpTaylor:
		t2 := xd * xd
		z := math.FMA(t2, cotfT5_f64, cotfT3_f64)
		z = math.FMA(t2, z, cotfT1_f64)
		return float32(math.FMA(z, xd, 1/xd))
	case e < cotfExpSeries:
		t2 := xd * xd
		z := poly.Horner(t2, cotfT1_f64, cotfT3_f64, cotfT5_f64, cotfT7_f64, cotfT9_f64)
		return float32(math.FMA(z, xd, 1/xd))
	}

	var z float64
	var i int64
	if e < cotfExpBig {
		z, i = cotfReduceSmall(xd)
	} else {
		z, i = cotfReduceBig(t)
	}

	z2 := z * z
	z4 := z2 * z2
	n := poly.Estrin4(z2, z4, cotfN0_f64, cotfN1_f64, cotfN2_f64, cotfN3_f64) * z
	d := poly.Estrin4(z2, z4, cotfD0_f64, cotfD1_f64, cotfD2_f64, cotfD3_f64)
	if i&1 != 0 {
		return float32(n / -d)
	}
	return float32(d / n)
}

// cotfReduceSmall returns z and i with x*2/pi = i + z for |x| < 2^28.
// The high constant has 29 bits, so x*cotfInvPiHi_f64 is exact.
func cotfReduceSmall(x float64) (float64, int64) {
	idl := cotfInvPiLo_f64 * x
	idh := cotfInvPiHi_f64 * x
	id := math.RoundToEven(idh)
	return (idh - id) + idl, int64(id)
}

// cotfReduceBig returns z and i with x*2/pi = i + z (mod 4) for the float32
// with bits u and exponent at least 2^28. The mantissa is multiplied by 256
// bits of 2/pi; the integer part falls in the top word once shifted and z
// comes from the next 64 bits.
func cotfReduceBig(u uint32) (float64, int64) {
	e := int((u >> 23) & 0xff)
	m := uint64(u&0x7fffff | 1<<23)

	h0, _ := bits.Mul64(m, cotfInvPi[0])
	h1, l1 := bits.Mul64(m, cotfInvPi[1])
	var c uint64
	l1, c = bits.Add64(l1, h0, 0)
	h1 += c
	h2, l2 := bits.Mul64(m, cotfInvPi[2])
	l2, c = bits.Add64(l2, h1, 0)
	h2 += c
	h3, l3 := bits.Mul64(m, cotfInvPi[3])
	l3, c = bits.Add64(l3, h2, 0)
	h3 += c

	var hi, lo uint64
	switch s := uint(e - 150); {
	case s < 64:
		hi = h3<<s | l3>>(64-s)
		lo = l3<<s | l2>>(64-s)
	case s == 64:
		hi, lo = l3, l2
	default:
		hi = l3<<(s-64) | l2>>(128-s)
		lo = l2<<(s-64) | l1>>(128-s)
	}

	// Round the fraction to the nearest integer: a negative lo borrows one
	// from hi. Then apply the sign of x.
	a := int64(lo)
	i := int64(hi) - a>>63
	sgn := -int64(u >> 31)
	z := float64(a^sgn) * 0x1p-64
	i = (i ^ sgn) - sgn
	return z, i
}

func classifyCotf(x float32) (Class, float32) {
	t := math.Float32bits(x)
	e := (t >> 23) & 0xff
	switch {
	case e == 0xff:
		if t<<9 != 0 {
			return ClassNaN, x + x
		}
		return ClassInf, float32(math.NaN())
	case e < cotfExpTiny:
		return ClassShortcut, float32(1 / float64(x))
	case e < cotfExpSmall:
		xd := float64(x)
		return ClassShortcut, float32(math.FMA(xd, cotfT1_f64, 1/xd))
	}
	return ClassGeneral, 0
}
