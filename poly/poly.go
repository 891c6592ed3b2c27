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

// Package poly evaluates fixed-degree polynomials with fused multiply-add
// accumulation.
//
// Every evaluator uses a fixed, documented operation order so that results
// are reproducible bit for bit across platforms:
//
//   - Horner: c[n] is folded in first, one FMA per coefficient.
//   - Estrin4: coefficients are paired as c[2i] + z*c[2i+1] and the
//     pairs are combined with z*z. This shortens the dependency
//     chain and is the order the exponential kernels were tuned for.
//   - HornerPair: Horner in double-double arithmetic, for accurate paths.
//
// float32 evaluation uses a correctly rounded single-precision FMA so that
// each step rounds once, matching a hardware fmaf.
package poly

import (
	"math"
	"unsafe"

	"github.com/ajroetker/go-crmath/dd"
)

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// FMA returns a*b + c rounded once to T.
func FMA[T Floats](a, b, c T) T {
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		return T(dd.FMA32(float32(a), float32(b), float32(c)))
	}
	return T(math.FMA(float64(a), float64(b), float64(c)))
}

// Horner evaluates c[0] + x*(c[1] + x*(c[2] + ...)).
// It returns 0 when c is empty.
func Horner[T Floats](x T, c ...T) T {
	if len(c) == 0 {
		return 0
	}
	r := c[len(c)-1]
	for i := len(c) - 2; i >= 0; i-- {
		r = FMA(x, r, c[i])
	}
	return r
}

// Estrin4 evaluates c0 + c1*x + c2*x^2 + c3*x^3 as
// fma(x2, fma(x, c3, c2), fma(x, c1, c0)), where x2 = x*x is passed in.
func Estrin4[T Floats](x, x2, c0, c1, c2, c3 T) T {
	p0 := FMA(x, c1, c0)
	p1 := FMA(x, c3, c2)
	return FMA(x2, p1, p0)
}

// HornerPair evaluates the polynomial with double-double coefficients c at
// the float64 point x. Coefficients are {hi, lo} bit patterns with c[0] the
// constant term.
func HornerPair(x float64, c [][2]uint64) dd.Pair {
	if len(c) == 0 {
		return dd.Pair{}
	}
	r := dd.FromBits(c[len(c)-1])
	for i := len(c) - 2; i >= 0; i-- {
		r = dd.QuickMulF64(r, x)
		r = dd.Add(dd.FromBits(c[i]), r)
	}
	return r
}
