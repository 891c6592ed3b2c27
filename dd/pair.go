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

package dd

import "math"

// Pair is the unevaluated sum Hi + Lo. After normalization |Lo| <= ulp(Hi)/2.
type Pair struct {
	Hi, Lo float64
}

// FromBits builds a Pair from the bit patterns {hi, lo}.
func FromBits(b [2]uint64) Pair {
	return Pair{Hi: math.Float64frombits(b[0]), Lo: math.Float64frombits(b[1])}
}

// Float64 returns Hi + Lo rounded to nearest.
func (p Pair) Float64() float64 {
	return p.Hi + p.Lo
}

// Neg returns -p.
func (p Pair) Neg() Pair {
	return Pair{Hi: -p.Hi, Lo: -p.Lo}
}

// Scale returns p * s. s must be a power of two and the result must not
// leave the normal range.
func (p Pair) Scale(s float64) Pair {
	return Pair{Hi: p.Hi * s, Lo: p.Lo * s}
}

// ExactAdd returns a+b as a Pair using Knuth's two-sum. There is no
// precondition on the magnitudes of a and b.
func ExactAdd(a, b float64) Pair {
	s := a + b
	bb := s - a
	aa := s - bb
	return Pair{Hi: s, Lo: (a - aa) + (b - bb)}
}

// FastAdd returns a+b as a Pair using Dekker's fast two-sum.
// It requires |a| >= |b| or a == 0.
func FastAdd(a, b float64) Pair {
	s := a + b
	return Pair{Hi: s, Lo: b - (s - a)}
}

// ExactMul returns a*b as a Pair. The low part is exact whenever the
// rounding error of a*b is representable, which holds unless the product is
// within 2^53 of the subnormal range.
func ExactMul(a, b float64) Pair {
	if currentCap == CapFMA {
		return exactMulFMA(a, b)
	}
	return exactMulSplit(a, b)
}

func exactMulFMA(a, b float64) Pair {
	hi := a * b
	return Pair{Hi: hi, Lo: math.FMA(a, b, -hi)}
}

const (
	// splitter is 2^27+1: it splits a float64 into two 26-bit halves.
	splitter = 134217729.0

	// splitMax is the largest magnitude split without rescaling.
	splitMax = 0x1p995
)

// Split returns hi, lo with a == hi+lo, where each half has at most 26
// significant bits so that products of halves are exact.
func Split(a float64) (hi, lo float64) {
	if math.Abs(a) > splitMax {
		hi, lo = Split(a * 0x1p-28)
		return hi * 0x1p28, lo * 0x1p28
	}
	// The conversions keep the compiler from fusing these operations.
	t := float64(splitter * a)
	hi = float64(t - float64(t-a))
	return hi, a - hi
}

func exactMulSplit(a, b float64) Pair {
	hi := a * b
	ah, al := Split(a)
	bh, bl := Split(b)
	lo := float64(float64(ah*bh) - hi)
	lo = float64(lo + float64(ah*bl))
	lo = float64(lo + float64(al*bh))
	lo = float64(lo + float64(al*bl))
	return Pair{Hi: hi, Lo: lo}
}

// MulAdd returns a*b + c as a Pair: the exact product followed by a
// compensated addition of c.
func MulAdd(a, b, c float64) Pair {
	p := ExactMul(a, b)
	s := ExactAdd(p.Hi, c)
	return FastAdd(s.Hi, s.Lo+p.Lo)
}

// Add returns the normalized sum of two pairs.
func Add(a, b Pair) Pair {
	s := ExactAdd(a.Hi, b.Hi)
	return FastAdd(s.Hi, s.Lo+(a.Lo+b.Lo))
}

// AddF64 returns the normalized sum a + b.
func AddF64(a Pair, b float64) Pair {
	s := ExactAdd(a.Hi, b)
	return FastAdd(s.Hi, s.Lo+a.Lo)
}

// Mult returns the normalized product of two pairs.
func Mult(a, b Pair) Pair {
	p := ExactMul(a.Hi, b.Hi)
	lo := p.Lo + (a.Hi*b.Lo + a.Lo*b.Hi)
	return FastAdd(p.Hi, lo)
}

// QuickMult returns the product of two pairs without the final
// normalization. The cross terms are accumulated with fused multiply-adds.
func QuickMult(a, b Pair) Pair {
	p := ExactMul(a.Hi, b.Hi)
	lo := math.FMA(a.Hi, b.Lo, p.Lo)
	lo = math.FMA(a.Lo, b.Hi, lo)
	return Pair{Hi: p.Hi, Lo: lo}
}

// MulF64 returns the normalized product a * b.
func MulF64(a Pair, b float64) Pair {
	p := ExactMul(a.Hi, b)
	return FastAdd(p.Hi, math.FMA(a.Lo, b, p.Lo))
}

// QuickMulF64 returns a * b without the final normalization.
func QuickMulF64(a Pair, b float64) Pair {
	p := ExactMul(a.Hi, b)
	return Pair{Hi: p.Hi, Lo: math.FMA(a.Lo, b, p.Lo)}
}
