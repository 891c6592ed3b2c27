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

// Pair32 is the float32 analogue of Pair.
type Pair32 struct {
	Hi, Lo float32
}

// Float32 returns Hi + Lo rounded to nearest.
func (p Pair32) Float32() float32 {
	return p.Hi + p.Lo
}

// Neg returns -p.
func (p Pair32) Neg() Pair32 {
	return Pair32{Hi: -p.Hi, Lo: -p.Lo}
}

// Float32 returns Hi + Lo correctly rounded to float32.
//
// The sum is first rounded to float64 with round-to-odd: when the two-sum is
// inexact and the rounded sum has an even significand, it is moved one ulp
// toward the error. The 29 extra bits then make the final float64 to float32
// conversion round exactly as the infinitely precise sum would.
func (p Pair) Float32() float32 {
	s := ExactAdd(p.Hi, p.Lo)
	if s.Lo == 0 || math.IsInf(s.Hi, 0) || math.IsNaN(s.Hi) {
		return float32(s.Hi)
	}
	b := math.Float64bits(s.Hi)
	if b&1 == 0 {
		if (s.Lo > 0) == (s.Hi > 0) {
			b++
		} else {
			b--
		}
	}
	return float32(math.Float64frombits(b))
}

// FMA32 returns a*b + c computed with only one rounding to float32.
func FMA32(a, b, c float32) float32 {
	p := float64(a) * float64(b)
	return ExactAdd(p, float64(c)).Float32()
}
