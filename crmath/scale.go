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
)

// pow2 returns 2^n for n in [-1022, 1023].
func pow2(n int64) float64 {
	return math.Float64frombits(uint64(n+1023) << 52)
}

// ldexp returns x*2^n for results in the normal range. The scale is split
// in two when 2^n itself is not representable as a normal float64.
func ldexp(x float64, n int64) float64 {
	if n > 1023 {
		x *= pow2(1023)
		n -= 1023
	} else if n < -1022 {
		x *= pow2(-1022)
		n += 1022
	}
	return x * pow2(n)
}

// denormalBias returns 2^(-1022-ie). For a value v in [1, 2) whose true
// result is v*2^ie below 2^-1022, v + denormalBias(ie) has the same ulp as
// the subnormal range once scaled by 2^ie, so the addition performs the one
// and only rounding of the result.
func denormalBias(ie int64) float64 {
	return math.Float64frombits(uint64(1-ie) << 52)
}

// toDenormal clears the biased exponent of x = v + denormalBias(ie), which
// leaves the subnormal v*2^ie. A carry out of the mantissa becomes 2^-1022.
func toDenormal(x float64, ie int64) float64 {
	return math.Float64frombits(math.Float64bits(x) - uint64(1-ie)<<52)
}

// fastRound returns fh+fl rounded to float64 and whether that rounding is
// the same for every value within eps of fh+fl. When it is not, the caller
// must fall back to a more accurate evaluation.
func fastRound(fh, fl, eps float64) (float64, bool) {
	ub := fh + (fl + eps)
	lb := fh + (fl - eps)
	return lb, ub == lb
}

// expFinish returns (f.Hi + f.Lo) * 2^ie with a single rounding. In the
// subnormal case the rounding happens in the biased addition.
func expFinish(f dd.Pair, ie int64, subnormal bool) float64 {
	if !subnormal {
		return ldexp(f.Hi+f.Lo, ie)
	}
	s := dd.ExactAdd(denormalBias(ie), f.Hi)
	return toDenormal(s.Hi+(s.Lo+f.Lo), ie)
}
