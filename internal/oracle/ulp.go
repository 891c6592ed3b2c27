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

package oracle

import (
	"math"

	"github.com/cockroachdb/apd/v3"
	"github.com/cockroachdb/errors"
)

// ULPDistance64 returns |got - want| in units of the float64 spacing at the
// value want rounds to. A correctly rounded result is at most 0.5 away.
// A NaN got, or an infinite got that want does not round to, is +Inf away.
func ULPDistance64(got float64, want *apd.Decimal) (float64, error) {
	return ulpDistance(got, want, 64)
}

// ULPDistance32 is ULPDistance64 for float32 results.
func ULPDistance32(got float32, want *apd.Decimal) (float64, error) {
	return ulpDistance(float64(got), want, 32)
}

func ulpDistance(got float64, want *apd.Decimal, bits int) (float64, error) {
	w, err := Round(want, bits)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(got) {
		return math.Inf(1), nil
	}
	if math.IsInf(got, 0) || math.IsInf(w, 0) {
		if got == w {
			return 0, nil
		}
		return math.Inf(1), nil
	}

	ctx := apd.BaseContext.WithPrecision(30)
	d := new(apd.Decimal)
	if _, err := ctx.Sub(d, Exact(got), want); err != nil {
		return 0, errors.Wrap(err, "ulp distance")
	}
	d.Abs(d)
	if _, err := ctx.Quo(d, d, Exact(ULP(w, bits))); err != nil {
		return 0, errors.Wrap(err, "ulp distance")
	}
	return d.Float64()
}

// ULP returns the spacing of the float32 or float64 values in the binade
// of w. Zero and subnormal w give the smallest subnormal.
func ULP(w float64, bits int) float64 {
	mant, minExp := 53, -1074
	if bits == 32 {
		mant, minExp = 24, -149
	}
	if w == 0 {
		return math.Ldexp(1, minExp)
	}
	_, e := math.Frexp(math.Abs(w))
	return math.Ldexp(1, max(e-mant, minExp))
}
