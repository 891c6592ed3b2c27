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

package sweep

import (
	"cmp"
	"slices"

	"github.com/ajroetker/go-crmath/crmath"
)

// Finding is one checked input and how far its result is from the
// correctly rounded value.
type Finding struct {
	Bits  uint64
	Input float64
	Got   float64
	Want  float64
	ULP   float64
}

// Report summarizes a sweep.
type Report struct {
	Func string
	// Inputs is the number of bit patterns visited.
	Inputs uint64
	// Checked is the number of inputs compared against the oracle. Inputs
	// without a finite exact result (NaN, infinities, poles) are skipped.
	Checked uint64
	Skipped uint64
	// Failures counts inputs further than the bound from the exact value.
	Failures uint64
	MaxULP   float64
	// Worst is the input with the largest ULP distance, the lowest bit
	// pattern on ties.
	Worst Finding
	// Findings holds up to Config.MaxFindings failures ordered by bit
	// pattern.
	Findings []Finding
	Classes  [crmath.NumClasses]uint64
}

// Passed reports whether every checked input was within the bound.
func (r *Report) Passed() bool {
	return r.Failures == 0
}

// ClassCounts returns the class histogram keyed by class name.
func (r *Report) ClassCounts() map[string]uint64 {
	m := make(map[string]uint64, len(r.Classes))
	for c, n := range r.Classes {
		m[crmath.Class(c).String()] = n
	}
	return m
}

func (r *Report) observe(f Finding, failed bool, maxFindings int) {
	r.Checked++
	if r.Checked == 1 || worse(f, r.Worst) {
		r.Worst = f
	}
	r.MaxULP = r.Worst.ULP
	if failed {
		r.Failures++
		if len(r.Findings) < maxFindings {
			r.Findings = append(r.Findings, f)
		}
	}
}

// merge folds o into r. Findings beyond maxFindings keep the lowest bit
// patterns, so the result does not depend on which worker ran which batch.
func (r *Report) merge(o *Report, maxFindings int) {
	if o.Checked > 0 && (r.Checked == 0 || worse(o.Worst, r.Worst)) {
		r.Worst = o.Worst
		r.MaxULP = o.Worst.ULP
	}
	r.Inputs += o.Inputs
	r.Checked += o.Checked
	r.Skipped += o.Skipped
	r.Failures += o.Failures
	for c := range r.Classes {
		r.Classes[c] += o.Classes[c]
	}
	r.Findings = append(r.Findings, o.Findings...)
	slices.SortFunc(r.Findings, func(a, b Finding) int { return cmp.Compare(a.Bits, b.Bits) })
	if len(r.Findings) > maxFindings {
		r.Findings = r.Findings[:maxFindings]
	}
}

func worse(a, b Finding) bool {
	return a.ULP > b.ULP || (a.ULP == b.ULP && a.Bits < b.Bits)
}
