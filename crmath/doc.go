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

// Package crmath provides correctly rounded elementary functions.
//
// Every function returns the floating-point value nearest to the exact
// mathematical result, with ties to even, for every input. The float64
// functions use a fast path guarded by a rounding test and fall back to
// double-double arithmetic; the float32 functions evaluate in float64 with
// enough margin that one final conversion rounds correctly.
//
// Special inputs are decided from the argument's bit pattern before any
// arithmetic: NaN propagates, infinities and domain errors have fixed
// results, and tiny or saturating arguments return closed forms. Results
// below the normal range are rounded once, directly to the subnormal.
//
// All functions are pure and safe for concurrent use. They never panic and
// never allocate.
//
// Example:
//
//	y := crmath.Exp10(2.5)   // 316.22776601683796
//	f := crmath.Tanpif(0.25) // 1
//
// The dd package exposes the double-double kernel and the poly package the
// polynomial evaluators used here.
package crmath
