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

// Package dd provides exact double-double ("compensated pair") arithmetic.
//
// A Pair holds the unevaluated sum Hi + Lo of two float64 values. The
// error-free transforms ExactAdd and ExactMul return the rounded result in Hi
// and the rounding error in Lo, so Hi + Lo equals the mathematical sum or
// product exactly. The remaining operations (Add, Mult, QuickMult, ...) carry
// roughly 106 bits of precision and are used by the accurate evaluation paths
// of package crmath.
//
// ExactMul has two interchangeable implementations: a fused multiply-add
// variant and a Dekker split variant. The variant is selected once at init
// from the CPU capabilities reported by golang.org/x/sys/cpu. Both produce
// bit-identical pairs for finite products whose error term is representable.
//
// Set CRMATH_NO_FMA=1 to force the split variant, which is useful for
// testing and debugging.
//
// Pair32 holds a float32 result as hi + lo where lo only settles the
// rounding direction. Pair.Float32 and FMA32 round double-double values
// to float32 exactly once.
package dd
