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

// Class is the outcome of classifying an input bit pattern. Every input of
// every function falls in exactly one class.
type Class uint8

const (
	// ClassGeneral inputs go through range reduction, polynomial
	// evaluation and reconstruction.
	ClassGeneral Class = iota
	// ClassShortcut inputs have a closed-form result: a tiny-argument
	// Taylor value, an overflow or underflow saturation, or an exact value.
	ClassShortcut
	// ClassNaN inputs are NaN or outside the function's domain.
	ClassNaN
	// ClassInf inputs are infinite.
	ClassInf
)

// NumClasses is the number of distinct classes.
const NumClasses = 4

func (c Class) String() string {
	switch c {
	case ClassGeneral:
		return "general"
	case ClassShortcut:
		return "shortcut"
	case ClassNaN:
		return "nan"
	case ClassInf:
		return "inf"
	default:
		return "unknown"
	}
}
