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
	"slices"
	"strings"
)

// Func describes one correctly rounded function for harnesses that iterate
// over all of them.
type Func struct {
	// Name is the exported Go name, lower-cased: "exp2", "exp10f", ...
	Name string
	// Bits is the precision of the argument and result, 32 or 64.
	Bits int
	// MaxULP is the guaranteed error bound in units in the last place.
	MaxULP float64
	// Eval computes the function. For 32-bit functions the argument is
	// converted to float32 first and the result is exactly representable
	// as float32.
	Eval func(x float64) float64
	// Classify returns the class the argument falls in.
	Classify func(x float64) Class
}

func newFunc64(name string, f func(float64) float64, c func(float64) (Class, float64)) Func {
	return Func{
		Name:   name,
		Bits:   64,
		MaxULP: 0.5,
		Eval:   f,
		Classify: func(x float64) Class {
			class, _ := c(x)
			return class
		},
	}
}

func newFunc32(name string, f func(float32) float32, c func(float32) (Class, float32)) Func {
	return Func{
		Name:   name,
		Bits:   32,
		MaxULP: 0.5,
		Eval: func(x float64) float64 {
			return float64(f(float32(x)))
		},
		Classify: func(x float64) Class {
			class, _ := c(float32(x))
			return class
		},
	}
}

var registry = map[string]Func{}

func init() {
	for _, f := range []Func{
		newFunc64("exp2", Exp2, classifyExp2),
		newFunc64("exp10", Exp10, classifyExp10),
		newFunc32("exp2f", Exp2f, classifyExp2f),
		newFunc32("exp10f", Exp10f, classifyExp10f),
		newFunc32("atanhf", Atanhf, classifyAtanhf),
		newFunc32("cotf", Cotf, classifyCotf),
		newFunc32("tanpif", Tanpif, classifyTanpif),
		newFunc32("cotpif", Cotpif, classifyCotpif),
	} {
		registry[f.Name] = f
	}
}

// Lookup returns the function registered under name.
func Lookup(name string) (Func, bool) {
	f, ok := registry[name]
	return f, ok
}

// Funcs returns every registered function sorted by name.
func Funcs() []Func {
	fs := make([]Func, 0, len(registry))
	for _, f := range registry {
		fs = append(fs, f)
	}
	slices.SortFunc(fs, func(a, b Func) int { return strings.Compare(a.Name, b.Name) })
	return fs
}
