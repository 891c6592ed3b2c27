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
	"testing"
)

// classifyInputs returns edge bit patterns and a strided sweep over the
// whole encoding space of the given precision.
func classifyInputs(bits int) []float64 {
	var xs []float64
	if bits == 32 {
		for _, u := range []uint32{0, 1, 0x007fffff, 0x00800000, 0x3f800000, 0x7f7fffff, 0x7f800000, 0x7fc00000, 0x7f800001} {
			xs = append(xs, float64(math.Float32frombits(u)), float64(math.Float32frombits(u|1<<31)))
		}
		for u := uint64(0); u < 1<<32; u += 1<<20 + 12345 {
			xs = append(xs, float64(math.Float32frombits(uint32(u))))
		}
		return xs
	}
	for _, u := range []uint64{0, 1, 0x000fffffffffffff, 0x0010000000000000, 0x3ff0000000000000,
		0x7fefffffffffffff, 0x7ff0000000000000, 0x7ff8000000000000, 0x7ff0000000000001} {
		xs = append(xs, math.Float64frombits(u), math.Float64frombits(u|1<<63))
	}
	for u := uint64(0); u < math.MaxUint64-1<<44; u += 1<<44 + 0x123456789 {
		xs = append(xs, math.Float64frombits(u))
	}
	return xs
}

func TestClassifyPartition(t *testing.T) {
	for _, f := range Funcs() {
		t.Run(f.Name, func(t *testing.T) {
			var seen [NumClasses]int
			for _, x := range classifyInputs(f.Bits) {
				c := f.Classify(x)
				if int(c) >= NumClasses {
					t.Fatalf("class of %v out of range: %d", x, c)
				}
				seen[c]++
				y := f.Eval(x)
				switch c {
				case ClassNaN:
					if !math.IsNaN(y) {
						t.Errorf("%s(%v) = %v in class %v, want NaN", f.Name, x, y, c)
					}
				case ClassInf:
					if !math.IsInf(x, 0) {
						t.Errorf("%s: finite %v classified %v", f.Name, x, c)
					}
				case ClassShortcut:
					if math.IsNaN(x) || math.IsInf(x, 0) {
						t.Errorf("%s: %v classified %v", f.Name, x, c)
					}
				case ClassGeneral:
					if math.IsNaN(x) || math.IsInf(x, 0) {
						t.Errorf("%s: %v classified %v", f.Name, x, c)
					}
					if math.IsNaN(y) {
						t.Errorf("%s(%v) = NaN from the general path", f.Name, x)
					}
				}
			}
			for c, n := range seen {
				if n == 0 {
					t.Errorf("no input reached class %v", Class(c))
				}
			}
		})
	}
}

func TestClassString(t *testing.T) {
	for c, want := range map[Class]string{
		ClassGeneral:  "general",
		ClassShortcut: "shortcut",
		ClassNaN:      "nan",
		ClassInf:      "inf",
		Class(9):      "unknown",
	} {
		if got := c.String(); got != want {
			t.Errorf("Class(%d).String() = %q, want %q", c, got, want)
		}
	}
}
