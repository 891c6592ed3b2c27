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

import (
	"os"
	"strconv"
)

// Capability represents how exact products are formed on this CPU.
type Capability int

const (
	// CapSplit forms exact products with Dekker's splitting algorithm.
	CapSplit Capability = iota

	// CapFMA forms exact products with a hardware fused multiply-add.
	CapFMA
)

// String returns a human-readable name for the capability.
func (c Capability) String() string {
	switch c {
	case CapSplit:
		return "split"
	case CapFMA:
		return "fma"
	default:
		return "unknown"
	}
}

// currentCap is the detected capability for this runtime.
// Set by init() in dispatch_*.go files.
var currentCap Capability

// CurrentCapability returns the exact-product variant in use.
func CurrentCapability() Capability {
	return currentCap
}

// HasFMA reports whether ExactMul uses the fused multiply-add variant.
func HasFMA() bool {
	return currentCap == CapFMA
}

// NoFMAEnv checks if the CRMATH_NO_FMA environment variable is set.
// When set, ExactMul uses the split variant regardless of CPU capabilities.
func NoFMAEnv() bool {
	val := os.Getenv("CRMATH_NO_FMA")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// setCapability forces the exact-product variant and returns a function
// restoring the previous one. It is intended for tests.
func setCapability(c Capability) (restore func()) {
	prev := currentCap
	currentCap = c
	return func() { currentCap = prev }
}
