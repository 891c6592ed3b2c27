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

//go:build amd64

package dd

import "golang.org/x/sys/cpu"

func init() {
	if NoFMAEnv() {
		currentCap = CapSplit
		return
	}

	// FMA3 shipped with Haswell; math.FMA lowers to VFMADD231SD when present
	// and to a software routine otherwise, so only use it when it is fast.
	if cpu.X86.HasFMA {
		currentCap = CapFMA
	} else {
		currentCap = CapSplit
	}
}
