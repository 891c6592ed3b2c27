//go:build arm64

package dd

import "golang.org/x/sys/cpu"

func init() {
	if NoFMAEnv() {
		currentCap = CapSplit
		return
	}

	// FMADD is part of the ARMv8-A base floating point instruction set.
	// cpu.ARM64.HasFP is always true there; check it for consistency.
	if cpu.ARM64.HasFP {
		currentCap = CapFMA
	} else {
		currentCap = CapSplit
	}
}
