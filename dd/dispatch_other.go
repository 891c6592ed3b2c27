//go:build !amd64 && !arm64

package dd

func init() {
	// Other architectures use the split variant for now. math.FMA is still
	// correct there, but it may be emulated in software.
	currentCap = CapSplit
}
