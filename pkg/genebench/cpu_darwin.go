//go:build darwin

package genebench

import (
	"runtime"
	"syscall"
)

// detectOptimalWorkers sizes the evaluation pool on macOS, preferring
// performance cores on Apple Silicon.
func detectOptimalWorkers() int {
	for _, name := range []string{"hw.perflevel0.physicalcpu", "hw.physicalcpu"} {
		if count := sysctlInt(name); count > 0 {
			return count
		}
	}
	return runtime.NumCPU()
}

// sysctlInt reads a sysctl value as a little-endian integer.
// syscall.Sysctl returns raw bytes, not a string.
func sysctlInt(name string) int {
	result, err := syscall.Sysctl(name)
	if err != nil || len(result) == 0 {
		return 0
	}
	count := int(result[0])
	if len(result) > 1 {
		count |= int(result[1]) << 8
	}
	return count
}
