//go:build linux

package genebench

import (
	"bufio"
	"os"
	"runtime"
	"strings"
)

// detectOptimalWorkers sizes the evaluation pool from the physical core
// count on Linux, falling back to all logical CPUs when /proc/cpuinfo is
// unavailable or unparseable.
func detectOptimalWorkers() int {
	if cores := detectPhysicalCoresLinux(); cores > 0 {
		return cores
	}
	return runtime.NumCPU()
}

func detectPhysicalCoresLinux() int {
	file, err := os.Open("/proc/cpuinfo")
	if err != nil {
		return 0
	}
	defer file.Close()

	type coreKey struct {
		physicalID string
		coreID     string
	}

	cores := make(map[coreKey]bool)
	var current coreKey

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		fields := strings.SplitN(scanner.Text(), ":", 2)
		if len(fields) != 2 {
			continue
		}
		key := strings.TrimSpace(fields[0])
		value := strings.TrimSpace(fields[1])

		switch key {
		case "physical id":
			current.physicalID = value
		case "core id":
			current.coreID = value
			cores[current] = true
		}
	}

	return len(cores)
}
