//go:build linux
// +build linux

// File: affinity/affinity_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux-specific implementation for setting thread CPU affinity via
// sched_setaffinity, reached through golang.org/x/sys/unix rather than cgo.

package affinity

import "golang.org/x/sys/unix"

// setAffinityPlatform sets thread affinity to a given CPU for Linux.
// pid 0 targets the calling thread.
func setAffinityPlatform(cpuID int) error {
	var set unix.CPUSet
	set.Zero()
	set.Set(cpuID)
	return unix.SchedSetaffinity(0, &set)
}
