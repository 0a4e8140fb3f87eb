//go:build linux

// File: internal/concurrency/threadname_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux thread naming via prctl(PR_SET_NAME), reached through
// golang.org/x/sys/unix rather than cgo.

package concurrency

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// maxThreadNameLen is TASK_COMM_LEN-1 on Linux; longer names are truncated.
const maxThreadNameLen = 15

func setThreadNamePlatform(name string) error {
	if len(name) > maxThreadNameLen {
		name = name[:maxThreadNameLen]
	}
	buf := make([]byte, len(name)+1)
	copy(buf, name)
	return unix.Prctl(unix.PR_SET_NAME, uintptr(unsafe.Pointer(&buf[0])), 0, 0, 0)
}
