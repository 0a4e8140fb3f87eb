//go:build windows

// File: internal/concurrency/threadname_windows.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Windows thread naming via SetThreadDescription (Windows 10 1607+),
// using the same plain syscall.NewLazyDLL approach as
// affinity/affinity_windows.go's SetThreadAffinityMask call.

package concurrency

import (
	"fmt"
	"syscall"
	"unsafe"
)

var (
	kernel32                 = syscall.NewLazyDLL("kernel32.dll")
	procSetThreadDescription = kernel32.NewProc("SetThreadDescription")
	procGetCurrentThread     = kernel32.NewProc("GetCurrentThread")
)

func setThreadNamePlatform(name string) error {
	namePtr, err := syscall.UTF16PtrFromString(name)
	if err != nil {
		return err
	}
	hThread, _, _ := procGetCurrentThread.Call()
	hresult, _, _ := procSetThreadDescription.Call(hThread, uintptr(unsafe.Pointer(namePtr)))
	if hresult != 0 {
		return fmt.Errorf("SetThreadDescription failed: hresult=0x%x", hresult)
	}
	return nil
}
