//go:build !darwin

// File: internal/concurrency/cacheline_arm64.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package concurrency

// CacheLineSize for non-Apple arm64 (server and embedded parts) is 64 bytes.
const CacheLineSize = 64
