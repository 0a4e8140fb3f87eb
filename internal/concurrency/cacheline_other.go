//go:build !amd64 && !386 && !arm64

// File: internal/concurrency/cacheline_other.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// The C++ original this pool is modeled after #errors out on unrecognized
// architectures rather than guess a cache-line size. Failing an entire Go
// build over a padding constant is disproportionate, so unrecognized
// architectures get a conservative default instead.

package concurrency

const CacheLineSize = 32
