// File: internal/concurrency/cacheline_darwin_arm64.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package concurrency

// CacheLineSize on Apple silicon is 128 bytes, not the 64 bytes typical of
// other arm64 parts.
const CacheLineSize = 128
