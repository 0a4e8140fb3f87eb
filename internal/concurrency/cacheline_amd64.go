// File: internal/concurrency/cacheline_amd64.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package concurrency

// CacheLineSize is the assumed L1 cache line size used to pad worker and
// worker-stats structs apart, avoiding false sharing between adjacent
// workers. x86/x64 has used 64-byte lines since long before anything in
// this module's target audience would run on.
const CacheLineSize = 64
