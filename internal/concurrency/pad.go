// File: internal/concurrency/pad.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package concurrency

// CacheLinePad is embedded in hot structs to push the next field onto a
// fresh cache line, the same technique lock-free ring and queue types
// use for their head/tail fields.
type CacheLinePad [CacheLineSize]byte
