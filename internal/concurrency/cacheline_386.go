// File: internal/concurrency/cacheline_386.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package concurrency

// CacheLineSize mirrors the amd64 value; 32-byte lines haven't shipped
// since the Pentium III era and aren't worth special-casing.
const CacheLineSize = 64
