// File: facade/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package facade implements the three parallel-loop facades (LoopIndices,
// LoopRange, FanOut) plus the supplemented Chunk and per-instance-State
// facades, all composing through core/concurrency.Pool.Dispatch. Each has
// a pool-explicit form and a "Default" form that runs against
// pool.Default().
package facade
