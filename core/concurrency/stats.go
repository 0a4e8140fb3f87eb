// File: core/concurrency/stats.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// DebugStats is the optional debug-statistics sink: the pool writes
// counters into it, formatting is left to a collaborator
// (control.FormatDebugStats). Per-worker blocks are padded to the cache
// line, the same technique lock_free_queue.go uses for its head/tail
// fields, so adjacent workers never bounce the same line between cores
// under contention.
package concurrency

import (
	"sync/atomic"
	"time"

	intconcurrency "github.com/momentics/parex/internal/concurrency"
)

// WorkerStats holds one worker's lifetime counters.
type WorkerStats struct {
	Executed   atomic.Uint64
	Stolen     atomic.Uint64
	TotalNanos atomic.Uint64

	_ intconcurrency.CacheLinePad
}

// DebugStats is the optional debug-statistics sink. Pass a pointer via
// PoolConfig.Stats to have NewPoolWithConfig populate it; the pool keeps
// writing into it for the lifetime of the pool. A nil *DebugStats means
// stats collection is disabled, the default.
type DebugStats struct {
	Name      string
	StartedAt time.Time

	CallerExecuted atomic.Uint64
	CallerStolen   atomic.Uint64

	Workers []WorkerStats
}

func (s *DebugStats) init(name string, numWorkers uint32) {
	s.Name = name
	s.StartedAt = time.Now()
	s.Workers = make([]WorkerStats, numWorkers)
}

// LifetimeNanos is the elapsed time since the pool was constructed.
func (s *DebugStats) LifetimeNanos() int64 {
	return time.Since(s.StartedAt).Nanoseconds()
}
