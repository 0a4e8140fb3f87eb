// File: core/concurrency/worker.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// worker is one goroutine with a private mailbox (mutex + sync.Cond), a
// busy flag, and a claim-or-wait drain loop. It is owned exclusively by
// its Pool and never moves once the Pool's workers slice is allocated,
// satisfying the non-movable-worker invariant without needing a wrapper
// type (see DESIGN.md).
package concurrency

import (
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/momentics/parex/affinity"
	intconcurrency "github.com/momentics/parex/internal/concurrency"
)

// worker owns a private pending/executing task pair and a busy flag:
// pending is only written under mu, and busy is clear only while the
// worker is (or is about to be) waiting on cond.
type worker struct {
	ordinal uint32
	pool    *Pool

	mu   sync.Mutex
	cond *sync.Cond

	pending   []workerTask
	executing []workerTask

	busy atomic.Bool

	stats *WorkerStats

	_ intconcurrency.CacheLinePad
}

func newWorker(ordinal uint32, p *Pool, stats *WorkerStats) *worker {
	w := &worker{ordinal: ordinal, pool: p, stats: stats}
	w.cond = sync.NewCond(&w.mu)
	return w
}

// enqueue unconditionally appends task to the mailbox and wakes the
// worker. Always succeeds.
func (w *worker) enqueue(t workerTask) {
	w.mu.Lock()
	w.busy.Store(true)
	w.pending = append(w.pending, t)
	w.mu.Unlock()
	w.cond.Signal()
}

// tryEnqueue appends task only if the worker was not already busy. The
// fast unlocked read lets DYNAMIC dispatch skip the lock entirely
// when scanning past workers that are obviously busy.
func (w *worker) tryEnqueue(t workerTask) bool {
	if w.busy.Load() {
		return false
	}
	w.mu.Lock()
	if w.busy.Load() {
		w.mu.Unlock()
		return false
	}
	w.busy.Store(true)
	w.pending = append(w.pending, t)
	w.mu.Unlock()
	w.cond.Signal()
	return true
}

// tryWakeIfIdle sets busy and signals the worker with no queued task of
// its own; the worker is expected to pull from the pool's pending queue.
func (w *worker) tryWakeIfIdle() bool {
	if w.busy.Swap(true) {
		return false
	}
	w.mu.Lock()
	w.cond.Signal()
	w.mu.Unlock()
	return true
}

// run is the worker loop. It starts the goroutine's lifelong identity (OS
// thread name, nesting registration, optional CPU pin) once, then loops:
// drain the private mailbox, else steal one instance from the pool's
// pending queue, else sleep.
func (w *worker) run() {
	name := w.pool.name + "-" + strconv.FormatUint(uint64(w.ordinal), 10)
	_ = intconcurrency.SetThreadName(name)

	registerCurrentWorker(w.pool)
	defer unregisterCurrentWorker()

	if len(w.pool.pinCPUs) == len(w.pool.workers) {
		runtime.LockOSThread()
		if err := affinity.SetAffinity(w.pool.pinCPUs[w.ordinal-1]); err != nil {
			w.pool.logger.Printf("worker %s: cpu pin failed: %v", name, err)
		}
	}

	for {
		w.mu.Lock()
		for {
			if len(w.pending) > 0 {
				w.executing, w.pending = w.pending, w.executing[:0]
				break
			}
			if task, ok := w.pool.claimPendingDynamic(); ok {
				w.busy.Store(true)
				w.executing = append(w.executing, task)
				if w.stats != nil {
					w.stats.Stolen.Add(1)
				}
				break
			}
			w.busy.Store(false)
			w.cond.Wait()
		}
		w.mu.Unlock()

		stop := w.drain()
		if stop {
			return
		}
	}
}

// drain runs every task currently in executing, reporting whether a
// tombstone was seen (the worker should exit).
func (w *worker) drain() bool {
	stop := false
	for _, t := range w.executing {
		if t.isTombstone() {
			stop = true
			break
		}
		if w.stats != nil {
			start := time.Now()
			t.run()
			w.stats.Executed.Add(1)
			w.stats.TotalNanos.Add(uint64(time.Since(start).Nanoseconds()))
		} else {
			t.run()
		}
	}
	clear(w.executing)
	w.executing = w.executing[:0]
	return stop
}
