// File: core/concurrency/pool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Pool is the thread pool coordinator: spawns workers, computes
// effective parallelism, dispatches tasks, participates on the calling
// goroutine, and waits for completion. See core/concurrency/doc.go for
// the package-level overview.
package concurrency

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/momentics/parex/api"
)

// maxWorkers is the implementation limit on worker count, matching the
// reference implementation's own cap.
const maxWorkers = 127

// PoolConfig configures a Pool at construction. All fields are immutable
// once NewPoolWithConfig returns; worker count W is fixed at
// construction and never changes for the pool's lifetime.
type PoolConfig struct {
	Name       string
	NumWorkers uint32

	// Stats, if non-nil, is populated by the pool and kept up to date for
	// the pool's lifetime. Nil disables stats collection.
	Stats *DebugStats

	// PinCPUs optionally pins worker i to PinCPUs[i]. Must be empty or
	// exactly len(NumWorkers).
	PinCPUs []int
}

// DefaultPoolConfig returns a PoolConfig sized for the current host with
// stats and pinning disabled.
func DefaultPoolConfig() PoolConfig {
	return PoolConfig{Name: "parex", NumWorkers: defaultWorkerCount()}
}

// Pool coordinates a fixed set of workers plus the calling goroutine for
// synchronous data-parallel dispatches.
type Pool struct {
	name    string
	workers []*worker
	logger  *log.Logger
	pinCPUs []int
	stats   *DebugStats

	taskMu          sync.Mutex
	pending         pendingQueue
	hasDynamicTasks atomic.Bool

	wg        sync.WaitGroup
	closeOnce sync.Once
	closed    atomic.Bool
}

var _ api.Pool = (*Pool)(nil)

// NewPool constructs a pool with the given name and worker count, using
// DefaultPoolConfig for everything else.
func NewPool(name string, numWorkers uint32) (*Pool, error) {
	return NewPoolWithConfig(PoolConfig{Name: name, NumWorkers: numWorkers})
}

// NewPoolWithConfig constructs a pool per cfg. It fails with
// api.ErrPoolSizeExceeded if cfg.NumWorkers is at or beyond the
// implementation limit, and with api.ErrInvalidArgument if PinCPUs is
// given but does not match NumWorkers in length.
func NewPoolWithConfig(cfg PoolConfig) (*Pool, error) {
	name := cfg.Name
	if name == "" {
		name = "parex"
	}
	if cfg.NumWorkers >= maxWorkers {
		return nil, fmt.Errorf("%s: %d workers requested: %w", name, cfg.NumWorkers, api.ErrPoolSizeExceeded)
	}
	if len(cfg.PinCPUs) != 0 && len(cfg.PinCPUs) != int(cfg.NumWorkers) {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "PinCPUs length must equal NumWorkers").
			WithContext("pool", name).
			WithContext("pin_cpus_len", len(cfg.PinCPUs)).
			WithContext("num_workers", cfg.NumWorkers).
			WithCause(api.ErrInvalidArgument)
	}

	p := &Pool{
		name:    name,
		logger:  log.New(os.Stderr, "parex: ", log.LstdFlags),
		pinCPUs: cfg.PinCPUs,
		stats:   cfg.Stats,
	}
	if p.stats != nil {
		p.stats.init(name, cfg.NumWorkers)
	}

	p.workers = make([]*worker, cfg.NumWorkers)
	for i := range p.workers {
		var ws *WorkerStats
		if p.stats != nil {
			ws = &p.stats.Workers[i]
		}
		w := newWorker(uint32(i+1), p, ws)
		p.workers[i] = w
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			w.run()
		}()
	}
	return p, nil
}

// Name returns the pool's name, used as the OS thread-name prefix.
func (p *Pool) Name() string { return p.name }

// NumThreads returns the worker count W (excludes the caller).
func (p *Pool) NumThreads() uint32 { return uint32(len(p.workers)) }

// MaxParallelJobs returns NumThreads()+1, the largest instance count any
// dispatch on this pool could ever use.
func (p *Pool) MaxParallelJobs() uint32 { return p.NumThreads() + 1 }

// DebugStats returns the pool's debug-statistics sink, or nil if stats
// collection was not enabled at construction.
func (p *Pool) DebugStats() *DebugStats { return p.stats }

func defaultWorkerCount() uint32 {
	n := runtime.NumCPU() - 2
	if n < 0 {
		n = 0
	}
	if n >= maxWorkers {
		n = maxWorkers - 1
	}
	return uint32(n)
}

// Dispatch is the primary entry point: it computes effective parallelism,
// hands out instances 1..R to workers (directly or via the pending
// dynamic queue), runs instance 0 on the calling goroutine, steals any
// instances the caller can reach, and waits for completion. It returns
// the number of instances actually used.
func (p *Pool) Dispatch(opts RunOptions, body TaskFunc) (uint32, error) {
	if p.closed.Load() {
		return 0, fmt.Errorf("%s: %w", p.name, ErrPoolClosed)
	}

	par := p.EffectivePar(opts)
	if par == 0 {
		return 0, fmt.Errorf("%s: static dispatch from a pool worker: %w", p.name, api.ErrNestedStaticDispatch)
	}
	if par == 1 {
		body(0)
		return 1, nil
	}

	remote := par - 1
	counter := newDispatchCounter(remote)
	var rec *pendingDynamicTask

	if opts.Schedule == ScheduleStatic {
		for i := uint32(0); i < remote; i++ {
			p.workers[i].enqueue(workerTask{instanceIndex: i + 1, body: body, done: counter})
		}
	} else {
		var claimed uint32
		for _, w := range p.workers {
			if claimed == remote {
				break
			}
			if w.tryEnqueue(workerTask{instanceIndex: claimed + 1, body: body, done: counter}) {
				claimed++
			}
		}
		if claimed < remote {
			rec = &pendingDynamicTask{nextUnassigned: claimed, total: remote, body: body, done: counter}
			p.taskMu.Lock()
			p.pending.push(rec)
			p.taskMu.Unlock()
			p.hasDynamicTasks.Store(true)

			need := remote - claimed
			var woken uint32
			for _, w := range p.workers {
				if woken == need {
					break
				}
				if w.tryWakeIfIdle() {
					woken++
				}
			}
		}
	}

	if p.stats != nil {
		p.stats.CallerExecuted.Add(1)
	}

	// While the calling goroutine runs instances of this dispatch it is
	// tagged with this pool, so a dispatch nested inside instance 0 (or a
	// stolen instance) is detected as nested just like one from a worker.
	prevPool, hadPrev := poolOfCurrentGoroutine()
	registerCurrentWorker(p)
	func() {
		defer func() {
			if hadPrev {
				registerCurrentWorker(prevPool)
			} else {
				unregisterCurrentWorker()
			}
		}()
		body(0)
		if rec != nil {
			p.stealFromCaller(rec)
		}
	}()
	counter.wait()
	return par, nil
}

// stealFromCaller is the caller-as-stealer loop: repeatedly claim the
// next unassigned instance of rec and run it inline, until rec is
// exhausted. Only the caller steals this way; workers pull from the
// pool-wide pending queue instead (claimPendingDynamic).
func (p *Pool) stealFromCaller(rec *pendingDynamicTask) {
	for {
		p.taskMu.Lock()
		if rec.exhausted() {
			p.taskMu.Unlock()
			return
		}
		task := rec.claim()
		p.taskMu.Unlock()

		if p.stats != nil {
			p.stats.CallerStolen.Add(1)
		}
		task.run()
	}
}

// claimPendingDynamic is the worker-side claim path: a fast unlocked read
// of hasDynamicTasks lets a worker skip the pool mutex entirely once the
// queue has drained.
func (p *Pool) claimPendingDynamic() (workerTask, bool) {
	if !p.hasDynamicTasks.Load() {
		return workerTask{}, false
	}
	p.taskMu.Lock()
	defer p.taskMu.Unlock()
	t, ok := p.pending.claimFront()
	if !ok || p.pending.empty() {
		p.hasDynamicTasks.Store(false)
	}
	return t, ok
}

// Close enqueues a tombstone on every worker and joins all worker
// goroutines. Calling Close while a dispatch is in flight is undefined;
// Close itself is idempotent and safe to call more than once.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		for _, w := range p.workers {
			w.enqueue(workerTask{})
		}
		p.wg.Wait()
	})
}
