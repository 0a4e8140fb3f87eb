// File: api/pool.go
// Author: momentics <momentics@gmail.com>
//
// Pool is the public lifecycle contract a dispatch-capable worker pool
// exposes. It deliberately omits Dispatch/RunOptions/TaskFunc, which live
// in core/concurrency. api must stay a leaf package that core/concurrency
// depends on for its error sentinels, so api cannot import concurrency's
// types without creating an import cycle.

package api

// Pool is the lifecycle slice of core/concurrency.Pool's surface that
// other packages can depend on without importing core/concurrency itself.
type Pool interface {
	// Name returns the pool's name.
	Name() string

	// NumThreads returns the worker count, excluding the caller.
	NumThreads() uint32

	// MaxParallelJobs returns NumThreads()+1.
	MaxParallelJobs() uint32

	// CurrentThreadIsWorker reports whether the calling goroutine is one
	// of this pool's own workers, or is running an instance of one of this
	// pool's dispatches as that dispatch's caller.
	CurrentThreadIsWorker() bool

	// Close shuts the pool down, joining every worker.
	Close()
}
