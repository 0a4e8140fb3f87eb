// File: core/concurrency/run_opts.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package concurrency

// Schedule selects how a dispatch's task instances are handed to workers.
type Schedule uint32

const (
	// ScheduleDynamic distributes instances with work stealing and allows
	// nested dispatches (a worker of the same pool dispatching again).
	ScheduleDynamic Schedule = iota

	// ScheduleDynamicNoNesting behaves like ScheduleDynamic for an
	// external caller, but collapses to caller-only (MaxPar==1 semantics)
	// when the caller is already a worker of this pool.
	ScheduleDynamicNoNesting

	// ScheduleStatic assigns instance i to worker i unconditionally, with
	// no work stealing. Dispatching it from a worker of the same pool
	// fails with ErrNestedStaticDispatch, since a nested static dispatch
	// can deadlock.
	ScheduleStatic

	// Removed: a "dynamic with steal while waiting" policy was considered
	// and dropped as impractical; it is intentionally absent here too.
	// Unimplemented: an "only-parallel" mode, where the number of workers
	// that pick up a task depends on current pool load, is referenced in
	// the design this pool is modeled on but was never built; treat it as
	// non-existent.
)

// RunOptions is the caller-supplied scheduling policy and parallelism cap
// for one dispatch.
type RunOptions struct {
	Schedule Schedule

	// MaxPar caps the number of task instances (including the caller's).
	// 0 means "all available workers plus the caller". 1 forces
	// caller-only execution. Always clamped to NumThreads()+1.
	MaxPar uint32
}

// DefaultRunOptions is ScheduleDynamic with MaxPar 0 (use everything
// available). Pass it explicitly when you want to make "default options"
// visible at the call site.
var DefaultRunOptions = RunOptions{}
