// File: core/concurrency/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package concurrency implements a data-parallel execution engine: a fixed
// pool of worker threads plus the calling thread, with hybrid static/dynamic
// scheduling and opportunistic work-stealing by the caller. A dispatch is
// synchronous: Pool.Dispatch returns only after every task instance has
// run exactly once.
//
// Workers own a private mailbox (mutex + condition variable guarding a
// pending/executing task slice pair) and a busy flag; the pool additionally
// keeps a pending dynamic-task deque for DYNAMIC dispatches that overflow
// the workers' mailboxes. Only the calling thread steals from that deque;
// workers pull from it only when their own mailbox runs dry, which keeps
// worker-to-worker contention on the pool mutex off the hot path.
package concurrency
