// File: core/concurrency/queue.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// The pending dynamic queue: a pool-wide FIFO of task records whose
// remaining instances have not yet been claimed by any worker. Backed by
// github.com/eapache/queue: its Add/Peek/Remove/Length trio is exactly
// the front-peek-and-pop-when-exhausted deque this needs, so no
// hand-rolled ring or slice deque is required here.
package concurrency

import "github.com/eapache/queue"

// pendingDynamicTask is one dynamic-scheduling record: instances
// [nextUnassigned, total) of body have not yet been claimed. Mutation is
// only ever performed with Pool.taskMu held.
type pendingDynamicTask struct {
	nextUnassigned uint32
	total          uint32
	body           TaskFunc
	done           *dispatchCounter
}

func (t *pendingDynamicTask) exhausted() bool {
	return t.nextUnassigned >= t.total
}

// claim hands out the next unclaimed instance. Caller must hold the pool's
// task mutex and must have checked !exhausted() first.
func (t *pendingDynamicTask) claim() workerTask {
	t.nextUnassigned++
	return workerTask{instanceIndex: t.nextUnassigned, body: t.body, done: t.done}
}

// pendingQueue is the pool-wide FIFO of pendingDynamicTask records.
// Zero value is a usable empty queue.
type pendingQueue struct {
	q *queue.Queue
}

func (pq *pendingQueue) push(t *pendingDynamicTask) {
	if pq.q == nil {
		pq.q = queue.New()
	}
	pq.q.Add(t)
}

// claimFront returns a worker task claimed from the front non-exhausted
// record, garbage-collecting any exhausted records it passes over. Caller
// must hold the pool's task mutex.
func (pq *pendingQueue) claimFront() (workerTask, bool) {
	if pq.q == nil {
		return workerTask{}, false
	}
	for pq.q.Length() > 0 {
		front := pq.q.Peek().(*pendingDynamicTask)
		if front.exhausted() {
			pq.q.Remove()
			continue
		}
		return front.claim(), true
	}
	return workerTask{}, false
}

func (pq *pendingQueue) empty() bool {
	return pq.q == nil || pq.q.Length() == 0
}
