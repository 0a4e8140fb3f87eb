// File: core/concurrency/counter.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// dispatchCounter is the completion counter for one dispatch: a
// single-use down-counter seeded with the number of remote instances (the
// caller's own instance is excluded). It is backed by a sync.WaitGroup,
// which already gives single-use countdown-latch semantics and panics on
// over-decrement, a free assertion that no instance is ever completed
// twice.
package concurrency

import "sync"

type dispatchCounter struct {
	wg sync.WaitGroup
}

func newDispatchCounter(remote uint32) *dispatchCounter {
	c := &dispatchCounter{}
	c.wg.Add(int(remote))
	return c
}

func (c *dispatchCounter) dec() {
	c.wg.Done()
}

func (c *dispatchCounter) wait() {
	c.wg.Wait()
}
