// File: core/concurrency/nesting.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Nesting detection needs a per-goroutine cached "current pool"
// association: a worker's run loop and every body it invokes share one
// goroutine for that worker's entire lifetime, so tagging the goroutine
// once at startup answers "is the calling goroutine one of this pool's
// workers" from inside a nested Dispatch call. Dispatch also tags the
// calling goroutine for as long as it runs instances itself (instance 0
// and any stolen instances), then restores its previous tag.
//
// Go has no public goroutine-identity API, so there is no portable,
// dependency-free thread-local to reach for. Parsing the
// "goroutine N [running]:" header off runtime.Stack is the standard
// workaround reached for whenever Go code genuinely needs goroutine-scoped
// state; it is stdlib-only and does not need a third-party dependency.
package concurrency

import (
	"runtime"
	"strconv"
	"sync"
)

var (
	currentPoolMu sync.RWMutex
	currentPool   = map[uint64]*Pool{}
)

func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	b := buf[:n]
	const prefix = "goroutine "
	if len(b) <= len(prefix) {
		return 0
	}
	b = b[len(prefix):]
	i := 0
	for i < len(b) && b[i] != ' ' {
		i++
	}
	id, _ := strconv.ParseUint(string(b[:i]), 10, 64)
	return id
}

func registerCurrentWorker(p *Pool) {
	currentPoolMu.Lock()
	currentPool[goroutineID()] = p
	currentPoolMu.Unlock()
}

func unregisterCurrentWorker() {
	id := goroutineID()
	currentPoolMu.Lock()
	delete(currentPool, id)
	currentPoolMu.Unlock()
}

func poolOfCurrentGoroutine() (*Pool, bool) {
	currentPoolMu.RLock()
	p, ok := currentPool[goroutineID()]
	currentPoolMu.RUnlock()
	return p, ok
}

// CurrentThreadIsWorker reports whether the calling goroutine is one of
// this pool's own workers, or is the caller of one of this pool's
// dispatches while running an instance of it, i.e. whether a Dispatch
// call made right now would be a nested dispatch.
func (p *Pool) CurrentThreadIsWorker() bool {
	cp, ok := poolOfCurrentGoroutine()
	return ok && cp == p
}
