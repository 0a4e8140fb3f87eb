// File: pool/default.go
// Author: momentics <momentics@gmail.com>
//
// Process-wide default Pool, built with the same sync.Once-guarded
// package-level singleton pattern as a typical DefaultManager, but
// holding a core/concurrency.Pool instead of a buffer-pool manager.

package pool

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/momentics/parex/api"
	"github.com/momentics/parex/core/concurrency"
)

var (
	once    sync.Once
	global  *concurrency.Pool
	initErr error
)

// Default returns the process-wide pool, lazily sized on first access to
// max(0, runtime.NumCPU()-2) workers.
func Default() *concurrency.Pool {
	once.Do(func() {
		global, initErr = concurrency.NewPool("parex-global", defaultSize())
	})
	if initErr != nil {
		// defaultSize() is always a valid worker count, so initErr is
		// non-nil only when an earlier InitDefault asked for an
		// out-of-range count.
		panic(fmt.Errorf("pool: default pool init: %w", initErr))
	}
	return global
}

// InitDefault explicitly sizes the global pool. It must be called before
// the first call to Default (from either InitDefault or Default itself);
// otherwise it fails with api.ErrGlobalAlreadyInitialized.
func InitDefault(numWorkers uint32) (*concurrency.Pool, error) {
	var ran bool
	once.Do(func() {
		ran = true
		global, initErr = concurrency.NewPool("parex-global", numWorkers)
	})
	if !ran {
		return nil, fmt.Errorf("pool: %w", api.ErrGlobalAlreadyInitialized)
	}
	return global, initErr
}

// maxDefaultWorkers keeps defaultSize() within the pool's implementation
// limit even on very large hosts.
const maxDefaultWorkers = 126

func defaultSize() uint32 {
	n := runtime.NumCPU() - 2
	if n < 0 {
		n = 0
	}
	if n > maxDefaultWorkers {
		n = maxDefaultWorkers
	}
	return uint32(n)
}
