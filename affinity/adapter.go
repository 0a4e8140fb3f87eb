// File: affinity/adapter.go
// Author: momentics <momentics@gmail.com>
//
// Adapter implements api.Affinity on top of the package-level SetAffinity
// function, for callers that want the generic contract rather than the
// plain function (core/concurrency's PoolConfig.PinCPUs path calls
// SetAffinity directly and has no use for this).

package affinity

import "github.com/momentics/parex/api"

// Adapter pins the calling goroutine's OS thread to a single CPU. NUMA
// node pinning is accepted for interface compatibility but not acted on:
// this module's workloads are CPU-bound compute kernels, not NUMA-aware
// buffer placement.
type Adapter struct {
	cpuID  int
	pinned bool
}

// NewAdapter returns an unpinned Adapter.
func NewAdapter() *Adapter {
	return &Adapter{cpuID: -1}
}

// Pin sets thread affinity to cpuID. numaID is ignored.
func (a *Adapter) Pin(cpuID int, numaID int) error {
	if err := SetAffinity(cpuID); err != nil {
		return err
	}
	a.cpuID = cpuID
	a.pinned = true
	return nil
}

// Unpin clears the adapter's notion of its pinned CPU. The OS affinity
// mask itself is left as the last Pin call set it; there is no portable
// "reset to all CPUs" primitive wired here.
func (a *Adapter) Unpin() error {
	a.pinned = false
	a.cpuID = -1
	return nil
}

// Get returns the CPU last passed to Pin, or -1 if not pinned.
func (a *Adapter) Get() (cpuID int, numaID int, err error) {
	if !a.pinned {
		return -1, -1, nil
	}
	return a.cpuID, -1, nil
}

var _ api.Affinity = (*Adapter)(nil)
