// File: control/format.go
// Author: momentics <momentics@gmail.com>
//
// Debug-statistics pretty-printer, ported from the reference C++
// implementation's debug_stats_print helper: the debug-statistics
// counters are defined elsewhere and leave presentation to a
// collaborator.

package control

import (
	"fmt"
	"io"
	"strconv"

	"github.com/momentics/parex/core/concurrency"
)

// FormatDebugStats writes a human-readable rendering of stats to w: the
// pool name, its lifetime, the caller's own counters, and one line per
// worker. A nil stats prints a single "stats disabled" line rather than
// erroring, since DebugStats being nil (stats collection is optional) is
// an expected, not exceptional, state.
func FormatDebugStats(w io.Writer, stats *concurrency.DebugStats) error {
	if stats == nil {
		_, err := fmt.Fprintln(w, "debug stats: disabled")
		return err
	}
	if _, err := fmt.Fprintf(w, "pool %q lifetime=%dns caller_executed=%d caller_stolen=%d\n",
		stats.Name, stats.LifetimeNanos(), stats.CallerExecuted.Load(), stats.CallerStolen.Load()); err != nil {
		return err
	}
	for i := range stats.Workers {
		ws := &stats.Workers[i]
		if _, err := fmt.Fprintf(w, "  worker %d: executed=%d stolen=%d total_ns=%d\n",
			i+1, ws.Executed.Load(), ws.Stolen.Load(), ws.TotalNanos.Load()); err != nil {
			return err
		}
	}
	return nil
}

// RegisterPoolProbe exposes pool's debug statistics under the probe name
// "pool.<name>" in dp, wiring api.Debug's registry to a concrete
// core/concurrency.Pool. DumpState on dp will then include the pool's
// *concurrency.DebugStats (nil if the pool was built without one). If mr
// is non-nil, every DumpState-triggered read of the probe also refreshes
// mr with the pool's flattened counters, giving callers a MetricsRegistry
// snapshot alongside the raw DebugStats.
func RegisterPoolProbe(dp *DebugProbes, p *concurrency.Pool, mr *MetricsRegistry) {
	name := "pool." + p.Name()
	dp.RegisterProbe(name, func() any {
		stats := p.DebugStats()
		if mr != nil && stats != nil {
			publishPoolMetrics(mr, stats)
		}
		return stats
	})
}

// publishPoolMetrics flattens stats into mr under keys scoped by pool
// name, so a single MetricsRegistry can hold counters for several pools.
func publishPoolMetrics(mr *MetricsRegistry, stats *concurrency.DebugStats) {
	prefix := "pool." + stats.Name + "."
	mr.Set(prefix+"lifetime_ns", stats.LifetimeNanos())
	mr.Set(prefix+"caller_executed", stats.CallerExecuted.Load())
	mr.Set(prefix+"caller_stolen", stats.CallerStolen.Load())
	for i := range stats.Workers {
		ws := &stats.Workers[i]
		wp := prefix + "worker." + strconv.Itoa(i+1) + "."
		mr.Set(wp+"executed", ws.Executed.Load())
		mr.Set(wp+"stolen", ws.Stolen.Load())
		mr.Set(wp+"total_ns", ws.TotalNanos.Load())
	}
}
