// Package control
// Author: momentics <momentics@gmail.com>
//
// Debug introspection and statistics-formatting layer for parex pools.
// Pool construction is immutable (worker count is fixed at construction
// time), so this package carries no hot-reload config store; it carries
// what the ambient stack still needs on top of an immutable core:
//   - A named probe registry (api.Debug) for process-wide introspection
//   - A debug-statistics pretty-printer for core/concurrency.DebugStats
//   - A MetricsRegistry that RegisterPoolProbe can flatten a pool's
//     DebugStats into, for callers that want a string-keyed counters map
//     instead of (or alongside) the raw DebugStats struct
//   - Platform-specific probes (see platform_linux.go/platform_windows.go)
package control
