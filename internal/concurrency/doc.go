// File: internal/concurrency/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Platform collaborators for the parex thread pool: OS thread naming and
// cache-line size selection. CPU pinning lives in the affinity package.
// None of these are part of the pool's dispatch protocol; they exist so
// the pool can ask the OS for locality and debuggability hints without
// leaking platform detail into core/concurrency.
package concurrency
