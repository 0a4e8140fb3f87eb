// File: core/concurrency/errors.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package concurrency

import "errors"

// ErrPoolClosed is returned by Dispatch once Close has started tearing
// down workers. Dispatching concurrently with Close is a documented
// precondition violation; this is a best-effort guard, not a guarantee,
// since a dispatch already past this check can still race a concurrent
// Close.
var ErrPoolClosed = errors.New("parex: pool is closed")
