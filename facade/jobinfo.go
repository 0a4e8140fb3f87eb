// File: facade/jobinfo.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// JobInfo is promoted from an implementation detail of the reference C++
// par::job_info helper into a small exported struct used by Chunk and by
// LoopIndicesWithState's init callback.

package facade

// JobInfo identifies one dispatch instance among the total instances a
// dispatch used.
type JobInfo struct {
	Index uint32
	Total uint32
}
