// File: facade/chunk.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Chunk is the fixed-chunk fan-out facade, ported from the reference C++
// par::pchunk helper: divide size items into exactly P contiguous chunks
// and hand each chunk, plus a JobInfo, to body. Unlike LoopRange (which
// chunks a stepped index range), Chunk chunks an opaque size with no step.

package facade

import (
	"fmt"

	"github.com/momentics/parex/api"
	"github.com/momentics/parex/core/concurrency"
	"github.com/momentics/parex/pool"
)

// Chunk divides [0,size) into pool.EffectiveParForSize(size,opts)
// contiguous chunks and invokes body(begin, end, info) once per chunk,
// returning the chunk count actually used. size <= 0 is a no-op.
func Chunk[I Integer](p *concurrency.Pool, opts concurrency.RunOptions, size I, body func(begin, end I, info JobInfo)) (uint32, error) {
	if size <= 0 {
		return 0, nil
	}
	total := uint64(size)

	par := p.EffectiveParForSize(total, opts)
	if par == 0 {
		return 0, fmt.Errorf("chunk: %w", api.ErrNestedStaticDispatch)
	}

	modOpts := opts
	modOpts.MaxPar = par
	chunkSize := divideRoundUp(total, uint64(par))

	return p.Dispatch(modOpts, func(instanceIndex uint32) {
		lo := I(uint64(instanceIndex) * chunkSize)
		if lo > size {
			lo = size
		}
		hi := lo + I(chunkSize)
		if hi > size {
			hi = size
		}
		body(lo, hi, JobInfo{Index: instanceIndex, Total: par})
	})
}

// ChunkDefault is Chunk against pool.Default().
func ChunkDefault[I Integer](opts concurrency.RunOptions, size I, body func(begin, end I, info JobInfo)) (uint32, error) {
	return Chunk(pool.Default(), opts, size, body)
}
