// File: facade/rangeloop.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// LoopRange extends LoopIndices with a step and an iterations-per-job
// chunk size. It walks the arithmetic progression
// begin, begin+step, begin+2*step, ... while |x-begin| < |end-begin|, in
// chunks of iterationsPerJob, dispatched as one LoopIndices call over the
// chunk indices.

package facade

import (
	"github.com/momentics/parex/core/concurrency"
	"github.com/momentics/parex/pool"
)

// RangeDef describes a stepped, chunked iteration range.
type RangeDef[I Integer] struct {
	Begin, End, Step I
	IterationsPerJob int
}

// LoopRange invokes body on every index in the arithmetic progression
// Begin, Begin+Step, Begin+2*Step, ... up to but not including End.
// Step == 0 or IterationsPerJob <= 0 is a no-op. Negative Step iterates
// downward through a positive-sized range (Begin > End).
func LoopRange[I Integer](p *concurrency.Pool, opts concurrency.RunOptions, def RangeDef[I], body func(I)) error {
	if def.Step == 0 || def.IterationsPerJob <= 0 {
		return nil
	}
	if def.IterationsPerJob == 1 && def.Step == 1 {
		return LoopIndices(p, opts, def.Begin, def.End, body)
	}

	diff := int64(def.End) - int64(def.Begin)
	if diff == 0 {
		return nil
	}
	step := int64(def.Step)

	absDiff, absStep := diff, step
	if absDiff < 0 {
		absDiff = -absDiff
	}
	if absStep < 0 {
		absStep = -absStep
	}
	total := divideRoundUp(uint64(absDiff), uint64(absStep))
	if total == 0 {
		return nil
	}
	ipj := uint64(def.IterationsPerJob)
	chunks := divideRoundUp(total, ipj)

	fastPath := step == 1

	return LoopIndices(p, opts, uint64(0), chunks, func(k uint64) {
		chunkBegin := k * ipj
		chunkEnd := chunkBegin + ipj
		if chunkEnd > total {
			chunkEnd = total
		}

		var x I
		if fastPath {
			x = def.Begin + I(chunkBegin)
		} else {
			x = def.Begin + I(int64(chunkBegin)*step)
		}
		for j := chunkBegin; j < chunkEnd; j++ {
			body(x)
			x += def.Step
		}
	})
}

// LoopRangeDefault is LoopRange against pool.Default().
func LoopRangeDefault[I Integer](opts concurrency.RunOptions, def RangeDef[I], body func(I)) error {
	return LoopRange(pool.Default(), opts, def, body)
}
