// File: facade/loop.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// LoopIndices is the index-loop facade: STATIC assigns instance i a
// contiguous, ceiling-divided slice of [begin,end); DYNAMIC and
// DYNAMIC_NO_NESTING share one atomic fetch-add counter over indices.

package facade

import (
	"fmt"
	"sync/atomic"

	"github.com/momentics/parex/api"
	"github.com/momentics/parex/core/concurrency"
	"github.com/momentics/parex/pool"
)

// LoopIndices invokes body(i) exactly once for each i in [begin,end), zero
// times if begin >= end, distributing the work over pool per opts.
func LoopIndices[I Integer](p *concurrency.Pool, opts concurrency.RunOptions, begin, end I, body func(I)) error {
	if begin >= end {
		return nil
	}
	size := uint64(end - begin)

	par := p.EffectiveParForSize(size, opts)
	if par == 0 {
		return fmt.Errorf("loop_indices: %w", api.ErrNestedStaticDispatch)
	}
	if par == 1 {
		for i := begin; i < end; i++ {
			body(i)
		}
		return nil
	}

	modOpts := opts
	modOpts.MaxPar = par

	if opts.Schedule == concurrency.ScheduleStatic {
		chunk := divideRoundUp(size, uint64(par))
		_, err := p.Dispatch(modOpts, func(instanceIndex uint32) {
			lo, hi := staticSlice(begin, end, instanceIndex, chunk)
			for i := lo; i < hi; i++ {
				body(i)
			}
		})
		return err
	}

	var next atomic.Uint64
	_, err := p.Dispatch(modOpts, func(instanceIndex uint32) {
		for {
			idx := next.Add(1) - 1
			if idx >= size {
				return
			}
			body(begin + I(idx))
		}
	})
	return err
}

// LoopIndicesDefault is LoopIndices against pool.Default().
func LoopIndicesDefault[I Integer](opts concurrency.RunOptions, begin, end I, body func(I)) error {
	return LoopIndices(pool.Default(), opts, begin, end, body)
}

// LoopIndicesWithState is LoopIndices with a per-instance State built by
// init and never shared across instances: STATIC and DYNAMIC both build
// exactly one State per instance and pass it by reference to every body
// call that instance makes.
func LoopIndicesWithState[I Integer, S any](p *concurrency.Pool, opts concurrency.RunOptions, begin, end I, init func(JobInfo) S, body func(I, *S)) error {
	if begin >= end {
		return nil
	}
	size := uint64(end - begin)

	par := p.EffectiveParForSize(size, opts)
	if par == 0 {
		return fmt.Errorf("loop_indices_with_state: %w", api.ErrNestedStaticDispatch)
	}
	if par == 1 {
		st := init(JobInfo{Index: 0, Total: 1})
		for i := begin; i < end; i++ {
			body(i, &st)
		}
		return nil
	}

	modOpts := opts
	modOpts.MaxPar = par

	if opts.Schedule == concurrency.ScheduleStatic {
		chunk := divideRoundUp(size, uint64(par))
		_, err := p.Dispatch(modOpts, func(instanceIndex uint32) {
			st := init(JobInfo{Index: instanceIndex, Total: par})
			lo, hi := staticSlice(begin, end, instanceIndex, chunk)
			for i := lo; i < hi; i++ {
				body(i, &st)
			}
		})
		return err
	}

	var next atomic.Uint64
	_, err := p.Dispatch(modOpts, func(instanceIndex uint32) {
		st := init(JobInfo{Index: instanceIndex, Total: par})
		for {
			idx := next.Add(1) - 1
			if idx >= size {
				return
			}
			body(begin+I(idx), &st)
		}
	})
	return err
}

// LoopIndicesWithStateDefault is LoopIndicesWithState against pool.Default().
func LoopIndicesWithStateDefault[I Integer, S any](opts concurrency.RunOptions, begin, end I, init func(JobInfo) S, body func(I, *S)) error {
	return LoopIndicesWithState(pool.Default(), opts, begin, end, init, body)
}

// staticSlice computes instance instanceIndex's contiguous, ceiling-divided
// slice of [begin,end), clamped so the last slice absorbs the remainder.
func staticSlice[I Integer](begin, end I, instanceIndex uint32, chunk uint64) (I, I) {
	lo := begin + I(uint64(instanceIndex)*chunk)
	hi := lo + I(chunk)
	if hi > end || lo > end {
		hi = end
	}
	if lo > end {
		lo = end
	}
	return lo, hi
}
