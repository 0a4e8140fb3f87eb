// File: core/concurrency/schedule.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// EffectivePar and EffectiveParForSize are pure predictor functions given
// the pool's fixed worker count and the calling goroutine's nesting
// state; neither mutates pool state.
package concurrency

// EffectivePar computes the number of instances (including the caller's)
// a dispatch with opts would actually use on this pool right now. Returns
// 0 only for a STATIC dispatch issued from a goroutine that is already
// one of this pool's own workers.
func (p *Pool) EffectivePar(opts RunOptions) uint32 {
	w := p.NumThreads()
	nested := p.CurrentThreadIsWorker()

	switch opts.Schedule {
	case ScheduleStatic:
		if nested {
			return 0
		}
		return externalPar(opts.MaxPar, w)
	case ScheduleDynamicNoNesting:
		if nested {
			return 1
		}
		return externalPar(opts.MaxPar, w)
	default: // ScheduleDynamic
		if nested {
			return nestedDynamicPar(opts.MaxPar, w)
		}
		return externalPar(opts.MaxPar, w)
	}
}

// EffectiveParForSize is EffectivePar clamped to size: an external caller
// or nested dynamic dispatch never gets more instances than there are
// units of work to hand out. Used by the facade package to size its
// partitioning before dispatching (see facade.LoopIndices and facade.Chunk).
func (p *Pool) EffectiveParForSize(size uint64, opts RunOptions) uint32 {
	ep := p.EffectivePar(opts)
	if ep == 0 || size == 0 {
		return 0
	}
	if uint64(ep) > size {
		return uint32(size)
	}
	return ep
}

// externalPar handles the case of an external caller: it may always use
// up to W remote instances plus itself.
func externalPar(maxPar, w uint32) uint32 {
	if maxPar > 0 {
		return 1 + min(maxPar-1, w)
	}
	return 1 + w
}

// nestedDynamicPar is the "caller is an existing worker" row for
// ScheduleDynamic: one fewer remote slot is available, since the caller
// itself is already occupying one of the W workers.
func nestedDynamicPar(maxPar, w uint32) uint32 {
	if w == 0 {
		return 1
	}
	if maxPar > 0 {
		return 1 + min(maxPar-1, w-1)
	}
	return 1 + (w - 1)
}
