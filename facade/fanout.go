// File: facade/fanout.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// FanOut is the fixed-width task fan-out facade: it directly dispatches
// body(instanceIndex) for every instance the pool's scheduling policy
// grants, with no index-workload decomposition at all.

package facade

import (
	"fmt"

	"github.com/momentics/parex/api"
	"github.com/momentics/parex/core/concurrency"
	"github.com/momentics/parex/pool"
)

// FanOut dispatches body(instanceIndex) for instances [0, P), where P is
// pool.EffectivePar(opts), and returns P.
func FanOut(p *concurrency.Pool, opts concurrency.RunOptions, body concurrency.TaskFunc) (uint32, error) {
	return p.Dispatch(opts, body)
}

// FanOutDefault is FanOut against pool.Default().
func FanOutDefault(opts concurrency.RunOptions, body concurrency.TaskFunc) (uint32, error) {
	return FanOut(pool.Default(), opts, body)
}

// FanOutWithTotal is FanOut's second form: body also receives the total
// instance count P, closed over from the pre-computed EffectivePar.
func FanOutWithTotal(p *concurrency.Pool, opts concurrency.RunOptions, body func(index, total uint32)) (uint32, error) {
	par := p.EffectivePar(opts)
	if par == 0 {
		return 0, fmt.Errorf("fan_out: %w", api.ErrNestedStaticDispatch)
	}
	modOpts := opts
	modOpts.MaxPar = par
	return p.Dispatch(modOpts, func(instanceIndex uint32) {
		body(instanceIndex, par)
	})
}

// FanOutWithTotalDefault is FanOutWithTotal against pool.Default().
func FanOutWithTotalDefault(opts concurrency.RunOptions, body func(index, total uint32)) (uint32, error) {
	return FanOutWithTotal(pool.Default(), opts, body)
}
