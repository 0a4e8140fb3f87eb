// File: facade/fanout_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package facade

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/momentics/parex/api"
	"github.com/momentics/parex/core/concurrency"
)

func TestFanOut_MaxParClampedToPoolSize(t *testing.T) {
	p, err := concurrency.NewPool("fanout-clamp", 4)
	if err != nil {
		t.Fatal(err)
	}
	defer p.Close()

	var mu sync.Mutex
	seen := make(map[uint32]bool)
	n, err := FanOut(p, concurrency.RunOptions{Schedule: concurrency.ScheduleDynamic, MaxPar: 1000}, func(idx uint32) {
		mu.Lock()
		seen[idx] = true
		mu.Unlock()
	})
	if err != nil {
		t.Fatal(err)
	}
	if n != 5 {
		t.Fatalf("n = %d, want 5 (4 workers + caller)", n)
	}
	if len(seen) != 5 {
		t.Fatalf("saw %d distinct instances, want 5", len(seen))
	}
}

func TestFanOutWithTotal_TotalMatchesInstanceCount(t *testing.T) {
	p, err := concurrency.NewPool("fanout-total", 3)
	if err != nil {
		t.Fatal(err)
	}
	defer p.Close()

	var totalsAgree atomic.Bool
	totalsAgree.Store(true)
	var observedTotal atomic.Uint32
	n, err := FanOutWithTotal(p, concurrency.RunOptions{Schedule: concurrency.ScheduleDynamic}, func(index, total uint32) {
		observedTotal.Store(total)
		if index >= total {
			totalsAgree.Store(false)
		}
	})
	if err != nil {
		t.Fatal(err)
	}
	if !totalsAgree.Load() {
		t.Fatal("some instance saw index >= total")
	}
	if n != 4 {
		t.Fatalf("n = %d, want 4 (3 workers + caller)", n)
	}
	if observedTotal.Load() != n {
		t.Fatalf("observed total %d != returned n %d", observedTotal.Load(), n)
	}
}

func TestFanOut_NestedStaticFailsWithZeroSideEffects(t *testing.T) {
	p, err := concurrency.NewPool("fanout-nested", 2)
	if err != nil {
		t.Fatal(err)
	}
	defer p.Close()

	var sideEffects atomic.Int64
	_, err = FanOut(p, concurrency.RunOptions{Schedule: concurrency.ScheduleStatic}, func(uint32) {
		_, ferr := FanOut(p, concurrency.RunOptions{Schedule: concurrency.ScheduleStatic, MaxPar: 2}, func(uint32) {
			sideEffects.Add(1)
		})
		if !errors.Is(ferr, api.ErrNestedStaticDispatch) {
			t.Errorf("expected ErrNestedStaticDispatch, got %v", ferr)
		}
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := sideEffects.Load(); got != 0 {
		t.Fatalf("side effects = %d, want 0", got)
	}
}

func TestFanOutWithTotal_NestedStaticFails(t *testing.T) {
	p, err := concurrency.NewPool("fanout-total-nested", 2)
	if err != nil {
		t.Fatal(err)
	}
	defer p.Close()

	_, err = FanOut(p, concurrency.RunOptions{Schedule: concurrency.ScheduleStatic}, func(uint32) {
		_, ferr := FanOutWithTotal(p, concurrency.RunOptions{Schedule: concurrency.ScheduleStatic}, func(uint32, uint32) {
			t.Error("body must not run on nested STATIC dispatch failure")
		})
		if !errors.Is(ferr, api.ErrNestedStaticDispatch) {
			t.Errorf("expected ErrNestedStaticDispatch, got %v", ferr)
		}
	})
	if err != nil {
		t.Fatal(err)
	}
}
