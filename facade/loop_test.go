// File: facade/loop_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package facade

import (
	"sort"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/momentics/parex/core/concurrency"
)

func TestLoopIndices_DynamicSum(t *testing.T) {
	p, err := concurrency.NewPool("loop-dyn", 4)
	if err != nil {
		t.Fatal(err)
	}
	defer p.Close()

	var sum atomic.Int64
	err = LoopIndices(p, concurrency.RunOptions{Schedule: concurrency.ScheduleDynamic}, 0, 1000, func(i int) {
		sum.Add(int64(i))
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := sum.Load(); got != 499500 {
		t.Fatalf("sum = %d, want 499500", got)
	}
}

func TestLoopIndices_StaticCoversRangeExactlyOnce(t *testing.T) {
	p, err := concurrency.NewPool("loop-static", 4)
	if err != nil {
		t.Fatal(err)
	}
	defer p.Close()

	var mu sync.Mutex
	seen := make(map[int]int)
	err = LoopIndices(p, concurrency.RunOptions{Schedule: concurrency.ScheduleStatic}, 0, 97, func(i int) {
		mu.Lock()
		seen[i]++
		mu.Unlock()
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(seen) != 97 {
		t.Fatalf("visited %d distinct indices, want 97", len(seen))
	}
	for i := 0; i < 97; i++ {
		if seen[i] != 1 {
			t.Fatalf("index %d visited %d times, want 1", i, seen[i])
		}
	}
}

func TestLoopIndices_EmptyRangeIsNoop(t *testing.T) {
	p, err := concurrency.NewPool("loop-empty", 2)
	if err != nil {
		t.Fatal(err)
	}
	defer p.Close()

	called := false
	if err := LoopIndices(p, concurrency.DefaultRunOptions, 5, 5, func(int) { called = true }); err != nil {
		t.Fatal(err)
	}
	if called {
		t.Fatal("body invoked on an empty range")
	}
}

func TestLoopIndicesWithState_PerInstanceStateIsIsolated(t *testing.T) {
	p, err := concurrency.NewPool("loop-state", 4)
	if err != nil {
		t.Fatal(err)
	}
	defer p.Close()

	// LoopIndicesWithState builds exactly one State per instance and never
	// shares it; capture each instance's accumulator in a sync.Map keyed
	// by JobInfo.Index so the per-instance partial sums can be checked
	// individually and summed against the known total.
	var mu sync.Mutex
	var instanceSums sync.Map
	err = LoopIndicesWithState(p, concurrency.RunOptions{Schedule: concurrency.ScheduleDynamic}, 0, 1000,
		func(info JobInfo) *int {
			v := new(int)
			instanceSums.Store(info.Index, v)
			return v
		},
		func(i int, acc **int) { **acc += i },
	)
	if err != nil {
		t.Fatal(err)
	}

	total := 0
	instanceSums.Range(func(_, v any) bool {
		mu.Lock()
		total += *(v.(*int))
		mu.Unlock()
		return true
	})
	if total != 499500 {
		t.Fatalf("total = %d, want 499500", total)
	}
}

func TestLoopIndices_NegativeIndicesSortedVisit(t *testing.T) {
	p, err := concurrency.NewPool("loop-neg", 2)
	if err != nil {
		t.Fatal(err)
	}
	defer p.Close()

	var mu sync.Mutex
	var visited []int
	err = LoopIndices(p, concurrency.RunOptions{Schedule: concurrency.ScheduleStatic}, -5, 5, func(i int) {
		mu.Lock()
		visited = append(visited, i)
		mu.Unlock()
	})
	if err != nil {
		t.Fatal(err)
	}
	sort.Ints(visited)
	want := []int{-5, -4, -3, -2, -1, 0, 1, 2, 3, 4}
	if len(visited) != len(want) {
		t.Fatalf("visited %v, want %v", visited, want)
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Fatalf("visited %v, want %v", visited, want)
		}
	}
}
