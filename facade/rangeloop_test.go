// File: facade/rangeloop_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package facade

import (
	"sort"
	"sync"
	"testing"

	"github.com/momentics/parex/core/concurrency"
)

func TestLoopRange_NegativeStepVisitsExpectedSet(t *testing.T) {
	p, err := concurrency.NewPool("range-neg", 4)
	if err != nil {
		t.Fatal(err)
	}
	defer p.Close()

	var mu sync.Mutex
	var visited []int
	def := RangeDef[int]{Begin: 5, End: -5, Step: -2, IterationsPerJob: 3}
	err = LoopRange(p, concurrency.RunOptions{Schedule: concurrency.ScheduleDynamic}, def, func(x int) {
		mu.Lock()
		visited = append(visited, x)
		mu.Unlock()
	})
	if err != nil {
		t.Fatal(err)
	}

	sort.Ints(visited)
	want := []int{-3, -1, 1, 3, 5}
	if len(visited) != len(want) {
		t.Fatalf("visited %v, want %v", visited, want)
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Fatalf("visited %v, want %v", visited, want)
		}
	}
}

func TestLoopRange_UnitStepMatchesLoopIndices(t *testing.T) {
	p, err := concurrency.NewPool("range-unit", 4)
	if err != nil {
		t.Fatal(err)
	}
	defer p.Close()

	var mu sync.Mutex
	seen := make(map[int]bool)
	def := RangeDef[int]{Begin: 0, End: 250, Step: 1, IterationsPerJob: 1}
	err = LoopRange(p, concurrency.RunOptions{Schedule: concurrency.ScheduleDynamic}, def, func(x int) {
		mu.Lock()
		seen[x] = true
		mu.Unlock()
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(seen) != 250 {
		t.Fatalf("visited %d indices, want 250", len(seen))
	}
}

func TestLoopRange_ZeroStepIsNoop(t *testing.T) {
	p, err := concurrency.NewPool("range-zero", 2)
	if err != nil {
		t.Fatal(err)
	}
	defer p.Close()

	called := false
	def := RangeDef[int]{Begin: 0, End: 10, Step: 0, IterationsPerJob: 1}
	if err := LoopRange(p, concurrency.DefaultRunOptions, def, func(int) { called = true }); err != nil {
		t.Fatal(err)
	}
	if called {
		t.Fatal("body invoked with Step == 0")
	}
}

func TestLoopRange_ChunkedIterationsPerJobVisitsEachIndexOnce(t *testing.T) {
	p, err := concurrency.NewPool("range-chunked", 4)
	if err != nil {
		t.Fatal(err)
	}
	defer p.Close()

	var mu sync.Mutex
	seen := make(map[int]int)
	def := RangeDef[int]{Begin: 0, End: 30, Step: 1, IterationsPerJob: 5}
	err = LoopRange(p, concurrency.RunOptions{Schedule: concurrency.ScheduleStatic}, def, func(x int) {
		mu.Lock()
		seen[x]++
		mu.Unlock()
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(seen) != 30 {
		t.Fatalf("visited %d distinct indices, want 30", len(seen))
	}
	for i := 0; i < 30; i++ {
		if seen[i] != 1 {
			t.Fatalf("index %d visited %d times, want 1", i, seen[i])
		}
	}
}
