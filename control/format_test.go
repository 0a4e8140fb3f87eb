// File: control/format_test.go
// Author: momentics <momentics@gmail.com>

package control

import (
	"bytes"
	"strings"
	"testing"

	"github.com/momentics/parex/core/concurrency"
)

func TestFormatDebugStats_Nil(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatDebugStats(&buf, nil); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "debug stats: disabled\n" {
		t.Fatalf("got %q", got)
	}
}

func TestFormatDebugStats_Populated(t *testing.T) {
	stats := &concurrency.DebugStats{}
	p, err := concurrency.NewPoolWithConfig(concurrency.PoolConfig{Name: "fmt-test", NumWorkers: 2, Stats: stats})
	if err != nil {
		t.Fatal(err)
	}
	defer p.Close()

	_, err = p.Dispatch(concurrency.RunOptions{Schedule: concurrency.ScheduleDynamic}, func(uint32) {})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := FormatDebugStats(&buf, stats); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, `pool "fmt-test"`) {
		t.Fatalf("missing pool header in output: %q", out)
	}
	if !strings.Contains(out, "worker 1:") || !strings.Contains(out, "worker 2:") {
		t.Fatalf("missing per-worker lines in output: %q", out)
	}
}

func TestRegisterPoolProbe_DumpStateIncludesPool(t *testing.T) {
	stats := &concurrency.DebugStats{}
	p, err := concurrency.NewPoolWithConfig(concurrency.PoolConfig{Name: "probe-test", NumWorkers: 1, Stats: stats})
	if err != nil {
		t.Fatal(err)
	}
	defer p.Close()

	dp := NewDebugProbes()
	RegisterPoolProbe(dp, p, nil)

	state := dp.DumpState()
	got, ok := state["pool.probe-test"]
	if !ok {
		t.Fatalf("DumpState missing pool.probe-test, got keys %v", mapKeys(state))
	}
	if got != stats {
		t.Fatal("registered probe did not return the pool's own DebugStats")
	}
}

func TestRegisterPoolProbe_PublishesMetrics(t *testing.T) {
	stats := &concurrency.DebugStats{}
	p, err := concurrency.NewPoolWithConfig(concurrency.PoolConfig{Name: "metrics-test", NumWorkers: 2, Stats: stats})
	if err != nil {
		t.Fatal(err)
	}
	defer p.Close()

	_, err = p.Dispatch(concurrency.RunOptions{Schedule: concurrency.ScheduleDynamic}, func(uint32) {})
	if err != nil {
		t.Fatal(err)
	}

	dp := NewDebugProbes()
	mr := NewMetricsRegistry()
	RegisterPoolProbe(dp, p, mr)

	dp.DumpState()

	snap := mr.GetSnapshot()
	if _, ok := snap["pool.metrics-test.caller_executed"]; !ok {
		t.Fatalf("metrics registry missing caller_executed, got keys %v", mapKeys(snap))
	}
	if _, ok := snap["pool.metrics-test.worker.1.executed"]; !ok {
		t.Fatalf("metrics registry missing worker.1.executed, got keys %v", mapKeys(snap))
	}
}

func mapKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
