package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	b := NoopBenchHooks{}
	b.OnRunStart(ctx, "engine", 10)
	b.OnRunComplete(ctx, "engine", 10, 3628800, time.Second, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "bench")
	c.OnCacheMiss(ctx, "bench")
	c.OnCacheSet(ctx, "bench", 1024)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Bench().(NoopBenchHooks); !ok {
		t.Error("Bench() should return NoopBenchHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}

	customBench := &testBenchHooks{}
	SetBenchHooks(customBench)
	if Bench() != customBench {
		t.Error("SetBenchHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	Reset()
	if _, ok := Bench().(NoopBenchHooks); !ok {
		t.Error("Reset() should restore NoopBenchHooks")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Reset() should restore NoopCacheHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testBenchHooks{}
	SetBenchHooks(custom)
	SetBenchHooks(nil)
	if Bench() != custom {
		t.Error("SetBenchHooks(nil) should be ignored")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	SetCacheHooks(nil)
	if Cache() != customCache {
		t.Error("SetCacheHooks(nil) should be ignored")
	}
}

func TestCustomHooksReceiveEvents(t *testing.T) {
	Reset()
	defer Reset()

	h := &testBenchHooks{}
	SetBenchHooks(h)

	ctx := context.Background()
	Bench().OnRunStart(ctx, "heap", 5)
	Bench().OnRunComplete(ctx, "heap", 5, 120, time.Millisecond, nil)

	if h.starts != 1 || h.completed != 120 {
		t.Errorf("hooks saw starts=%d completed=%d", h.starts, h.completed)
	}
}

// Test implementations
type testBenchHooks struct {
	NoopBenchHooks
	starts    int
	completed uint64
}

func (h *testBenchHooks) OnRunStart(context.Context, string, int) { h.starts++ }

func (h *testBenchHooks) OnRunComplete(_ context.Context, _ string, _ int, count uint64, _ time.Duration, _ error) {
	h.completed += count
}

type testCacheHooks struct{ NoopCacheHooks }
