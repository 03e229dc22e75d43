package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	l := NoopLayoutHooks{}
	l.OnPassStart(ctx, "desktop")
	l.OnPassComplete(ctx, "desktop", time.Millisecond, nil)
	l.OnReset(ctx, "mobile", "desktop")

	g := NoopGridHooks{}
	g.OnPack(ctx, 4, 2, 2, 832660, time.Microsecond, nil)
	g.OnSkip(ctx, "canvas not measured")

	th := NoopThrottleHooks{}
	th.OnFire(ctx, "layout", false)
	th.OnCoalesced(ctx, "layout")
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Layout().(NoopLayoutHooks); !ok {
		t.Error("Layout() should return NoopLayoutHooks by default")
	}
	if _, ok := Grid().(NoopGridHooks); !ok {
		t.Error("Grid() should return NoopGridHooks by default")
	}
	if _, ok := Throttle().(NoopThrottleHooks); !ok {
		t.Error("Throttle() should return NoopThrottleHooks by default")
	}

	customLayout := &testLayoutHooks{}
	SetLayoutHooks(customLayout)
	if Layout() != customLayout {
		t.Error("SetLayoutHooks should set custom hooks")
	}

	customGrid := &testGridHooks{}
	SetGridHooks(customGrid)
	if Grid() != customGrid {
		t.Error("SetGridHooks should set custom hooks")
	}

	customThrottle := &testThrottleHooks{}
	SetThrottleHooks(customThrottle)
	if Throttle() != customThrottle {
		t.Error("SetThrottleHooks should set custom hooks")
	}

	Reset()
	if _, ok := Layout().(NoopLayoutHooks); !ok {
		t.Error("Reset() should restore NoopLayoutHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testLayoutHooks{}
	SetLayoutHooks(custom)

	// Setting nil should be ignored
	SetLayoutHooks(nil)

	if Layout() != custom {
		t.Error("SetLayoutHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testLayoutHooks struct{ NoopLayoutHooks }
type testGridHooks struct{ NoopGridHooks }
type testThrottleHooks struct{ NoopThrottleHooks }
