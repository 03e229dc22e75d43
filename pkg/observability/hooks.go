// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about layout passes, grid packing, and throttling.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetLayoutHooks(&myLayoutHooks{})
//	    observability.SetGridHooks(&myGridHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Layout().OnPassStart(ctx, "desktop")
//	// ... compute regions ...
//	observability.Layout().OnPassComplete(ctx, "desktop", duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Layout Hooks
// =============================================================================

// LayoutHooks receives events from the layout engine.
type LayoutHooks interface {
	// Pass events
	OnPassStart(ctx context.Context, device string)
	OnPassComplete(ctx context.Context, device string, duration time.Duration, err error)

	// OnReset records a device-class reset of the layout input.
	OnReset(ctx context.Context, from, to string)
}

// =============================================================================
// Grid Hooks
// =============================================================================

// GridHooks receives events from the grid packer.
type GridHooks interface {
	// OnPack records one optimizer run.
	OnPack(ctx context.Context, items, columns, rows, filledArea int, duration time.Duration, err error)

	// OnSkip records a recompute skipped because the canvas was not measured
	// or there was nothing to place.
	OnSkip(ctx context.Context, reason string)
}

// =============================================================================
// Throttle Hooks
// =============================================================================

// ThrottleHooks receives events from rate-limited recomputation triggers.
type ThrottleHooks interface {
	// OnFire records a leading or trailing invocation.
	OnFire(ctx context.Context, name string, trailing bool)

	// OnCoalesced records a notification absorbed into a pending trailing fire.
	OnCoalesced(ctx context.Context, name string)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopLayoutHooks is a no-op implementation of LayoutHooks.
type NoopLayoutHooks struct{}

func (NoopLayoutHooks) OnPassStart(context.Context, string)                          {}
func (NoopLayoutHooks) OnPassComplete(context.Context, string, time.Duration, error) {}
func (NoopLayoutHooks) OnReset(context.Context, string, string)                      {}

// NoopGridHooks is a no-op implementation of GridHooks.
type NoopGridHooks struct{}

func (NoopGridHooks) OnPack(context.Context, int, int, int, int, time.Duration, error) {}
func (NoopGridHooks) OnSkip(context.Context, string)                                   {}

// NoopThrottleHooks is a no-op implementation of ThrottleHooks.
type NoopThrottleHooks struct{}

func (NoopThrottleHooks) OnFire(context.Context, string, bool) {}
func (NoopThrottleHooks) OnCoalesced(context.Context, string)  {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	layoutHooks   LayoutHooks   = NoopLayoutHooks{}
	gridHooks     GridHooks     = NoopGridHooks{}
	throttleHooks ThrottleHooks = NoopThrottleHooks{}
	hooksMu       sync.RWMutex
)

// SetLayoutHooks registers custom layout hooks.
// This should be called once at application startup before any layout pass.
func SetLayoutHooks(h LayoutHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		layoutHooks = h
	}
}

// SetGridHooks registers custom grid hooks.
func SetGridHooks(h GridHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		gridHooks = h
	}
}

// SetThrottleHooks registers custom throttle hooks.
func SetThrottleHooks(h ThrottleHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		throttleHooks = h
	}
}

// Layout returns the registered layout hooks.
func Layout() LayoutHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return layoutHooks
}

// Grid returns the registered grid hooks.
func Grid() GridHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return gridHooks
}

// Throttle returns the registered throttle hooks.
func Throttle() ThrottleHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return throttleHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	layoutHooks = NoopLayoutHooks{}
	gridHooks = NoopGridHooks{}
	throttleHooks = NoopThrottleHooks{}
}
