// Package throttle coalesces bursts of change notifications into at most one
// invocation per interval.
//
// A [Throttler] fires on both edges of a burst. The first notification after
// a quiet period runs the callback immediately (leading edge). Notifications
// that arrive while the interval is still running are absorbed into a single
// trailing fire scheduled for the moment the interval ends. The trailing fire
// is skipped when nothing arrived after the leading one, so a burst of N
// notifications produces one or two invocations and the last notification is
// always reflected.
//
// The leading-edge decision is a token bucket from golang.org/x/time/rate
// holding one token that refills once per interval. A trailing fire reserves
// the next token, so trailing fires are rate-limited too.
package throttle

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/matzehuels/meetlayout/pkg/observability"
)

// Throttler rate-limits calls to a callback. The zero value is not usable;
// create one with New. A Throttler is safe for concurrent use, and callback
// invocations never overlap.
type Throttler struct {
	name     string
	interval time.Duration
	fn       func()
	clock    Clock
	limiter  *rate.Limiter

	mu      sync.Mutex
	pending bool
	timer   Timer
	seq     uint64
	stopped bool

	fireMu sync.Mutex
}

// Option configures a Throttler.
type Option func(*Throttler)

// WithClock replaces the system clock.
func WithClock(c Clock) Option {
	return func(t *Throttler) {
		if c != nil {
			t.clock = c
		}
	}
}

// WithName labels the throttler in observability hooks.
func WithName(name string) Option {
	return func(t *Throttler) { t.name = name }
}

// New returns a throttler that calls fn at most once per interval.
// A non-positive interval disables throttling: every Notify fires.
func New(interval time.Duration, fn func(), opts ...Option) *Throttler {
	t := &Throttler{
		name:     "throttle",
		interval: interval,
		fn:       fn,
		clock:    SystemClock{},
	}
	for _, opt := range opts {
		opt(t)
	}
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	t.limiter = rate.NewLimiter(limit, 1)
	return t
}

// Interval returns the configured interval.
func (t *Throttler) Interval() time.Duration { return t.interval }

// Notify signals that the callback's inputs changed.
func (t *Throttler) Notify() {
	t.mu.Lock()
	if t.stopped {
		t.mu.Unlock()
		return
	}
	now := t.clock.Now()
	if t.timer == nil && t.limiter.AllowN(now, 1) {
		t.mu.Unlock()
		t.fire(false)
		return
	}

	t.pending = true
	if t.timer == nil {
		delay := t.limiter.ReserveN(now, 1).DelayFrom(now)
		t.seq++
		seq := t.seq
		t.timer = t.clock.AfterFunc(delay, func() { t.onTimer(seq) })
	}
	t.mu.Unlock()
	observability.Throttle().OnCoalesced(context.Background(), t.name)
}

// Flush runs a pending trailing fire immediately. It does nothing when no
// notification is waiting.
func (t *Throttler) Flush() {
	t.mu.Lock()
	if t.stopped || !t.pending {
		t.mu.Unlock()
		return
	}
	t.pending = false
	t.mu.Unlock()
	t.fire(true)
}

// Pending reports whether a trailing fire is waiting.
func (t *Throttler) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pending
}

// Stop cancels any pending trailing fire. Subsequent notifications are
// ignored.
func (t *Throttler) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopped = true
	t.pending = false
	t.seq++
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}

func (t *Throttler) onTimer(seq uint64) {
	t.mu.Lock()
	// Only the most recently scheduled timer may fire; an older one can
	// still run if Stop raced with its expiry.
	if seq != t.seq || t.stopped {
		t.mu.Unlock()
		return
	}
	t.timer = nil
	run := t.pending
	t.pending = false
	t.mu.Unlock()

	if run {
		t.fire(true)
	}
}

func (t *Throttler) fire(trailing bool) {
	t.fireMu.Lock()
	defer t.fireMu.Unlock()
	t.fn()
	observability.Throttle().OnFire(context.Background(), t.name, trailing)
}
