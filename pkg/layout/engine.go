package layout

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/meetlayout/pkg/observability"
	"github.com/matzehuels/meetlayout/pkg/throttle"
)

// Calculate runs every region calculator over s and returns the complete
// output. It does not reset the input record; see Reset.
func Calculate(s State, d Defaults) (Output, error) {
	if err := d.Validate(); err != nil {
		return Output{}, err
	}
	if err := s.Validate(); err != nil {
		return Output{}, err
	}
	p := newPass(s, d)
	defaultPlan.execute(p)
	return p.output(), nil
}

// Engine keeps a store's output in sync with its state. It observes the
// store, recomputes at most once per throttle interval on both edges of a
// burst, and publishes each pass as a batch of messages.
//
// The first pass and every pass that sees a new device class start by
// resetting the input record (published as SetLayoutInput).
type Engine struct {
	store      *Store
	dispatcher Dispatcher
	defaults   Defaults
	logger     *log.Logger
	clock      throttle.Clock
	throttle   *throttle.Throttler

	mu          sync.Mutex
	ctx         context.Context
	started     bool
	lastClass   DeviceClass
	passes      int
	unsubscribe func()

	// own is the state the engine itself is publishing; the store echoes
	// it back through StateChanged.
	ownMu  sync.Mutex
	own    State
	hasOwn bool
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithDefaults replaces the stock constants.
func WithDefaults(d Defaults) EngineOption {
	return func(e *Engine) { e.defaults = d }
}

// WithLogger sets the engine logger. The default discards.
func WithLogger(l *log.Logger) EngineOption {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithClock replaces the clock driving the throttle.
func WithClock(c throttle.Clock) EngineOption {
	return func(e *Engine) {
		if c != nil {
			e.clock = c
		}
	}
}

// WithDispatcher also delivers every published message to d, after the
// store has applied it.
func WithDispatcher(d Dispatcher) EngineOption {
	return func(e *Engine) {
		if d != nil {
			e.dispatcher = Fanout{e.dispatcher, d}
		}
	}
}

// NewEngine returns an engine bound to store. Call Start to begin
// observing it.
func NewEngine(store *Store, opts ...EngineOption) *Engine {
	e := &Engine{
		store:      store,
		dispatcher: store,
		defaults:   DefaultDefaults(),
		logger:     discardLogger(),
		clock:      throttle.SystemClock{},
		ctx:        context.Background(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.throttle = throttle.New(e.defaults.LayoutThrottle.Std(), e.run,
		throttle.WithClock(e.clock), throttle.WithName("layout"))
	return e
}

// Start subscribes to the store and schedules the first pass. The context
// is handed to observability hooks.
func (e *Engine) Start(ctx context.Context) {
	e.mu.Lock()
	if e.unsubscribe != nil {
		e.mu.Unlock()
		return
	}
	e.ctx = ctx
	e.unsubscribe = e.store.Subscribe(e)
	e.mu.Unlock()

	e.throttle.Notify()
}

// StateChanged implements StateObserver.
func (e *Engine) StateChanged(prev, next State) {
	e.ownMu.Lock()
	echo := e.hasOwn && next == e.own
	e.ownMu.Unlock()
	if echo {
		return
	}
	if prev.DeviceClass != next.DeviceClass {
		e.logger.Debug("device class changed", "from", prev.DeviceClass, "to", next.DeviceClass)
	}
	e.throttle.Notify()
}

// Flush runs a pending trailing pass now.
func (e *Engine) Flush() { e.throttle.Flush() }

// Stop unsubscribes from the store and drops any pending pass.
func (e *Engine) Stop() {
	e.mu.Lock()
	unsub := e.unsubscribe
	e.unsubscribe = nil
	e.mu.Unlock()

	if unsub != nil {
		unsub()
	}
	e.throttle.Stop()
}

// Passes returns the number of passes that published an output.
func (e *Engine) Passes() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.passes
}

func (e *Engine) run() {
	if _, err := e.Pass(); err != nil {
		e.logger.Error("layout pass failed", "err", err)
	}
}

// Pass runs one pass immediately, bypassing the throttle. When the window
// has not been measured yet nothing is published and the previous output
// is returned.
func (e *Engine) Pass() (Output, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := e.store.State()
	if !e.started || s.DeviceClass != e.lastClass {
		var from string
		if e.started {
			from = e.lastClass.String()
		}
		s = Reset(s)
		e.logger.Debug("reset layout input", "device", s.DeviceClass,
			"sidebarNavigation", s.Input.SidebarNavigation.IsOpen,
			"sidebarContent", s.Input.SidebarContent.IsOpen)
		observability.Layout().OnReset(e.ctx, from, s.DeviceClass.String())
		e.started = true
		e.lastClass = s.DeviceClass
		e.publishInput(s)
	}

	if !s.Measured() {
		e.logger.Debug("skipping layout pass: window not measured", "device", s.DeviceClass)
		return e.store.Output(), nil
	}

	device := s.DeviceClass.String()
	observability.Layout().OnPassStart(e.ctx, device)
	start := time.Now()
	out, err := Calculate(s, e.defaults)
	observability.Layout().OnPassComplete(e.ctx, device, time.Since(start), err)
	if err != nil {
		return e.store.Output(), err
	}

	DispatchAll(e.dispatcher, OutputMessages(out)...)
	e.passes++
	e.logger.Debug("layout pass", "device", device, "main", out.Main, "mediaArea", out.MediaArea)
	return out, nil
}

func (e *Engine) publishInput(s State) {
	e.ownMu.Lock()
	e.own, e.hasOwn = s, true
	e.ownMu.Unlock()

	e.dispatcher.Dispatch(SetLayoutInput{Input: s.Input})

	e.ownMu.Lock()
	e.hasOwn = false
	e.ownMu.Unlock()
}

func discardLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}
