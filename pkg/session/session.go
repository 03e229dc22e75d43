// Package session wires a layout store, engine and tiler into one unit
// addressed by id.
//
// # Overview
//
// A [Session] owns the complete feedback loop of a conference view: the
// [layout.Store] holding the state, the [layout.Engine] recomputing the
// regions on every state change, and the [grid.Tiler] packing the camera
// streams into the dock and writing the grid size back into the state.
//
// Changes go through [Session.Apply] and are processed asynchronously,
// throttled like they would be in a browser. [Session.Settle] runs the loop
// to a fixed point synchronously and returns the resulting [View]; servers
// use it to answer a request with the layout the change produced.
//
//	sess, err := session.New(ctx, layout.Desktop, geom.Size{Width: 1280, Height: 800})
//	if err != nil {
//	    return err
//	}
//	defer sess.Close()
//
//	if err := sess.SetCameras(4); err != nil {
//	    return err
//	}
//	view, err := sess.Settle()
//
// # Registry
//
// A [Registry] keeps sessions in memory, hands out ids, and expires
// sessions that have not been used for longer than their TTL.
package session

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/meetlayout/pkg/errors"
	"github.com/matzehuels/meetlayout/pkg/geom"
	"github.com/matzehuels/meetlayout/pkg/grid"
	"github.com/matzehuels/meetlayout/pkg/layout"
	"github.com/matzehuels/meetlayout/pkg/throttle"
)

// Session is one live layout.
type Session struct {
	ID        string
	CreatedAt time.Time

	store  *layout.Store
	engine *layout.Engine
	tiler  *grid.Tiler
	detach func()
	clock  throttle.Clock
	logger *log.Logger

	mu       sync.Mutex
	lastUsed time.Time
	closed   bool
}

// View is a snapshot of a session.
type View struct {
	ID        string        `json:"id"`
	CreatedAt time.Time     `json:"createdAt"`
	State     layout.State  `json:"state"`
	Output    layout.Output `json:"output"`
	Grid      grid.Spec     `json:"grid"`
	Tiles     []grid.Tile   `json:"tiles"`
	Passes    int           `json:"passes"`
}

type config struct {
	defaults layout.Defaults
	logger   *log.Logger
	clock    throttle.Clock
	frames   grid.FrameScheduler
}

// Option configures a session.
type Option func(*config)

// WithDefaults sets the constants used by the engine and the tiler.
func WithDefaults(d layout.Defaults) Option { return func(c *config) { c.defaults = d } }

// WithLogger sets the logger. Each session logs with its id attached.
func WithLogger(l *log.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithClock sets the clock driving both throttles and the frame scheduler.
func WithClock(clk throttle.Clock) Option { return func(c *config) { c.clock = clk } }

// WithFrameScheduler replaces the tiler's frame scheduler.
func WithFrameScheduler(f grid.FrameScheduler) Option { return func(c *config) { c.frames = f } }

// New starts a session for a device of the given class and window size.
// The first pass is scheduled immediately.
func New(ctx context.Context, class layout.DeviceClass, window geom.Size, opts ...Option) (*Session, error) {
	cfg := config{
		defaults: layout.DefaultDefaults(),
		logger:   log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel}),
		clock:    throttle.SystemClock{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.defaults.Validate(); err != nil {
		return nil, err
	}
	initial := layout.NewState(class, window)
	if err := initial.Validate(); err != nil {
		return nil, err
	}

	id := uuid.New().String()
	logger := cfg.logger.With("session", id)
	store := layout.NewStore(initial, layout.WithStoreLogger(logger))

	tilerOpts := []grid.TilerOption{
		grid.WithDefaults(cfg.defaults),
		grid.WithClock(cfg.clock),
		grid.WithLogger(logger),
	}
	if cfg.frames != nil {
		tilerOpts = append(tilerOpts, grid.WithFrameScheduler(cfg.frames))
	}
	tiler := grid.NewTiler(tilerOpts...)

	engine := layout.NewEngine(store,
		layout.WithDefaults(cfg.defaults),
		layout.WithLogger(logger),
		layout.WithClock(cfg.clock),
	)

	now := cfg.clock.Now()
	s := &Session{
		ID:        id,
		CreatedAt: now,
		store:     store,
		engine:    engine,
		tiler:     tiler,
		clock:     cfg.clock,
		logger:    logger,
		lastUsed:  now,
	}
	s.detach = tiler.Attach(store)
	engine.Start(ctx)
	logger.Debug("session started", "device", class, "window", window)
	return s, nil
}

// Store returns the state holder of the session.
func (s *Session) Store() *layout.Store { return s.store }

// Engine returns the layout engine of the session.
func (s *Session) Engine() *layout.Engine { return s.engine }

// Tiler returns the camera grid controller of the session.
func (s *Session) Tiler() *grid.Tiler { return s.tiler }

// Apply applies changes to the session state. Recomputation happens
// asynchronously; call Settle to wait for it.
func (s *Session) Apply(changes ...layout.Change) layout.State {
	s.touch()
	next := s.store.Apply(changes...)
	s.syncStreams(next.Input.CameraDock.NumCameras)
	return next
}

// Replace swaps in a whole new state after validating it.
func (s *Session) Replace(state layout.State) error {
	if err := state.Validate(); err != nil {
		return err
	}
	s.Apply(layout.Replace(state))
	return nil
}

// SetCameras sets the camera count and gives the tiler that many
// placeholder streams. Counts outside [0, layout.MaxCameras] are rejected
// with INVALID_INPUT.
func (s *Session) SetCameras(n int) error {
	if err := errors.ValidateCountAtMost(errors.ErrCodeInvalidInput, "cameras", n, layout.MaxCameras); err != nil {
		return err
	}
	s.Apply(layout.CamerasChanged(n))
	return nil
}

// SetStreams hands the tiler a concrete stream list and updates the
// camera count to match.
func (s *Session) SetStreams(streams []grid.Stream) {
	s.touch()
	s.tiler.SetStreams(streams)
	s.store.Apply(layout.CamerasChanged(len(streams)))
}

// Focus toggles focus on a stream. See grid.Tiler.Focus.
func (s *Session) Focus(streamID string) bool {
	s.touch()
	return s.tiler.Focus(streamID)
}

// syncStreams keeps the tiler stream count in line with the state when
// the caller only deals in counts. Counts an invalid state carries are
// left to the engine to reject.
func (s *Session) syncStreams(n int) {
	current := s.tiler.Streams()
	if len(current) == n || n < 0 || n > layout.MaxCameras {
		return
	}
	streams := make([]grid.Stream, n)
	for i := range streams {
		if i < len(current) {
			streams[i] = current[i]
			continue
		}
		streams[i] = grid.Stream{ID: fmt.Sprintf("camera-%d", i+1), Name: fmt.Sprintf("Camera %d", i+1)}
	}
	s.tiler.SetStreams(streams)
}

// Settle runs pending work synchronously: a layout pass, a grid pack on
// the resulting dock, and a second pass that sees the packed grid. It
// returns the view afterwards.
func (s *Session) Settle() (View, error) {
	s.touch()
	s.engine.Flush()
	if _, err := s.engine.Pass(); err != nil {
		return View{}, err
	}
	if _, ok := s.tiler.Recompute(); ok {
		if _, err := s.engine.Pass(); err != nil {
			return View{}, err
		}
	}
	return s.View(), nil
}

// View returns the current snapshot without waiting for pending work.
func (s *Session) View() View {
	return View{
		ID:        s.ID,
		CreatedAt: s.CreatedAt,
		State:     s.store.State(),
		Output:    s.store.Output(),
		Grid:      s.tiler.Last(),
		Tiles:     s.tiler.Tiles(),
		Passes:    s.engine.Passes(),
	}
}

// LastUsed returns when the session was last touched.
func (s *Session) LastUsed() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastUsed
}

func (s *Session) touch() {
	now := s.clock.Now()
	s.mu.Lock()
	s.lastUsed = now
	s.mu.Unlock()
}

// Close stops the engine and the tiler. It is safe to call more than once.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()

	s.detach()
	s.engine.Stop()
	s.tiler.Close()
	s.logger.Debug("session closed")
}
