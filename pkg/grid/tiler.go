package grid

import (
	"context"
	"io"
	"slices"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/meetlayout/pkg/geom"
	"github.com/matzehuels/meetlayout/pkg/layout"
	"github.com/matzehuels/meetlayout/pkg/observability"
	"github.com/matzehuels/meetlayout/pkg/throttle"
)

const (
	// DefaultInterval is the minimum spacing between resize handling.
	DefaultInterval = 66 * time.Millisecond

	// DefaultFrameInterval is the delay until the next frame tick.
	DefaultFrameInterval = 16 * time.Millisecond

	// DefaultGutter is the gap between tiles in px.
	DefaultGutter = 10
)

// Action is something the user can do to a tile.
type Action string

const (
	ActionMirror Action = "mirror"
	ActionFocus  Action = "focus"
)

// Stream is one camera stream shown in the dock.
type Stream struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
	Name   string `json:"name"`
}

// Tile is a stream with its presentation flags.
type Tile struct {
	Stream
	Focused  bool     `json:"focused"`
	Mirrored bool     `json:"mirrored"`
	Actions  []Action `json:"actions"`
}

// DockNotifier is told about every published grid. The draggable dock uses
// it to size itself.
type DockNotifier interface {
	SetOptimalGrid(spec Spec)
}

// DockNotifierFunc adapts a function to DockNotifier.
type DockNotifierFunc func(Spec)

func (f DockNotifierFunc) SetOptimalGrid(spec Spec) { f(spec) }

// FrameScheduler runs a callback at the next rendering opportunity.
type FrameScheduler interface {
	RequestFrame(f func())
}

type clockFrames struct {
	clock    throttle.Clock
	interval time.Duration
}

// NewFrameScheduler returns a scheduler that runs callbacks one frame
// interval after the request.
func NewFrameScheduler(clock throttle.Clock, interval time.Duration) FrameScheduler {
	return clockFrames{clock: clock, interval: interval}
}

func (c clockFrames) RequestFrame(f func()) { c.clock.AfterFunc(c.interval, f) }

// Tiler keeps the camera dock tiled. It watches the dock size published by
// the layout store and its own stream list, and recomputes the grid when
// either changes. Resize handling is throttled, and the computation itself
// is deferred to the next frame; at most one frame request is outstanding.
//
// Each result is dispatched as SetCameraDockOptimalGridSize, handed to the
// DockNotifier, and offered on Specs.
type Tiler struct {
	gutter     int
	aspect     float64
	interval   time.Duration
	frameDelay time.Duration
	clock      throttle.Clock
	frames     FrameScheduler
	dispatcher layout.Dispatcher
	notifier   DockNotifier
	logger     *log.Logger
	throttle   *throttle.Throttler
	specs      chan Spec

	mu       sync.Mutex
	streams  []Stream
	focused  string
	mirrored map[string]bool
	canvas   geom.Size
	ticking  bool
	last     Spec

	packMu sync.Mutex
	closed bool
}

// TilerOption configures a Tiler.
type TilerOption func(*Tiler)

// WithGutter sets the gap between tiles.
func WithGutter(px int) TilerOption {
	return func(t *Tiler) { t.gutter = px }
}

// WithAspectRatio sets the tile width/height ratio.
func WithAspectRatio(ar float64) TilerOption {
	return func(t *Tiler) { t.aspect = ar }
}

// WithInterval sets the resize throttle interval.
func WithInterval(d time.Duration) TilerOption {
	return func(t *Tiler) { t.interval = d }
}

// WithFrameInterval sets the frame delay of the default scheduler.
func WithFrameInterval(d time.Duration) TilerOption {
	return func(t *Tiler) { t.frameDelay = d }
}

// WithClock drives the throttle and the default frame scheduler.
func WithClock(c throttle.Clock) TilerOption {
	return func(t *Tiler) {
		if c != nil {
			t.clock = c
		}
	}
}

// WithFrameScheduler replaces the frame scheduler.
func WithFrameScheduler(f FrameScheduler) TilerOption {
	return func(t *Tiler) { t.frames = f }
}

// WithDispatcher sends results to d, normally the layout store.
func WithDispatcher(d layout.Dispatcher) TilerOption {
	return func(t *Tiler) { t.dispatcher = d }
}

// WithDockNotifier sets the dock side channel.
func WithDockNotifier(n DockNotifier) TilerOption {
	return func(t *Tiler) { t.notifier = n }
}

// WithLogger sets the tiler logger. The default discards.
func WithLogger(l *log.Logger) TilerOption {
	return func(t *Tiler) {
		if l != nil {
			t.logger = l
		}
	}
}

// WithDefaults reads gutter, aspect ratio and timings from layout defaults.
func WithDefaults(d layout.Defaults) TilerOption {
	return func(t *Tiler) {
		t.gutter = d.GridGutter
		t.aspect = d.GridAspectRatio
		t.interval = d.GridThrottle.Std()
		t.frameDelay = d.FrameInterval.Std()
	}
}

// NewTiler returns a tiler with no streams and an unmeasured canvas.
func NewTiler(opts ...TilerOption) *Tiler {
	t := &Tiler{
		gutter:     DefaultGutter,
		aspect:     DefaultAspectRatio,
		interval:   DefaultInterval,
		frameDelay: DefaultFrameInterval,
		clock:      throttle.SystemClock{},
		logger:     log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel}),
		specs:      make(chan Spec, 1),
		mirrored:   make(map[string]bool),
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.frames == nil {
		t.frames = NewFrameScheduler(t.clock, t.frameDelay)
	}
	t.throttle = throttle.New(t.interval, t.requestFrame,
		throttle.WithClock(t.clock), throttle.WithName("grid"))
	return t
}

// Attach subscribes the tiler to the dock output of store and publishes
// results to it. It returns the unsubscribe function.
func (t *Tiler) Attach(store *layout.Store) (detach func()) {
	t.mu.Lock()
	if t.dispatcher == nil {
		t.dispatcher = store
	}
	t.mu.Unlock()

	t.SetCanvas(store.Output().CameraDock.Size())
	return store.SubscribeOutput(t)
}

// OutputChanged implements layout.OutputObserver.
func (t *Tiler) OutputChanged(prev, next layout.Output) {
	if prev.CameraDock.Size() != next.CameraDock.Size() {
		t.SetCanvas(next.CameraDock.Size())
	}
}

// SetCanvas records the dock size and schedules a recompute when it
// changed.
func (t *Tiler) SetCanvas(size geom.Size) {
	t.mu.Lock()
	changed := t.canvas != size
	t.canvas = size
	t.mu.Unlock()

	if changed {
		t.HandleCanvasResize()
	}
}

// Canvas returns the last recorded dock size.
func (t *Tiler) Canvas() geom.Size {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.canvas
}

// SetStreams replaces the stream list. Focus and mirroring of streams that
// disappeared are dropped.
func (t *Tiler) SetStreams(streams []Stream) {
	t.mu.Lock()
	changed := len(streams) != len(t.streams)
	t.streams = slices.Clone(streams)
	ids := make(map[string]bool, len(streams))
	for _, s := range streams {
		ids[s.ID] = true
	}
	if t.focused != "" && !ids[t.focused] {
		t.focused = ""
		changed = true
	}
	for id := range t.mirrored {
		if !ids[id] {
			delete(t.mirrored, id)
		}
	}
	t.mu.Unlock()

	if changed {
		t.HandleCanvasResize()
	}
}

// Streams returns a copy of the stream list.
func (t *Tiler) Streams() []Stream {
	t.mu.Lock()
	defer t.mu.Unlock()
	return slices.Clone(t.streams)
}

// Focus toggles the enlarged tile. Focus is only offered with more than two
// streams; otherwise, or for an unknown id, it does nothing and returns
// false. It reports whether id is focused afterwards.
func (t *Tiler) Focus(id string) bool {
	t.mu.Lock()
	if len(t.streams) <= 2 || !slices.ContainsFunc(t.streams, func(s Stream) bool { return s.ID == id }) {
		t.mu.Unlock()
		return false
	}
	if t.focused == id {
		t.focused = ""
	} else {
		t.focused = id
	}
	focused := t.focused == id
	t.mu.Unlock()

	t.HandleCanvasResize()
	return focused
}

// Mirror toggles horizontal mirroring of a tile and reports the new state.
func (t *Tiler) Mirror(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.mirrored[id] {
		delete(t.mirrored, id)
		return false
	}
	t.mirrored[id] = true
	return true
}

// Tiles returns the streams with their flags and available actions.
func (t *Tiler) Tiles() []Tile {
	t.mu.Lock()
	defer t.mu.Unlock()

	canFocus := len(t.streams) > 2
	tiles := make([]Tile, len(t.streams))
	for i, s := range t.streams {
		actions := []Action{ActionMirror}
		if canFocus {
			actions = append(actions, ActionFocus)
		}
		tiles[i] = Tile{
			Stream:   s,
			Focused:  canFocus && t.focused == s.ID,
			Mirrored: t.mirrored[s.ID],
			Actions:  actions,
		}
	}
	return tiles
}

// Last returns the most recently published grid.
func (t *Tiler) Last() Spec {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.last
}

// Specs delivers published grids. The channel holds only the latest one;
// older results are dropped when the reader falls behind. It is closed by
// Close.
func (t *Tiler) Specs() <-chan Spec { return t.specs }

// HandleCanvasResize asks for a recompute. Calls are throttled and the
// work happens on a later frame, never inline.
func (t *Tiler) HandleCanvasResize() { t.throttle.Notify() }

// Flush runs a pending throttled resize now. The recompute still waits for
// its frame.
func (t *Tiler) Flush() { t.throttle.Flush() }

func (t *Tiler) requestFrame() {
	t.mu.Lock()
	if t.ticking {
		t.mu.Unlock()
		return
	}
	t.ticking = true
	t.mu.Unlock()

	t.frames.RequestFrame(func() {
		t.mu.Lock()
		t.ticking = false
		t.mu.Unlock()
		t.Recompute()
	})
}

// Recompute packs the current streams into the current canvas and
// publishes the result. It reports false when the canvas is not measured,
// there are no streams, or the tiler is closed.
func (t *Tiler) Recompute() (Spec, bool) {
	t.packMu.Lock()
	defer t.packMu.Unlock()
	if t.closed {
		return Spec{}, false
	}

	ctx := context.Background()
	t.mu.Lock()
	p := Params{
		CanvasWidth:  int(t.canvas.Width),
		CanvasHeight: int(t.canvas.Height),
		Gutter:       t.gutter,
		AspectRatio:  t.aspect,
		Items:        len(t.streams),
		Focused:      t.focused != "",
	}
	t.mu.Unlock()

	if p.Items < 1 {
		t.logger.Debug("skipping grid: no streams")
		observability.Grid().OnSkip(ctx, "no streams")
		return Spec{}, false
	}
	if p.CanvasWidth <= 0 || p.CanvasHeight <= 0 {
		t.logger.Debug("skipping grid: canvas not measured", "width", p.CanvasWidth, "height", p.CanvasHeight)
		observability.Grid().OnSkip(ctx, "canvas not measured")
		return Spec{}, false
	}

	start := time.Now()
	spec, err := Pack(p)
	observability.Grid().OnPack(ctx, p.Items, spec.Columns, spec.Rows, spec.FilledArea, time.Since(start), err)
	if err != nil {
		t.logger.Error("grid packing failed", "err", err)
		return Spec{}, false
	}
	t.logger.Debug("grid packed", "items", p.Items, "focused", p.FocusApplies(),
		"columns", spec.Columns, "rows", spec.Rows, "width", spec.Width, "height", spec.Height)

	t.mu.Lock()
	t.last = spec
	dispatcher, notifier := t.dispatcher, t.notifier
	t.mu.Unlock()

	if dispatcher != nil {
		dispatcher.Dispatch(layout.SetCameraDockOptimalGridSize{
			Size: geom.Size{Width: float64(spec.Width), Height: float64(spec.Height)},
		})
	}
	if notifier != nil {
		notifier.SetOptimalGrid(spec)
	}
	t.offer(spec)
	return spec, true
}

func (t *Tiler) offer(spec Spec) {
	select {
	case t.specs <- spec:
		return
	default:
	}
	select {
	case <-t.specs:
	default:
	}
	select {
	case t.specs <- spec:
	default:
	}
}

// Close stops resize handling and closes the Specs channel. A frame that
// is already scheduled becomes a no-op.
func (t *Tiler) Close() {
	t.throttle.Stop()
	t.packMu.Lock()
	defer t.packMu.Unlock()
	if !t.closed {
		t.closed = true
		close(t.specs)
	}
}
