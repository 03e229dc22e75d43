// Package pkg provides the core libraries of meetlayout, the screen layout
// engine of a video conferencing client.
//
// # Overview
//
// Given the browser window, the device class and what the user has open
// (sidebars, presentation, cameras), meetlayout computes the box of every
// screen region and packs camera tiles into the camera dock. The pkg
// directory is organized into three areas:
//
//  1. Domain logic: [layout], [grid], [geom]
//  2. Live sessions: [throttle], [session]
//  3. Input and output: [io], [render]
//
// Shared support lives in [errors], [observability] and [buildinfo].
//
// # Architecture
//
// The data flow of one session:
//
//	state change (resize, toggle, camera joins)
//	         ↓
//	    [layout] Store (holds State, notifies observers)
//	         ↓
//	    [layout] Engine (throttled, runs the calculator Plan)
//	         ↓
//	    Output (one box per region) ──→ Dispatcher
//	         ↓
//	    [grid] Tiler (throttled, packs the dock)
//	         ↓
//	    optimal grid size written back into State
//
// # Quick Start
//
// Compute one layout without a session:
//
//	s := layout.NewState(layout.Desktop, geom.Size{Width: 1280, Height: 800})
//	s.Input.CameraDock.NumCameras = 4
//	out, err := layout.Calculate(s, layout.DefaultDefaults())
//
// Pack tiles into the resulting dock:
//
//	spec, err := grid.Pack(grid.Params{
//	    CanvasWidth:  int(out.CameraDock.Width),
//	    CanvasHeight: int(out.CameraDock.Height),
//	    Gutter:       10,
//	    AspectRatio:  4.0 / 3,
//	    Items:        4,
//	})
//
// Run a live session that does both whenever the state changes:
//
//	sess, err := session.New(ctx, layout.Desktop, geom.Size{Width: 1280, Height: 800})
//	defer sess.Close()
//	_ = sess.SetCameras(4)
//	view, err := sess.Settle()
//
// # Main Packages
//
// [layout] - Layout state, change functions, the ten region calculators, the
// dependency plan that orders them, the throttled engine and the dispatch
// messages it emits.
//
// [grid] - Grid packing: the column search over a canvas, focus handling, and
// the Tiler that keeps a camera grid in line with the dock.
//
// [geom] - Boxes, sizes and clamping.
//
// [throttle] - Leading and trailing edge throttling on a swappable clock.
//
// [session] - A store, engine and tiler wired together, plus a registry that
// expires idle sessions.
//
// [io] - State and defaults files in JSON, TOML and YAML; output as JSON.
//
// [render] - Character maps and SVG drawings of an output; Graphviz
// rendering of the calculator plan.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/layout/...             # Specific package
//	go test -run Example                 # Examples only
//
// [layout]: https://pkg.go.dev/github.com/matzehuels/meetlayout/pkg/layout
// [grid]: https://pkg.go.dev/github.com/matzehuels/meetlayout/pkg/grid
// [geom]: https://pkg.go.dev/github.com/matzehuels/meetlayout/pkg/geom
// [throttle]: https://pkg.go.dev/github.com/matzehuels/meetlayout/pkg/throttle
// [session]: https://pkg.go.dev/github.com/matzehuels/meetlayout/pkg/session
// [io]: https://pkg.go.dev/github.com/matzehuels/meetlayout/pkg/io
// [render]: https://pkg.go.dev/github.com/matzehuels/meetlayout/pkg/render
// [errors]: https://pkg.go.dev/github.com/matzehuels/meetlayout/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/meetlayout/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/meetlayout/pkg/buildinfo
package pkg
