// Package layout computes the geometry of the regions of a video-focus
// conferencing screen.
//
// # Overview
//
// A [State] describes what the user wants: device class, window size,
// which sidebars are open, how many cameras are streaming, what is
// fullscreen. From it the region calculators derive an [Output]: one box
// plus behaviour flags (display, resizability, tab order) per region. The
// output is rebuilt from scratch on every pass.
//
// The calculators depend on each other. The media area needs both sidebar
// widths, the camera dock needs the media area, the presentation needs the
// dock and the content sidebar height. [DefaultPlan] records these
// dependencies and runs the calculators in a fixed topological order:
//
//  1. sidebar-nav-width, sidebar-nav-height, sidebar-nav-bounds
//  2. sidebar-content-width, sidebar-content-bounds
//  3. media-area
//  4. navbar, action-bar, camera-dock
//  5. sidebar-content-height
//  6. media
//
// # Driving a session
//
// [Store] owns the state and the last published output. [Engine] observes
// the store, throttles recomputation and publishes each pass as a batch of
// typed [Message] values:
//
//	store := layout.NewStore(layout.NewState(layout.Desktop, geom.Size{Width: 1280, Height: 800}))
//	engine := layout.NewEngine(store, layout.WithLogger(logger))
//	engine.Start(ctx)
//	defer engine.Stop()
//
//	store.Apply(layout.CamerasChanged(3), layout.PanelSelected(layout.PanelChat))
//
// For one-off computations call [Calculate] directly; it is a pure
// function of its inputs.
//
// # Resets
//
// A change of device class does not patch the input record. The engine
// rebuilds it with [Reset], which keeps only the panel selections, the
// slide information and the camera count.
package layout
