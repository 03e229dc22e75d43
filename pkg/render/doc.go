// Package render draws layout results.
//
// # Overview
//
// Three renderers are provided:
//
//   - [OutputSVG] draws the regions of a pass as stacked rectangles, with
//     the camera grid optionally tiled into the dock
//   - [Text] draws the same regions as a character map for terminals
//   - [PlanSVG] draws the step plan of the engine through Graphviz
//
// Regions are painted in z-index order, ties broken by tab order, so the
// picture matches what a browser would stack on top.
//
//	out, _ := layout.Calculate(state, layout.DefaultDefaults())
//	svg := render.OutputSVG(out, render.WithLabels())
//	fmt.Println(render.Text(out, 80, 24))
//
// Regions whose display flag is off are skipped unless [WithHidden] is set;
// screen share and external video carry no flag and are treated as hidden.
package render
