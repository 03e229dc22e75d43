package render

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/meetlayout/pkg/grid"
	"github.com/matzehuels/meetlayout/pkg/layout"
)

type RenderOption func(*renderer)

type renderer struct {
	labels bool
	hidden bool
	grid   grid.Spec
	gutter int
}

func WithLabels() RenderOption { return func(r *renderer) { r.labels = true } }
func WithHidden() RenderOption { return func(r *renderer) { r.hidden = true } }

// WithGrid tiles the camera dock with the cells of spec, separated by
// gutter pixels and centered like the dock centers its grid.
func WithGrid(spec grid.Spec, gutter int) RenderOption {
	return func(r *renderer) { r.grid, r.gutter = spec, gutter }
}

// OutputSVG draws the regions of out on a canvas of out.Main.
func OutputSVG(out layout.Output, opts ...RenderOption) []byte {
	var r renderer
	for _, opt := range opts {
		opt(&r)
	}

	w, h := out.Main.Width, out.Main.Height
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n", w, h, w, h)
	fmt.Fprintf(&buf, `  <rect class="window" x="0" y="0" width="%.1f" height="%.1f" fill="white" stroke="#868e96"/>`+"\n", w, h)

	for _, rg := range paintOrder(out, r.hidden) {
		dash := ""
		if !visible(rg.NamedRegion) {
			dash = ` stroke-dasharray="6,4" fill-opacity="0.4"`
		}
		fmt.Fprintf(&buf, `  <rect id="region-%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="#495057"%s/>`+"\n",
			rg.Name, rg.Left, rg.Top, rg.Width, rg.Height, fills[rg.Name], dash)
		if rg.Name == layout.RegionCameraDock && !r.grid.IsZero() {
			renderCells(&buf, rg.NamedRegion, r.grid, r.gutter)
		}
		if r.labels {
			fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" font-family="sans-serif" font-size="12" text-anchor="middle" dominant-baseline="middle">%s</text>`+"\n",
				rg.Left+rg.Width/2, rg.Top+rg.Height/2, rg.Name)
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderCells(buf *bytes.Buffer, dock layout.NamedRegion, spec grid.Spec, gutter int) {
	cw, ch := float64(spec.CellWidth(gutter)), float64(spec.CellHeight(gutter))
	if cw <= 0 || ch <= 0 {
		return
	}
	left := dock.Left + (dock.Width-float64(spec.Width))/2
	top := dock.Top + (dock.Height-float64(spec.Height))/2
	g := float64(gutter)
	for row := range spec.Rows {
		for col := range spec.Columns {
			fmt.Fprintf(buf, `  <rect class="cell" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="#7950f2" fill-opacity="0.35"/>`+"\n",
				left+float64(col)*(cw+g), top+float64(row)*(ch+g), cw, ch)
		}
	}
}
