package render

import (
	"math"
	"strings"

	"github.com/matzehuels/meetlayout/pkg/geom"
	"github.com/matzehuels/meetlayout/pkg/layout"
)

// Text draws out as a cols x rows character map. Each region is filled
// with its [Glyph]; uncovered cells are '.'.
func Text(out layout.Output, cols, rows int, opts ...RenderOption) string {
	if cols <= 0 || rows <= 0 || out.Main.Empty() {
		return ""
	}
	var r renderer
	for _, opt := range opts {
		opt(&r)
	}

	cells := make([][]byte, rows)
	for i := range cells {
		cells[i] = []byte(strings.Repeat(".", cols))
	}
	sx := float64(cols) / out.Main.Width
	sy := float64(rows) / out.Main.Height

	for _, rg := range paintOrder(out, r.hidden) {
		c0, c1 := span(rg.Left, rg.Right(), sx, cols)
		r0, r1 := span(rg.Top, rg.Bottom(), sy, rows)
		g := Glyph(rg.Name)
		for y := r0; y < r1; y++ {
			for x := c0; x < c1; x++ {
				cells[y][x] = g
			}
		}
	}

	var b strings.Builder
	for _, row := range cells {
		b.Write(row)
		b.WriteByte('\n')
	}
	return b.String()
}

// span maps [lo, hi) in pixels to cell indexes. Any region with positive
// extent covers at least one cell.
func span(lo, hi, scale float64, n int) (int, int) {
	a := geom.Clamp(int(math.Round(lo*scale)), 0, n-1)
	b := geom.Clamp(int(math.Round(hi*scale)), a+1, n)
	return a, b
}
