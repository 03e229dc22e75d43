// Package grid computes area-optimal tile grids for the camera dock.
//
// [Pack] searches every column count from 1 to the item count and keeps the
// partition that fills the most pixels with tiles of a fixed aspect ratio.
// [Tiler] drives Pack from the layout: it watches the camera-dock size and
// the stream list, rate-limits recomputation, defers it to the next frame,
// and publishes the chosen grid.
package grid

import (
	"math"

	"github.com/matzehuels/meetlayout/pkg/errors"
)

// DefaultAspectRatio is the width/height ratio of a video tile.
const DefaultAspectRatio = 4.0 / 3.0

// focusExtraCells is the number of virtual cells reserved for the enlarged
// focused tile (it spans 2x2 instead of 1x1).
const focusExtraCells = 3

// Spec describes a tile arrangement. Width and Height are the outer pixel
// footprint including gutters.
type Spec struct {
	Columns    int `json:"columns"`
	Rows       int `json:"rows"`
	Width      int `json:"width"`
	Height     int `json:"height"`
	FilledArea int `json:"filledArea"`
}

// IsZero reports whether the spec fills nothing. Callers treat a zero spec
// as "no valid grid yet".
func (s Spec) IsZero() bool { return s.FilledArea == 0 }

// CellWidth returns the width of one tile.
func (s Spec) CellWidth(gutter int) int {
	if s.Columns == 0 {
		return 0
	}
	return (s.Width - (s.Columns-1)*gutter) / s.Columns
}

// CellHeight returns the height of one tile.
func (s Spec) CellHeight(gutter int) int {
	if s.Rows == 0 {
		return 0
	}
	return (s.Height - (s.Rows-1)*gutter) / s.Rows
}

// Params are the inputs of one optimizer run.
type Params struct {
	CanvasWidth  int     `json:"canvasWidth"`
	CanvasHeight int     `json:"canvasHeight"`
	Gutter       int     `json:"gutter"`
	AspectRatio  float64 `json:"aspectRatio"`
	Items        int     `json:"items"`
	Focused      bool    `json:"focused"`
}

// Validate checks the optimizer preconditions.
func (p Params) Validate() error {
	code := errors.ErrCodeInvalidGrid
	if err := errors.ValidateCount(code, "canvasWidth", p.CanvasWidth); err != nil {
		return err
	}
	if err := errors.ValidateCount(code, "canvasHeight", p.CanvasHeight); err != nil {
		return err
	}
	if err := errors.ValidateCount(code, "gutter", p.Gutter); err != nil {
		return err
	}
	if err := errors.ValidatePositive(code, "aspectRatio", p.AspectRatio); err != nil {
		return err
	}
	if err := errors.ValidateCount(code, "items", p.Items); err != nil {
		return err
	}
	if p.Items == 0 && p.CanvasWidth > 0 && p.CanvasHeight > 0 {
		return errors.New(code, "items must be positive for a %dx%d canvas", p.CanvasWidth, p.CanvasHeight)
	}
	return nil
}

// FocusApplies reports whether the focus constraint is active. Focus needs
// more than two items; with two or fewer the request is ignored.
func (p Params) FocusApplies() bool { return p.Focused && p.Items > 2 }

// EffectiveItems returns the cell count the search places, including the
// virtual cells reserved for a focused tile.
func (p Params) EffectiveItems() int {
	if p.FocusApplies() {
		return p.Items + focusExtraCells
	}
	return p.Items
}

// Pack returns the candidate with the largest filled area. Ties keep the
// smaller column count. When no candidate satisfies the focus constraint the
// zero spec is returned.
func Pack(p Params) (Spec, error) {
	if err := p.Validate(); err != nil {
		return Spec{}, err
	}
	var best Spec
	n := p.EffectiveItems()
	for cols := 1; cols <= n; cols++ {
		c := candidate(p, n, cols)
		if p.FocusApplies() && (c.Rows <= 1 || c.Columns <= 1) {
			continue
		}
		if c.FilledArea > best.FilledArea {
			best = c
		}
	}
	return best, nil
}

// Candidates returns every evaluated partition in column order, including
// the ones the focus constraint would reject.
func Candidates(p Params) ([]Spec, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	n := p.EffectiveItems()
	out := make([]Spec, 0, n)
	for cols := 1; cols <= n; cols++ {
		out = append(out, candidate(p, n, cols))
	}
	return out, nil
}

// candidate sizes cells width-first and falls back to height-first when the
// rows would overflow the usable height.
func candidate(p Params, n, cols int) Spec {
	rows := (n + cols - 1) / cols
	gutterW := (cols - 1) * p.Gutter
	gutterH := (rows - 1) * p.Gutter
	usableW := p.CanvasWidth - gutterW
	usableH := p.CanvasHeight - gutterH

	s := Spec{Columns: cols, Rows: rows}
	if usableW <= 0 || usableH <= 0 {
		return s
	}

	cellW := usableW / cols
	cellH := int(math.Ceil(float64(cellW) / p.AspectRatio))
	if cellH*rows > usableH {
		cellH = usableH / rows
		cellW = int(math.Ceil(float64(cellH) * p.AspectRatio))
	}
	if cellW <= 0 || cellH <= 0 {
		return s
	}

	s.Width = cellW*cols + gutterW
	s.Height = cellH*rows + gutterH
	s.FilledArea = cellW * cellH * n
	return s
}
