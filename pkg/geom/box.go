// Package geom provides the geometry primitives shared by the layout engine
// and the grid packer.
//
// All coordinates are CSS pixels measured from the top-left corner of the
// window, with Top growing downward.
package geom

import "cmp"

// Size is a width/height pair.
type Size struct {
	Width  float64 `json:"width" toml:"width" yaml:"width"`
	Height float64 `json:"height" toml:"height" yaml:"height"`
}

// Half returns the size with both dimensions halved.
func (s Size) Half() Size { return Size{Width: s.Width / 2, Height: s.Height / 2} }

// Empty reports whether either dimension is non-positive.
func (s Size) Empty() bool { return s.Width <= 0 || s.Height <= 0 }

// Box is a positioned rectangle with a stacking order.
type Box struct {
	Top    float64 `json:"top"`
	Left   float64 `json:"left"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	ZIndex int     `json:"zIndex"`
}

// Right returns the x coordinate of the right edge.
func (b Box) Right() float64 { return b.Left + b.Width }

// Bottom returns the y coordinate of the bottom edge.
func (b Box) Bottom() float64 { return b.Top + b.Height }

// Size returns the box dimensions.
func (b Box) Size() Size { return Size{Width: b.Width, Height: b.Height} }

// Area returns Width*Height, or 0 for degenerate boxes.
func (b Box) Area() float64 {
	if b.Width <= 0 || b.Height <= 0 {
		return 0
	}
	return b.Width * b.Height
}

// Overlaps reports whether two boxes share a region of positive area.
// Touching edges do not count as overlap.
func (b Box) Overlaps(o Box) bool {
	if b.Area() == 0 || o.Area() == 0 {
		return false
	}
	return b.Left < o.Right() && o.Left < b.Right() &&
		b.Top < o.Bottom() && o.Top < b.Bottom()
}

// Contains reports whether o lies entirely inside b.
func (b Box) Contains(o Box) bool {
	return o.Left >= b.Left && o.Top >= b.Top &&
		o.Right() <= b.Right() && o.Bottom() <= b.Bottom()
}

// Clamp limits v to [lo, hi]. The lower bound is applied first, so when
// lo > hi the result is hi.
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	return min(max(v, lo), hi)
}
