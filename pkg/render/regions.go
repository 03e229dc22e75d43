package render

import (
	"cmp"
	"slices"

	"github.com/matzehuels/meetlayout/pkg/layout"
)

// region is a named region in paint order.
type region struct {
	layout.NamedRegion
	tab int
}

// paintOrder returns the regions to draw, lowest z-index first.
func paintOrder(out layout.Output, hidden bool) []region {
	var rs []region
	for i, r := range out.Regions() {
		if r.Area() == 0 || (!hidden && !visible(r)) {
			continue
		}
		rs = append(rs, region{NamedRegion: r, tab: i})
	}
	slices.SortStableFunc(rs, func(a, b region) int {
		return cmp.Compare(a.ZIndex, b.ZIndex)
	})
	return rs
}

func visible(r layout.NamedRegion) bool {
	switch r.Name {
	case layout.RegionScreenShare, layout.RegionExternalVideo:
		return false
	}
	return r.Display
}

var glyphs = map[layout.Region]byte{
	layout.RegionNavbar:            'N',
	layout.RegionActionBar:         'A',
	layout.RegionSidebarNavigation: 'S',
	layout.RegionSidebarContent:    'C',
	layout.RegionCameraDock:        'D',
	layout.RegionPresentation:      'P',
	layout.RegionScreenShare:       'X',
	layout.RegionExternalVideo:     'V',
}

var fills = map[layout.Region]string{
	layout.RegionNavbar:            "#dbe4ff",
	layout.RegionActionBar:         "#d3f9d8",
	layout.RegionSidebarNavigation: "#fff3bf",
	layout.RegionSidebarContent:    "#ffe8cc",
	layout.RegionCameraDock:        "#e5dbff",
	layout.RegionPresentation:      "#f1f3f5",
	layout.RegionScreenShare:       "#ffdeeb",
	layout.RegionExternalVideo:     "#c5f6fa",
}

// Glyph returns the character Text uses for a region.
func Glyph(r layout.Region) byte {
	if g, ok := glyphs[r]; ok {
		return g
	}
	return '?'
}
