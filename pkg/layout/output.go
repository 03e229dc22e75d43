package layout

import "github.com/matzehuels/meetlayout/pkg/geom"

// Edges flags which borders of a region can be dragged.
type Edges struct {
	Top    bool `json:"top"`
	Right  bool `json:"right"`
	Bottom bool `json:"bottom"`
	Left   bool `json:"left"`
}

// Limits bounds the size a region may be resized to. Zero limits mean the
// region is closed.
type Limits struct {
	MinWidth  float64 `json:"minWidth"`
	MaxWidth  float64 `json:"maxWidth"`
	MinHeight float64 `json:"minHeight"`
	MaxHeight float64 `json:"maxHeight"`
}

// RegionOutput is the computed geometry and behaviour of one region.
type RegionOutput struct {
	geom.Box
	Display        bool   `json:"display"`
	IsResizable    bool   `json:"isResizable"`
	ResizableEdges Edges  `json:"resizableEdges"`
	TabOrder       int    `json:"tabOrder"`
	Limits         Limits `json:"limits"`
	IsDraggable    bool   `json:"isDraggable"`
	CurrentPanel   Panel  `json:"currentPanelType,omitempty"`
}

// Output is one complete pass. Every field is recomputed from the state on
// each pass.
type Output struct {
	Main              geom.Size    `json:"main"`
	MediaArea         geom.Box     `json:"mediaArea"`
	Navbar            RegionOutput `json:"navBar"`
	ActionBar         RegionOutput `json:"actionBar"`
	SidebarNavigation RegionOutput `json:"sidebarNavigation"`
	SidebarContent    RegionOutput `json:"sidebarContent"`
	CameraDock        RegionOutput `json:"cameraDock"`
	Presentation      RegionOutput `json:"presentation"`
	ScreenShare       RegionOutput `json:"screenShare"`
	ExternalVideo     RegionOutput `json:"externalVideo"`
}

// Region names an entry of Output.
type Region string

const (
	RegionNavbar            Region = "navbar"
	RegionActionBar         Region = "action-bar"
	RegionSidebarNavigation Region = "sidebar-navigation"
	RegionSidebarContent    Region = "sidebar-content"
	RegionCameraDock        Region = "camera-dock"
	RegionPresentation      Region = "presentation"
	RegionScreenShare       Region = "screenshare"
	RegionExternalVideo     Region = "external-video"
)

// NamedRegion pairs a region output with its name.
type NamedRegion struct {
	Name Region
	RegionOutput
}

// Regions returns the region outputs in tab order.
func (o Output) Regions() []NamedRegion {
	return []NamedRegion{
		{RegionSidebarNavigation, o.SidebarNavigation},
		{RegionSidebarContent, o.SidebarContent},
		{RegionNavbar, o.Navbar},
		{RegionCameraDock, o.CameraDock},
		{RegionPresentation, o.Presentation},
		{RegionActionBar, o.ActionBar},
		{RegionScreenShare, o.ScreenShare},
		{RegionExternalVideo, o.ExternalVideo},
	}
}
