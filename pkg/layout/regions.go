package layout

import "github.com/matzehuels/meetlayout/pkg/geom"

// pass carries one calculation. Each step reads the state, the constants
// and the fields written by the steps it depends on.
type pass struct {
	s State
	d Defaults

	main   geom.Size
	banner float64

	navWidth      span
	navHeight     float64
	navBounds     geom.Box
	contentWidth  span
	contentBounds geom.Box
	contentHeight span
	mediaArea     geom.Box
	navbar        geom.Box
	actionBar     geom.Box
	cameraDock    geom.Box
	dockLimits    Limits
	media         geom.Box
}

// span is a size with its resize limits.
type span struct {
	min, value, max float64
}

func newPass(s State, d Defaults) *pass {
	p := &pass{s: s, d: d, main: s.Main()}
	if s.Input.Banner.HasBanner {
		p.banner += d.BannerHeight
	}
	if s.Input.Notifications.HasNotification {
		p.banner += d.BannerHeight
	}
	return p
}

func (p *pass) mobile() bool { return p.s.DeviceClass == Mobile }

// topOfSidebar is the shared top edge of both sidebars.
func (p *pass) topOfSidebar() float64 {
	if p.mobile() {
		return p.d.NavbarHeight + p.banner
	}
	if p.s.LoadedMode == Both {
		return p.main.Height
	}
	return p.d.SidebarNavTop + p.banner
}

// sidebarWidth applies the shared width rule: closed is zero, Mobile spans
// the main width, otherwise the user width or 20% of main, clamped.
func (p *pass) sidebarWidth(in SidebarInput, lo, hi float64) span {
	if !in.IsOpen {
		return span{}
	}
	if p.mobile() {
		return span{min: p.main.Width, value: p.main.Width, max: p.main.Width}
	}
	w := in.Width
	if w == 0 {
		w = p.main.Width * 0.2
	}
	return span{min: lo, value: geom.Clamp(w, lo, hi), max: hi}
}

func calcNavWidth(p *pass) {
	p.navWidth = p.sidebarWidth(p.s.Input.SidebarNavigation, p.d.SidebarNavMinWidth, p.d.SidebarNavMaxWidth)
}

func calcNavHeight(p *pass) {
	if !p.s.Input.SidebarNavigation.IsOpen {
		p.navHeight = 0
		return
	}
	h := p.main.Height
	if p.mobile() {
		h -= p.d.NavbarHeight
	}
	p.navHeight = h - p.banner
}

func calcNavBounds(p *pass) {
	z := 2
	if p.mobile() {
		z = 10
	}
	p.navBounds = geom.Box{
		Top:    p.topOfSidebar(),
		Left:   p.d.SidebarNavLeft,
		Width:  p.navWidth.value,
		Height: p.navHeight,
		ZIndex: z,
	}
}

func calcContentWidth(p *pass) {
	p.contentWidth = p.sidebarWidth(p.s.Input.SidebarContent, p.d.SidebarContentMinWidth, p.d.SidebarContentMaxWidth)
}

func calcContentBounds(p *pass) {
	left := p.navWidth.value
	if p.mobile() || p.s.DeviceClass == TabletPortrait {
		left = 0
	}
	z := 1
	if p.mobile() {
		z = 11
	}
	p.contentBounds = geom.Box{
		Top:    p.topOfSidebar(),
		Left:   left,
		Width:  p.contentWidth.value,
		ZIndex: z,
	}
}

func calcMediaArea(p *pass) {
	var left float64
	switch p.s.DeviceClass {
	case Mobile:
		left = 0
	case TabletPortrait:
		if p.s.Input.SidebarContent.IsOpen {
			left = p.contentWidth.value
		} else {
			left = p.navWidth.value
		}
	default:
		left = p.navWidth.value + p.contentWidth.value
	}

	top := p.d.NavbarHeight + p.banner
	if p.s.LoadedMode == Both {
		top = p.main.Height / 2
	}
	p.mediaArea = geom.Box{
		Top:    top,
		Left:   left,
		Width:  p.main.Width - left,
		Height: p.main.Height - (p.d.NavbarHeight + p.d.ActionBarHeight + p.banner),
	}
}

func calcNavbar(p *pass) {
	top := p.d.NavbarTop + p.banner
	if p.s.LoadedMode == Both {
		top = p.main.Height
	}
	p.navbar = geom.Box{
		Top:    top,
		Left:   p.mediaArea.Left,
		Width:  p.main.Width - p.mediaArea.Left,
		Height: p.d.NavbarHeight,
		ZIndex: 1,
	}
}

func calcActionBar(p *pass) {
	h := p.d.ActionBarHeight / BaseFontSize * p.s.FontSize
	p.actionBar = geom.Box{
		Top:    p.main.Height - h,
		Left:   p.mediaArea.Left,
		Width:  p.main.Width - p.mediaArea.Left,
		Height: h,
		ZIndex: 1,
	}
}

func calcCameraDock(p *pass) {
	if p.s.Input.CameraDock.NumCameras <= 0 {
		p.cameraDock = geom.Box{}
		p.dockLimits = Limits{}
		return
	}

	dock := geom.Box{
		Top:    p.mediaArea.Top,
		Left:   p.mediaArea.Left,
		Width:  p.mediaArea.Width,
		Height: p.mediaArea.Height,
		ZIndex: 1,
	}
	if p.mobile() {
		dock.Height = p.mediaArea.Height * 0.7
	}
	if p.s.Fullscreen.Group == GroupWebcams {
		dock = geom.Box{
			Width:  p.s.Window.Width,
			Height: p.s.Window.Height,
			ZIndex: 99,
		}
	}
	p.cameraDock = dock
	p.dockLimits = Limits{
		MinWidth:  dock.Width,
		MaxWidth:  dock.Width,
		MinHeight: dock.Height,
		MaxHeight: dock.Height,
	}
}

func calcContentHeight(p *pass) {
	in := p.s.Input.SidebarContent
	if !in.IsOpen {
		p.contentHeight = span{}
		return
	}
	main := p.main.Height
	if p.mobile() {
		p.contentHeight = span{
			min:   main - p.banner,
			value: main - p.d.NavbarHeight - p.banner,
			max:   main - p.banner,
		}
		return
	}

	var h span
	switch {
	case p.s.Input.CameraDock.NumCameras > 0 && in.Height > 0 && in.Height < main:
		h.value = in.Height - p.banner
		h.max = main - p.banner
	case p.s.Input.CameraDock.NumCameras > 0:
		h.value = main - p.slideHeightAt(p.contentWidth.value) - p.banner
		h.max = h.value
	default:
		h.value = main - p.banner
		h.max = h.value
	}
	h.min = p.d.SidebarContentMinHeight
	p.contentHeight = h
}

// slideHeightAt returns the height of the current slide scaled to width.
// An unknown slide size scales to zero.
func (p *pass) slideHeightAt(width float64) float64 {
	size := p.s.Input.Presentation.CurrentSlide.Size
	if size.Width <= 0 {
		return 0
	}
	return size.Height * width / size.Width
}

func calcMedia(p *pass) {
	switch el := p.s.Fullscreen.Element; {
	case el == ElementPresentation || el == ElementScreenshare:
		p.media = geom.Box{Width: p.main.Width, Height: p.main.Height, ZIndex: 99}
	case p.mobile():
		p.media = geom.Box{
			Top:    p.mediaArea.Top + p.cameraDock.Height,
			Left:   p.mediaArea.Left,
			Width:  p.mediaArea.Width,
			Height: p.mediaArea.Height - p.cameraDock.Height,
			ZIndex: 1,
		}
	case p.s.Input.CameraDock.NumCameras > 0:
		p.media = geom.Box{
			Top:    p.contentHeight.value,
			Left:   p.navWidth.value,
			Width:  p.contentWidth.value,
			Height: p.main.Height - p.contentHeight.value,
			ZIndex: 1,
		}
	default:
		p.media = geom.Box{
			Top:    p.d.NavbarHeight + p.banner,
			Left:   p.mediaArea.Left,
			Width:  p.mediaArea.Width,
			Height: p.mediaArea.Height,
			ZIndex: 1,
		}
	}
}

// output assembles the region records once every step has run.
func (p *pass) output() Output {
	in := p.s.Input
	resizable := p.s.DeviceClass.Resizable()

	content := p.contentBounds
	content.Height = p.contentHeight.value

	presentation := RegionOutput{
		Box:            p.media,
		Display:        in.Presentation.IsOpen,
		IsResizable:    resizable,
		ResizableEdges: Edges{Top: true},
		TabOrder:       p.d.PresentationTabOrder,
	}

	return Output{
		Main:      p.main,
		MediaArea: p.mediaArea,
		Navbar: RegionOutput{
			Box:      p.navbar,
			Display:  in.Navbar.HasNavBar,
			TabOrder: p.d.NavbarTabOrder,
		},
		ActionBar: RegionOutput{
			Box:      p.actionBar,
			Display:  in.ActionBar.HasActionBar,
			TabOrder: p.d.ActionBarTabOrder,
		},
		SidebarNavigation: RegionOutput{
			Box:            p.navBounds,
			Display:        in.SidebarNavigation.IsOpen,
			IsResizable:    resizable,
			ResizableEdges: Edges{Right: true},
			TabOrder:       p.d.SidebarNavTabOrder,
			Limits:         Limits{MinWidth: p.navWidth.min, MaxWidth: p.navWidth.max},
			CurrentPanel:   in.SidebarNavigation.Panel,
		},
		SidebarContent: RegionOutput{
			Box:            content,
			Display:        in.SidebarContent.IsOpen,
			IsResizable:    resizable,
			ResizableEdges: Edges{Right: true, Bottom: in.CameraDock.NumCameras > 0},
			TabOrder:       p.d.SidebarContentTabOrder,
			Limits: Limits{
				MinWidth:  p.contentWidth.min,
				MaxWidth:  p.contentWidth.max,
				MinHeight: p.contentHeight.min,
				MaxHeight: p.contentHeight.max,
			},
			CurrentPanel: in.CurrentPanelType,
		},
		CameraDock: RegionOutput{
			Box:      p.cameraDock,
			Display:  in.CameraDock.NumCameras > 0,
			TabOrder: p.d.CameraDockTabOrder,
			Limits:   p.dockLimits,
		},
		Presentation: presentation,
		ScreenShare:  RegionOutput{Box: p.media},
		// External video is never stacked explicitly.
		ExternalVideo: RegionOutput{
			Box: geom.Box{Top: p.media.Top, Left: p.media.Left, Width: p.media.Width, Height: p.media.Height},
		},
	}
}
