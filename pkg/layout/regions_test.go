package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/matzehuels/meetlayout/pkg/geom"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func desktop() State {
	return NewState(Desktop, geom.Size{Width: 1280, Height: 800})
}

func mustCalculate(t *testing.T, s State) Output {
	t.Helper()
	out, err := Calculate(s, DefaultDefaults())
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	return out
}

func TestCalculateDesktopDefaults(t *testing.T) {
	out := mustCalculate(t, desktop())

	tests := []struct {
		name string
		got  geom.Box
		want geom.Box
	}{
		{"sidebar navigation", out.SidebarNavigation.Box, geom.Box{Top: 0, Left: 0, Width: 240, Height: 800, ZIndex: 2}},
		{"sidebar content", out.SidebarContent.Box, geom.Box{Top: 0, Left: 240, Width: 0, Height: 0, ZIndex: 1}},
		{"media area", out.MediaArea, geom.Box{Top: 85, Left: 240, Width: 1040, Height: 673}},
		{"navbar", out.Navbar.Box, geom.Box{Top: 0, Left: 240, Width: 1040, Height: 85, ZIndex: 1}},
		{"action bar", out.ActionBar.Box, geom.Box{Top: 758, Left: 240, Width: 1040, Height: 42, ZIndex: 1}},
		{"camera dock", out.CameraDock.Box, geom.Box{}},
		{"presentation", out.Presentation.Box, geom.Box{Top: 85, Left: 240, Width: 1040, Height: 673, ZIndex: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.got, approx); diff != "" {
				t.Errorf("box mismatch (-want +got):\n%s", diff)
			}
		})
	}

	if !out.SidebarNavigation.Display || out.SidebarContent.Display || out.CameraDock.Display {
		t.Errorf("display flags = nav %v, content %v, dock %v; want true, false, false",
			out.SidebarNavigation.Display, out.SidebarContent.Display, out.CameraDock.Display)
	}
	if want := (Limits{MinWidth: 70, MaxWidth: 240}); out.SidebarNavigation.Limits != want {
		t.Errorf("navigation limits = %+v, want %+v", out.SidebarNavigation.Limits, want)
	}
}

func TestCalculateCamerasWithContent(t *testing.T) {
	s := desktop()
	s.Input.SidebarContent = SidebarInput{IsOpen: true, Panel: PanelChat}
	s.Input.CameraDock.NumCameras = 2
	s.Input.Presentation = PresentationInput{
		IsOpen:       true,
		SlidesLength: 10,
		CurrentSlide: Slide{Num: 1, Size: geom.Size{Width: 1600, Height: 900}},
	}
	out := mustCalculate(t, s)

	want := map[string]geom.Box{
		"content":      {Top: 0, Left: 240, Width: 256, Height: 656, ZIndex: 1},
		"media area":   {Top: 85, Left: 496, Width: 784, Height: 673},
		"camera dock":  {Top: 85, Left: 496, Width: 784, Height: 673, ZIndex: 1},
		"presentation": {Top: 656, Left: 240, Width: 256, Height: 144, ZIndex: 1},
	}
	got := map[string]geom.Box{
		"content":      out.SidebarContent.Box,
		"media area":   out.MediaArea,
		"camera dock":  out.CameraDock.Box,
		"presentation": out.Presentation.Box,
	}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("boxes mismatch (-want +got):\n%s", diff)
	}

	wantLimits := Limits{MinWidth: 150, MaxWidth: 800, MinHeight: 200, MaxHeight: 656}
	if diff := cmp.Diff(wantLimits, out.SidebarContent.Limits, approx); diff != "" {
		t.Errorf("content limits mismatch (-want +got):\n%s", diff)
	}
	if !out.SidebarContent.ResizableEdges.Bottom {
		t.Error("content bottom edge should be resizable with cameras")
	}
	if want := (Limits{MinWidth: 784, MaxWidth: 784, MinHeight: 673, MaxHeight: 673}); out.CameraDock.Limits != want {
		t.Errorf("dock limits = %+v, want %+v", out.CameraDock.Limits, want)
	}
}

func TestContentHeightRules(t *testing.T) {
	withContent := func(f func(*State)) State {
		s := desktop()
		s.Input.SidebarContent = SidebarInput{IsOpen: true, Panel: PanelChat}
		s.Input.Presentation.CurrentSlide.Size = geom.Size{Width: 1600, Height: 900}
		f(&s)
		return s
	}

	tests := []struct {
		name  string
		state State
		want  span
	}{
		{
			name:  "no cameras fills the main height",
			state: withContent(func(s *State) {}),
			want:  span{min: 200, value: 800, max: 800},
		},
		{
			name: "explicit height inside bounds",
			state: withContent(func(s *State) {
				s.Input.CameraDock.NumCameras = 1
				s.Input.SidebarContent.Height = 300
			}),
			want: span{min: 200, value: 300, max: 800},
		},
		{
			name: "explicit height too tall falls back to slide ratio",
			state: withContent(func(s *State) {
				s.Input.CameraDock.NumCameras = 1
				s.Input.SidebarContent.Height = 900
			}),
			want: span{min: 200, value: 656, max: 656},
		},
		{
			name: "unknown slide size scales to zero",
			state: withContent(func(s *State) {
				s.Input.CameraDock.NumCameras = 1
				s.Input.Presentation.CurrentSlide.Size = geom.Size{}
			}),
			want: span{min: 200, value: 800, max: 800},
		},
		{
			name: "banner is subtracted",
			state: withContent(func(s *State) {
				s.Input.Banner.HasBanner = true
			}),
			want: span{min: 200, value: 766, max: 766},
		},
		{
			name: "closed",
			state: withContent(func(s *State) {
				s.Input.SidebarContent.IsOpen = false
			}),
			want: span{},
		},
		{
			name: "mobile",
			state: withContent(func(s *State) {
				s.DeviceClass = Mobile
			}),
			want: span{min: 800, value: 715, max: 800},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPass(tt.state, DefaultDefaults())
			defaultPlan.execute(p)
			if diff := cmp.Diff(tt.want, p.contentHeight, cmp.AllowUnexported(span{}), approx); diff != "" {
				t.Errorf("content height mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSidebarWidthClamping(t *testing.T) {
	tests := []struct {
		name   string
		window float64
		user   float64
		want   float64
	}{
		{"default is 20 percent", 1000, 0, 200},
		{"default clamps to max", 2000, 0, 240},
		{"default clamps to min", 200, 0, 70},
		{"user width kept", 1280, 100, 100},
		{"user width clamps to max", 1280, 500, 240},
		{"user width clamps to min", 1280, 10, 70},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState(Desktop, geom.Size{Width: tt.window, Height: 800})
			s.Input.SidebarNavigation.Width = tt.user
			out := mustCalculate(t, s)
			if got := out.SidebarNavigation.Width; got != tt.want {
				t.Errorf("navigation width = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoadedModeHalvesMain(t *testing.T) {
	for _, class := range DeviceClasses() {
		t.Run(class.String(), func(t *testing.T) {
			s := NewState(class, geom.Size{Width: 1366, Height: 768})

			single := mustCalculate(t, s)
			if single.Main != s.Window {
				t.Errorf("single main = %+v, want %+v", single.Main, s.Window)
			}

			s.LoadedMode = Both
			both := mustCalculate(t, s)
			if want := (geom.Size{Width: 683, Height: 384}); both.Main != want {
				t.Errorf("both main = %+v, want %+v", both.Main, want)
			}
			if class != Mobile && both.Navbar.Top != both.Main.Height {
				t.Errorf("both navbar top = %v, want %v", both.Navbar.Top, both.Main.Height)
			}
			if both.MediaArea.Top != both.Main.Height/2 {
				t.Errorf("both media area top = %v, want %v", both.MediaArea.Top, both.Main.Height/2)
			}
		})
	}
}

func TestPresentationFullscreenCoversMain(t *testing.T) {
	variants := []struct {
		name string
		edit func(*State)
	}{
		{"defaults", func(*State) {}},
		{"both sidebars", func(s *State) {
			s.Input.SidebarNavigation.IsOpen = true
			s.Input.SidebarContent.IsOpen = true
		}},
		{"sidebars closed", func(s *State) {
			s.Input.SidebarNavigation.IsOpen = false
			s.Input.SidebarContent.IsOpen = false
		}},
		{"cameras and banner", func(s *State) {
			s.Input.CameraDock.NumCameras = 4
			s.Input.Banner.HasBanner = true
			s.Input.SidebarContent.IsOpen = true
		}},
		{"both panes loaded", func(s *State) { s.LoadedMode = Both }},
	}

	for _, class := range DeviceClasses() {
		for _, v := range variants {
			for _, el := range []Element{ElementPresentation, ElementScreenshare} {
				s := NewState(class, geom.Size{Width: 1024, Height: 700})
				v.edit(&s)
				s.Fullscreen = Fullscreen{Element: el}
				out := mustCalculate(t, s)

				want := geom.Box{Width: out.Main.Width, Height: out.Main.Height, ZIndex: 99}
				if out.Presentation.Box != want {
					t.Errorf("%s/%s/%s: presentation = %+v, want %+v", class, v.name, el, out.Presentation.Box, want)
				}
			}
		}
	}
}

func TestWebcamsFullscreenExpandsDock(t *testing.T) {
	s := desktop()
	s.LoadedMode = Both
	s.Input.CameraDock.NumCameras = 3
	s.Fullscreen = Fullscreen{Element: ElementWebcams, Group: GroupWebcams}

	out := mustCalculate(t, s)
	want := geom.Box{Width: 1280, Height: 800, ZIndex: 99}
	if out.CameraDock.Box != want {
		t.Errorf("dock = %+v, want %+v", out.CameraDock.Box, want)
	}
}

func TestMobileStacksMediaBelowDock(t *testing.T) {
	s := NewState(Mobile, geom.Size{Width: 400, Height: 800})
	s.Input.CameraDock.NumCameras = 2

	out := mustCalculate(t, s)
	dockHeight := 673 * 0.7
	wantDock := geom.Box{Top: 85, Left: 0, Width: 400, Height: dockHeight, ZIndex: 1}
	if diff := cmp.Diff(wantDock, out.CameraDock.Box, approx); diff != "" {
		t.Errorf("dock mismatch (-want +got):\n%s", diff)
	}
	wantMedia := geom.Box{Top: 85 + dockHeight, Left: 0, Width: 400, Height: 673 - dockHeight, ZIndex: 1}
	if diff := cmp.Diff(wantMedia, out.Presentation.Box, approx); diff != "" {
		t.Errorf("media mismatch (-want +got):\n%s", diff)
	}
	if out.SidebarNavigation.IsResizable || out.Presentation.IsResizable {
		t.Error("nothing is resizable on mobile")
	}
}

func TestMobileSidebarsSpanMain(t *testing.T) {
	s := NewState(Mobile, geom.Size{Width: 400, Height: 800})
	s.Input.SidebarNavigation.IsOpen = true
	s.Input.SidebarContent.IsOpen = true
	s.Input.Banner.HasBanner = true

	out := mustCalculate(t, s)
	wantNav := geom.Box{Top: 119, Left: 0, Width: 400, Height: 681, ZIndex: 10}
	if out.SidebarNavigation.Box != wantNav {
		t.Errorf("navigation = %+v, want %+v", out.SidebarNavigation.Box, wantNav)
	}
	if out.SidebarContent.Left != 0 || out.SidebarContent.ZIndex != 11 {
		t.Errorf("content left/z = %v/%d, want 0/11", out.SidebarContent.Left, out.SidebarContent.ZIndex)
	}
	if want := (Limits{MinWidth: 400, MaxWidth: 400}); out.SidebarNavigation.Limits != want {
		t.Errorf("navigation limits = %+v, want %+v", out.SidebarNavigation.Limits, want)
	}
}

func TestTabletPortraitShowsOneSidebar(t *testing.T) {
	s := NewState(TabletPortrait, geom.Size{Width: 768, Height: 1024})
	out := mustCalculate(t, s)
	if out.MediaArea.Left != out.SidebarNavigation.Width {
		t.Errorf("closed content: media left = %v, want nav width %v", out.MediaArea.Left, out.SidebarNavigation.Width)
	}

	s.Input.SidebarContent = SidebarInput{IsOpen: true, Panel: PanelUserList}
	out = mustCalculate(t, s)
	if out.MediaArea.Left != out.SidebarContent.Width {
		t.Errorf("open content: media left = %v, want content width %v", out.MediaArea.Left, out.SidebarContent.Width)
	}
	if out.SidebarContent.Left != 0 {
		t.Errorf("content left = %v, want 0", out.SidebarContent.Left)
	}
}

func TestBannerOffsetsRegions(t *testing.T) {
	s := desktop()
	s.Input.Banner.HasBanner = true
	s.Input.Notifications.HasNotification = true

	out := mustCalculate(t, s)
	if out.Navbar.Top != 68 {
		t.Errorf("navbar top = %v, want 68", out.Navbar.Top)
	}
	if out.SidebarNavigation.Top != 68 || out.SidebarNavigation.Height != 732 {
		t.Errorf("navigation top/height = %v/%v, want 68/732", out.SidebarNavigation.Top, out.SidebarNavigation.Height)
	}
	if out.MediaArea.Top != 153 || out.MediaArea.Height != 605 {
		t.Errorf("media area top/height = %v/%v, want 153/605", out.MediaArea.Top, out.MediaArea.Height)
	}
}

func TestActionBarScalesWithFontSize(t *testing.T) {
	s := desktop()
	s.FontSize = 24

	out := mustCalculate(t, s)
	if out.ActionBar.Height != 63 || out.ActionBar.Top != 737 {
		t.Errorf("action bar height/top = %v/%v, want 63/737", out.ActionBar.Height, out.ActionBar.Top)
	}
}

func TestResizableFlags(t *testing.T) {
	tests := []struct {
		class DeviceClass
		want  bool
	}{
		{Desktop, true},
		{TabletLandscape, true},
		{TabletPortrait, true},
		{Tablet, false},
		{Mobile, false},
	}
	for _, tt := range tests {
		out := mustCalculate(t, NewState(tt.class, geom.Size{Width: 1024, Height: 768}))
		for _, r := range []RegionOutput{out.SidebarNavigation, out.SidebarContent, out.Presentation} {
			if r.IsResizable != tt.want {
				t.Errorf("%s: IsResizable = %v, want %v", tt.class, r.IsResizable, tt.want)
			}
		}
		if out.CameraDock.IsDraggable || out.CameraDock.ResizableEdges != (Edges{}) {
			t.Errorf("%s: camera dock must be fixed", tt.class)
		}
		if out.Presentation.ResizableEdges != (Edges{Top: true}) {
			t.Errorf("%s: presentation edges = %+v", tt.class, out.Presentation.ResizableEdges)
		}
	}
}

func TestCalculateRejectsInvalidInput(t *testing.T) {
	s := desktop()
	s.FontSize = 0
	if _, err := Calculate(s, DefaultDefaults()); err == nil {
		t.Error("Calculate() with zero font size: error = nil")
	}

	d := DefaultDefaults()
	d.SidebarNavMinWidth = 500
	if _, err := Calculate(desktop(), d); err == nil {
		t.Error("Calculate() with min > max: error = nil")
	}
}
