package layout

import (
	"testing"

	"github.com/matzehuels/meetlayout/pkg/geom"
)

func TestResetPerDeviceClass(t *testing.T) {
	tests := []struct {
		class       DeviceClass
		panel       Panel
		wantNav     bool
		wantContent bool
	}{
		{Mobile, PanelChat, false, false},
		{Mobile, PanelNone, false, false},
		{Desktop, PanelChat, true, true},
		{Desktop, PanelNone, true, false},
		{TabletLandscape, PanelUserList, true, true},
		{TabletPortrait, PanelUserList, true, false},
		{Tablet, PanelPoll, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.class.String()+"/"+string(tt.panel), func(t *testing.T) {
			s := State{DeviceClass: tt.class, Window: geom.Size{Width: 1024, Height: 768}, FontSize: 16}
			s.Input.SidebarNavigation.IsOpen = !tt.wantNav
			s.Input.SidebarContent = SidebarInput{IsOpen: !tt.wantContent, Panel: tt.panel, Width: 300}

			got := Reset(s).Input
			if got.SidebarNavigation.IsOpen != tt.wantNav {
				t.Errorf("navigation open = %v, want %v", got.SidebarNavigation.IsOpen, tt.wantNav)
			}
			if got.SidebarContent.IsOpen != tt.wantContent {
				t.Errorf("content open = %v, want %v", got.SidebarContent.IsOpen, tt.wantContent)
			}
			if got.SidebarContent.Panel != tt.panel {
				t.Errorf("content panel = %q, want %q", got.SidebarContent.Panel, tt.panel)
			}
			if got.SidebarContent.Width != 0 {
				t.Errorf("content width = %v, want 0 after reset", got.SidebarContent.Width)
			}
		})
	}
}

func TestResetPreservesAllowList(t *testing.T) {
	s := NewState(Desktop, geom.Size{Width: 1280, Height: 800})
	s.Input.SidebarNavigation.Panel = PanelUserList
	s.Input.SidebarContent.Panel = PanelSharedNotes
	s.Input.Presentation = PresentationInput{
		IsOpen:       true,
		SlidesLength: 12,
		CurrentSlide: Slide{Num: 4, Size: geom.Size{Width: 1920, Height: 1080}},
	}
	s.Input.CameraDock = CameraDockInput{NumCameras: 5, OptimalGrid: geom.Size{Width: 600, Height: 400}}
	s.Input.Banner.HasBanner = true
	s.Input.Notifications.HasNotification = true
	s.Input.ContentResizer.IsOpen = true
	s.Input.Navbar.HasNavBar = false
	s.Input.CurrentPanelType = PanelSharedNotes

	s.DeviceClass = Mobile
	got := Reset(s).Input

	want := DefaultInput()
	want.SidebarNavigation.Panel = PanelUserList
	want.SidebarContent.Panel = PanelSharedNotes
	want.Presentation.IsOpen = true
	want.Presentation.SlidesLength = 12
	want.Presentation.CurrentSlide = Slide{Num: 4, Size: geom.Size{Width: 1920, Height: 1080}}
	want.CameraDock.NumCameras = 5

	if got != want {
		t.Errorf("Reset() input =\n%+v\nwant\n%+v", got, want)
	}
}

func TestResetKeepsPresentationShown(t *testing.T) {
	tests := []struct {
		name   string
		change Change
		want   bool
	}{
		{"slides loaded", SlideChanged(5, Slide{Num: 1, Size: geom.Size{Width: 1600, Height: 900}}), true},
		{"no slides", SlideChanged(0, Slide{}), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState(Desktop, geom.Size{Width: 1280, Height: 800})
			tt.change(&s)
			for _, class := range []DeviceClass{TabletLandscape, Mobile, Desktop} {
				s.DeviceClass = class
				s = Reset(s)
				if s.Input.Presentation.IsOpen != tt.want {
					t.Fatalf("after reset to %s: presentation open = %v, want %v", class, s.Input.Presentation.IsOpen, tt.want)
				}
				out, err := Calculate(s, DefaultDefaults())
				if err != nil {
					t.Fatal(err)
				}
				if out.Presentation.Display != tt.want {
					t.Errorf("after reset to %s: presentation display = %v, want %v", class, out.Presentation.Display, tt.want)
				}
			}
		})
	}
}

func TestResetKeepsNonInputFields(t *testing.T) {
	s := NewState(Desktop, geom.Size{Width: 1280, Height: 800})
	s.LoadedMode = Both
	s.FontSize = 20
	s.Fullscreen = Fullscreen{Element: ElementPresentation}

	got := Reset(s)
	if got.LoadedMode != Both || got.FontSize != 20 || got.Fullscreen != s.Fullscreen || got.Window != s.Window {
		t.Errorf("Reset() changed non-input fields: %+v", got)
	}
}

func TestNewStateIsResetAndValid(t *testing.T) {
	for _, class := range DeviceClasses() {
		s := NewState(class, geom.Size{Width: 800, Height: 600})
		if err := s.Validate(); err != nil {
			t.Errorf("%s: Validate() = %v", class, err)
		}
		if Reset(s) != s {
			t.Errorf("%s: NewState is not a fixed point of Reset", class)
		}
	}
}
