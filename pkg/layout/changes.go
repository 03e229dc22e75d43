package layout

import "github.com/matzehuels/meetlayout/pkg/geom"

// Change is a discrete edit of the layout state.
type Change func(*State)

// WindowResized records a new window size.
func WindowResized(width, height float64) Change {
	return func(s *State) { s.Window = geom.Size{Width: width, Height: height} }
}

// DeviceClassChanged switches the device class. The engine resets the
// input record on its next pass.
func DeviceClassChanged(class DeviceClass) Change {
	return func(s *State) { s.DeviceClass = class }
}

// SidebarNavigationToggled opens or closes the navigation sidebar.
func SidebarNavigationToggled(open bool) Change {
	return func(s *State) { s.Input.SidebarNavigation.IsOpen = open }
}

// SidebarContentToggled opens or closes the content sidebar.
func SidebarContentToggled(open bool) Change {
	return func(s *State) { s.Input.SidebarContent.IsOpen = open }
}

// SidebarNavigationResized stores a user-chosen navigation width. Zero
// restores the default width.
func SidebarNavigationResized(width float64) Change {
	return func(s *State) { s.Input.SidebarNavigation.Width = width }
}

// SidebarContentResized stores a user-chosen content size. Zero restores
// the default for that dimension.
func SidebarContentResized(width, height float64) Change {
	return func(s *State) {
		s.Input.SidebarContent.Width = width
		s.Input.SidebarContent.Height = height
	}
}

// FullscreenChanged sets the fullscreen target. Pass ElementNone and an
// empty group to leave fullscreen.
func FullscreenChanged(element Element, group string) Change {
	return func(s *State) { s.Fullscreen = Fullscreen{Element: element, Group: group} }
}

// FontSizeChanged sets the root font size in px.
func FontSizeChanged(px float64) Change {
	return func(s *State) { s.FontSize = px }
}

// CamerasChanged sets the number of camera streams.
func CamerasChanged(n int) Change {
	return func(s *State) { s.Input.CameraDock.NumCameras = n }
}

// LoadedModeChanged switches between one and two loaded panes.
func LoadedModeChanged(m LoadedMode) Change {
	return func(s *State) { s.LoadedMode = m }
}

// BannerChanged shows or hides the banner and notification bars.
func BannerChanged(banner, notification bool) Change {
	return func(s *State) {
		s.Input.Banner.HasBanner = banner
		s.Input.Notifications.HasNotification = notification
	}
}

// SlideChanged records the presentation's slide count and current slide.
// A zero count closes the presentation.
func SlideChanged(slides int, current Slide) Change {
	return func(s *State) {
		s.Input.Presentation.SlidesLength = slides
		s.Input.Presentation.CurrentSlide = current
		s.Input.Presentation.IsOpen = slides > 0
	}
}

// PanelSelected shows panel in the content sidebar, opening it, or closes
// the sidebar when panel is PanelNone.
func PanelSelected(panel Panel) Change {
	return func(s *State) {
		if !panel.Selected() {
			panel = PanelNone
		}
		s.Input.SidebarContent.Panel = panel
		s.Input.SidebarContent.IsOpen = panel.Selected()
		s.Input.CurrentPanelType = panel
	}
}

// Replace swaps in a complete state.
func Replace(next State) Change {
	return func(s *State) { *s = next }
}
