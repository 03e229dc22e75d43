package layout

import "github.com/matzehuels/meetlayout/pkg/geom"

// DefaultFontSize is the root font size of a new session.
const DefaultFontSize = BaseFontSize

// DefaultInput returns the total default input record: bars shown, both
// sidebars closed with no panel chosen, no presentation, no cameras.
func DefaultInput() Input {
	return Input{
		Navbar:            NavbarInput{HasNavBar: true},
		ActionBar:         ActionBarInput{HasActionBar: true},
		SidebarNavigation: SidebarInput{Panel: PanelNone},
		SidebarContent:    SidebarInput{Panel: PanelNone},
		CurrentPanelType:  PanelNone,
	}
}

// Reset rebuilds the input record of s for its device class. Only the panel
// identities, the slides and the camera count survive; everything else
// returns to DefaultInput. A presentation with slides stays open.
func Reset(s State) State {
	if s.DeviceClass == Mobile {
		s.Input = mobileInput(s.Input)
	} else {
		s.Input = largeInput(s.Input, s.DeviceClass)
	}
	return s
}

// NewState returns the state a session starts with on the given device.
func NewState(class DeviceClass, window geom.Size) State {
	return Reset(State{
		DeviceClass: class,
		Window:      window,
		LoadedMode:  Single,
		FontSize:    DefaultFontSize,
		Input:       DefaultInput(),
	})
}

func mobileInput(prev Input) Input {
	in := preserved(prev)
	in.SidebarNavigation.IsOpen = false
	in.SidebarContent.IsOpen = false
	return in
}

func largeInput(prev Input, class DeviceClass) Input {
	in := preserved(prev)
	in.SidebarNavigation.IsOpen = true
	in.SidebarContent.IsOpen = prev.SidebarContent.Panel.Selected() &&
		(class == Desktop || class == TabletLandscape)
	return in
}

// preserved copies the allow-listed fields of prev onto a default record.
func preserved(prev Input) Input {
	in := DefaultInput()
	if prev.SidebarNavigation.Panel != "" {
		in.SidebarNavigation.Panel = prev.SidebarNavigation.Panel
	}
	if prev.SidebarContent.Panel != "" {
		in.SidebarContent.Panel = prev.SidebarContent.Panel
	}
	in.Presentation.IsOpen = prev.Presentation.IsOpen || prev.Presentation.SlidesLength > 0
	in.Presentation.SlidesLength = prev.Presentation.SlidesLength
	in.Presentation.CurrentSlide = prev.Presentation.CurrentSlide
	in.CameraDock.NumCameras = prev.CameraDock.NumCameras
	return in
}
