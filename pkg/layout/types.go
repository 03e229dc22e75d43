package layout

import (
	"fmt"

	"github.com/matzehuels/meetlayout/pkg/errors"
	"github.com/matzehuels/meetlayout/pkg/geom"
)

// DeviceClass selects the branch of every region calculator. A change of
// class rebuilds the input record instead of patching it.
type DeviceClass int

const (
	Desktop DeviceClass = iota
	Mobile
	TabletPortrait
	TabletLandscape
	Tablet
)

var deviceNames = [...]string{
	Desktop:         "desktop",
	Mobile:          "mobile",
	TabletPortrait:  "tablet-portrait",
	TabletLandscape: "tablet-landscape",
	Tablet:          "tablet",
}

// DeviceClasses lists every class in declaration order.
func DeviceClasses() []DeviceClass {
	return []DeviceClass{Desktop, Mobile, TabletPortrait, TabletLandscape, Tablet}
}

func (d DeviceClass) String() string {
	if d < 0 || int(d) >= len(deviceNames) {
		return fmt.Sprintf("DeviceClass(%d)", int(d))
	}
	return deviceNames[d]
}

// ParseDeviceClass converts a class name such as "tablet-portrait".
func ParseDeviceClass(s string) (DeviceClass, error) {
	for i, name := range deviceNames {
		if name == s {
			return DeviceClass(i), nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidInput, "unknown device class %q", s)
}

func (d DeviceClass) MarshalText() ([]byte, error) {
	if d < 0 || int(d) >= len(deviceNames) {
		return nil, errors.New(errors.ErrCodeInvalidState, "unknown device class %d", int(d))
	}
	return []byte(deviceNames[d]), nil
}

func (d *DeviceClass) UnmarshalText(b []byte) error {
	v, err := ParseDeviceClass(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Resizable reports whether sidebars and the presentation can be resized
// by dragging on this class.
func (d DeviceClass) Resizable() bool { return d != Mobile && d != Tablet }

// LoadedMode tells whether a secondary full-height pane shares the window.
type LoadedMode int

const (
	Single LoadedMode = iota
	Both
)

func (m LoadedMode) String() string {
	if m == Both {
		return "both"
	}
	return "single"
}

func (m LoadedMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (m *LoadedMode) UnmarshalText(b []byte) error {
	switch string(b) {
	case "", "single":
		*m = Single
	case "both":
		*m = Both
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown loaded mode %q", b)
	}
	return nil
}

// Panel identifies what a sidebar shows.
type Panel string

const (
	PanelNone          Panel = "none"
	PanelUserList      Panel = "userlist"
	PanelChat          Panel = "chat"
	PanelPoll          Panel = "poll"
	PanelCaptions      Panel = "captions"
	PanelSharedNotes   Panel = "shared-notes"
	PanelWaitingUsers  Panel = "waiting-users"
	PanelBreakoutRooms Panel = "breakout-rooms"
)

// Selected reports whether p names a real panel. The empty value counts as
// none.
func (p Panel) Selected() bool { return p != "" && p != PanelNone }

// Element names the region shown fullscreen.
type Element string

const (
	ElementNone          Element = ""
	ElementPresentation  Element = "Presentation"
	ElementScreenshare   Element = "Screenshare"
	ElementExternalVideo Element = "ExternalVideo"
	ElementWebcams       Element = "Webcams"
)

// GroupWebcams is the fullscreen group that expands the camera dock.
const GroupWebcams = "webcams"

// Fullscreen is the current fullscreen target.
type Fullscreen struct {
	Element Element `json:"element" toml:"element" yaml:"element"`
	Group   string  `json:"group" toml:"group" yaml:"group"`
}

// NavbarInput carries the navigation bar inputs.
type NavbarInput struct {
	HasNavBar bool `json:"hasNavBar" toml:"has_nav_bar" yaml:"hasNavBar"`
}

// ActionBarInput carries the action bar inputs.
type ActionBarInput struct {
	HasActionBar bool `json:"hasActionBar" toml:"has_action_bar" yaml:"hasActionBar"`
}

// BannerInput carries the banner bar inputs.
type BannerInput struct {
	HasBanner bool `json:"hasBanner" toml:"has_banner" yaml:"hasBanner"`
}

// NotificationsInput carries the notification bar inputs.
type NotificationsInput struct {
	HasNotification bool `json:"hasNotification" toml:"has_notification" yaml:"hasNotification"`
}

// SidebarInput carries the inputs of a sidebar. Zero width or height means
// the user has not chosen one.
type SidebarInput struct {
	IsOpen bool    `json:"isOpen" toml:"is_open" yaml:"isOpen"`
	Width  float64 `json:"width" toml:"width" yaml:"width"`
	Height float64 `json:"height" toml:"height" yaml:"height"`
	Panel  Panel   `json:"panel" toml:"panel" yaml:"panel"`
}

// ResizerInput carries the state of the horizontal content resizer.
type ResizerInput struct {
	IsOpen bool `json:"isOpen" toml:"is_open" yaml:"isOpen"`
}

// Slide is the slide currently shown by the presentation.
type Slide struct {
	Num  int       `json:"num" toml:"num" yaml:"num"`
	Size geom.Size `json:"size" toml:"size" yaml:"size"`
}

// PresentationInput carries the presentation inputs.
type PresentationInput struct {
	IsOpen       bool  `json:"isOpen" toml:"is_open" yaml:"isOpen"`
	SlidesLength int   `json:"slidesLength" toml:"slides_length" yaml:"slidesLength"`
	CurrentSlide Slide `json:"currentSlide" toml:"current_slide" yaml:"currentSlide"`
}

// CameraDockInput carries the camera dock inputs. OptimalGrid is written
// back by the tiler.
type CameraDockInput struct {
	NumCameras  int       `json:"numCameras" toml:"num_cameras" yaml:"numCameras"`
	OptimalGrid geom.Size `json:"optimalGrid" toml:"optimal_grid" yaml:"optimalGrid"`
}

// Input holds the per-region inputs.
type Input struct {
	Navbar            NavbarInput        `json:"navBar" toml:"nav_bar" yaml:"navBar"`
	ActionBar         ActionBarInput     `json:"actionBar" toml:"action_bar" yaml:"actionBar"`
	Banner            BannerInput        `json:"bannerBar" toml:"banner_bar" yaml:"bannerBar"`
	Notifications     NotificationsInput `json:"notificationsBar" toml:"notifications_bar" yaml:"notificationsBar"`
	SidebarNavigation SidebarInput       `json:"sidebarNavigation" toml:"sidebar_navigation" yaml:"sidebarNavigation"`
	SidebarContent    SidebarInput       `json:"sidebarContent" toml:"sidebar_content" yaml:"sidebarContent"`
	ContentResizer    ResizerInput       `json:"sidebarContentHorizontalResizer" toml:"sidebar_content_horizontal_resizer" yaml:"sidebarContentHorizontalResizer"`
	Presentation      PresentationInput  `json:"presentation" toml:"presentation" yaml:"presentation"`
	CameraDock        CameraDockInput    `json:"cameraDock" toml:"camera_dock" yaml:"cameraDock"`
	CurrentPanelType  Panel              `json:"currentPanelType" toml:"current_panel_type" yaml:"currentPanelType"`
}

// State is the complete declarative description of the layout intent.
// It is a comparable value; two states are equal exactly when no region
// calculator could tell them apart.
type State struct {
	DeviceClass DeviceClass `json:"deviceClass" toml:"device_class" yaml:"deviceClass"`
	Window      geom.Size   `json:"window" toml:"window" yaml:"window"`
	LoadedMode  LoadedMode  `json:"loadedMode" toml:"loaded_mode" yaml:"loadedMode"`
	FontSize    float64     `json:"fontSize" toml:"font_size" yaml:"fontSize"`
	Fullscreen  Fullscreen  `json:"fullscreen" toml:"fullscreen" yaml:"fullscreen"`
	Input       Input       `json:"input" toml:"input" yaml:"input"`
}

// Main returns the space available to the layout: the window, halved in
// both dimensions when a second pane is loaded.
func (s State) Main() geom.Size {
	if s.LoadedMode == Both {
		return s.Window.Half()
	}
	return s.Window
}

// Measured reports whether the window size is known.
func (s State) Measured() bool { return !s.Window.Empty() }

// Validate reports the first precondition violation in s.
func (s State) Validate() error {
	code := errors.ErrCodeInvalidState
	if s.DeviceClass < 0 || int(s.DeviceClass) >= len(deviceNames) {
		return errors.New(code, "unknown device class %d", int(s.DeviceClass))
	}
	if s.LoadedMode != Single && s.LoadedMode != Both {
		return errors.New(code, "unknown loaded mode %d", int(s.LoadedMode))
	}
	checks := []struct {
		field string
		v     float64
	}{
		{"window.width", s.Window.Width},
		{"window.height", s.Window.Height},
		{"input.sidebarNavigation.width", s.Input.SidebarNavigation.Width},
		{"input.sidebarNavigation.height", s.Input.SidebarNavigation.Height},
		{"input.sidebarContent.width", s.Input.SidebarContent.Width},
		{"input.sidebarContent.height", s.Input.SidebarContent.Height},
		{"input.presentation.currentSlide.size.width", s.Input.Presentation.CurrentSlide.Size.Width},
		{"input.presentation.currentSlide.size.height", s.Input.Presentation.CurrentSlide.Size.Height},
		{"input.cameraDock.optimalGrid.width", s.Input.CameraDock.OptimalGrid.Width},
		{"input.cameraDock.optimalGrid.height", s.Input.CameraDock.OptimalGrid.Height},
	}
	for _, c := range checks {
		if err := errors.ValidateDimension(code, c.field, c.v); err != nil {
			return err
		}
	}
	if err := errors.ValidatePositive(code, "fontSize", s.FontSize); err != nil {
		return err
	}
	if err := errors.ValidateCountAtMost(code, "input.cameraDock.numCameras", s.Input.CameraDock.NumCameras, MaxCameras); err != nil {
		return err
	}
	if err := errors.ValidateCount(code, "input.presentation.slidesLength", s.Input.Presentation.SlidesLength); err != nil {
		return err
	}
	return nil
}
