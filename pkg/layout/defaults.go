package layout

import (
	"time"

	"github.com/matzehuels/meetlayout/pkg/errors"
)

// BaseFontSize is the root font size the action bar height is designed for.
const BaseFontSize = 16

// MaxCameras is the largest camera count a state may carry.
const MaxCameras = 256

// Defaults holds the constants the region calculators read. A literal
// Defaults leaves zero fields zero; start from DefaultDefaults, or load an
// overlay with pkg/io.
type Defaults struct {
	NavbarHeight   float64 `json:"navBarHeight" toml:"nav_bar_height" yaml:"navBarHeight"`
	NavbarTop      float64 `json:"navBarTop" toml:"nav_bar_top" yaml:"navBarTop"`
	NavbarTabOrder int     `json:"navBarTabOrder" toml:"nav_bar_tab_order" yaml:"navBarTabOrder"`

	ActionBarHeight   float64 `json:"actionBarHeight" toml:"action_bar_height" yaml:"actionBarHeight"`
	ActionBarTabOrder int     `json:"actionBarTabOrder" toml:"action_bar_tab_order" yaml:"actionBarTabOrder"`

	BannerHeight float64 `json:"bannerHeight" toml:"banner_height" yaml:"bannerHeight"`

	SidebarNavMinWidth float64 `json:"sidebarNavMinWidth" toml:"sidebar_nav_min_width" yaml:"sidebarNavMinWidth"`
	SidebarNavMaxWidth float64 `json:"sidebarNavMaxWidth" toml:"sidebar_nav_max_width" yaml:"sidebarNavMaxWidth"`
	SidebarNavTop      float64 `json:"sidebarNavTop" toml:"sidebar_nav_top" yaml:"sidebarNavTop"`
	SidebarNavLeft     float64 `json:"sidebarNavLeft" toml:"sidebar_nav_left" yaml:"sidebarNavLeft"`
	SidebarNavTabOrder int     `json:"sidebarNavTabOrder" toml:"sidebar_nav_tab_order" yaml:"sidebarNavTabOrder"`

	SidebarContentMinWidth  float64 `json:"sidebarContentMinWidth" toml:"sidebar_content_min_width" yaml:"sidebarContentMinWidth"`
	SidebarContentMaxWidth  float64 `json:"sidebarContentMaxWidth" toml:"sidebar_content_max_width" yaml:"sidebarContentMaxWidth"`
	SidebarContentMinHeight float64 `json:"sidebarContentMinHeight" toml:"sidebar_content_min_height" yaml:"sidebarContentMinHeight"`
	SidebarContentTabOrder  int     `json:"sidebarContentTabOrder" toml:"sidebar_content_tab_order" yaml:"sidebarContentTabOrder"`

	CameraDockTabOrder   int `json:"cameraDockTabOrder" toml:"camera_dock_tab_order" yaml:"cameraDockTabOrder"`
	PresentationTabOrder int `json:"presentationTabOrder" toml:"presentation_tab_order" yaml:"presentationTabOrder"`

	GridGutter      int     `json:"gridGutter" toml:"grid_gutter" yaml:"gridGutter"`
	GridAspectRatio float64 `json:"gridAspectRatio" toml:"grid_aspect_ratio" yaml:"gridAspectRatio"`

	LayoutThrottle Duration `json:"layoutThrottle" toml:"layout_throttle" yaml:"layoutThrottle"`
	GridThrottle   Duration `json:"gridThrottle" toml:"grid_throttle" yaml:"gridThrottle"`
	FrameInterval  Duration `json:"frameInterval" toml:"frame_interval" yaml:"frameInterval"`
}

// DefaultDefaults returns the stock constants.
func DefaultDefaults() Defaults {
	return Defaults{
		NavbarHeight:   85,
		NavbarTop:      0,
		NavbarTabOrder: 3,

		ActionBarHeight:   42,
		ActionBarTabOrder: 6,

		BannerHeight: 34,

		SidebarNavMinWidth: 70,
		SidebarNavMaxWidth: 240,
		SidebarNavTop:      0,
		SidebarNavLeft:     0,
		SidebarNavTabOrder: 1,

		SidebarContentMinWidth:  150,
		SidebarContentMaxWidth:  800,
		SidebarContentMinHeight: 200,
		SidebarContentTabOrder:  2,

		CameraDockTabOrder:   4,
		PresentationTabOrder: 5,

		GridGutter:      10,
		GridAspectRatio: 4.0 / 3.0,

		LayoutThrottle: Duration(50 * time.Millisecond),
		GridThrottle:   Duration(66 * time.Millisecond),
		FrameInterval:  Duration(16 * time.Millisecond),
	}
}

// Validate checks that every constant is usable.
func (d Defaults) Validate() error {
	code := errors.ErrCodeInvalidDefaults
	dims := []struct {
		field string
		v     float64
	}{
		{"navBarHeight", d.NavbarHeight},
		{"navBarTop", d.NavbarTop},
		{"actionBarHeight", d.ActionBarHeight},
		{"bannerHeight", d.BannerHeight},
		{"sidebarNavMinWidth", d.SidebarNavMinWidth},
		{"sidebarNavMaxWidth", d.SidebarNavMaxWidth},
		{"sidebarNavTop", d.SidebarNavTop},
		{"sidebarNavLeft", d.SidebarNavLeft},
		{"sidebarContentMinWidth", d.SidebarContentMinWidth},
		{"sidebarContentMaxWidth", d.SidebarContentMaxWidth},
		{"sidebarContentMinHeight", d.SidebarContentMinHeight},
	}
	for _, c := range dims {
		if err := errors.ValidateDimension(code, c.field, c.v); err != nil {
			return err
		}
	}
	if err := errors.ValidateRange(code, "sidebarNavMinWidth", "sidebarNavMaxWidth", d.SidebarNavMinWidth, d.SidebarNavMaxWidth); err != nil {
		return err
	}
	if err := errors.ValidateRange(code, "sidebarContentMinWidth", "sidebarContentMaxWidth", d.SidebarContentMinWidth, d.SidebarContentMaxWidth); err != nil {
		return err
	}
	if err := errors.ValidateCount(code, "gridGutter", d.GridGutter); err != nil {
		return err
	}
	if err := errors.ValidatePositive(code, "gridAspectRatio", d.GridAspectRatio); err != nil {
		return err
	}
	for _, c := range []struct {
		field string
		v     Duration
	}{
		{"layoutThrottle", d.LayoutThrottle},
		{"gridThrottle", d.GridThrottle},
		{"frameInterval", d.FrameInterval},
	} {
		if c.v < 0 {
			return errors.New(code, "%s must not be negative: %s", c.field, c.v)
		}
	}
	return nil
}

// Duration is a time.Duration that reads and writes as a string such as
// "50ms" in every config format.
type Duration time.Duration

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

func (d Duration) String() string { return time.Duration(d).String() }

func (d Duration) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidDefaults, err, "parse duration %q", b)
	}
	*d = Duration(v)
	return nil
}
