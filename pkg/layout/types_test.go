package layout

import (
	"math"
	"testing"

	"github.com/matzehuels/meetlayout/pkg/errors"
	"github.com/matzehuels/meetlayout/pkg/geom"
)

func TestDeviceClassText(t *testing.T) {
	for _, class := range DeviceClasses() {
		b, err := class.MarshalText()
		if err != nil {
			t.Fatalf("%v.MarshalText() error = %v", class, err)
		}
		var got DeviceClass
		if err := got.UnmarshalText(b); err != nil {
			t.Fatalf("UnmarshalText(%q) error = %v", b, err)
		}
		if got != class {
			t.Errorf("UnmarshalText(%q) = %v, want %v", b, got, class)
		}
	}

	if _, err := ParseDeviceClass("phablet"); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("ParseDeviceClass(phablet) error = %v", err)
	}
	if got := DeviceClass(42).String(); got != "DeviceClass(42)" {
		t.Errorf("String() = %q", got)
	}
}

func TestLoadedModeText(t *testing.T) {
	tests := []struct {
		in      string
		want    LoadedMode
		wantErr bool
	}{
		{"single", Single, false},
		{"both", Both, false},
		{"", Single, false},
		{"legacy", Single, true},
	}
	for _, tt := range tests {
		var m LoadedMode
		err := m.UnmarshalText([]byte(tt.in))
		if (err != nil) != tt.wantErr {
			t.Errorf("UnmarshalText(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && m != tt.want {
			t.Errorf("UnmarshalText(%q) = %v, want %v", tt.in, m, tt.want)
		}
	}
}

func TestPanelSelected(t *testing.T) {
	if Panel("").Selected() || PanelNone.Selected() {
		t.Error("empty and none must not count as selected")
	}
	if !PanelChat.Selected() {
		t.Error("chat should count as selected")
	}
}

func TestStateValidate(t *testing.T) {
	valid := NewState(Desktop, geom.Size{Width: 1024, Height: 768})

	tests := []struct {
		name string
		edit func(*State)
	}{
		{"negative window", func(s *State) { s.Window.Width = -1 }},
		{"NaN window", func(s *State) { s.Window.Height = math.NaN() }},
		{"zero font size", func(s *State) { s.FontSize = 0 }},
		{"negative cameras", func(s *State) { s.Input.CameraDock.NumCameras = -2 }},
		{"negative sidebar width", func(s *State) { s.Input.SidebarContent.Width = -10 }},
		{"infinite slide", func(s *State) { s.Input.Presentation.CurrentSlide.Size.Width = math.Inf(1) }},
		{"unknown device", func(s *State) { s.DeviceClass = 9 }},
		{"unknown loaded mode", func(s *State) { s.LoadedMode = 3 }},
	}

	if err := valid.Validate(); err != nil {
		t.Fatalf("valid state: Validate() = %v", err)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid
			tt.edit(&s)
			if err := s.Validate(); !errors.Is(err, errors.ErrCodeInvalidState) {
				t.Errorf("Validate() = %v, want %s", err, errors.ErrCodeInvalidState)
			}
		})
	}

	unmeasured := NewState(Desktop, geom.Size{})
	if err := unmeasured.Validate(); err != nil {
		t.Errorf("unmeasured window is not an error: %v", err)
	}
	if unmeasured.Measured() {
		t.Error("Measured() = true for a zero window")
	}
}

func TestDefaultsValidate(t *testing.T) {
	if err := DefaultDefaults().Validate(); err != nil {
		t.Fatalf("DefaultDefaults().Validate() = %v", err)
	}

	d := DefaultDefaults()
	d.GridAspectRatio = 0
	if err := d.Validate(); !errors.Is(err, errors.ErrCodeInvalidDefaults) {
		t.Errorf("zero aspect ratio: Validate() = %v", err)
	}

	d = DefaultDefaults()
	d.GridThrottle = -1
	if err := d.Validate(); !errors.Is(err, errors.ErrCodeInvalidDefaults) {
		t.Errorf("negative throttle: Validate() = %v", err)
	}
}

func TestDurationText(t *testing.T) {
	var d Duration
	if err := d.UnmarshalText([]byte("66ms")); err != nil {
		t.Fatalf("UnmarshalText() error = %v", err)
	}
	if d.Std().Milliseconds() != 66 {
		t.Errorf("Std() = %v, want 66ms", d.Std())
	}
	if b, _ := d.MarshalText(); string(b) != "66ms" {
		t.Errorf("MarshalText() = %q, want 66ms", b)
	}
	if err := d.UnmarshalText([]byte("soon")); err == nil {
		t.Error("UnmarshalText(soon) error = nil")
	}
}
