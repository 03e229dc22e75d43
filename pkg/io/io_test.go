package io

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/meetlayout/pkg/errors"
	"github.com/matzehuels/meetlayout/pkg/geom"
	"github.com/matzehuels/meetlayout/pkg/layout"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"state.json", FormatJSON},
		{"dir/state.TOML", FormatTOML},
		{"state.yaml", FormatYAML},
		{"state.yml", FormatYAML},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if err != nil {
			t.Fatalf("FormatFromPath(%q): %v", tt.path, err)
		}
		if got != tt.want {
			t.Errorf("FormatFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}

	if _, err := FormatFromPath("state.xml"); !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("FormatFromPath(.xml) error = %v, want UNSUPPORTED", err)
	}
}

func TestReadStatePartial(t *testing.T) {
	docs := map[Format]string{
		FormatJSON: `{"deviceClass": "tablet-portrait", "window": {"width": 768, "height": 1024}}`,
		FormatTOML: "device_class = \"tablet-portrait\"\n\n[window]\nwidth = 768\nheight = 1024\n",
		FormatYAML: "deviceClass: tablet-portrait\nwindow:\n  width: 768\n  height: 1024\n",
	}
	want := layout.NewState(layout.Desktop, geom.Size{})
	want.DeviceClass = layout.TabletPortrait
	want.Window = geom.Size{Width: 768, Height: 1024}

	for f, doc := range docs {
		t.Run(string(f), func(t *testing.T) {
			got, err := ReadState(strings.NewReader(doc), f)
			if err != nil {
				t.Fatalf("ReadState: %v", err)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("state mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReadStateErrors(t *testing.T) {
	tests := []struct {
		name string
		f    Format
		doc  string
		code errors.Code
	}{
		{"malformed json", FormatJSON, `{"window":`, errors.ErrCodeInvalidFormat},
		{"unknown json field", FormatJSON, `{"colour": "red"}`, errors.ErrCodeInvalidFormat},
		{"unknown device class", FormatYAML, "deviceClass: watch\n", errors.ErrCodeInvalidFormat},
		{"negative window", FormatTOML, "[window]\nwidth = -1\nheight = 10\n", errors.ErrCodeInvalidState},
		{"unknown format", Format("ini"), "", errors.ErrCodeUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadState(strings.NewReader(tt.doc), tt.f)
			if !errors.Is(err, tt.code) {
				t.Errorf("ReadState() error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestStateFileRoundTrip(t *testing.T) {
	s := layout.NewState(layout.TabletLandscape, geom.Size{Width: 1280, Height: 800})
	for _, change := range []layout.Change{
		layout.CamerasChanged(5),
		layout.PanelSelected(layout.PanelChat),
		layout.SlideChanged(3, layout.Slide{Num: 2, Size: geom.Size{Width: 1600, Height: 900}}),
		layout.FontSizeChanged(20),
	} {
		change(&s)
	}

	for _, ext := range []string{".json", ".toml", ".yaml"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "state"+ext)
			if err := ExportState(s, path); err != nil {
				t.Fatalf("ExportState: %v", err)
			}
			got, err := ImportState(path)
			if err != nil {
				t.Fatalf("ImportState: %v", err)
			}
			if diff := cmp.Diff(s, got); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestImportStateMissing(t *testing.T) {
	_, err := ImportState(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("ImportState() error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestReadDefaultsOverlay(t *testing.T) {
	doc := "nav_bar_height = 64\nlayout_throttle = \"20ms\"\n"
	got, err := ReadDefaults(strings.NewReader(doc), FormatTOML)
	if err != nil {
		t.Fatalf("ReadDefaults: %v", err)
	}
	want := layout.DefaultDefaults()
	want.NavbarHeight = 64
	want.LayoutThrottle = layout.Duration(20 * time.Millisecond)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestReadDefaultsInvalid(t *testing.T) {
	doc := "sidebarNavMinWidth: 300\nsidebarNavMaxWidth: 100\n"
	if _, err := ReadDefaults(strings.NewReader(doc), FormatYAML); !errors.Is(err, errors.ErrCodeInvalidDefaults) {
		t.Errorf("ReadDefaults() error = %v, want INVALID_DEFAULTS", err)
	}
}

func TestDefaultsWriteRead(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteDefaults(layout.DefaultDefaults(), &buf, FormatYAML); err != nil {
		t.Fatalf("WriteDefaults: %v", err)
	}
	if !strings.Contains(buf.String(), "layoutThrottle: 50ms") {
		t.Errorf("durations should be written as strings:\n%s", buf.String())
	}

	path := filepath.Join(t.TempDir(), "defaults.yml")
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		t.Fatal(err)
	}
	got, err := ImportDefaults(path)
	if err != nil {
		t.Fatalf("ImportDefaults: %v", err)
	}
	if diff := cmp.Diff(layout.DefaultDefaults(), got); diff != "" {
		t.Errorf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteOutput(t *testing.T) {
	s := layout.NewState(layout.Desktop, geom.Size{Width: 1280, Height: 720})
	out, err := layout.Calculate(s, layout.DefaultDefaults())
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteOutput(out, &buf); err != nil {
		t.Fatalf("WriteOutput: %v", err)
	}
	for _, key := range []string{`"mediaArea"`, `"cameraDock"`, `"tabOrder"`} {
		if !strings.Contains(buf.String(), key) {
			t.Errorf("output JSON missing %s", key)
		}
	}

	path := filepath.Join(t.TempDir(), "out.json")
	if err := ExportOutput(out, path); err != nil {
		t.Fatalf("ExportOutput: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, buf.Bytes()) {
		t.Error("ExportOutput should write the same bytes as WriteOutput")
	}
}
