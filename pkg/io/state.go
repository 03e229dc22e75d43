package io

import (
	"io"

	"github.com/matzehuels/meetlayout/pkg/geom"
	"github.com/matzehuels/meetlayout/pkg/layout"
)

func baseState() layout.State {
	return layout.NewState(layout.Desktop, geom.Size{})
}

// ReadState decodes a state document and validates it. Fields the
// document leaves out keep their session-start values.
func ReadState(r io.Reader, f Format) (layout.State, error) {
	s := baseState()
	if err := decode(r, f, &s); err != nil {
		return layout.State{}, err
	}
	if err := s.Validate(); err != nil {
		return layout.State{}, err
	}
	return s, nil
}

// ImportState reads the state file at path.
func ImportState(path string) (layout.State, error) {
	s := baseState()
	if err := readFile(path, &s); err != nil {
		return layout.State{}, err
	}
	if err := s.Validate(); err != nil {
		return layout.State{}, err
	}
	return s, nil
}

// WriteState encodes s to w.
func WriteState(s layout.State, w io.Writer, f Format) error {
	return encode(w, f, s)
}

// ExportState writes s to path in the format of its extension.
func ExportState(s layout.State, path string) error {
	return writeFile(path, s)
}
