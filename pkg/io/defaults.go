package io

import (
	"io"

	"github.com/matzehuels/meetlayout/pkg/layout"
)

// ReadDefaults decodes a defaults document over the stock constants and
// validates the result.
func ReadDefaults(r io.Reader, f Format) (layout.Defaults, error) {
	d := layout.DefaultDefaults()
	if err := decode(r, f, &d); err != nil {
		return layout.Defaults{}, err
	}
	if err := d.Validate(); err != nil {
		return layout.Defaults{}, err
	}
	return d, nil
}

// ImportDefaults reads the defaults file at path.
func ImportDefaults(path string) (layout.Defaults, error) {
	d := layout.DefaultDefaults()
	if err := readFile(path, &d); err != nil {
		return layout.Defaults{}, err
	}
	if err := d.Validate(); err != nil {
		return layout.Defaults{}, err
	}
	return d, nil
}

// WriteDefaults encodes d to w.
func WriteDefaults(d layout.Defaults, w io.Writer, f Format) error {
	return encode(w, f, d)
}
