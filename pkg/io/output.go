package io

import (
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/meetlayout/pkg/layout"
)

// WriteOutput encodes a pass result as indented JSON.
func WriteOutput(out layout.Output, w io.Writer) error {
	return encode(w, FormatJSON, out)
}

// ExportOutput writes a pass result to a JSON file at path.
func ExportOutput(out layout.Output, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteOutput(out, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
