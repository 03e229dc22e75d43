// Package io reads and writes layout documents.
//
// # Overview
//
// Three documents cross the process boundary:
//
//   - a [layout.State], the input of a pass (JSON, TOML or YAML)
//   - a [layout.Defaults] constant set (JSON, TOML or YAML)
//   - a [layout.Output], the result of a pass (JSON only)
//
// The format of a file is chosen by its extension: .json, .toml, .yaml or
// .yml. Readers that take an io.Reader need the [Format] spelled out.
//
// # Partial documents
//
// Readers start from a complete value and overlay what the document
// contains. A state file may name only the device class and window:
//
//	device_class = "tablet-portrait"
//
//	[window]
//	width = 768
//	height = 1024
//
// Every other field keeps the value of [layout.NewState] for a desktop
// session. A defaults file overlays [layout.DefaultDefaults] the same way,
// so it only needs the constants it changes.
//
// # Errors
//
// Decoding problems are reported as INVALID_FORMAT, a decoded value that
// fails validation keeps the validator's code, and a missing file is
// FILE_NOT_FOUND. See pkg/errors.
package io
