// SPDX-License-Identifier: MIT
// Package: tspbrute/graphio
//
// format.go — format selection and sentinel errors.

package graphio

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	// ErrUnsupportedFormat signals an unknown format name, file extension or
	// TSPLIB variant.
	ErrUnsupportedFormat = errors.New("graphio: unsupported format")

	// ErrMalformed signals input that cannot be parsed into a matrix.
	ErrMalformed = errors.New("graphio: malformed input")
)

// MaxDimension is the largest vertex count the TSPLIB reader accepts.
// The solvers are O(n³) or worse, so real inputs stay far below it.
const MaxDimension = 1024

// Format identifies a serialization.
type Format int

const (
	// FormatJSON is a bare [[...]] array.
	FormatJSON Format = iota
	// FormatYAML is the vertices/weights document.
	FormatYAML
	// FormatTSPLIB is the TSPLIB explicit full matrix.
	FormatTSPLIB
)

// String implements fmt.Stringer.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatTSPLIB:
		return "tsplib"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat maps a name ("json", "yaml"/"yml", "tsplib"/"tsp") to a Format.
// Matching is case-insensitive.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "tsplib", "tsp":
		return FormatTSPLIB, nil
	default:
		return 0, fmt.Errorf("format %q: %w", name, ErrUnsupportedFormat)
	}
}

// FormatFromPath picks a Format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return 0, fmt.Errorf("path %q has no extension: %w", path, ErrUnsupportedFormat)
	}

	return ParseFormat(ext)
}
