// SPDX-License-Identifier: MIT
// Package: tspbrute/graphio
//
// codec.go — Decode/Encode dispatch and the JSON and YAML codecs.

package graphio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/tspbrute/graph"
	"gopkg.in/yaml.v3"
)

// yamlDoc is the YAML document layout.
type yamlDoc struct {
	Vertices int     `yaml:"vertices,omitempty"`
	Weights  [][]int `yaml:"weights,flow"`
}

// Decode reads one graph in format f from r.
func Decode(r io.Reader, f Format) (*graph.Graph, error) {
	var (
		rows [][]int
		err  error
	)
	switch f {
	case FormatJSON:
		rows, err = decodeJSON(r)
	case FormatYAML:
		rows, err = decodeYAML(r)
	case FormatTSPLIB:
		rows, err = decodeTSPLIB(r)
	default:
		return nil, fmt.Errorf("decode %s: %w", f, ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, err
	}

	return graph.New(rows)
}

// Encode writes g to w in format f.
func Encode(w io.Writer, g *graph.Graph, f Format) error {
	if g.Order() == 0 {
		return graph.Invalid("Encode", graph.ErrEmpty, "format %s", f)
	}
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		return enc.Encode(g.Rows())
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(yamlDoc{Vertices: g.Order(), Weights: g.Rows()}); err != nil {
			return err
		}
		return enc.Close()
	case FormatTSPLIB:
		return encodeTSPLIB(w, g, "tspbrute")
	default:
		return fmt.Errorf("encode %s: %w", f, ErrUnsupportedFormat)
	}
}

// ReadFile decodes the graph stored at path, choosing the format by extension.
func ReadFile(path string) (*graph.Graph, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	g, err := Decode(fh, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// WriteFile encodes g to path, choosing the format by extension.
func WriteFile(path string, g *graph.Graph) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = Encode(fh, g, f); err != nil {
		_ = fh.Close()
		return fmt.Errorf("%s: %w", path, err)
	}

	return fh.Close()
}

func decodeJSON(r io.Reader) ([][]int, error) {
	var rows [][]int
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, fmt.Errorf("json: %w: %w", ErrMalformed, err)
	}

	return rows, nil
}

func decodeYAML(r io.Reader) ([][]int, error) {
	var doc yamlDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("yaml: %w: %w", ErrMalformed, err)
	}
	if doc.Vertices != 0 && doc.Vertices != len(doc.Weights) {
		return nil, fmt.Errorf("yaml: vertices=%d but %d weight rows: %w",
			doc.Vertices, len(doc.Weights), ErrMalformed)
	}

	return doc.Weights, nil
}
