// SPDX-License-Identifier: MIT
// Package: tspbrute/graphio
//
// tsplib.go — TSPLIB EXPLICIT / FULL_MATRIX reader and writer.
//
// Accepted layout (keywords are case-sensitive, "KEY: value" or "KEY : value"):
//
//	NAME: tri
//	TYPE: TSP
//	DIMENSION: 3
//	EDGE_WEIGHT_TYPE: EXPLICIT
//	EDGE_WEIGHT_FORMAT: FULL_MATRIX
//	EDGE_WEIGHT_SECTION
//	0 1 2
//	1 0 3
//	2 3 0
//	EOF
//
// Numbers in the section may wrap across lines arbitrarily; they are consumed
// row-major until DIMENSION² values have been read. Unknown header keys are
// ignored. A missing EOF line is tolerated. DIMENSION is capped at
// MaxDimension because the matrix is allocated before the section is read.

package graphio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/tspbrute/graph"
)

const (
	tspKeyDimension  = "DIMENSION"
	tspKeyWeightType = "EDGE_WEIGHT_TYPE"
	tspKeyFormat     = "EDGE_WEIGHT_FORMAT"
	tspSection       = "EDGE_WEIGHT_SECTION"
	tspEOF           = "EOF"
	tspExplicit      = "EXPLICIT"
	tspFullMatrix    = "FULL_MATRIX"
)

func decodeTSPLIB(r io.Reader) ([][]int, error) {
	var (
		sc        = bufio.NewScanner(r)
		n         = -1
		inSection bool
		rows      [][]int
		row, col  int
		line      int
	)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		if text == tspEOF {
			break
		}

		if !inSection {
			if text == tspSection {
				if n < 0 {
					return nil, fmt.Errorf("tsplib line %d: %s before %s: %w", line, tspSection, tspKeyDimension, ErrMalformed)
				}
				inSection = true
				rows = make([][]int, n)
				for i := range rows {
					rows[i] = make([]int, n)
				}
				continue
			}
			key, value, ok := strings.Cut(text, ":")
			if !ok {
				return nil, fmt.Errorf("tsplib line %d: %q: %w", line, text, ErrMalformed)
			}
			key, value = strings.TrimSpace(key), strings.TrimSpace(value)
			switch key {
			case tspKeyDimension:
				d, err := strconv.Atoi(value)
				if err != nil || d < 1 {
					return nil, fmt.Errorf("tsplib line %d: dimension %q: %w", line, value, ErrMalformed)
				}
				if d > MaxDimension {
					return nil, fmt.Errorf("tsplib line %d: dimension %d > max %d: %w", line, d, MaxDimension, ErrMalformed)
				}
				n = d
			case tspKeyWeightType:
				if value != tspExplicit {
					return nil, fmt.Errorf("tsplib: %s %s: %w", key, value, ErrUnsupportedFormat)
				}
			case tspKeyFormat:
				if value != tspFullMatrix {
					return nil, fmt.Errorf("tsplib: %s %s: %w", key, value, ErrUnsupportedFormat)
				}
			}
			continue
		}

		for _, field := range strings.Fields(text) {
			if row == n {
				return nil, fmt.Errorf("tsplib line %d: more than %d values: %w", line, n*n, ErrMalformed)
			}
			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("tsplib line %d: %q: %w", line, field, ErrMalformed)
			}
			rows[row][col] = v
			col++
			if col == n {
				col = 0
				row++
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("tsplib: %w: %w", ErrMalformed, err)
	}
	if !inSection {
		return nil, fmt.Errorf("tsplib: no %s: %w", tspSection, ErrMalformed)
	}
	if row != n {
		return nil, fmt.Errorf("tsplib: got %d of %d values: %w", row*n+col, n*n, ErrMalformed)
	}

	return rows, nil
}

func encodeTSPLIB(w io.Writer, g *graph.Graph, name string) error {
	bw := bufio.NewWriter(w)
	n := g.Order()
	fmt.Fprintf(bw, "NAME: %s\n", name)
	fmt.Fprintln(bw, "TYPE: TSP")
	fmt.Fprintf(bw, "%s: %d\n", tspKeyDimension, n)
	fmt.Fprintf(bw, "%s: %s\n", tspKeyWeightType, tspExplicit)
	fmt.Fprintf(bw, "%s: %s\n", tspKeyFormat, tspFullMatrix)
	fmt.Fprintln(bw, tspSection)
	for i := 0; i < n; i++ {
		r := g.Row(i)
		parts := make([]string, len(r))
		for j, v := range r {
			parts[j] = strconv.Itoa(v)
		}
		fmt.Fprintln(bw, strings.Join(parts, " "))
	}
	fmt.Fprintln(bw, tspEOF)

	return bw.Flush()
}
