// SPDX-License-Identifier: MIT
// Package: tspbrute/graph
//
// dense.go — conversion to and from gonum matrices.

package graph

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

const methodFromDense = "FromDense"

// Dense returns the weights as a freshly allocated *mat.Dense.
// The zero-order graph yields nil (gonum has no 0×0 Dense).
//
// Complexity: O(N²).
func (g *Graph) Dense() *mat.Dense {
	n := g.Order()
	if n == 0 {
		return nil
	}

	data := make([]float64, 0, n*n)
	for _, row := range g.w {
		for _, w := range row {
			data = append(data, float64(w))
		}
	}

	return mat.NewDense(n, n, data)
}

// FromDense imports a gonum matrix. Every entry must be a finite integer;
// the usual shape and weight rules of New then apply.
//
// Errors: ErrInvalidArgument joined with ErrEmpty, ErrNonSquare,
// ErrNonIntegral, ErrNonZeroDiagonal or ErrNegativeWeight.
func FromDense(m mat.Matrix) (*Graph, error) {
	if m == nil {
		return nil, invalid(methodFromDense, ErrEmpty, "nil matrix")
	}
	r, c := m.Dims()
	if r == 0 {
		return nil, invalid(methodFromDense, ErrEmpty, "no rows")
	}
	if r != c {
		return nil, invalid(methodFromDense, ErrNonSquare, "%dx%d", r, c)
	}

	var (
		rows = make([][]int, r)
		i, j int
		v    float64
	)
	for i = 0; i < r; i++ {
		rows[i] = make([]int, c)
		for j = 0; j < c; j++ {
			v = m.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
				return nil, invalid(methodFromDense, ErrNonIntegral, "w(%d,%d)=%g", i, j, v)
			}
			rows[i][j] = int(v)
		}
	}

	if err := validateRows(methodFromDense, rows); err != nil {
		return nil, err
	}

	return &Graph{w: rows}, nil
}
