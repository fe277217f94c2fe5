// SPDX-License-Identifier: MIT
// Package: tspbrute/graph
//
// graph.go — the immutable adjacency-matrix Graph.
//
// Contract:
//   • Construction validates shape and weights once (see validate.go).
//   • Stored rows are never aliased with caller memory.
//   • Weight/HasEdge are O(1) and never allocate; Rows/Row allocate a copy.

package graph

const (
	methodNew    = "New"
	methodWeight = "Weight"
)

// NoEdge is the weight that marks an absent edge.
const NoEdge = 0

// Graph is an N×N adjacency matrix of non-negative integer weights.
// The zero value is an empty graph with Order()==0.
type Graph struct {
	w [][]int
}

// New validates rows and returns a Graph holding a private copy of them.
//
// Contract:
//   - rows is non-empty and square (every row has len(rows) entries);
//   - rows[i][i] == 0 for every i;
//   - rows[i][j] >= 0 for every i != j.
//
// Errors: ErrInvalidArgument joined with ErrEmpty, ErrNonSquare,
// ErrNonZeroDiagonal or ErrNegativeWeight.
//
// Complexity: O(N²) time and space.
func New(rows [][]int) (*Graph, error) {
	if err := validateRows(methodNew, rows); err != nil {
		return nil, err
	}

	return &Graph{w: copyRows(rows)}, nil
}

// MustNew is New that panics on error. Intended for fixtures and examples.
func MustNew(rows [][]int) *Graph {
	g, err := New(rows)
	if err != nil {
		panic(err)
	}

	return g
}

// Order returns the number of vertices N.
func (g *Graph) Order() int {
	if g == nil {
		return 0
	}

	return len(g.w)
}

// Weight returns the weight of the step u→v (0 when there is no edge).
// Out-of-range indices return ErrVertexOutOfRange.
func (g *Graph) Weight(u, v int) (int, error) {
	n := g.Order()
	if u < 0 || u >= n || v < 0 || v >= n {
		return 0, invalid(methodWeight, ErrVertexOutOfRange, "(%d,%d) not in [0,%d)", u, v, n)
	}

	return g.w[u][v], nil
}

// at is the unchecked accessor used on hot paths after indices are known valid.
func (g *Graph) at(u, v int) int { return g.w[u][v] }

// At is Weight without the range check. Callers must guarantee 0 ≤ u,v < Order();
// solvers use it inside loops whose indices come from validated cycles.
func (g *Graph) At(u, v int) int { return g.at(u, v) }

// HasEdge reports whether u→v carries a nonzero weight.
// Out-of-range indices report false.
func (g *Graph) HasEdge(u, v int) bool {
	w, err := g.Weight(u, v)

	return err == nil && w != NoEdge
}

// Row returns a copy of row u, or nil when u is out of range.
func (g *Graph) Row(u int) []int {
	if u < 0 || u >= g.Order() {
		return nil
	}

	return append([]int(nil), g.w[u]...)
}

// Rows returns a deep copy of the whole matrix in row-major order.
func (g *Graph) Rows() [][]int {
	if g == nil {
		return nil
	}

	return copyRows(g.w)
}

// IsSymmetric reports whether w(u,v) == w(v,u) for every pair.
//
// Complexity: O(N²/2).
func (g *Graph) IsSymmetric() bool {
	var (
		n    = g.Order()
		i, j int
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if g.w[i][j] != g.w[j][i] {
				return false
			}
		}
	}

	return true
}

// EdgeCount returns the number of nonzero off-diagonal entries, i.e. the
// number of directed steps available. A complete graph of order N has N·(N−1).
func (g *Graph) EdgeCount() int {
	var (
		n     = g.Order()
		count int
		i, j  int
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i != j && g.w[i][j] != NoEdge {
				count++
			}
		}
	}

	return count
}

// IsComplete reports whether every off-diagonal entry is nonzero.
func (g *Graph) IsComplete() bool {
	n := g.Order()

	return g.EdgeCount() == n*(n-1)
}

// copyRows deep-copies a row-major matrix.
func copyRows(rows [][]int) [][]int {
	out := make([][]int, len(rows))
	for i := range rows {
		out[i] = append([]int(nil), rows[i]...)
	}

	return out
}
