// Package tsp — cycle filtering and scoring.
//
// A cycle of length n+1 has n steps c[k]→c[k+1], k ∈ [0, n). The last step
// c[n−1]→c[n] is the real closing edge back to the start (c[n] == c[0]).
//   - filter: the cycle is valid iff no step has weight graph.NoEdge (0);
//   - score:  the sum of all n step weights.
//
// Complexity: O(n) time, O(1) extra space.
package tsp

import "github.com/katalvlaran/tspbrute/graph"

const methodCycleWeight = "CycleWeight"

// IsValidCycle reports whether every consecutive step of cycle is an existing
// edge of g. Vertices outside g make the cycle invalid. The Hamiltonian shape
// is NOT checked (see ValidateCycle).
func IsValidCycle(g *graph.Graph, cycle []int) bool {
	for k := 0; k+1 < len(cycle); k++ {
		if !g.HasEdge(cycle[k], cycle[k+1]) {
			return false
		}
	}

	return true
}

// CycleWeight validates cycle against g (shape and edge existence) and
// returns the sum of its step weights.
//
// Errors: ErrBadCycle for a malformed cycle, ErrNoValidCycle when a step uses
// a missing edge; both beside ErrInvalidArgument.
func CycleWeight(g *graph.Graph, cycle []int) (int, error) {
	if err := ValidateCycle(cycle, g.Order()); err != nil {
		return 0, err
	}
	w, ok := score(g, cycle)
	if !ok {
		return 0, graph.Invalid(methodCycleWeight, ErrNoValidCycle, "%s uses a missing edge", FormatCycle(cycle))
	}

	return w, nil
}

// score filters and sums in one pass. Indices must already be in range,
// which holds for every generated candidate.
func score(g *graph.Graph, cycle []int) (int, bool) {
	var sum, w, k int
	for k = 0; k+1 < len(cycle); k++ {
		w = g.At(cycle[k], cycle[k+1])
		if w == graph.NoEdge {
			return 0, false
		}
		sum += w
	}

	return sum, true
}
