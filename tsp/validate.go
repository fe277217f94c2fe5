// Package tsp - validation utilities shared by the solvers.
//
// This file contains small helpers that:
//  1. Validate the input graph (non-nil, order ≥ MinVertices).
//  2. Validate Options against the graph order (strategy known, size cap).
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinels from types.go.
//   - Shape and weight rules are already enforced by graph.New; nothing is
//     re-checked here.
package tsp

import "github.com/katalvlaran/tspbrute/graph"

// validateAll verifies graph + options and returns the graph order.
//
// Complexity: O(1).
func validateAll(method string, g *graph.Graph, opts Options) (int, error) {
	n := g.Order() // nil-safe
	if n < MinVertices {
		return 0, graph.Invalid(method, ErrTooFewVertices, "order=%d < min=%d", n, MinVertices)
	}

	switch opts.Strategy {
	case StrategyMutationChain:
		// any size
	case StrategyExhaustive:
		if n > MaxExhaustiveVertices {
			return 0, graph.Invalid(method, ErrTooManyVertices, "order=%d > max=%d", n, MaxExhaustiveVertices)
		}
	default:
		return 0, graph.Invalid(method, ErrUnsupportedStrategy, "strategy=%d", int(opts.Strategy))
	}

	return n, nil
}
