// Package builder provides validation helpers to enforce the parameter
// contract of Generate and WeightSet.
//
// Each function returns an error built with graph.Invalid when its
// precondition is violated, so the result matches ErrInvalidArgument.
package builder

import "github.com/katalvlaran/tspbrute/graph"

// validateSize ensures size ≥ MinVertices.
//
// Complexity: O(1) time and space.
func validateSize(method string, size int) error {
	if size < MinVertices {
		return graph.Invalid(method, ErrTooFewVertices, "size=%d < min=%d", size, MinVertices)
	}

	return nil
}

// validateLimits enforces lower != 0, upper != 0, upper > lower, lower ≥ 1
// in that order.
//
// Complexity: O(1) time and space.
func validateLimits(method string, lower, upper int) error {
	if lower == 0 || upper == 0 {
		return graph.Invalid(method, ErrZeroLimit, "lower=%d upper=%d", lower, upper)
	}
	if upper <= lower {
		return graph.Invalid(method, ErrBadLimits, "upper=%d <= lower=%d", upper, lower)
	}
	if lower < 0 {
		return graph.Invalid(method, ErrNegativeWeight, "lower=%d", lower)
	}

	return nil
}
