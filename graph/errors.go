// SPDX-License-Identifier: MIT
// Package: tspbrute/graph
//
// errors.go — sentinel errors for the graph package (and its consumers).
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Every precondition failure matches ErrInvalidArgument AND one specific
//     sentinel below, e.g. errors.Is(err, ErrNonSquare) && errors.Is(err, ErrInvalidArgument).
//   • builder and tsp re-export ErrInvalidArgument so callers can stay on one import.

package graph

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the umbrella class for malformed input: bad shapes,
// weights outside the model, bad generator limits, too few vertices.
var ErrInvalidArgument = errors.New("invalid argument")

var (
	// ErrEmpty is returned for a nil or zero-row matrix.
	ErrEmpty = errors.New("graph: empty matrix")

	// ErrNonSquare signals a ragged matrix or one whose row count differs from its column count.
	ErrNonSquare = errors.New("graph: matrix is not square")

	// ErrNonZeroDiagonal signals a self-loop weight on the diagonal.
	ErrNonZeroDiagonal = errors.New("graph: diagonal not zero")

	// ErrNegativeWeight signals an off-diagonal weight below zero.
	ErrNegativeWeight = errors.New("graph: negative edge weight")

	// ErrNonIntegral signals a non-integer, NaN or ±Inf entry on import from a float matrix.
	ErrNonIntegral = errors.New("graph: weight is not a finite integer")

	// ErrVertexOutOfRange signals an index outside [0, Order()).
	ErrVertexOutOfRange = errors.New("graph: vertex index out of range")
)

// invalid joins the umbrella class with a specific sentinel and a context
// message of the form "<method>: <message>".
func invalid(method string, sentinel error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w: %w", method, fmt.Sprintf(format, args...), ErrInvalidArgument, sentinel)
}

// Invalid is the exported form of invalid for sibling packages (builder, tsp,
// graphio) so that every package produces identically shaped errors.
//
//	return graph.Invalid("Generate", builder.ErrBadLimits, "upper=%d <= lower=%d", u, l)
func Invalid(method string, sentinel error, format string, args ...any) error {
	return invalid(method, sentinel, format, args...)
}
