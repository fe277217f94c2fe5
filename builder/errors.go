// SPDX-License-Identifier: MIT
// Package: tspbrute/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Every validation failure ALSO matches ErrInvalidArgument.
//   • Context is attached with %w via graph.Invalid: "Generate: <detail>: invalid argument: <sentinel>".
//
// Priority when several parameters are wrong at once:
//   • ErrTooFewVertices  — size first.
//   • ErrZeroLimit       — then the 0 sentinel in either limit.
//   • ErrBadLimits       — then ordering (upper must exceed lower).
//   • ErrNegativeWeight  — finally the sign of lower.

package builder

import (
	"errors"

	"github.com/katalvlaran/tspbrute/graph"
)

// ErrInvalidArgument is graph.ErrInvalidArgument, re-exported for callers
// that only import builder.
var ErrInvalidArgument = graph.ErrInvalidArgument

// ErrTooFewVertices indicates size < MinVertices.
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: size must be at least 1")

// ErrZeroLimit indicates lower == 0 or upper == 0. Zero is the "no edge"
// sentinel of the adjacency matrix and is never a valid weight bound.
var ErrZeroLimit = errors.New("builder: weight limit cannot be 0")

// ErrBadLimits indicates upper <= lower, i.e. an empty weight range.
var ErrBadLimits = errors.New("builder: upper limit must exceed lower limit")

// ErrNegativeWeight is graph.ErrNegativeWeight: lower < 0 would produce
// weights the adjacency-matrix model rejects.
var ErrNegativeWeight = graph.ErrNegativeWeight
