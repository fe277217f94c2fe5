// Package builder generates random weighted graphs for the TSP solvers.
//
// The single constructor is Generate(size, lower, upper, opts...), which
// returns an N×N adjacency matrix (see package graph) whose off-diagonal
// entries are drawn uniformly, with replacement, from the integer weight set
// [lower, upper) \ {0}. The diagonal is fixed to 0.
//
// Configuration uses functional options:
//
//   - WithSeed(seed)  – reproducible draws from a fresh math/rand source.
//   - WithRand(r)     – caller-owned *rand.Rand (not goroutine-safe; do not share).
//   - WithSymmetric() – draw each unordered pair once and mirror it, so
//     w(i,j) == w(j,i). Without it every ordered pair is drawn independently
//     and the matrix is generally asymmetric.
//
// Without WithSeed/WithRand a time-seeded source is used, so two calls
// produce different graphs.
//
// Guarantees:
//
//   - Fast-fail validation before any draw: size ≥ 1, neither limit is 0,
//     upper > lower, lower ≥ 1 (weights are non-negative in this model).
//   - Errors match builder.ErrInvalidArgument plus one specific sentinel.
//   - Option constructors panic on programmer error (WithRand(nil)); Generate
//     itself never panics.
//   - Deterministic draw order: row-major, i asc then j asc.
//
// Complexity: O(N²) time and space.
package builder
