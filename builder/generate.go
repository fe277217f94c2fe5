// SPDX-License-Identifier: MIT
// Package: tspbrute/builder
//
// generate.go — implementation of Generate(size, lower, upper).
//
// Contract:
//   - size ≥ 1 (else ErrTooFewVertices).
//   - lower != 0 and upper != 0 (else ErrZeroLimit).
//   - upper > lower (else ErrBadLimits).
//   - lower ≥ 1 (else ErrNegativeWeight).
//   - All checks happen before the RNG is touched.
//
// Determinism:
//   - Stable draw order: i asc, j asc; symmetric mode draws only j > i.
//   - Identical seed + options ⇒ identical matrix.

package builder

import "github.com/katalvlaran/tspbrute/graph"

// Generate returns a random size×size adjacency matrix with zero diagonal and
// off-diagonal weights drawn uniformly from [lower, upper) \ {0}.
//
// Negative lower limits are rejected with ErrNegativeWeight, so the accepted
// weight set never contains 0 and every weight is ≥ 1. This is stricter than
// a plain "non-zero limits" rule: (−5, 5) is refused.
//
// By default each ordered pair (i,j) is drawn independently, so w(i,j) and
// w(j,i) may differ; pass WithSymmetric to mirror them.
//
// Complexity: O(size²) time and space.
func Generate(size, lower, upper int, opts ...Option) (*graph.Graph, error) {
	// 1) Validate parameters early (fail fast, zero side-effects on invalid input).
	if err := validateSize(MethodGenerate, size); err != nil {
		return nil, err
	}
	if err := validateLimits(MethodGenerate, lower, upper); err != nil {
		return nil, err
	}

	// 2) Resolve configuration.
	var (
		cfg     = newConfig(opts...)
		rng     = cfg.source()
		weights = weightSet{lower: lower, upper: upper}
		rows    = make([][]int, size)
		i, j    int
	)
	for i = 0; i < size; i++ {
		rows[i] = make([]int, size)
	}

	// 3) Draw.
	for i = 0; i < size; i++ {
		for j = 0; j < size; j++ {
			if i == j {
				continue // diagonal stays 0
			}
			if cfg.symmetric {
				if j < i {
					continue // mirrored from (j,i)
				}
				rows[i][j] = weights.draw(rng)
				rows[j][i] = rows[i][j]
				continue
			}
			rows[i][j] = weights.draw(rng)
		}
	}

	// 4) Wrap; New re-validates, which cannot fail for a well-formed draw.
	return graph.New(rows)
}
