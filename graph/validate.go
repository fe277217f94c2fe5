// SPDX-License-Identifier: MIT
// Package: tspbrute/graph
//
// validate.go — shape and weight validation.
//
// Priority when several checks fail: empty -> square -> diagonal -> negativity.
// The first failing check (row-major scan) determines the returned sentinel.

package graph

// validateRows enforces the adjacency-matrix model on raw rows.
//
// Complexity: O(N²).
func validateRows(method string, rows [][]int) error {
	n := len(rows)
	if n == 0 {
		return invalid(method, ErrEmpty, "no rows")
	}

	var i, j int
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return invalid(method, ErrNonSquare, "row %d has %d entries, want %d", i, len(rows[i]), n)
		}
	}

	for i = 0; i < n; i++ {
		if rows[i][i] != 0 {
			return invalid(method, ErrNonZeroDiagonal, "w(%d,%d)=%d", i, i, rows[i][i])
		}
	}

	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if rows[i][j] < 0 {
				return invalid(method, ErrNegativeWeight, "w(%d,%d)=%d", i, j, rows[i][j])
			}
		}
	}

	return nil
}
