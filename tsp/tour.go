// Package tsp — cycle utilities shared by the solvers.
//
// This file contains compact utilities that operate purely on cycle
// structure (index sequences), without depending on weights:
//   - ValidateCycle: enforce Hamiltonian cycle invariants.
//   - CopyCycle: independent copy of a cycle slice.
//   - ReverseCycle: same cycle, opposite direction.
//   - SameCycle: equality under rotation and/or reversal.
//   - FormatCycle: printable form "0 → 2 → 1 → 0".
//
// Design:
//   - No logging, no panics on user input — only sentinel errors from types.go.
//   - O(n) time for every helper.
package tsp

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/tspbrute/graph"
)

const methodValidateCycle = "ValidateCycle"

// ValidateCycle enforces Hamiltonian-cycle invariants for a graph of order n:
//
//	len(cycle) == n+1, cycle[0] == cycle[n],
//	each vertex v∈[0..n-1] appears exactly once in positions [0..n-1].
//
// The start vertex is free. Edge existence is not checked (see IsValidCycle).
//
// Complexity: O(n) time, O(n) space.
func ValidateCycle(cycle []int, n int) error {
	if n < 1 {
		return graph.Invalid(methodValidateCycle, ErrBadCycle, "order=%d", n)
	}
	if len(cycle) != n+1 {
		return graph.Invalid(methodValidateCycle, ErrBadCycle, "len=%d, want %d", len(cycle), n+1)
	}
	if cycle[0] != cycle[n] {
		return graph.Invalid(methodValidateCycle, ErrBadCycle, "not closed: first=%d last=%d", cycle[0], cycle[n])
	}

	var (
		seen = make([]bool, n)
		i, v int
	)
	for i = 0; i < n; i++ {
		v = cycle[i]
		if v < 0 || v >= n {
			return graph.Invalid(methodValidateCycle, ErrBadCycle, "vertex %d at %d out of range", v, i)
		}
		if seen[v] {
			return graph.Invalid(methodValidateCycle, ErrBadCycle, "vertex %d repeated at %d", v, i)
		}
		seen[v] = true
	}

	return nil
}

// CopyCycle returns an independent copy of the input cycle slice.
//
// Complexity: O(n) time, O(n) space.
func CopyCycle(cycle []int) []int {
	if cycle == nil {
		return nil
	}
	out := make([]int, len(cycle))
	copy(out, cycle)

	return out
}

// ReverseCycle returns a reversed copy: the same vertices traversed the other way.
// On a symmetric graph both directions weigh the same.
func ReverseCycle(cycle []int) []int {
	out := CopyCycle(cycle)
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out
}

// SameCycle reports whether two closed cycles visit the same vertices in the
// same cyclic order, allowing any rotation and either direction.
//
// Complexity: O(n) time.
func SameCycle(a, b []int) bool {
	if len(a) != len(b) || len(a) < 2 {
		return false
	}
	n := len(a) - 1
	if a[0] != a[n] || b[0] != b[n] {
		return false
	}

	// Locate a[0] in b's open prefix.
	p := -1
	for j := 0; j < n; j++ {
		if b[j] == a[0] {
			p = j
			break
		}
	}
	if p == -1 {
		return false
	}

	forward, backward := true, true
	for i := 0; i < n && (forward || backward); i++ {
		if a[i] != b[(p+i)%n] {
			forward = false
		}
		if a[i] != b[((p-i)%n+n)%n] {
			backward = false
		}
	}

	return forward || backward
}

// FormatCycle renders a cycle as "0 → 2 → 1 → 0"; nil renders as "<none>".
func FormatCycle(cycle []int) string {
	if cycle == nil {
		return "<none>"
	}
	parts := make([]string, len(cycle))
	for i, v := range cycle {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, " → ")
}
