// Package graph holds the adjacency-matrix representation shared by the
// generator (package builder) and the solver (package tsp).
//
// A Graph is an N×N matrix of non-negative integer weights:
//
//	     0  1  2
//	0  [ 0, 1, 2 ]
//	1  [ 1, 0, 3 ]
//	2  [ 2, 3, 0 ]
//
// Entry (u,v) is the weight of the edge u→v, or 0 when the edge is absent
// (0 is the "no edge" sentinel, so real edges always weigh ≥ 1). The diagonal
// is always 0: self-loops are not representable.
//
// The matrix is meant to be undirected, i.e. (u,v) and (v,u) are populated
// consistently by producers, but symmetry is NOT enforced: solvers read the
// weight of each step in the direction it is traversed. Use IsSymmetric to
// check it explicitly.
//
// A Graph is immutable after construction. New deep-copies its input and every
// accessor that exposes rows returns a copy, so a *Graph can be shared across
// goroutines without locking.
//
// Interop with gonum: Dense exports the weights as a *mat.Dense and FromDense
// imports any mat.Matrix whose entries are non-negative integers.
package graph
