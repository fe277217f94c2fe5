// Package tsp solves the Travelling Salesman Problem on small adjacency
// matrices (package graph) by brute-force candidate enumeration.
//
// Pipeline (Solve):
//
//  1. Generate candidate Hamiltonian cycles (closed, length n+1).
//  2. Filter out candidates that step over a missing edge (weight 0).
//  3. Score survivors by summing their n step weights.
//  4. Return the strictly smallest; the first one found wins ties.
//
// Strategies:
//
//   - StrategyMutationChain (default) — the reference scheme. For every start
//     vertex: the ascending base cycle plus a chain of n−2 adjacent swaps
//     walking from the tail towards the head, n·(n−1) candidates overall.
//     This is a fixed *subset* of all cycles: the result is the best cycle in
//     that subset and may be worse than the true optimum for n ≥ 5.
//
//   - StrategyExhaustive — all (n−1)! orderings behind vertex 0; returns the
//     true optimum. Complexity O(n·(n−1)!), capped at MaxExhaustiveVertices.
//
// Missing edges: a graph may be partially connected. If no candidate survives
// the filter, Solve returns ErrNoValidCycle; under StrategyMutationChain this
// can happen even if some Hamiltonian cycle exists outside the subset.
//
// Directionality: weights are read along the traversal direction, so
// asymmetric matrices are accepted and scored as given.
//
// Extras: Rank (top-k candidates), CycleWeight / IsValidCycle /
// ValidateCycle (scoring, filter, shape), Candidates (the raw stream) and the
// Options.OnCandidate hook.
//
// Use this package for n ≲ 12; beyond that exhaustive search is impractical
// and the mutation chain offers no quality guarantee.
package tsp
