// Package tsp - solver entry point.
//
// Solve runs the pipeline
//
//	generate candidates → filter (no 0-weight step) → score → strict minimum
//
// streaming: each candidate is scored as soon as it is generated and then
// discarded, so memory stays O(n) for every strategy. Candidate order is the
// generation order, and the first minimum found wins ties ("<", not "<=").
//
// Design principles:
//   - Deterministic: no randomness, no shared state; repeated calls on the same
//     graph return the same cycle.
//   - Strict sentinels from types.go; never panics on user input.
//   - The graph is read-only, so concurrent Solve calls on one graph are safe
//     (hooks must be safe for that themselves).
package tsp

import "github.com/katalvlaran/tspbrute/graph"

const methodSolve = "Solve"

// Solve returns the minimum-weight valid cycle among the candidates generated
// by opts.Strategy.
//
// With StrategyMutationChain (DefaultOptions) the candidate set is the
// reference subset of n·(n−1) cycles, so the result is the optimum over that
// subset only, not necessarily over all Hamiltonian cycles. StrategyExhaustive
// returns the global optimum.
//
// Contracts:
//   - g must be non-nil with Order() ≥ MinVertices.
//   - On success Result.Cycle has length n+1 and Result.Cycle[0] == Result.Cycle[n].
//
// Errors:
//   - ErrInvalidArgument (+ ErrTooFewVertices, ErrTooManyVertices,
//     ErrUnsupportedStrategy) before any work.
//   - ErrNoValidCycle when no candidate survives; the Result still carries
//     Examined so callers can report it.
//
// Complexity:
//   - StrategyMutationChain: O(n³) time (n² candidates × n steps), O(n) space.
//   - StrategyExhaustive:    O(n·(n−1)!) time, O(n) space.
func Solve(g *graph.Graph, opts Options) (Result, error) {
	n, err := validateAll(methodSolve, g, opts)
	if err != nil {
		return Result{}, err
	}

	var (
		res  Result
		best int
	)
	search(g, n, opts, func(cycle []int, w int) bool {
		res.Survivors++
		if res.Cycle == nil || w < best {
			best = w
			res.Cycle = CopyCycle(cycle)
		}

		return true
	}, &res.Examined)

	if res.Cycle == nil {
		return Result{Examined: res.Examined}, ErrNoValidCycle
	}
	res.Weight = best

	return res, nil
}

// search drives the candidate stream for an already validated (g, opts):
// it scores every candidate, reports it to opts.OnCandidate, and hands valid
// ones to keep. keep returning false stops the stream. examined counts every
// generated candidate.
func search(g *graph.Graph, n int, opts Options, keep func(cycle []int, w int) bool, examined *int) {
	var (
		w  int
		ok bool
	)
	for cycle := range Candidates(n, opts.Strategy) {
		*examined++
		w, ok = score(g, cycle)
		if opts.OnCandidate != nil {
			opts.OnCandidate(Candidate{Cycle: cycle, Valid: ok, Weight: w})
		}
		if !ok {
			continue
		}
		if !keep(cycle, w) {
			return
		}
	}
}
