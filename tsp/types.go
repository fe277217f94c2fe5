// Package tsp - public types, options and sentinel errors.
//
// Error policy:
//   - Precondition failures match ErrInvalidArgument plus one specific sentinel.
//   - "Nothing survived the filter" is ErrNoValidCycle: a result, not a crash;
//     callers decide whether it is fatal.
package tsp

import (
	"errors"

	"github.com/katalvlaran/tspbrute/graph"
)

// ErrInvalidArgument is graph.ErrInvalidArgument, re-exported for callers
// that only import tsp.
var ErrInvalidArgument = graph.ErrInvalidArgument

var (
	// ErrNoValidCycle is returned when every generated candidate uses at least
	// one missing edge (weight 0).
	ErrNoValidCycle = errors.New("tsp: no valid cycle")

	// ErrTooFewVertices signals a nil graph or one with fewer than MinVertices vertices.
	ErrTooFewVertices = errors.New("tsp: graph must have at least 2 vertices")

	// ErrTooManyVertices signals StrategyExhaustive above MaxExhaustiveVertices.
	ErrTooManyVertices = errors.New("tsp: graph too large for exhaustive search")

	// ErrUnsupportedStrategy signals an unknown Options.Strategy.
	ErrUnsupportedStrategy = errors.New("tsp: unsupported strategy")

	// ErrBadCycle signals a malformed cycle passed to ValidateCycle/CycleWeight.
	ErrBadCycle = errors.New("tsp: malformed cycle")

	// ErrBadRank signals k < 1 in Rank.
	ErrBadRank = errors.New("tsp: rank size must be at least 1")
)

const (
	// MinVertices is the smallest graph order the solvers accept.
	MinVertices = 2

	// MaxExhaustiveVertices caps StrategyExhaustive: (N−1)! candidates,
	// 11! ≈ 4·10⁷ at the cap.
	MaxExhaustiveVertices = 12
)

// Strategy selects how candidate cycles are generated.
type Strategy int

const (
	// StrategyMutationChain is the reference candidate scheme: for every start
	// vertex, the ascending base cycle plus a chain of N−2 adjacent swaps
	// walking from the tail towards the head. It examines N·(N−1) candidates
	// and is NOT guaranteed to find the global optimum.
	StrategyMutationChain Strategy = iota

	// StrategyExhaustive enumerates every ordering of vertices 1..N−1 behind
	// vertex 0, i.e. all (N−1)! directed Hamiltonian cycles. It returns the
	// true optimum and is limited to MaxExhaustiveVertices.
	StrategyExhaustive
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case StrategyMutationChain:
		return "chain"
	case StrategyExhaustive:
		return "exhaustive"
	default:
		return "unknown"
	}
}

// ParseStrategy maps "chain" / "exhaustive" back to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "chain", "":
		return StrategyMutationChain, nil
	case "exhaustive":
		return StrategyExhaustive, nil
	default:
		return 0, graph.Invalid("ParseStrategy", ErrUnsupportedStrategy, "%q", name)
	}
}

// Candidate is what Options.OnCandidate observes for every generated cycle.
type Candidate struct {
	// Cycle is only valid for the duration of the hook call; copy to retain.
	Cycle []int
	// Valid is false when some step has weight 0.
	Valid bool
	// Weight is the summed step weight; 0 when !Valid.
	Weight int
}

// Options configures Solve and Rank.
type Options struct {
	// Strategy selects the candidate generator. Default StrategyMutationChain.
	Strategy Strategy

	// OnCandidate, when non-nil, is invoked once per generated candidate in
	// generation order, after filtering and scoring.
	OnCandidate func(Candidate)
}

// DefaultOptions returns the reference configuration: mutation-chain
// candidates, no hooks.
func DefaultOptions() Options {
	return Options{Strategy: StrategyMutationChain}
}

// Result holds the outcome of a solver run.
type Result struct {
	// Cycle is the minimum-weight valid cycle: len == N+1, Cycle[0] == Cycle[N].
	// Nil when no candidate survived.
	Cycle []int

	// Weight is the total weight of Cycle.
	Weight int

	// Examined is the number of candidates generated.
	Examined int

	// Survivors is the number of candidates that used only existing edges.
	Survivors int
}

// Found reports whether a cycle was selected.
func (r Result) Found() bool { return r.Cycle != nil }
