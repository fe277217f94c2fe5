// Package tsp - top-k ranking of valid candidates.
//
// Rank keeps the k best valid candidates in a B-tree ordered by
// (weight, discovery order). Discovery order breaks ties exactly like Solve,
// so Rank(g, 1, opts)[0] is always Solve(g, opts).
package tsp

import (
	"github.com/katalvlaran/tspbrute/graph"
	"github.com/tidwall/btree"
)

const methodRank = "Rank"

// Ranked is one entry of a Rank result.
type Ranked struct {
	// Cycle is an independent copy of the candidate.
	Cycle []int
	// Weight is the total weight of Cycle.
	Weight int
	// Seq is the 0-based position of Cycle in the candidate stream.
	Seq int
}

// rankedLess orders by weight, then discovery order.
func rankedLess(a, b Ranked) bool {
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}

	return a.Seq < b.Seq
}

// Rank returns up to k valid candidates with the smallest weights, best first.
//
// The same cycle may appear more than once (e.g. once per start vertex or per
// direction) because Rank reports candidates, not distinct tours; use
// SameCycle to deduplicate.
//
// Errors: those of Solve plus ErrBadRank for k < 1. ErrNoValidCycle when
// nothing survives.
//
// Complexity: O(C·(n + log k)) time for C candidates, O(k·n) space.
func Rank(g *graph.Graph, k int, opts Options) ([]Ranked, error) {
	if k < 1 {
		return nil, graph.Invalid(methodRank, ErrBadRank, "k=%d", k)
	}
	n, err := validateAll(methodRank, g, opts)
	if err != nil {
		return nil, err
	}

	var (
		tr       = btree.NewBTreeG[Ranked](rankedLess)
		examined int
	)
	// search bumps examined before calling keep, so examined−1 is the 0-based position.
	search(g, n, opts, func(cycle []int, w int) bool {
		entry := Ranked{Weight: w, Seq: examined - 1}
		if tr.Len() == k {
			worst, _ := tr.Max()
			if !rankedLess(entry, worst) {
				return true
			}
			tr.PopMax()
		}
		entry.Cycle = CopyCycle(cycle)
		tr.Set(entry)

		return true
	}, &examined)

	if tr.Len() == 0 {
		return nil, ErrNoValidCycle
	}

	out := make([]Ranked, 0, tr.Len())
	tr.Scan(func(r Ranked) bool {
		out = append(out, r)
		return true
	})

	return out, nil
}
