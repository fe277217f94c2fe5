// Package tsp - candidate cycle generators.
//
// Two schemes, both yielding closed cycles of length n+1 (first == last):
//
//   - mutation chain (reference): for each start vertex i
//     base_i = [i, 0, 1, …, n−1 (without i), i]
//     m_1    = base_i with positions (L−3, L−2) swapped,   L = n+1
//     m_2    = m_1    with positions (L−4, L−3) swapped,
//     …
//     m_{n−2} = m_{n−3} with positions (1, 2) swapped.
//     Each swap is one step closer to the head; the fixed start/end vertex is
//     never touched. n·(n−1) candidates in total.
//
//     Example, n=4, i=0:
//     [0 1 2 3 0] → [0 1 3 2 0] → [0 3 1 2 0]
//
//   - exhaustive: vertex 0 followed by every permutation of 1..n−1
//     (gonum stat/combin), (n−1)! candidates.
//
// Generators are push iterators (iter.Seq). The mutation chain yields a fresh
// slice per candidate; the exhaustive generator reuses one buffer, so callers
// must copy anything they retain.
package tsp

import (
	"iter"

	"gonum.org/v1/gonum/stat/combin"
)

// Candidates returns the candidate sequence for a graph of order n under the
// given strategy. n < MinVertices or an unknown strategy yields nothing.
// Callers must copy yielded slices they keep beyond the current iteration.
func Candidates(n int, s Strategy) iter.Seq[[]int] {
	if n < MinVertices {
		return func(func([]int) bool) {}
	}
	switch s {
	case StrategyMutationChain:
		return mutationChain(n)
	case StrategyExhaustive:
		return exhaustive(n)
	default:
		return func(func([]int) bool) {}
	}
}

// CandidateList collects Candidates into independent slices.
//
// Complexity: O(count·n) space; use Candidates to stream instead.
func CandidateList(n int, s Strategy) [][]int {
	var out [][]int
	for c := range Candidates(n, s) {
		out = append(out, CopyCycle(c))
	}

	return out
}

// baseCycle returns [start, 0..n−1 without start, start].
//
// Complexity: O(n) time, O(n) space.
func baseCycle(n, start int) []int {
	out := make([]int, 0, n+1)
	out = append(out, start)
	for v := 0; v < n; v++ {
		if v != start {
			out = append(out, v)
		}
	}

	return append(out, start)
}

// swapped returns a copy of c with positions left and right exchanged.
func swapped(c []int, left, right int) []int {
	out := CopyCycle(c)
	out[left], out[right] = out[right], out[left]

	return out
}

// mutationChain yields, for every start vertex in ascending order, the base
// cycle followed by its chain of len(cycle)−3 = n−2 swaps.
func mutationChain(n int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		var (
			start, k    int
			last        = n // index of the closing vertex
			left, right int
			cur         []int
		)
		for start = 0; start < n; start++ {
			cur = baseCycle(n, start)
			if !yield(cur) {
				return
			}
			// (left,right) walks from (L−3, L−2) down to (1, 2).
			right = last - 1
			left = last - 2
			for k = 0; k < last-2; k++ {
				cur = swapped(cur, left, right)
				if !yield(cur) {
					return
				}
				right--
				left--
			}
		}
	}
}

// exhaustive yields 0 followed by every permutation of 1..n−1, then 0.
func exhaustive(n int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		var (
			m    = n - 1
			gen  = combin.NewPermutationGenerator(m, m)
			perm = make([]int, m)
			buf  = make([]int, n+1)
			i    int
		)
		// buf[0] and buf[n] stay 0.
		for gen.Next() {
			gen.Permutation(perm)
			for i = 0; i < m; i++ {
				buf[i+1] = perm[i] + 1
			}
			if !yield(buf) {
				return
			}
		}
	}
}
