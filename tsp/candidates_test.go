package tsp_test

import (
	"testing"

	"github.com/katalvlaran/tspbrute/tsp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidates_MutationChainExact(t *testing.T) {
	tests := []struct {
		n    int
		want [][]int
	}{
		{2, [][]int{
			{0, 1, 0},
			{1, 0, 1},
		}},
		{3, [][]int{
			{0, 1, 2, 0}, {0, 2, 1, 0},
			{1, 0, 2, 1}, {1, 2, 0, 1},
			{2, 0, 1, 2}, {2, 1, 0, 2},
		}},
		{4, [][]int{
			{0, 1, 2, 3, 0}, {0, 1, 3, 2, 0}, {0, 3, 1, 2, 0},
			{1, 0, 2, 3, 1}, {1, 0, 3, 2, 1}, {1, 3, 0, 2, 1},
			{2, 0, 1, 3, 2}, {2, 0, 3, 1, 2}, {2, 3, 0, 1, 2},
			{3, 0, 1, 2, 3}, {3, 0, 2, 1, 3}, {3, 2, 0, 1, 3},
		}},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tsp.CandidateList(tc.n, tsp.StrategyMutationChain), "n=%d", tc.n)
	}
}

func TestCandidates_MutationChainShape(t *testing.T) {
	for n := 2; n <= 10; n++ {
		list := tsp.CandidateList(n, tsp.StrategyMutationChain)
		require.Len(t, list, n*(n-1), "n=%d", n)
		for i, c := range list {
			require.NoError(t, tsp.ValidateCycle(c, n), "n=%d #%d %v", n, i, c)
			// Block i/(n-1) belongs to start vertex i/(n-1).
			assert.Equal(t, i/(n-1), c[0], "n=%d #%d", n, i)
		}
	}
}

func TestCandidates_Exhaustive(t *testing.T) {
	for n := 2; n <= 6; n++ {
		list := tsp.CandidateList(n, tsp.StrategyExhaustive)
		want := 1
		for k := 2; k < n; k++ {
			want *= k
		}
		require.Len(t, list, want, "n=%d", n)

		distinct := map[string]struct{}{}
		for _, c := range list {
			require.NoError(t, tsp.ValidateCycle(c, n))
			require.Equal(t, 0, c[0])
			distinct[tsp.FormatCycle(c)] = struct{}{}
		}
		assert.Len(t, distinct, want, "n=%d permutations must be distinct", n)
	}
}

func TestCandidates_Degenerate(t *testing.T) {
	assert.Empty(t, tsp.CandidateList(1, tsp.StrategyMutationChain))
	assert.Empty(t, tsp.CandidateList(0, tsp.StrategyExhaustive))
	assert.Empty(t, tsp.CandidateList(4, tsp.Strategy(-1)))
}

func TestCandidates_EarlyStop(t *testing.T) {
	for _, s := range []tsp.Strategy{tsp.StrategyMutationChain, tsp.StrategyExhaustive} {
		count := 0
		for range tsp.Candidates(6, s) {
			count++
			if count == 3 {
				break
			}
		}
		assert.Equal(t, 3, count, s.String())
	}
}
