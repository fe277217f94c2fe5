// Package tsp_test — benchmarks for tspbrute/tsp.
//
// Policy:
//   - Inputs are generated once, outside the timer, with fixed seeds.
//   - Exhaustive sizes stay small enough for CI.
package tsp_test

import (
	"testing"

	"github.com/katalvlaran/tspbrute/builder"
	"github.com/katalvlaran/tspbrute/graph"
	"github.com/katalvlaran/tspbrute/tsp"
)

// benchGraph builds a complete symmetric graph of order n.
func benchGraph(b *testing.B, n int) *graph.Graph {
	b.Helper()

	g, err := builder.Generate(n, 1, 100, builder.WithSeed(int64(n)), builder.WithSymmetric())
	if err != nil {
		b.Fatal(err)
	}

	return g
}

func BenchmarkSolve_Chain_n12(b *testing.B) {
	g := benchGraph(b, 12)
	opts := tsp.DefaultOptions()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tsp.Solve(g, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSolve_Chain_n64(b *testing.B) {
	g := benchGraph(b, 64)
	opts := tsp.DefaultOptions()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tsp.Solve(g, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSolve_Exhaustive_n9(b *testing.B) {
	g := benchGraph(b, 9)
	opts := tsp.Options{Strategy: tsp.StrategyExhaustive}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tsp.Solve(g, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRank_Top5_n10(b *testing.B) {
	g := benchGraph(b, 10)
	opts := tsp.DefaultOptions()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tsp.Rank(g, 5, opts); err != nil {
			b.Fatal(err)
		}
	}
}
