// Package tspbrute solves the Travelling Salesman Problem on small weighted
// graphs by scoring candidate Hamiltonian cycles, and generates random graphs
// to feed it.
//
// Everything is organized under a handful of subpackages:
//
//	graph/    — the immutable N×N adjacency matrix (0 = no edge) + gonum interop
//	builder/  — Generate(size, lower, upper, opts...): random weighted graphs
//	tsp/      — Solve, Rank and the candidate generators (mutation chain, exhaustive)
//	graphio/  — JSON, YAML and TSPLIB (EXPLICIT / FULL_MATRIX) readers and writers
//	metrics/  — Prometheus counters fed by the tsp candidate hook
//	cmd/tspbrute — the command-line front end (generate, solve)
//
// Quick example:
//
//	g, _ := builder.Generate(5, 1, 10, builder.WithSeed(42))
//	res, err := tsp.Solve(g, tsp.DefaultOptions())
//	if errors.Is(err, tsp.ErrNoValidCycle) {
//		// no candidate uses only existing edges
//	}
//	fmt.Println(tsp.FormatCycle(res.Cycle), res.Weight)
//
// The default strategy examines a fixed subset of n·(n−1) cycles and is not
// guaranteed to find the global optimum; tsp.StrategyExhaustive does, for
// graphs of up to tsp.MaxExhaustiveVertices vertices.
//
//	go get github.com/katalvlaran/tspbrute
package tspbrute
