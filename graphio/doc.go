// Package graphio reads and writes adjacency matrices (package graph) in
// three interchange formats:
//
//   - JSON   — a bare row-major array of arrays: [[0,1,2],[1,0,3],[2,3,0]].
//   - YAML   — a small document with an optional vertex count:
//
//     vertices: 3
//     weights: [[0, 1, 2], [1, 0, 3], [2, 3, 0]]
//
//   - TSPLIB — EDGE_WEIGHT_TYPE: EXPLICIT with EDGE_WEIGHT_FORMAT: FULL_MATRIX.
//     Other TSPLIB weight types are rejected with ErrUnsupportedFormat.
//
// In every format 0 means "no edge" and the diagonal must be 0; decoded
// matrices go through graph.New, so the usual shape and weight errors apply.
// Syntax problems match ErrMalformed.
package graphio
