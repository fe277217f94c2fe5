// Package builder defines shared constants used by the generator.
package builder

// MethodGenerate is the canonical method tag prefixed to Generate errors.
const MethodGenerate = "Generate"

// MethodWeightSet is the canonical method tag prefixed to WeightSet errors.
const MethodWeightSet = "WeightSet"

// MinVertices is the smallest size Generate accepts. A single vertex yields
// the 1×1 zero matrix, which is valid input for nothing but itself; the
// solver requires at least two vertices.
const MinVertices = 1
