// Package builder — the discrete weight distribution used by Generate.
package builder

import "math/rand"

// weightSet is the integer range [lower, upper). validateLimits guarantees
// lower ≥ 1, so the "no edge" sentinel 0 is never inside it.
type weightSet struct {
	lower, upper int
}

// Len returns the number of admissible weights.
func (s weightSet) Len() int { return s.upper - s.lower }

// At returns the k-th admissible weight in ascending order, 0 ≤ k < Len().
func (s weightSet) At(k int) int { return s.lower + k }

// draw picks a weight uniformly at random (with replacement).
func (s weightSet) draw(rng *rand.Rand) int {
	return s.At(rng.Intn(s.Len()))
}

// WeightSet returns every weight Generate may assign for the given limits,
// in ascending order. It validates limits exactly like Generate does.
//
// Complexity: O(upper-lower) time and space.
func WeightSet(lower, upper int) ([]int, error) {
	if err := validateLimits(MethodWeightSet, lower, upper); err != nil {
		return nil, err
	}
	s := weightSet{lower: lower, upper: upper}
	out := make([]int, s.Len())
	for k := range out {
		out[k] = s.At(k)
	}

	return out, nil
}
