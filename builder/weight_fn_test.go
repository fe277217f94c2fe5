package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestWeightSetPositive covers the contiguous case used by Generate.
func TestWeightSetPositive(t *testing.T) {
	t.Parallel()

	s := weightSet{lower: 1, upper: 10}
	assert.Equal(t, 9, s.Len())
	assert.Equal(t, 1, s.At(0))
	assert.Equal(t, 9, s.At(8))
}

// TestWeightSetDrawUniformSupport checks every draw is admissible and every
// admissible value is eventually drawn.
func TestWeightSetDrawUniformSupport(t *testing.T) {
	t.Parallel()

	var (
		s    = weightSet{lower: 3, upper: 7}
		rng  = rand.New(rand.NewSource(1))
		seen = map[int]int{}
	)
	for i := 0; i < 4000; i++ {
		w := s.draw(rng)
		assert.GreaterOrEqual(t, w, 3)
		assert.Less(t, w, 7)
		seen[w]++
	}
	assert.Len(t, seen, 4)
	for w, c := range seen {
		// Expected 1000 each; a loose band keeps the test stable.
		assert.InDelta(t, 1000, c, 200, "weight %d drawn %d times", w, c)
	}
}
