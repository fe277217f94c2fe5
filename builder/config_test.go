// Package builder contains unit tests for the configuration primitives
// (config and Option) to ensure correct application and override behavior.
package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRNGOptions verifies that RNG options configure the rng field correctly,
// including reproducibility with WithSeed and last-wins ordering.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	// 1. By default rng is nil; source() still yields a usable RNG.
	cfgDefault := newConfig()
	assert.Nil(t, cfgDefault.rng)
	require.NotNil(t, cfgDefault.source())

	// 2. WithRand attaches the caller's RNG verbatim.
	expRNG := rand.New(rand.NewSource(123))
	cfgWithRand := newConfig(WithRand(expRNG))
	assert.Same(t, expRNG, cfgWithRand.rng)
	assert.Same(t, expRNG, cfgWithRand.source())

	// 3. WithSeed produces reproducible streams.
	a := newConfig(WithSeed(42)).rng
	b := newConfig(WithSeed(42)).rng
	assert.Equal(t, a.Int63(), b.Int63())
	assert.Equal(t, a.Int63(), b.Int63())

	// 4. Later options override earlier ones.
	cfgOverride := newConfig(WithRand(expRNG), WithSeed(7))
	assert.NotSame(t, expRNG, cfgOverride.rng)
}

// TestSymmetricOption verifies the symmetric flag.
func TestSymmetricOption(t *testing.T) {
	t.Parallel()

	assert.False(t, newConfig().symmetric)
	assert.True(t, newConfig(WithSymmetric()).symmetric)
}

// TestWithRandNilPanics verifies the option constructor fails fast.
func TestWithRandNilPanics(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, "builder: WithRand(nil)", func() { WithRand(nil) })
}
