// SPDX-License-Identifier: MIT
// Package: tspbrute/builder
//
// options.go — functional options for Generate.
//
// Contract (strict):
//   • Options are functional (type Option func(*config)).
//   • Option constructors PANIC on meaningless inputs; Generate never panics.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// Option customizes Generate by mutating a config before any draw.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*config)

// WithRand provides an explicit RNG. The caller keeps ownership; *rand.Rand
// is not goroutine-safe, so do not share it across concurrent Generate calls.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithSymmetric draws one weight per unordered pair {i,j} and writes it to
// both (i,j) and (j,i).
func WithSymmetric() Option {
	return func(c *config) {
		c.symmetric = true
	}
}
