// SPDX-License-Identifier: MIT
// Package: tspbrute/builder
//
// config.go — internal configuration and defaults.
//
// Design:
//   • config is the single source of truth for all generator knobs.
//   • newConfig applies options in-order (later overrides earlier).
//   • The RNG is resolved lazily by Generate: nil here means "not chosen by
//     the caller", which Generate turns into a time-seeded source.
//
// Defaults:
//   • rng       = nil   (resolved to time-seeded in Generate)
//   • symmetric = false (independent draw per ordered pair)

package builder

import (
	"math/rand"
	"time"
)

// config aggregates all knobs used by Generate.
// It is passed by VALUE (immutable to callers).
type config struct {
	// RNG for weight draws; nil means "caller did not choose".
	rng *rand.Rand
	// Mirror the upper triangle into the lower one.
	symmetric bool
}

// newConfig constructs a config with defaults and applies all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newConfig(opts ...Option) config {
	cfg := config{}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// source returns the configured RNG or a fresh time-seeded one.
func (c config) source() *rand.Rand {
	if c.rng != nil {
		return c.rng
	}

	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
