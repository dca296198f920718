// SPDX-License-Identifier: MIT
// Package: intmat/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes a constructor by mutating a builderConfig.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithUnsigned makes every generated entry non-negative.
func WithUnsigned() BuilderOption {
	return func(c *builderConfig) { c.signed = false }
}

// WithDensity sets the probability p in [0,1] that an entry is non-zero.
// Panics outside that range.
func WithDensity(p float64) BuilderOption {
	if !(p >= 0 && p <= 1) {
		panic("builder: WithDensity(p outside [0,1])")
	}

	return func(c *builderConfig) { c.density = p }
}

// WithBitsRange draws every entry width uniformly from [lo, hi]; the hi
// passed here replaces the width argument of Random. Panics unless
// 1 <= lo <= hi.
func WithBitsRange(lo, hi int) BuilderOption {
	if lo < 1 || hi < lo {
		panic("builder: WithBitsRange(need 1 <= lo <= hi)")
	}

	return func(c *builderConfig) { c.bitsLo, c.bitsHi = lo, hi }
}
