// SPDX-License-Identifier: MIT
// Package: intmat/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng      = nil   (stochastic constructors refuse to run)
//   • signed   = true  (each entry draws its sign)
//   • density  = 1.0   (no injected zeros)
//   • bitsLo/Hi = 0    (every entry at the requested width)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
type builderConfig struct {
	rng     *rand.Rand
	signed  bool
	density float64 // probability that an entry is non-zero, in [0,1]
	bitsLo  int     // entry width range; zero keeps every entry at the requested width
	bitsHi  int
}

const (
	defaultSigned  = true
	defaultDensity = 1.0
)

// newBuilderConfig applies options in order over the defaults (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		signed:  defaultSigned,
		density: defaultDensity,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
