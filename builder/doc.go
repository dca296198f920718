// SPDX-License-Identifier: MIT

// Package builder constructs integer matrix fixtures for tests, examples
// and benchmarks: random matrices with controlled bit widths, signs and
// density, plus a few structured families.
//
// Determinism is explicit: stochastic constructors require a seeded RNG
// (WithSeed or WithRand) and return ErrNeedRandSource otherwise. The same
// seed and options always produce the same matrix.
//
// Quick start:
//
//	a, _ := builder.Random(64, 64, 200, builder.WithSeed(1))
//	b, _ := builder.Random(64, 64, 200, builder.WithSeed(2), builder.WithBitsRange(1, 200))
//	c, _ := matrix.Product(a, b)
//
// AI-Hints:
//   - Random sets the top bit of every non-zero entry, so MaxBits equals the
//     requested width and the selector regime is predictable.
//   - WithBitsRange gives skewed widths; WithDensity injects zeros.
package builder
