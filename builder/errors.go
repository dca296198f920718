// SPDX-License-Identifier: MIT
// Package: intmat/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w` (see builderErrorf).
//   • Validation panics are confined to option constructors (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrInvalidSize indicates a negative row/column count or bit width.
var ErrInvalidSize = errors.New("builder: parameter out of range")

// ErrNeedRandSource indicates that a stochastic constructor was called
// without WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// Method names used in error context.
const (
	methodRandom      = "Random"
	methodVandermonde = "Vandermonde"
	methodConstant    = "Constant"
)

// builderErrorf wraps err with a constructor name: "<method>: <err>".
func builderErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
