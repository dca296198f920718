// SPDX-License-Identifier: MIT
// Package: intmat/builder
//
// api.go - public constructors.

package builder

import (
	"math/big"
	"math/rand"

	"github.com/katalvlaran/intmat/matrix"
	"github.com/katalvlaran/intmat/zint"
)

// Random returns a rows×cols matrix whose non-zero entries have exactly
// bits bits of magnitude (or a width drawn from WithBitsRange).
//
// Errors:
//   - ErrInvalidSize for negative sizes or bits.
//   - ErrNeedRandSource without WithSeed/WithRand.
//
// Complexity: O(rows*cols*bits/64).
func Random(rows, cols, bits int, opts ...BuilderOption) (*matrix.Dense, error) {
	if rows < 0 || cols < 0 || bits < 0 {
		return nil, builderErrorf(methodRandom, ErrInvalidSize)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, builderErrorf(methodRandom, ErrNeedRandSource)
	}
	m, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, builderErrorf(methodRandom, err)
	}
	lo, hi := bits, bits
	if cfg.bitsHi > 0 {
		lo, hi = cfg.bitsLo, cfg.bitsHi
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if cfg.density < 1 && cfg.rng.Float64() >= cfg.density {
				continue
			}
			w := lo
			if hi > lo {
				w += cfg.rng.Intn(hi - lo + 1)
			}
			_ = m.Set(i, j, exactWidth(cfg.rng, w, cfg.signed))
		}
	}

	return m, nil
}

// exactWidth draws a value whose magnitude has exactly w bits.
func exactWidth(rng *rand.Rand, w int, signed bool) zint.Int {
	if w == 0 {
		return zint.Int{}
	}
	top := zint.FromBig(new(big.Int).Lsh(big.NewInt(1), uint(w-1)))
	x := zint.Add(top, zint.Random(rng, w-1, false))
	if signed && rng.Intn(2) == 1 {
		x = zint.Neg(x)
	}

	return x
}

// Vandermonde returns the len(points)×cols matrix with entry (i, j) equal
// to points[i]^j. Entries grow to about cols*log2|p| bits, which makes it a
// structured multi-limb fixture.
func Vandermonde(points []int64, cols int) (*matrix.Dense, error) {
	if cols < 0 {
		return nil, builderErrorf(methodVandermonde, ErrInvalidSize)
	}
	m, err := matrix.NewDense(len(points), cols)
	if err != nil {
		return nil, builderErrorf(methodVandermonde, err)
	}
	for i, p := range points {
		x := zint.FromInt64(p)
		v := zint.FromInt64(1)
		for j := 0; j < cols; j++ {
			_ = m.Set(i, j, v)
			v = zint.Mul(v, x)
		}
	}

	return m, nil
}

// Constant returns a rows×cols matrix with every entry equal to v.
func Constant(rows, cols int, v zint.Int) (*matrix.Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, builderErrorf(methodConstant, ErrInvalidSize)
	}
	m, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, builderErrorf(methodConstant, err)
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			_ = m.Set(i, j, v)
		}
	}

	return m, nil
}
