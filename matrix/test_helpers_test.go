// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide deterministic fixtures (seeded builder calls) and the exact
//     big.Int triple-loop reference every kernel is compared against.

package matrix_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/intmat/builder"
	"github.com/katalvlaran/intmat/matrix"
	"github.com/katalvlaran/intmat/parallel"
	"github.com/katalvlaran/intmat/zint"
)

// MustDense ALLOCATES an r×c *Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// MustRows builds a matrix from int64 rows or fails the test.
func MustRows(t testing.TB, rows [][]int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// MustRandom draws a seeded random matrix or fails the test.
func MustRandom(t testing.TB, r, c, bits int, seed int64, opts ...builder.BuilderOption) *matrix.Dense {
	t.Helper()
	opts = append([]builder.BuilderOption{builder.WithSeed(seed)}, opts...)
	m, err := builder.Random(r, c, bits, opts...)
	require.NoError(t, err)

	return m
}

// refMul is the plain exact triple loop over big.Int.
func refMul(t testing.TB, a, b *matrix.Dense) *matrix.Dense {
	t.Helper()
	out := MustDense(t, a.Rows(), b.Cols())
	acc := new(big.Int)
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < b.Cols(); j++ {
			acc.SetInt64(0)
			for k := 0; k < a.Cols(); k++ {
				x, err := a.At(i, k)
				require.NoError(t, err)
				y, err := b.At(k, j)
				require.NoError(t, err)
				acc.Add(acc, new(big.Int).Mul(x.Big(), y.Big()))
			}
			require.NoError(t, out.Set(i, j, zint.FromBig(acc)))
		}
	}

	return out
}

// requireEqualMatrix compares entry by entry so failures name the cell.
func requireEqualMatrix(t testing.TB, want, got *matrix.Dense, msgAndArgs ...interface{}) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows(), msgAndArgs...)
	require.Equal(t, want.Cols(), got.Cols(), msgAndArgs...)
	for i := 0; i < want.Rows(); i++ {
		for j := 0; j < want.Cols(); j++ {
			w, _ := want.At(i, j)
			g, _ := got.At(i, j)
			if !w.Equal(g) {
				require.Failf(t, "entry mismatch",
					"(%d,%d): want %s, got %s %v", i, j, w, g, msgAndArgs)
			}
		}
	}
}

// testSchedulers lists every scheduler flavour kernels must agree under.
func testSchedulers() map[string]parallel.Scheduler {
	return map[string]parallel.Scheduler{
		"sequential": parallel.Sequential{},
		"pool":       parallel.New(3),
		"group":      parallel.NewGroup(4),
	}
}

// recursiveThresholds makes Strassen recurse on small test shapes and run
// its products in parallel.
func recursiveThresholds() matrix.Thresholds {
	th := matrix.DefaultThresholds()
	th.StrassenCutoff = 2
	th.StrassenParallelDepth = 2

	return th
}
