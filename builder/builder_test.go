// SPDX-License-Identifier: MIT

package builder_test

import (
	"math"
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/intmat/builder"
	"github.com/katalvlaran/intmat/matrix"
	"github.com/katalvlaran/intmat/zint"
)

func TestRandomExactWidth(t *testing.T) {
	t.Parallel()

	for _, bits := range []int{1, 20, 62, 63, 128, 129, 500} {
		m, err := builder.Random(5, 7, bits, builder.WithSeed(int64(bits)))
		require.NoError(t, err)
		require.Equal(t, 5, m.Rows())
		require.Equal(t, 7, m.Cols())
		for i := 0; i < 5; i++ {
			for j := 0; j < 7; j++ {
				x, _ := m.At(i, j)
				require.Equal(t, bits, x.BitLen(), "bits=%d (%d,%d)", bits, i, j)
			}
		}
		require.Equal(t, bits, matrix.MaxBits(m).Bits)
	}
}

func TestRandomDeterministic(t *testing.T) {
	t.Parallel()

	a, err := builder.Random(6, 6, 90, builder.WithSeed(42), builder.WithBitsRange(3, 90))
	require.NoError(t, err)
	b, err := builder.Random(6, 6, 90, builder.WithRand(rand.New(rand.NewSource(42))), builder.WithBitsRange(3, 90))
	require.NoError(t, err)
	require.True(t, a.Equal(b))
}

func TestRandomOptions(t *testing.T) {
	t.Parallel()

	m, err := builder.Random(10, 10, 40, builder.WithSeed(1), builder.WithUnsigned())
	require.NoError(t, err)
	require.False(t, matrix.MaxBits(m).Signed)

	m, err = builder.Random(10, 10, 40, builder.WithSeed(1), builder.WithDensity(0))
	require.NoError(t, err)
	require.Equal(t, 0, matrix.MaxBits(m).Bits)

	m, err = builder.Random(20, 20, 300, builder.WithSeed(3), builder.WithBitsRange(2, 300))
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		for j := 0; j < 20; j++ {
			x, _ := m.At(i, j)
			require.GreaterOrEqual(t, x.BitLen(), 2)
			require.LessOrEqual(t, x.BitLen(), 300)
		}
	}
}

func TestRandomErrors(t *testing.T) {
	t.Parallel()

	_, err := builder.Random(2, 2, 10)
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
	_, err = builder.Random(-1, 2, 10, builder.WithSeed(1))
	require.ErrorIs(t, err, builder.ErrInvalidSize)
	_, err = builder.Random(2, 2, -3, builder.WithSeed(1))
	require.ErrorIs(t, err, builder.ErrInvalidSize)

	require.Panics(t, func() { builder.WithRand(nil) })
	require.Panics(t, func() { builder.WithDensity(1.5) })
	require.Panics(t, func() { builder.WithBitsRange(0, 4) })
	require.Panics(t, func() { builder.WithBitsRange(5, 4) })
}

func TestVandermonde(t *testing.T) {
	t.Parallel()

	m, err := builder.Vandermonde([]int64{2, -3, 0}, 70)
	require.NoError(t, err)
	x, _ := m.At(0, 69)
	require.Equal(t, new(big.Int).Lsh(big.NewInt(1), 69).String(), x.String())
	x, _ = m.At(1, 3)
	require.Equal(t, "-27", x.String())
	x, _ = m.At(2, 0)
	require.Equal(t, "1", x.String())
	x, _ = m.At(2, 5)
	require.True(t, x.IsZero())

	_, err = builder.Vandermonde(nil, -1)
	require.ErrorIs(t, err, builder.ErrInvalidSize)
}

func TestConstant(t *testing.T) {
	t.Parallel()

	v := zint.MustParse("-123456789012345678901234567890")
	m, err := builder.Constant(3, 4, v)
	require.NoError(t, err)
	x, _ := m.At(2, 3)
	require.True(t, v.Equal(x))

	_, err = builder.Constant(-1, 1, v)
	require.ErrorIs(t, err, builder.ErrInvalidSize)

	// Shapes too large to allocate keep their matrix error.
	_, err = builder.Constant(math.MaxInt, 2, v)
	require.ErrorIs(t, err, matrix.ErrAllocation)
	require.NotErrorIs(t, err, builder.ErrInvalidSize)
}
