// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math/rand"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/intmat/matrix"
	"github.com/katalvlaran/intmat/parallel"
)

func TestBlockedFloat64_MulFloat64(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(1))
	// k spans more than one tile.
	m, k, n := 7, 300, 5
	a := make([]float64, m*k)
	b := make([]float64, k*n)
	for i := range a {
		a[i] = float64(rng.Intn(2001) - 1000)
	}
	for i := range b {
		b[i] = float64(rng.Intn(2001) - 1000)
	}
	for name, s := range testSchedulers() {
		acc := matrix.NewBlockedFloat64(s)
		require.True(t, acc.Available())
		require.NotEmpty(t, acc.Name())

		c := make([]float64, m*n)
		for i := range c {
			c[i] = 42 // stale contents are overwritten
		}
		acc.MulFloat64(nil, c, a, b, m, k, n)
		for i := 0; i < m; i++ {
			for j := 0; j < n; j++ {
				var want float64
				for p := 0; p < k; p++ {
					want += a[i*k+p] * b[p*n+j]
				}
				require.Equal(t, want, c[i*n+j], "%s (%d,%d)", name, i, j)
			}
		}
	}
}

func TestBlockedFloat64_Empty(t *testing.T) {
	t.Parallel()

	acc := matrix.NewBlockedFloat64(parallel.Sequential{})
	require.NotPanics(t, func() { acc.MulFloat64(nil, nil, nil, nil, 0, 4, 0) })
}

func TestDefaultAccelerator(t *testing.T) {
	t.Parallel()

	acc := matrix.DefaultAccelerator()
	require.NotNil(t, acc)
	require.Same(t, acc, matrix.DefaultAccelerator())

	// Float-eligible operands are exact whichever path runs.
	a := MustRandom(t, 64, 64, 20, 1)
	b := MustRandom(t, 64, 64, 20, 2)
	got, err := matrix.Product(a, b, matrix.WithAccelerator(acc))
	require.NoError(t, err)
	requireEqualMatrix(t, refMul(t, a, b), got)
}

// countingScheduler runs tasks in the caller and counts Run calls.
type countingScheduler struct {
	runs atomic.Int64
}

func (s *countingScheduler) Run(n int, task func(i int)) {
	s.runs.Add(1)
	for i := 0; i < n; i++ {
		task(i)
	}
}

func (*countingScheduler) Workers() int { return 2 }

func TestMul_FloatUsesCallScheduler(t *testing.T) {
	t.Parallel()

	a := MustRandom(t, 64, 64, 20, 5)
	b := MustRandom(t, 64, 64, 20, 6)
	want := refMul(t, a, b)

	// The accelerator's own scheduler must stay idle.
	own := &countingScheduler{}
	call := &countingScheduler{}
	acc := matrix.NewBlockedFloat64(own)
	got, err := matrix.Product(a, b, matrix.WithAccelerator(acc), matrix.WithScheduler(call),
		matrix.WithKernel(matrix.KernelFloat))
	require.NoError(t, err)
	requireEqualMatrix(t, want, got)
	require.Positive(t, call.runs.Load())
	require.Zero(t, own.runs.Load())

	// Same for the process-wide accelerator when it is available.
	if def := matrix.DefaultAccelerator(); def.Available() {
		call = &countingScheduler{}
		got, err = matrix.Product(a, b, matrix.WithAccelerator(def), matrix.WithScheduler(call),
			matrix.WithKernel(matrix.KernelFloat))
		require.NoError(t, err)
		requireEqualMatrix(t, want, got)
		require.Positive(t, call.runs.Load())
	}
}
