// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/intmat/matrix"
)

func signed(bits int) matrix.Profile   { return matrix.Profile{Bits: bits, Signed: true} }
func unsigned(bits int) matrix.Profile { return matrix.Profile{Bits: bits} }

func TestSelect_Regimes(t *testing.T) {
	t.Parallel()

	th := matrix.DefaultThresholds()
	cases := []struct {
		name    string
		m, k, n int
		pa, pb  matrix.Profile
		workers int
		fast    bool
		want    matrix.Kernel
	}{
		{"empty rows", 0, 5, 5, signed(10), signed(10), 1, true, matrix.KernelZero},
		{"empty inner", 5, 0, 5, signed(10), signed(10), 1, true, matrix.KernelZero},
		{"zero operand", 5, 5, 5, unsigned(0), signed(10), 1, true, matrix.KernelZero},
		{"inner one", 100, 1, 100, signed(5000), signed(5000), 1, true, matrix.KernelOuter},
		{"inner two", 100, 2, 100, signed(5000), signed(5000), 1, true, matrix.KernelFMMA},
		{"float", 100, 100, 100, signed(20), signed(20), 1, true, matrix.KernelFloat},
		{"float too small", 50, 50, 50, signed(20), signed(20), 1, true, matrix.KernelSmall1},
		{"float unavailable", 100, 100, 100, signed(20), signed(20), 1, false, matrix.KernelSmall1},
		{"float cbits 54", 100, 100, 100, signed(23), signed(23), 1, true, matrix.KernelSmall1},
		{"small1", 10, 10, 10, signed(20), signed(20), 1, false, matrix.KernelSmall1},
		{"small2", 10, 10, 10, signed(60), signed(60), 1, false, matrix.KernelSmall2},
		{"small3", 10, 10, 10, signed(62), signed(62), 1, false, matrix.KernelSmall3},
		{"small few rows", 4, 5000, 5000, signed(62), signed(62), 1, false, matrix.KernelSmall3},
		{"small strassen", 1400, 1400, 1400, unsigned(20), unsigned(20), 1, false, matrix.KernelStrassen},
		{"small strassen held by workers", 1400, 1400, 1400, unsigned(20), unsigned(20), 8, false, matrix.KernelSmall1},
		{"small multimod", 4500, 4500, 4500, signed(62), signed(62), 1, false, matrix.KernelMultiMod},
		{"doubleword", 10, 10, 10, signed(100), signed(127), 1, false, matrix.KernelDoubleWord},
		{"doubleword unsigned 128", 10, 10, 10, unsigned(128), unsigned(64), 1, false, matrix.KernelDoubleWord},
		{"signed 128 is huge", 10, 10, 10, signed(128), signed(64), 1, false, matrix.KernelClassical},
		{"doubleword multimod", 2000, 2000, 2000, signed(127), signed(127), 1, false, matrix.KernelMultiMod},
		{"huge multimod", 40, 40, 40, signed(1000), signed(1000), 1, false, matrix.KernelMultiMod},
		{"huge waksman", 4, 4, 4, signed(2000), signed(2000), 1, false, matrix.KernelWaksman},
		{"huge unbalanced", 4, 4, 4, signed(4000), signed(200), 1, false, matrix.KernelClassical},
		{"huge dim 2 waksman", 2, 9, 2, signed(6000), signed(6000), 1, false, matrix.KernelWaksman},
		{"huge dim 2 below", 2, 9, 2, signed(4000), signed(4000), 1, false, matrix.KernelClassical},
	}
	for _, tc := range cases {
		got := matrix.Select(tc.m, tc.k, tc.n, tc.pa, tc.pb, th, tc.workers, tc.fast)
		require.Equal(t, tc.want, got, "%s: got %s", tc.name, got)
	}
}

func TestSelect_StrassenForHugeMidDims(t *testing.T) {
	t.Parallel()

	th := matrix.DefaultThresholds()
	th.MultiModBitsFactor = 1000 // keep multi-modular out of the way
	th.WaksmanMaxDim = 0
	got := matrix.Select(16, 16, 16, signed(600), signed(600), th, 1, false)
	require.Equal(t, matrix.KernelStrassen, got)

	got = matrix.Select(6, 16, 16, signed(600), signed(600), th, 1, false)
	require.Equal(t, matrix.KernelClassical, got)
}

func TestKernelString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "auto", matrix.KernelAuto.String())
	require.Equal(t, "multimod", matrix.KernelMultiMod.String())
	require.Equal(t, "float", matrix.KernelFloat.String())
	require.Equal(t, "Kernel(99)", matrix.Kernel(99).String())
}
