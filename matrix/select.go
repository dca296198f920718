// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/intmat/zint"
)

// Kernel identifies one multiplication algorithm.
type Kernel int

const (
	// KernelAuto lets Select decide; only meaningful for WithKernel.
	KernelAuto Kernel = iota
	// KernelZero writes the zero matrix (empty shape or all-zero operand).
	KernelZero
	// KernelOuter handles inner dimension 1 with one product per cell.
	KernelOuter
	// KernelFMMA handles inner dimension 2 with a fused a0*b0 + a1*b1 per cell.
	KernelFMMA
	// KernelSmall1 accumulates in one signed machine word.
	KernelSmall1
	// KernelSmall2 accumulates in a signed 128-bit word pair.
	KernelSmall2
	// KernelSmall3 accumulates in a signed 192-bit word triple.
	KernelSmall3
	// KernelDoubleWord accumulates 256-bit products of entries up to 128 bits.
	KernelDoubleWord
	// KernelStrassen is the 7-product block recursion.
	KernelStrassen
	// KernelMultiMod multiplies modulo word-sized primes and reconstructs via CRT.
	KernelMultiMod
	// KernelWaksman is the balanced-entry algorithm for huge entries.
	KernelWaksman
	// KernelClassical is the exact triple loop.
	KernelClassical
	// KernelFloat runs the float64 accelerator under the exactness bound.
	KernelFloat
)

var kernelNames = [...]string{
	KernelAuto:       "auto",
	KernelZero:       "zero",
	KernelOuter:      "outer",
	KernelFMMA:       "fmma",
	KernelSmall1:     "small1",
	KernelSmall2:     "small2",
	KernelSmall3:     "small3",
	KernelDoubleWord: "doubleword",
	KernelStrassen:   "strassen",
	KernelMultiMod:   "multimod",
	KernelWaksman:    "waksman",
	KernelClassical:  "classical",
	KernelFloat:      "float",
}

// String implements fmt.Stringer.
func (k Kernel) String() string {
	if k < 0 || int(k) >= len(kernelNames) {
		return fmt.Sprintf("Kernel(%d)", int(k))
	}

	return kernelNames[k]
}

// floatExactBits is the largest output bound for which every partial sum
// is an integer exactly representable in float64.
const floatExactBits = 53

// smallWordBits etc. are the accumulator capacities of the small kernels.
const (
	smallWordBits = zint.SmallMaxBits // one word, inline entries
	small2Bits    = 2*64 - 1          // signed 128-bit
	doubleWord    = 2 * 64
)

// Select chooses the kernel for a rows×inner by inner×cols product.
//
// Implementation:
//   - Stage 1: empty shapes and all-zero operands -> KernelZero.
//   - Stage 2: inner 1 and 2 have dedicated scalar kernels.
//   - Stage 3: compute cbits; the float path preempts when cbits <= 53,
//     the accelerator is usable (fast) and the dimension is large enough.
//   - Stage 4: small entries, then double-word entries, then huge entries,
//     each with its own dimension cut-overs scaled by workers.
//
// Determinism:
//   - Pure function of its arguments.
//
// Notes:
//   - Thresholds only trade constant factors; every kernel returned here is
//     exact for the given profiles.
func Select(rows, inner, cols int, pa, pb Profile, th Thresholds, workers int, fast bool) Kernel {
	if rows == 0 || inner == 0 || cols == 0 || pa.Bits == 0 || pb.Bits == 0 {
		return KernelZero
	}
	switch inner {
	case 1:
		return KernelOuter
	case 2:
		return KernelFMMA
	}
	if workers < 1 {
		workers = 1
	}

	dim := min(rows, inner, cols)
	cbits := outputBits(pa, pb, inner)
	sign := 0
	if pa.Signed || pb.Signed {
		sign = 1
	}

	if fast && cbits <= floatExactBits && dim > th.FloatMinDim {
		return KernelFloat
	}

	switch {
	case pa.Bits <= smallWordBits && pb.Bits <= smallWordBits:
		if rows < th.SmallRowsCutoff || rows+inner < th.SmallRowsInnerCutoff {
			return smallKernel(cbits)
		}
		if dim > th.SmallLargeDim {
			limit := th.SmallPerWorker * workers
			if cbits <= smallWordBits && dim-th.SmallLargeDim > limit {
				return KernelStrassen
			}
			if cbits > smallWordBits && dim-th.MultiModSmallDim > limit {
				return KernelMultiMod
			}
		}

		return smallKernel(cbits)

	case pa.Bits+sign <= doubleWord && pb.Bits+sign <= doubleWord:
		if sign == 1 {
			dim *= 2
		}
		if dim > th.DoubleWordDim {
			limit := (cbits - doubleWord) / 8
			limit = limit * limit * workers
			if dim-th.DoubleWordDim > limit {
				return KernelMultiMod
			}
		}

		return KernelDoubleWord
	}

	lo, hi := min(pa.Bits, pb.Bits), max(pa.Bits, pb.Bits)
	switch {
	case dim >= th.MultiModBitsFactor*bits.Len(uint(cbits)):
		return KernelMultiMod
	case dim < th.WaksmanMaxDim && waksmanBalanced(dim, lo, hi, th):
		return KernelWaksman
	case pa.Bits >= th.StrassenMinBits && pb.Bits >= th.StrassenMinBits && dim >= th.StrassenMinDim:
		return KernelStrassen
	}

	return KernelClassical
}

func waksmanBalanced(dim, lo, hi int, th Thresholds) bool {
	flo, fhi := float64(lo), float64(hi)
	if dim == 2 {
		return lo >= th.WaksmanMinBits2 && fhi <= th.WaksmanRatio2*flo
	}
	if fhi > th.WaksmanRatio*flo {
		return false
	}

	return (dim == 3 && lo >= th.WaksmanMinBits3) ||
		(dim >= 4 && lo >= th.WaksmanMinBits4) ||
		(dim >= 12 && lo >= th.WaksmanMinBits12)
}

// smallKernel returns the narrowest word accumulator holding cbits.
func smallKernel(cbits int) Kernel {
	switch {
	case cbits <= smallWordBits:
		return KernelSmall1
	case cbits <= small2Bits:
		return KernelSmall2
	}

	return KernelSmall3
}

// checkKernel reports whether k computes the product of operands with the
// given profiles exactly.
func checkKernel(k Kernel, inner int, pa, pb Profile, fast bool) error {
	cbits := outputBits(pa, pb, inner)
	sign := 0
	if pa.Signed || pb.Signed {
		sign = 1
	}
	small := pa.Bits <= smallWordBits && pb.Bits <= smallWordBits
	ok := true
	switch k {
	case KernelZero:
		ok = inner == 0 || pa.Bits == 0 || pb.Bits == 0
	case KernelOuter:
		ok = inner == 1
	case KernelFMMA:
		ok = inner == 2
	case KernelSmall1:
		ok = small && cbits <= smallWordBits
	case KernelSmall2:
		ok = small && cbits <= small2Bits
	case KernelSmall3:
		ok = small
	case KernelDoubleWord:
		ok = pa.Bits+sign <= doubleWord && pb.Bits+sign <= doubleWord
	case KernelFloat:
		ok = fast && cbits <= floatExactBits
	case KernelStrassen, KernelMultiMod, KernelWaksman, KernelClassical:
	default:
		ok = false
	}
	if !ok {
		return fmt.Errorf("%s (abits=%d bbits=%d inner=%d): %w", k, pa.Bits, pb.Bits, inner, ErrKernelPrecondition)
	}

	return nil
}
