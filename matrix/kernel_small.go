// SPDX-License-Identifier: MIT

package matrix

import (
	"math/bits"

	"github.com/katalvlaran/intmat/zint"
)

// mulSmall computes c = a*b for inline entries using a 1, 2 or 3 word
// signed accumulator (k is KernelSmall1, KernelSmall2 or KernelSmall3).
// The caller guarantees the accumulator cannot overflow.
//
// Both operands are unpacked once into int64 slices, b transposed, so the
// inner loop touches no zint values and allocates nothing.
func mulSmall(c, a, b view, k Kernel, e *exec) {
	inner := a.c
	av := unpackSmall(a, false)
	bt := unpackSmall(b, true)
	e.rowTasks(a.r, func(i0, i1 int) {
		for i := i0; i < i1; i++ {
			x := av[i*inner : (i+1)*inner]
			crow := c.row(i)
			for j := range crow {
				y := bt[j*inner : (j+1)*inner]
				switch k {
				case KernelSmall1:
					crow[j] = dot1(x, y)
				case KernelSmall2:
					crow[j] = dot2(x, y)
				default:
					crow[j] = dot3(x, y)
				}
			}
		}
	})
}

// unpackSmall copies the inline values of v into a row-major (or, when
// transpose is set, column-major) int64 slice.
func unpackSmall(v view, transpose bool) []int64 {
	out := make([]int64, v.r*v.c)
	for i := 0; i < v.r; i++ {
		for j, x := range v.row(i) {
			s, _ := x.Small()
			if transpose {
				out[j*v.r+i] = s
			} else {
				out[i*v.c+j] = s
			}
		}
	}

	return out
}

func dot1(x, y []int64) zint.Int {
	var s int64
	for k := range x {
		s += x[k] * y[k]
	}

	return zint.FromInt64(s)
}

func dot2(x, y []int64) zint.Int {
	var shi, slo uint64
	for k := range x {
		hi, lo := smul(x[k], y[k])
		var c uint64
		slo, c = bits.Add64(slo, lo, 0)
		shi += hi + c
	}

	return zint.FromSigned128(shi, slo)
}

func dot3(x, y []int64) zint.Int {
	var s2, s1, s0 uint64
	for k := range x {
		hi, lo := smul(x[k], y[k])
		var c uint64
		s0, c = bits.Add64(s0, lo, 0)
		s1, c = bits.Add64(s1, hi, c)
		s2 += uint64(int64(hi)>>63) + c
	}

	return zint.FromSigned192(s2, s1, s0)
}

// smul returns the two's complement 128-bit product of x and y.
func smul(x, y int64) (hi, lo uint64) {
	hi, lo = bits.Mul64(uint64(x), uint64(y))
	hi -= uint64(x>>63) & uint64(y)
	hi -= uint64(y>>63) & uint64(x)

	return hi, lo
}
