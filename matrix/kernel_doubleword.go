// SPDX-License-Identifier: MIT

package matrix

import (
	"math/bits"

	"github.com/katalvlaran/intmat/zint"
)

// dword is an entry of at most 128 bits as sign and magnitude words.
type dword struct {
	hi, lo uint64
	neg    bool
}

// acc320 is an unsigned 5-word accumulator of 256-bit products.
type acc320 [5]uint64

// mulDoubleWord computes c = a*b for entries with bits+sign <= 128.
//
// Each 256-bit term is added to one of two unsigned accumulators, positive
// and negative terms apart, and the sign is applied once per cell. Operands
// without negative entries never touch the negative accumulator.
func mulDoubleWord(c, a, b view, e *exec) {
	inner := a.c
	av := unpackDword(a, false)
	bt := unpackDword(b, true)
	e.rowTasks(a.r, func(i0, i1 int) {
		var mag [5]uint64
		for i := i0; i < i1; i++ {
			x := av[i*inner : (i+1)*inner]
			crow := c.row(i)
			for j := range crow {
				y := bt[j*inner : (j+1)*inner]
				var pos, neg acc320
				for k := range x {
					if x[k].neg != y[k].neg {
						neg.addProduct(x[k], y[k])
					} else {
						pos.addProduct(x[k], y[k])
					}
				}
				sign := pos.sub(&neg, &mag)
				crow[j] = zint.FromWords(sign, mag[:])
			}
		}
	})
}

func unpackDword(v view, transpose bool) []dword {
	out := make([]dword, v.r*v.c)
	var limbs [2]uint64
	for i := 0; i < v.r; i++ {
		for j, x := range v.row(i) {
			w := zint.AbsWords(limbs[:0], x)
			var d dword
			if len(w) > 0 {
				d.lo = w[0]
			}
			if len(w) > 1 {
				d.hi = w[1]
			}
			d.neg = x.Sign() < 0
			if transpose {
				out[j*v.r+i] = d
			} else {
				out[i*v.c+j] = d
			}
		}
	}

	return out
}

// addProduct adds |x|*|y| (up to 256 bits) to a.
func (a *acc320) addProduct(x, y dword) {
	h00, l00 := bits.Mul64(x.lo, y.lo)
	h01, l01 := bits.Mul64(x.lo, y.hi)
	h10, l10 := bits.Mul64(x.hi, y.lo)
	h11, l11 := bits.Mul64(x.hi, y.hi)

	var c, c2 uint64
	p1, c := bits.Add64(h00, l01, 0)
	p1, c2 = bits.Add64(p1, l10, 0)
	p2, c3 := bits.Add64(h01, h10, c)
	p2, c4 := bits.Add64(p2, l11, c2)
	p3 := h11 + c3 + c4 // cannot overflow: the product fits 256 bits

	a[0], c = bits.Add64(a[0], l00, 0)
	a[1], c = bits.Add64(a[1], p1, c)
	a[2], c = bits.Add64(a[2], p2, c)
	a[3], c = bits.Add64(a[3], p3, c)
	a[4] += c
}

// sub stores |a - n| in out and reports whether a < n.
func (a *acc320) sub(n *acc320, out *[5]uint64) bool {
	var borrow uint64
	for i := range a {
		out[i], borrow = bits.Sub64(a[i], n[i], borrow)
	}
	if borrow == 0 {
		return false
	}
	// a < n: negate the two's complement difference.
	borrow = 0
	for i := range out {
		out[i], borrow = bits.Sub64(0, out[i], borrow)
	}

	return true
}
