// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/intmat/zint"

// mulClassical computes c = a*b with the exact triple loop, one zint.Acc
// per row block. b is transposed once so every inner product walks two
// contiguous slices.
func mulClassical(c, a, b view, e *exec) {
	bt := transpose(b)
	inner := a.c
	e.rowTasks(a.r, func(i0, i1 int) {
		var acc zint.Acc
		for i := i0; i < i1; i++ {
			x := a.row(i)
			crow := c.row(i)
			for j := range crow {
				y := bt[j*inner : (j+1)*inner]
				acc.Reset()
				for k := range x {
					acc.AddMul(x[k], y[k])
				}
				crow[j] = acc.Int()
			}
		}
	})
}

// addMulClassical sets c += a*b sequentially. Used for the Strassen
// odd-size fix-ups, which are thin.
func addMulClassical(c, a, b view) {
	var acc zint.Acc
	for i := 0; i < c.r; i++ {
		x := a.row(i)
		crow := c.row(i)
		for j := range crow {
			acc.Reset()
			acc.Add(crow[j])
			for k := range x {
				acc.AddMul(x[k], b.at(k, j))
			}
			crow[j] = acc.Int()
		}
	}
}

// transpose returns v^T as a flat column-major copy of v.
func transpose(v view) []zint.Int {
	out := make([]zint.Int, v.r*v.c)
	for i := 0; i < v.r; i++ {
		for j, x := range v.row(i) {
			out[j*v.r+i] = x
		}
	}

	return out
}
