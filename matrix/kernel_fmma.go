// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/intmat/zint"

// mulOuter handles inner == 1: c[i][j] = a[i][0] * b[0][j].
func mulOuter(c, a, b view, e *exec) {
	brow := b.row(0)
	e.rowTasks(a.r, func(i0, i1 int) {
		for i := i0; i < i1; i++ {
			x := a.at(i, 0)
			crow := c.row(i)
			for j := range crow {
				crow[j] = zint.Mul(x, brow[j])
			}
		}
	})
}

// mulFMMA handles inner == 2: c[i][j] = a[i][0]*b[0][j] + a[i][1]*b[1][j].
func mulFMMA(c, a, b view, e *exec) {
	b0, b1 := b.row(0), b.row(1)
	e.rowTasks(a.r, func(i0, i1 int) {
		for i := i0; i < i1; i++ {
			x0, x1 := a.at(i, 0), a.at(i, 1)
			crow := c.row(i)
			for j := range crow {
				crow[j] = zint.Fmma(x0, b0[j], x1, b1[j])
			}
		}
	})
}
