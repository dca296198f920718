// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/intmat/zint"

// mulWaksman computes c = a*b with Waksman's algorithm, which trades about
// half of the large multiplications for cheap additions.
//
// For row l, column k and inner pairs j:
//
//	P+ = sum_j (a[l,2j] + b[2j+1,k]) * (a[l,2j+1] + b[2j,k]) = C[l,k] + xi_l + eta_k
//	P- = sum_j (a[l,2j] - b[2j+1,k]) * (a[l,2j+1] - b[2j,k]) = xi_l + eta_k - C[l,k]
//
// with xi_l = sum_j a[l,2j]*a[l,2j+1] and eta_k = sum_j b[2j,k]*b[2j+1,k].
// Row 0 and column 0 evaluate both sums, which yields xi_l+eta_0 and
// xi_0+eta_k; every other cell needs only P+. An odd inner dimension adds
// the last term directly.
func mulWaksman(c, a, b view, e *exec) {
	m, n, p := a.r, a.c, b.c
	half := n / 2
	bt := transpose(b)
	bcol := func(k int) []zint.Int { return bt[k*n : (k+1)*n] }

	rowSum := make([]zint.Int, m) // xi_l + eta_0
	colSum := make([]zint.Int, p) // xi_0 + eta_k

	both := func(x, y []zint.Int, plus, minus *zint.Acc) (cell, sum zint.Int) {
		plus.Reset()
		minus.Reset()
		for j := 0; j < half; j++ {
			a1, a2 := x[2*j], x[2*j+1]
			b1, b2 := y[2*j], y[2*j+1]
			plus.AddMul(zint.Add(a1, b2), zint.Add(a2, b1))
			minus.AddMul(zint.Sub(a1, b2), zint.Sub(a2, b1))
		}
		pp, pm := plus.Int(), minus.Int()

		return zint.Rsh(zint.Sub(pp, pm), 1), zint.Rsh(zint.Add(pp, pm), 1)
	}

	// Column 0 for every row, row 0 for every column.
	e.rowTasks(m, func(i0, i1 int) {
		var plus, minus zint.Acc
		for l := i0; l < i1; l++ {
			var cell zint.Int
			cell, rowSum[l] = both(a.row(l), bcol(0), &plus, &minus)
			c.set(l, 0, cell)
		}
	})
	e.rowTasks(p, func(k0, k1 int) {
		var plus, minus zint.Acc
		for k := max(k0, 1); k < k1; k++ {
			var cell zint.Int
			cell, colSum[k] = both(a.row(0), bcol(k), &plus, &minus)
			c.set(0, k, cell)
		}
	})
	if p > 0 {
		colSum[0] = rowSum[0]
	}

	// Remaining cells: P+ minus the interpolated xi_l + eta_k.
	e.rowTasks(m, func(i0, i1 int) {
		var plus zint.Acc
		for l := max(i0, 1); l < i1; l++ {
			x := a.row(l)
			for k := 1; k < p; k++ {
				y := bcol(k)
				plus.Reset()
				for j := 0; j < half; j++ {
					plus.AddMul(zint.Add(x[2*j], y[2*j+1]), zint.Add(x[2*j+1], y[2*j]))
				}
				plus.Add(colSum[0])
				v := zint.Sub(plus.Int(), zint.Add(rowSum[l], colSum[k]))
				c.set(l, k, v)
			}
		}
	})

	if n%2 == 1 {
		last := n - 1
		e.rowTasks(m, func(i0, i1 int) {
			for l := i0; l < i1; l++ {
				x := a.at(l, last)
				for k := 0; k < p; k++ {
					c.set(l, k, zint.AddMul(c.at(l, k), x, bt[k*n+last]))
				}
			}
		})
	}
}
