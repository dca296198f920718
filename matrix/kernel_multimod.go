// SPDX-License-Identifier: MIT

package matrix

import (
	"math/bits"

	"github.com/katalvlaran/intmat/nmod"
	"github.com/katalvlaran/intmat/zint"
)

// limbEntry is an operand entry as sign and little-endian magnitude limbs.
type limbEntry struct {
	w   []uint64
	neg bool
}

// mulMultiMod computes c = a*b modulo enough word-sized primes to cover
// 2^(cbits+1) and lifts every cell back with Garner CRT.
//
// Implementation:
//   - Stage 1: pick primes from cbits alone (nmod.PrimesFor).
//   - Stage 2: one task per prime reduces both operands and multiplies with a
//     3-word accumulator and a single preinv reduction per cell.
//   - Stage 3: row blocks reconstruct cells from their residues; values above
//     half the modulus product become negative.
func mulMultiMod(c, a, b view, cbits int, e *exec) {
	primes := nmod.PrimesFor(cbits)
	t := len(primes)
	inner, cols := a.c, b.c

	al := unpackLimbs(a, false)
	bl := unpackLimbs(b, true)

	res := make([][]uint64, t)
	e.sched.Run(t, func(p int) {
		m := nmod.NewModulus(primes[p])
		ar := reduceEntries(al, m)
		bt := reduceEntries(bl, m)
		out := make([]uint64, a.r*cols)
		e.rowTasks(a.r, func(i0, i1 int) {
			for i := i0; i < i1; i++ {
				x := ar[i*inner : (i+1)*inner]
				for j := 0; j < cols; j++ {
					y := bt[j*inner : (j+1)*inner]
					var h2, h1, h0 uint64
					for k := range x {
						hi, lo := bits.Mul64(x[k], y[k])
						var cy uint64
						h0, cy = bits.Add64(h0, lo, 0)
						h1, cy = bits.Add64(h1, hi, cy)
						h2 += cy
					}
					out[i*cols+j] = m.Reduce3(h2, h1, h0)
				}
			}
		})
		res[p] = out
	})

	crt := nmod.NewCRT(primes)
	e.rowTasks(a.r, func(i0, i1 int) {
		residues := make([]uint64, t)
		mixed := make([]uint64, t)
		var limbs []uint64
		for i := i0; i < i1; i++ {
			crow := c.row(i)
			for j := range crow {
				for p := range res {
					residues[p] = res[p][i*cols+j]
				}
				var neg bool
				neg, limbs = crt.Reconstruct(residues, mixed, limbs)
				crow[j] = zint.FromWords(neg, limbs)
			}
		}
	})
}

func unpackLimbs(v view, transpose bool) []limbEntry {
	out := make([]limbEntry, v.r*v.c)
	for i := 0; i < v.r; i++ {
		for j, x := range v.row(i) {
			le := limbEntry{w: zint.AbsWords(nil, x), neg: x.Sign() < 0}
			if transpose {
				out[j*v.r+i] = le
			} else {
				out[i*v.c+j] = le
			}
		}
	}

	return out
}

// reduceEntries maps every entry to its residue in [0, p).
func reduceEntries(src []limbEntry, m nmod.Modulus) []uint64 {
	out := make([]uint64, len(src))
	for i, le := range src {
		r := m.ReduceWords(le.w)
		if le.neg {
			r = m.Neg(r)
		}
		out[i] = r
	}

	return out
}
