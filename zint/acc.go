// SPDX-License-Identifier: MIT

package zint

import (
	"math/big"
	"math/bits"
)

// Acc accumulates a sum of products without allocating per term.
//
// Products of two inline values go to a signed 192-bit word accumulator,
// which cannot overflow for fewer than 2^63 terms. Everything else goes to
// a reusable big.Int. The zero value is an empty sum.
//
// An Acc is not safe for concurrent use; kernels keep one per worker.
type Acc struct {
	h2, h1, h0 uint64
	v          big.Int
	hasBig     bool
	t, tx, ty  big.Int
}

// Reset empties the accumulator, keeping its buffers.
func (a *Acc) Reset() {
	a.h2, a.h1, a.h0 = 0, 0, 0
	a.hasBig = false
	a.v.SetInt64(0)
}

// AddMul adds x*y.
func (a *Acc) AddMul(x, y Int) {
	if x.big == nil && y.big == nil {
		hi, lo := mulSigned128(x.small, y.small)
		a.add192(uint64(int64(hi)>>63), hi, lo)

		return
	}
	if x.IsZero() || y.IsZero() {
		return
	}
	a.addBigProduct(x, y, false)
}

// SubMul subtracts x*y.
func (a *Acc) SubMul(x, y Int) {
	if x.big == nil && y.big == nil {
		hi, lo := mulSigned128(-x.small, y.small)
		a.add192(uint64(int64(hi)>>63), hi, lo)

		return
	}
	if x.IsZero() || y.IsZero() {
		return
	}
	a.addBigProduct(x, y, true)
}

// Add adds x.
func (a *Acc) Add(x Int) {
	if x.big == nil {
		a.add192(uint64(x.small>>63), uint64(x.small>>63), uint64(x.small))

		return
	}
	a.v.Add(&a.v, x.big)
	a.hasBig = true
}

// Int returns the current sum in canonical form.
func (a *Acc) Int() Int {
	if !a.hasBig {
		return FromSigned192(a.h2, a.h1, a.h0)
	}
	w := FromSigned192(a.h2, a.h1, a.h0)

	return own(new(big.Int).Add(&a.v, w.view(&a.t)))
}

func (a *Acc) add192(x2, x1, x0 uint64) {
	var c uint64
	a.h0, c = bits.Add64(a.h0, x0, 0)
	a.h1, c = bits.Add64(a.h1, x1, c)
	a.h2, _ = bits.Add64(a.h2, x2, c)
}

func (a *Acc) addBigProduct(x, y Int, sub bool) {
	xv, yv := x.view(&a.tx), y.view(&a.ty)
	var p *big.Int
	if xv.BitLen() >= FFTThresholdBits && yv.BitLen() >= FFTThresholdBits {
		p = mulBig(xv, yv)
	} else {
		p = a.t.Mul(xv, yv)
	}
	if sub {
		a.v.Sub(&a.v, p)
	} else {
		a.v.Add(&a.v, p)
	}
	a.hasBig = true
}
