// SPDX-License-Identifier: MIT

package zint

import (
	"math/big"
	"math/bits"
)

// FromWords builds an Int from a sign and little-endian 64-bit magnitude
// limbs. Leading zero limbs are allowed; limbs is not retained.
func FromWords(neg bool, limbs []uint64) Int {
	n := len(limbs)
	for n > 0 && limbs[n-1] == 0 {
		n--
	}
	switch {
	case n == 0:
		return Int{}
	case n == 1:
		return fromMag(neg, limbs[0])
	}

	return Int{big: bigFromLimbs(neg, limbs[:n])}
}

// FromSigned128 converts a two's complement 128-bit value (hi:lo).
func FromSigned128(hi, lo uint64) Int {
	neg := int64(hi) < 0
	if neg {
		var borrow uint64
		lo, borrow = bits.Sub64(0, lo, 0)
		hi, _ = bits.Sub64(0, hi, borrow)
	}

	return fromMag2(neg, hi, lo)
}

// FromSigned192 converts a two's complement 192-bit value (h2:h1:h0).
func FromSigned192(h2, h1, h0 uint64) Int {
	neg := int64(h2) < 0
	if neg {
		var borrow uint64
		h0, borrow = bits.Sub64(0, h0, 0)
		h1, borrow = bits.Sub64(0, h1, borrow)
		h2, _ = bits.Sub64(0, h2, borrow)
	}
	if h2 == 0 {
		return fromMag2(neg, h1, h0)
	}

	return Int{big: bigFromLimbs(neg, []uint64{h0, h1, h2})}
}

// AbsWords appends the little-endian 64-bit limbs of |x| to dst.
// Zero appends nothing.
func AbsWords(dst []uint64, x Int) []uint64 {
	if x.big == nil {
		if x.small == 0 {
			return dst
		}

		return append(dst, abs64(x.small))
	}
	ws := x.big.Bits()
	if bits.UintSize == 64 {
		for _, w := range ws {
			dst = append(dst, uint64(w))
		}

		return dst
	}
	for i := 0; i < len(ws); i += 2 {
		v := uint64(ws[i])
		if i+1 < len(ws) {
			v |= uint64(ws[i+1]) << 32
		}
		dst = append(dst, v)
	}

	return dst
}

func fromMag(neg bool, m uint64) Int {
	if m <= SmallMax {
		v := int64(m)
		if neg {
			v = -v
		}

		return Int{small: v}
	}

	return Int{big: bigFromLimbs(neg, []uint64{m})}
}

func fromMag2(neg bool, hi, lo uint64) Int {
	if hi == 0 {
		return fromMag(neg, lo)
	}

	return Int{big: bigFromLimbs(neg, []uint64{lo, hi})}
}

// bigFromLimbs returns a new *big.Int; limbs must be trimmed and non-empty.
func bigFromLimbs(neg bool, limbs []uint64) *big.Int {
	ws := make([]big.Word, 0, len(limbs)*64/bits.UintSize)
	for _, l := range limbs {
		if bits.UintSize == 64 {
			ws = append(ws, big.Word(l))
		} else {
			ws = append(ws, big.Word(uint32(l)), big.Word(uint32(l>>32)))
		}
	}
	x := new(big.Int).SetBits(ws)
	if neg {
		x.Neg(x)
	}

	return x
}

func abs64(v int64) uint64 {
	if v < 0 {
		return uint64(-v)
	}

	return uint64(v)
}

// mulSigned128 returns x*y as a two's complement 128-bit value.
func mulSigned128(x, y int64) (hi, lo uint64) {
	hi, lo = bits.Mul64(abs64(x), abs64(y))
	if (x < 0) != (y < 0) {
		var borrow uint64
		lo, borrow = bits.Sub64(0, lo, 0)
		hi, _ = bits.Sub64(0, hi, borrow)
	}

	return hi, lo
}
