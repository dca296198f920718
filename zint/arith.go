// SPDX-License-Identifier: MIT

package zint

import (
	"math/big"
	"math/bits"

	"github.com/remyoudompheng/bigfft"
)

// FFTThresholdBits is the operand size from which Mul hands owned operands
// to bigfft. Below it math/big's Karatsuba is faster.
const FFTThresholdBits = 1 << 17

// Neg returns -x.
func Neg(x Int) Int {
	if x.big == nil {
		return Int{small: -x.small}
	}

	return Int{big: new(big.Int).Neg(x.big)}
}

// Abs returns |x|.
func Abs(x Int) Int {
	if x.Sign() >= 0 {
		return x
	}

	return Neg(x)
}

// Add returns x + y.
func Add(x, y Int) Int {
	if x.big == nil && y.big == nil {
		return FromInt64(x.small + y.small) // |sum| < 2^63
	}
	var tx, ty big.Int

	return own(new(big.Int).Add(x.view(&tx), y.view(&ty)))
}

// Sub returns x - y.
func Sub(x, y Int) Int {
	if x.big == nil && y.big == nil {
		return FromInt64(x.small - y.small)
	}
	var tx, ty big.Int

	return own(new(big.Int).Sub(x.view(&tx), y.view(&ty)))
}

// Mul returns x * y.
func Mul(x, y Int) Int {
	if x.big == nil && y.big == nil {
		hi, lo := bits.Mul64(abs64(x.small), abs64(y.small))

		return fromMag2((x.small < 0) != (y.small < 0), hi, lo)
	}
	if x.IsZero() || y.IsZero() {
		return Int{}
	}
	var tx, ty big.Int

	return own(mulBig(x.view(&tx), y.view(&ty)))
}

// AddMul returns z + x*y.
func AddMul(z, x, y Int) Int {
	if x.big == nil && y.big == nil && z.big == nil {
		hi, lo := mulSigned128(x.small, y.small)
		var carry uint64
		lo, carry = bits.Add64(lo, uint64(z.small), 0)
		hi, _ = bits.Add64(hi, uint64(z.small>>63), carry)

		return FromSigned128(hi, lo)
	}

	return Add(z, Mul(x, y))
}

// SubMul returns z - x*y.
func SubMul(z, x, y Int) Int {
	return AddMul(z, Neg(x), y)
}

// Fmma returns a*b + c*d.
func Fmma(a, b, c, d Int) Int {
	if a.big == nil && b.big == nil && c.big == nil && d.big == nil {
		h1, l1 := mulSigned128(a.small, b.small)
		h2, l2 := mulSigned128(c.small, d.small)
		lo, carry := bits.Add64(l1, l2, 0)
		hi, _ := bits.Add64(h1, h2, carry) // each |product| < 2^124

		return FromSigned128(hi, lo)
	}

	return Add(Mul(a, b), Mul(c, d))
}

// Fmms returns a*b - c*d.
func Fmms(a, b, c, d Int) Int {
	return Fmma(a, b, Neg(c), d)
}

// Rsh returns x >> n, rounding toward negative infinity.
func Rsh(x Int, n uint) Int {
	if x.big == nil {
		if n >= 63 {
			return Int{small: x.small >> 63}
		}

		return Int{small: x.small >> n}
	}

	return own(new(big.Int).Rsh(x.big, n))
}

// mulBig multiplies two big integers, switching to FFT multiplication
// when both operands are large enough.
func mulBig(x, y *big.Int) *big.Int {
	if x.BitLen() >= FFTThresholdBits && y.BitLen() >= FFTThresholdBits {
		return bigfft.Mul(x, y)
	}

	return new(big.Int).Mul(x, y)
}
