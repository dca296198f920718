// SPDX-License-Identifier: MIT

package zint

import (
	"fmt"
	"math/big"
	"math/bits"
	"math/rand"
	"strconv"
)

// SmallMaxBits is the largest magnitude bit length stored inline.
// Two bits of head-room keep the sum of two inline values inside int64.
const SmallMaxBits = 62

// SmallMax is the largest magnitude stored inline.
const SmallMax = 1<<SmallMaxBits - 1

// Int is a signed arbitrary-precision integer in canonical form.
// The zero value is 0 and ready to use.
type Int struct {
	small int64    // value when big == nil
	big   *big.Int // owned limbs; non-nil only when |value| > SmallMax
}

// FromInt64 returns v in canonical form.
func FromInt64(v int64) Int {
	if v >= -SmallMax && v <= SmallMax {
		return Int{small: v}
	}

	return Int{big: big.NewInt(v)}
}

// FromBig returns a canonical copy of x. x is not retained.
func FromBig(x *big.Int) Int {
	if x == nil {
		return Int{}
	}

	return own(new(big.Int).Set(x))
}

// own takes ownership of x and demotes it when it fits inline.
func own(x *big.Int) Int {
	if x.BitLen() <= SmallMaxBits {
		return Int{small: x.Int64()}
	}

	return Int{big: x}
}

// Parse reads a base-10 integer.
func Parse(s string) (Int, error) {
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return FromInt64(v), nil
	}
	x, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Int{}, fmt.Errorf("Parse(%q): %w", s, ErrSyntax)
	}

	return own(x), nil
}

// MustParse is like Parse but panics on malformed input. Intended for
// literals in tests and examples.
func MustParse(s string) Int {
	x, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return x
}

// Random returns a uniformly distributed value with magnitude below 2^nbits.
// When signed is true the sign is drawn from rng as well.
func Random(rng *rand.Rand, nbits int, signed bool) Int {
	if nbits <= 0 {
		return Int{}
	}
	var x Int
	if nbits <= SmallMaxBits {
		x = Int{small: rng.Int63n(int64(1) << uint(nbits))}
	} else {
		bound := new(big.Int).Lsh(big.NewInt(1), uint(nbits))
		x = own(new(big.Int).Rand(rng, bound))
	}
	if signed && rng.Intn(2) == 1 {
		x = Neg(x)
	}

	return x
}

// IsSmall reports whether x is stored inline.
func (x Int) IsSmall() bool { return x.big == nil }

// Small returns the inline value and true, or (0, false) for owned values.
func (x Int) Small() (int64, bool) {
	if x.big != nil {
		return 0, false
	}

	return x.small, true
}

// Sign returns -1, 0 or +1.
func (x Int) Sign() int {
	if x.big != nil {
		return x.big.Sign()
	}
	switch {
	case x.small < 0:
		return -1
	case x.small > 0:
		return 1
	}

	return 0
}

// IsZero reports x == 0.
func (x Int) IsZero() bool { return x.big == nil && x.small == 0 }

// BitLen returns the bit length of |x|. BitLen(0) == 0.
func (x Int) BitLen() int {
	if x.big != nil {
		return x.big.BitLen()
	}
	if x.small < 0 {
		return bits.Len64(uint64(-x.small))
	}

	return bits.Len64(uint64(x.small))
}

// Cmp compares x and y and returns -1, 0 or +1.
func (x Int) Cmp(y Int) int {
	if x.big == nil && y.big == nil {
		switch {
		case x.small < y.small:
			return -1
		case x.small > y.small:
			return 1
		}

		return 0
	}
	var tx, ty big.Int

	return x.view(&tx).Cmp(y.view(&ty))
}

// Equal reports x == y.
func (x Int) Equal(y Int) bool {
	if (x.big == nil) != (y.big == nil) {
		return false // canonical form: representations differ only when values do
	}
	if x.big == nil {
		return x.small == y.small
	}

	return x.big.Cmp(y.big) == 0
}

// Big returns a fresh *big.Int holding x.
func (x Int) Big() *big.Int {
	if x.big != nil {
		return new(big.Int).Set(x.big)
	}

	return big.NewInt(x.small)
}

// view returns x as a read-only *big.Int, using tmp for inline values.
func (x Int) view(tmp *big.Int) *big.Int {
	if x.big != nil {
		return x.big
	}

	return tmp.SetInt64(x.small)
}

// String implements fmt.Stringer (base 10).
func (x Int) String() string {
	if x.big != nil {
		return x.big.String()
	}

	return strconv.FormatInt(x.small, 10)
}
