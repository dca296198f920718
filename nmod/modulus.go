// SPDX-License-Identifier: MIT

// Package nmod implements word-sized modular arithmetic for the
// multi-modular matrix kernel: reduction with a precomputed inverse
// (Möller–Granlund), a cached table of word-sized primes and Garner CRT
// reconstruction.
//
// All moduli are below 2^63; the default prime table stays below 2^62 so
// that residues can be added without overflow.
package nmod

import "math/bits"

// Modulus is a word-sized modulus with its precomputed inverse.
// Values are immutable and safe for concurrent use.
type Modulus struct {
	N    uint64 // the modulus
	ninv uint64 // floor((2^128-1) / (N<<norm)) - 2^64
	norm uint   // leading zeros of N
}

// NewModulus prepares n for preinv reduction. It panics when n == 0.
func NewModulus(n uint64) Modulus {
	if n == 0 {
		panic("nmod: zero modulus")
	}
	norm := uint(bits.LeadingZeros64(n))
	d := n << norm
	inv, _ := bits.Div64(^d, ^uint64(0), d)

	return Modulus{N: n, ninv: inv, norm: norm}
}

// divrem2 returns (u1:u0) mod d for normalized d and u1 < d.
func divrem2(u1, u0, d, dinv uint64) uint64 {
	q1, q0 := bits.Mul64(u1, dinv)
	var c uint64
	q0, c = bits.Add64(q0, u0, 0)
	q1 += u1 + 1 + c
	r := u0 - q1*d
	if r > q0 {
		r += d
	}
	if r >= d {
		r -= d
	}

	return r
}

// Reduce returns a mod N.
func (m Modulus) Reduce(a uint64) uint64 {
	if m.norm == 0 {
		return divrem2(0, a, m.N, m.ninv)
	}
	s := m.norm

	return divrem2(a>>(64-s), a<<s, m.N<<s, m.ninv) >> s
}

// Reduce2 returns (hi:lo) mod N. It requires hi < N.
func (m Modulus) Reduce2(hi, lo uint64) uint64 {
	s := m.norm
	u1, u0 := hi, lo
	if s != 0 {
		u1 = hi<<s | lo>>(64-s)
		u0 = lo << s
	}

	return divrem2(u1, u0, m.N<<s, m.ninv) >> s
}

// Reduce3 returns (h2:h1:h0) mod N for any three words.
func (m Modulus) Reduce3(h2, h1, h0 uint64) uint64 {
	r := m.Reduce(h2)
	r = m.Reduce2(r, h1)

	return m.Reduce2(r, h0)
}

// ReduceWords returns the little-endian multi-word value limbs mod N.
func (m Modulus) ReduceWords(limbs []uint64) uint64 {
	if len(limbs) == 0 {
		return 0
	}
	r := m.Reduce(limbs[len(limbs)-1])
	for i := len(limbs) - 2; i >= 0; i-- {
		r = m.Reduce2(r, limbs[i])
	}

	return r
}

// Add returns a + b mod N for reduced a, b.
func (m Modulus) Add(a, b uint64) uint64 {
	s, c := bits.Add64(a, b, 0)
	if c != 0 || s >= m.N {
		s -= m.N
	}

	return s
}

// Sub returns a - b mod N for reduced a, b.
func (m Modulus) Sub(a, b uint64) uint64 {
	if a >= b {
		return a - b
	}

	return a - b + m.N
}

// Neg returns -a mod N for reduced a.
func (m Modulus) Neg(a uint64) uint64 {
	if a == 0 {
		return 0
	}

	return m.N - a
}

// Mul returns a*b mod N for reduced a, b.
func (m Modulus) Mul(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)

	return m.Reduce2(hi, lo)
}

// Pow returns a^e mod N.
func (m Modulus) Pow(a, e uint64) uint64 {
	r := m.Reduce(1)
	a = m.Reduce(a)
	for e != 0 {
		if e&1 == 1 {
			r = m.Mul(r, a)
		}
		a = m.Mul(a, a)
		e >>= 1
	}

	return r
}

// Inv returns the inverse of a mod N and true, or (0, false) when
// gcd(a, N) != 1.
func (m Modulus) Inv(a uint64) (uint64, bool) {
	a = m.Reduce(a)
	if a == 0 {
		return 0, m.N == 1
	}
	// Extended Euclid tracking only the coefficient of a, kept reduced mod N.
	r0, r1 := m.N, a
	s0, s1 := uint64(0), uint64(1)
	for r1 != 0 {
		q := r0 / r1
		r0, r1 = r1, r0-q*r1
		s0, s1 = s1, m.Sub(s0, m.Mul(m.Reduce(q), s1))
	}
	if r0 != 1 {
		return 0, false
	}

	return s0, true
}
