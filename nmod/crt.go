// SPDX-License-Identifier: MIT

package nmod

import "math/bits"

// CRT reconstructs signed integers from residues modulo a fixed list of
// pairwise coprime moduli using Garner's mixed-radix algorithm.
//
// All tables are built once by NewCRT; Reconstruct only reads them, so a
// CRT may be shared by concurrent workers as long as each brings its own
// scratch space.
type CRT struct {
	mods []Modulus
	// pmod[k][j] = p_j mod p_k for j < k.
	pmod [][]uint64
	// coef[k] = (p_0 * ... * p_{k-1})^-1 mod p_k.
	coef []uint64
	// prod and half are M = prod p_i and floor(M/2) as little-endian limbs.
	prod []uint64
	half []uint64
}

// NewCRT precomputes the Garner tables for primes. It panics when two
// moduli are not coprime.
func NewCRT(primes []uint64) *CRT {
	t := len(primes)
	c := &CRT{
		mods: make([]Modulus, t),
		pmod: make([][]uint64, t),
		coef: make([]uint64, t),
	}
	for k, p := range primes {
		c.mods[k] = NewModulus(p)
	}
	for k := 1; k < t; k++ {
		mk := c.mods[k]
		row := make([]uint64, k)
		acc := mk.Reduce(1)
		for j := 0; j < k; j++ {
			row[j] = mk.Reduce(primes[j])
			acc = mk.Mul(acc, row[j])
		}
		inv, ok := mk.Inv(acc)
		if !ok {
			panic("nmod: CRT moduli are not coprime")
		}
		c.pmod[k] = row
		c.coef[k] = inv
	}

	c.prod = []uint64{1}
	for _, p := range primes {
		c.prod = mulAddLimbs(c.prod, p, 0)
	}
	c.half = make([]uint64, len(c.prod))
	for i := range c.prod {
		c.half[i] = c.prod[i] >> 1
		if i+1 < len(c.prod) {
			c.half[i] |= c.prod[i+1] << 63
		}
	}
	c.half = trim(c.half)

	return c
}

// Len reports the number of moduli.
func (c *CRT) Len() int { return len(c.mods) }

// Modulus returns the k-th modulus.
func (c *CRT) Modulus(k int) Modulus { return c.mods[k] }

// Reconstruct returns the unique value v with |v| <= M/2 and
// v = res[k] mod p_k, as a sign and little-endian magnitude limbs.
//
// mixed must have room for Len() words; limbs is reused as the result
// buffer. The returned limbs alias that buffer.
func (c *CRT) Reconstruct(res, mixed, limbs []uint64) (neg bool, out []uint64) {
	t := len(c.mods)
	mixed = mixed[:t]
	mixed[0] = res[0]
	for k := 1; k < t; k++ {
		mk := c.mods[k]
		row := c.pmod[k]
		// Horner: v_0 + v_1 p_0 + ... + v_{k-1} p_0...p_{k-2} mod p_k
		acc := mk.Reduce(mixed[k-1])
		for j := k - 2; j >= 0; j-- {
			acc = mk.Add(mk.Mul(acc, row[j]), mk.Reduce(mixed[j]))
		}
		mixed[k] = mk.Mul(mk.Sub(mk.Reduce(res[k]), acc), c.coef[k])
	}

	out = append(limbs[:0], mixed[t-1])
	for j := t - 2; j >= 0; j-- {
		out = mulAddLimbs(out, c.mods[j].N, mixed[j])
	}
	out = trim(out)
	if cmpLimbs(out, c.half) > 0 {
		out = subFromLimbs(out, c.prod)

		return true, trim(out)
	}

	return false, out
}

// mulAddLimbs returns x*m + a.
func mulAddLimbs(x []uint64, m, a uint64) []uint64 {
	carry := a
	for i, w := range x {
		hi, lo := bits.Mul64(w, m)
		var c uint64
		lo, c = bits.Add64(lo, carry, 0)
		x[i] = lo
		carry = hi + c
	}
	if carry != 0 {
		x = append(x, carry)
	}

	return x
}

// subFromLimbs sets x = m - x for x <= m.
func subFromLimbs(x, m []uint64) []uint64 {
	var borrow uint64
	for i := range m {
		var xi uint64
		if i < len(x) {
			xi = x[i]
		}
		d, b := bits.Sub64(m[i], xi, borrow)
		if i < len(x) {
			x[i] = d
		} else {
			x = append(x, d)
		}
		borrow = b
	}

	return x
}

func cmpLimbs(x, y []uint64) int {
	x, y = trim(x), trim(y)
	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}

		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}

	return 0
}

func trim(x []uint64) []uint64 {
	n := len(x)
	for n > 0 && x[n-1] == 0 {
		n--
	}

	return x[:n]
}
