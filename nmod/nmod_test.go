// SPDX-License-Identifier: MIT

package nmod_test

import (
	"math/big"
	"math/bits"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/intmat/nmod"
)

func TestReduceMatchesRem(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(5))
	mods := []uint64{1, 2, 3, 7, 1<<32 + 15, 1<<62 - 57, 1<<63 + 29, ^uint64(0)}
	for i := 0; i < 20; i++ {
		mods = append(mods, rng.Uint64()>>uint(rng.Intn(63))|1)
	}
	for _, n := range mods {
		m := nmod.NewModulus(n)
		for i := 0; i < 200; i++ {
			a := rng.Uint64()
			require.Equal(t, a%n, m.Reduce(a), "n=%d a=%d", n, a)

			hi := rng.Uint64() % n
			lo := rng.Uint64()
			require.Equal(t, bits.Rem64(hi, lo, n), m.Reduce2(hi, lo), "n=%d", n)

			h2, h1, h0 := rng.Uint64(), rng.Uint64(), rng.Uint64()
			want := new(big.Int).SetUint64(h2)
			want.Lsh(want, 64).Or(want, new(big.Int).SetUint64(h1))
			want.Lsh(want, 64).Or(want, new(big.Int).SetUint64(h0))
			want.Mod(want, new(big.Int).SetUint64(n))
			require.Equal(t, want.Uint64(), m.Reduce3(h2, h1, h0))
			require.Equal(t, want.Uint64(), m.ReduceWords([]uint64{h0, h1, h2}))
		}
	}
	require.Panics(t, func() { nmod.NewModulus(0) })
}

func TestFieldOps(t *testing.T) {
	t.Parallel()

	p := nmod.Primes(1)[0]
	m := nmod.NewModulus(p)
	rng := rand.New(rand.NewSource(9))
	for i := 0; i < 200; i++ {
		a, b := rng.Uint64()%p, rng.Uint64()%p
		require.Equal(t, (a+b)%p, m.Add(a, b))
		require.Equal(t, m.Add(m.Sub(a, b), b), a)
		require.Equal(t, uint64(0), m.Add(a, m.Neg(a)))
		hi, lo := bits.Mul64(a, b)
		require.Equal(t, bits.Rem64(hi, lo, p), m.Mul(a, b))
		if a != 0 {
			inv, ok := m.Inv(a)
			require.True(t, ok)
			require.Equal(t, uint64(1), m.Mul(a, inv))
			// Fermat.
			require.Equal(t, inv, m.Pow(a, p-2))
		}
	}

	m6 := nmod.NewModulus(6)
	_, ok := m6.Inv(4)
	require.False(t, ok)
}

func TestPrimes(t *testing.T) {
	t.Parallel()

	ps := nmod.Primes(8)
	require.Len(t, ps, 8)
	for i, p := range ps {
		require.Less(t, p, uint64(1)<<nmod.PrimeBits)
		require.True(t, new(big.Int).SetUint64(p).ProbablyPrime(20), "p=%d", p)
		if i > 0 {
			require.Less(t, p, ps[i-1])
		}
	}
	// Cached prefix is stable.
	require.Equal(t, ps, nmod.Primes(20)[:8])
	require.Nil(t, nmod.Primes(0))

	// PrimesFor covers 2^(nbits+1).
	for _, nb := range []int{1, 60, 61, 122, 1000, 10000} {
		prod := big.NewInt(1)
		for _, p := range nmod.PrimesFor(nb) {
			prod.Mul(prod, new(big.Int).SetUint64(p))
		}
		require.Greater(t, prod.BitLen(), nb+1, "nbits=%d", nb)
	}
}

func TestCRTRoundTrip(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(13))
	for _, nb := range []int{10, 61, 62, 130, 700, 3000} {
		ps := nmod.PrimesFor(nb)
		crt := nmod.NewCRT(ps)
		require.Equal(t, len(ps), crt.Len())

		res := make([]uint64, len(ps))
		mixed := make([]uint64, len(ps))
		var limbs []uint64
		bound := new(big.Int).Lsh(big.NewInt(1), uint(nb))
		for i := 0; i < 30; i++ {
			v := new(big.Int).Rand(rng, bound)
			if rng.Intn(2) == 0 {
				v.Neg(v)
			}
			for k, p := range ps {
				bp := new(big.Int).SetUint64(p)
				res[k] = new(big.Int).Mod(v, bp).Uint64()
			}
			var neg bool
			neg, limbs = crt.Reconstruct(res, mixed, limbs)

			got := new(big.Int)
			for j := len(limbs) - 1; j >= 0; j-- {
				got.Lsh(got, 64).Or(got, new(big.Int).SetUint64(limbs[j]))
			}
			if neg {
				got.Neg(got)
			}
			require.Equal(t, v.String(), got.String(), "nbits=%d", nb)
		}
	}
}
