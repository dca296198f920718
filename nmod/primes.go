// SPDX-License-Identifier: MIT

package nmod

import (
	"sync"

	"modernc.org/mathutil"
)

// PrimeBits bounds the primes handed out by Primes: every p < 2^PrimeBits.
const PrimeBits = 62

var primeCache struct {
	mu     sync.Mutex
	primes []uint64
}

// Primes returns the n largest primes below 2^PrimeBits in descending
// order. The list is deterministic and cached process-wide; callers must
// not modify the returned slice.
func Primes(n int) []uint64 {
	if n <= 0 {
		return nil
	}
	primeCache.mu.Lock()
	defer primeCache.mu.Unlock()

	ps := primeCache.primes
	next := uint64(1)<<PrimeBits - 1
	if len(ps) > 0 {
		next = ps[len(ps)-1] - 2
	}
	for len(ps) < n {
		if mathutil.IsPrimeUint64(next) {
			ps = append(ps, next)
		}
		next -= 2
	}
	primeCache.primes = ps

	return ps[:n:n]
}

// PrimesFor returns a prefix of the prime table whose product exceeds
// 2^(nbits+1), enough to recover any signed value of nbits bits by
// symmetric lifting.
func PrimesFor(nbits int) []uint64 {
	// Every prime is above 2^(PrimeBits-1), so each one contributes at
	// least PrimeBits-1 bits to the product.
	return Primes((nbits+1)/(PrimeBits-1) + 1)
}
