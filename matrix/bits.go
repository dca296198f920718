// SPDX-License-Identifier: MIT

package matrix

import "math/bits"

// Profile is the bit-width profile of one operand: the largest absolute
// bit length over all entries and whether any entry is negative.
type Profile struct {
	Bits   int
	Signed bool
}

// MaxBits profiles m. A nil or empty matrix yields the zero Profile.
//
// Complexity: Time O(r*c), Space O(1).
func MaxBits(m *Dense) Profile {
	if m == nil {
		return Profile{}
	}

	return profileView(m.view())
}

func profileView(v view) Profile {
	var p Profile
	for i := 0; i < v.r; i++ {
		for _, x := range v.row(i) {
			if n := x.BitLen(); n > p.Bits {
				p.Bits = n
			}
			if !p.Signed && x.Sign() < 0 {
				p.Signed = true
			}
		}
	}

	return p
}

// outputBits bounds the bit length of every partial sum of an inner
// product of length inner: abits + bbits + bitlen(inner), plus one when
// either operand is signed.
func outputBits(pa, pb Profile, inner int) int {
	c := pa.Bits + pb.Bits + bits.Len(uint(inner))
	if pa.Signed || pb.Signed {
		c++
	}

	return c
}
