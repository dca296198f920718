// SPDX-License-Identifier: MIT

// Package zint provides the signed arbitrary-precision integer used by the
// matrix engine.
//
// An Int is a tagged value with two representations:
//
//   - Inline: a machine word holding any value with |v| <= SmallMax
//     (at most SmallMaxBits bits of magnitude).
//   - Owned: a *big.Int limb buffer, used only for values that do not fit
//     inline.
//
// Canonical form is enforced by every constructor and arithmetic helper: a
// value that fits inline is never stored on the heap, and equal values have
// identical representations. An owned buffer is never mutated after it has
// been published inside an Int, so Int values may be copied freely and read
// concurrently.
//
// Conversions to and from fixed-width accumulators (FromSigned128,
// FromSigned192, FromWords, AbsWords) let word-level kernels work without
// touching big.Int in their inner loops. Very large products are delegated
// to github.com/remyoudompheng/bigfft.
//
// Complexity quicksheet:
//   - Add/Sub/Mul on inline operands: O(1), no allocation unless the result
//     must be promoted.
//   - Mul on owned operands: big.Int Karatsuba, FFT above FFTThresholdBits.
package zint
