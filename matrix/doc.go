// SPDX-License-Identifier: MIT

// Package matrix implements exact multiplication of matrices whose entries
// are signed arbitrary-precision integers (zint.Int).
//
// What & Why:
//
//	Computer-algebra workloads multiply integer matrices whose entries range
//	from a few bits to many thousands of bits. No single algorithm is best
//	across that range, so Mul profiles both operands and dispatches to one
//	of several kernels:
//
//	  - word accumulators (1, 2 or 3 machine words) for small entries,
//	  - a double-word unsigned accumulator for entries up to 128 bits,
//	  - Strassen block recursion,
//	  - multi-modular multiplication with CRT reconstruction,
//	  - Waksman's balanced-entry algorithm for huge entries,
//	  - a float64 fast path when every partial sum is provably exact,
//	  - and the classical triple loop as universal fallback.
//
//	Every kernel returns the exact product. Selection thresholds only affect
//	speed; they live in Thresholds and may be overridden per call.
//
// Concurrency:
//
//	Kernels split their work into independent tasks run by a
//	parallel.Scheduler (parallel.Default() unless WithScheduler is given).
//	Results are bit-identical for every scheduler.
//
// Complexity quicksheet:
//   - MaxBits: O(r*c).
//   - Mul: between O(n^2.81) (Strassen) and O(n^3) word operations, plus
//     O(n^2 * t^2) for CRT reconstruction over t primes.
package matrix
