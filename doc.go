// Package intmat multiplies matrices of arbitrary-precision integers
// exactly and fast.
//
// 🚀 What is intmat?
//
//	A pure-Go library that picks, per call, the cheapest exact algorithm
//	for the operand shapes and entry sizes:
//		• Word accumulators for entries that fit a machine word
//		• A 256-bit accumulator for entries up to 128 bits
//		• Multi-modular arithmetic with CRT reconstruction
//		• Strassen and Waksman for large dimensions or huge entries
//		• An optional float64 path when every partial sum fits 53 bits
//
// Under the hood, everything is organized under five subpackages:
//
//	zint/     - the integer type: inline machine words, big.Int beyond
//	nmod/     - word-sized prime moduli, preinverted reduction, CRT
//	parallel/ - schedulers (caller-participating pool, errgroup, sequential)
//	matrix/   - Dense, the kernels, the selector and Mul
//	builder/  - deterministic random and structured fixtures
//
// Quick example:
//
//	a, _ := matrix.NewFromRows([][]int64{{1, 2}, {3, 4}})
//	b, _ := matrix.NewFromRows([][]int64{{5, 6}, {7, 8}})
//	c, _ := matrix.Product(a, b)
//	fmt.Print(c)
//	// [19, 22]
//	// [43, 50]
//
// Results never depend on the scheduler, the thresholds or the presence of
// the float accelerator. Set INTMAT_NO_FLOAT=1 to disable the default
// accelerator.
package intmat
