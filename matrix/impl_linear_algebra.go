// SPDX-License-Identifier: MIT

package matrix

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/intmat/zint"
)

// Operation tags for error wrapping and logs.
const (
	opMul     = "Mul"
	opProduct = "Product"
)

// logMsg is the message of the per-call debug record.
const logMsg = "matrix: mul"

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting across facades.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul sets dst = a*b exactly.
//
// Implementation:
//   - Stage 1: ValidateMulShapes(dst, a, b); nothing is written on failure.
//   - Stage 2: if dst shares storage with a or b, compute into a temporary
//     and hand its storage to dst.
//   - Stage 3: profile both operands, select (or check the forced) kernel
//     and run it.
//
// Behavior highlights:
//   - Empty shapes and all-zero operands produce the zero matrix.
//   - Every kernel is exact; thresholds only change speed.
//   - Results are identical for every Scheduler.
//
// Inputs:
//   - dst: a.Rows()×b.Cols() destination, overwritten.
//   - a, b: operands with a.Cols() == b.Rows(). May alias dst.
//   - opts: WithThresholds, WithScheduler, WithWorkers, WithAccelerator,
//     WithKernel, WithLogger.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped as "Mul: ...").
//   - ErrKernelPrecondition when WithKernel forces a kernel that cannot
//     represent the operands.
//
// Determinism:
//   - Output depends only on a and b.
//
// Complexity:
//   - See the package documentation; O(r*c) extra space for the aliasing
//     temporary.
//
// AI-Hints:
//   - Use Product when a fresh destination is wanted.
//   - Use MustMul where a shape mismatch is a programming error.
func Mul(dst, a, b *Dense, opts ...Option) error {
	if err := ValidateMulShapes(dst, a, b); err != nil {
		return matrixErrorf(opMul, err)
	}
	o := gatherOptions(opts...)
	e := newExec(o)

	if aliases(dst, a) || aliases(dst, b) {
		tmp := &Dense{r: dst.r, c: dst.c, data: make([]zint.Int, len(dst.data))}
		if err := multiply(tmp, a, b, o, e); err != nil {
			return matrixErrorf(opMul, err)
		}
		dst.adopt(tmp)

		return nil
	}
	if err := multiply(dst, a, b, o, e); err != nil {
		return matrixErrorf(opMul, err)
	}

	return nil
}

// MustMul is like Mul but panics on any contract violation.
func MustMul(dst, a, b *Dense, opts ...Option) {
	if err := Mul(dst, a, b, opts...); err != nil {
		panic(err)
	}
}

// Product returns a freshly allocated a*b.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrKernelPrecondition (wrapped as
//     "Product: ...").
func Product(a, b *Dense, opts ...Option) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opProduct, err)
	}
	out, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, matrixErrorf(opProduct, err)
	}
	if err = Mul(out, a, b, opts...); err != nil {
		return nil, matrixErrorf(opProduct, err)
	}

	return out, nil
}

// multiply profiles, selects and dispatches. dst does not alias a or b.
func multiply(dst, a, b *Dense, o Options, e *exec) error {
	rows, inner, cols := a.r, a.c, b.c
	pa, pb := MaxBits(a), MaxBits(b)

	var k Kernel
	switch {
	case rows == 0 || inner == 0 || cols == 0:
		k = KernelZero
	case o.kernel != KernelAuto:
		if err := checkKernel(o.kernel, inner, pa, pb, e.fast); err != nil {
			return err
		}
		k = o.kernel
	default:
		k = Select(rows, inner, cols, pa, pb, e.th, e.workers, e.fast)
	}

	cbits := outputBits(pa, pb, inner)
	if o.logger != nil {
		o.logger.LogAttrs(context.Background(), slog.LevelDebug, logMsg,
			slog.String("kernel", k.String()),
			slog.Int("rows", rows),
			slog.Int("inner", inner),
			slog.Int("cols", cols),
			slog.Int("abits", pa.Bits),
			slog.Int("bbits", pb.Bits),
			slog.Int("cbits", cbits),
		)
	}

	c, av, bv := dst.view(), a.view(), b.view()
	switch k {
	case KernelZero:
		dst.Zero()
	case KernelOuter:
		mulOuter(c, av, bv, e)
	case KernelFMMA:
		mulFMMA(c, av, bv, e)
	case KernelSmall1, KernelSmall2, KernelSmall3:
		mulSmall(c, av, bv, k, e)
	case KernelDoubleWord:
		mulDoubleWord(c, av, bv, e)
	case KernelStrassen:
		mulStrassen(c, av, bv, e, 0)
	case KernelMultiMod:
		mulMultiMod(c, av, bv, cbits, e)
	case KernelWaksman:
		mulWaksman(c, av, bv, e)
	case KernelFloat:
		mulFloat(c, av, bv, e)
	default:
		mulClassical(c, av, bv, e)
	}

	return nil
}
