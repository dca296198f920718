// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for Mul contract checks.
//  - Keep facades minimal by delegating nil/shape checks here.
//  - Each composite validator follows a fixed sequence (NotNil -> Shape).
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate nothing on success.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns wrapped ErrNilMatrix if m == nil.
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateMulCompatible ensures a and b are non-nil and a.Cols == b.Rows.
func ValidateMulCompatible(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.c != b.r {
		return validatorErrorf(
			fmt.Sprintf("ValidateMulCompatible: %dx%d * %dx%d", a.r, a.c, b.r, b.c),
			ErrDimensionMismatch,
		)
	}

	return nil
}

// ValidateMulShapes ensures the full request (dst, a, b) is well formed:
// operands compatible and dst shaped a.Rows × b.Cols.
func ValidateMulShapes(dst, a, b *Dense) error {
	if err := ValidateNotNil(dst); err != nil {
		return err
	}
	if err := ValidateMulCompatible(a, b); err != nil {
		return err
	}
	if dst.r != a.r || dst.c != b.c {
		return validatorErrorf(
			fmt.Sprintf("ValidateMulShapes: dst %dx%d, want %dx%d", dst.r, dst.c, a.r, b.c),
			ErrDimensionMismatch,
		)
	}

	return nil
}
