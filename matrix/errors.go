// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Facades wrap them with an operation tag (see matrixErrorf) and
// tests check them via errors.Is.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape -> dimension mismatch -> forced-kernel preconditions.

var (
	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrInvalidDimensions indicates a negative row or column count.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes between the operands
	// of Mul or between the operands and the destination.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrKernelPrecondition is returned when a kernel forced through
	// WithKernel cannot represent the operands exactly.
	ErrKernelPrecondition = errors.New("matrix: kernel precondition violated")

	// ErrAllocation signals that a requested shape cannot be allocated
	// (rows*cols overflows int).
	ErrAllocation = errors.New("matrix: allocation size overflow")
)
