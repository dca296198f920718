// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer of zint.Int with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Allow zero-sized shapes (0×n, n×0, 0×0); they are legal operands of Mul.
//
// AI-Hints:
//   - Kernels never go through At/Set; they work on strided views of the flat data slice.
//   - zint.Int values are immutable, so Clone copies the slice header contents only.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Equal: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/intmat/zint"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxSetInt64 = "SetInt64" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): %w"; the sentinel is preserved for errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of arbitrary-precision integers.
//   - r,c hold dimensions (rows, cols), both >= 0 and fixed for life.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int        // row and column counts
	data []zint.Int // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: reject shapes whose element count overflows int (ErrAllocation).
//   - Stage 3: allocate a zero-filled buffer (zint.Int zero value is 0).
//
// Behavior highlights:
//   - Zero-sized shapes are allowed; they are valid Mul operands.
//
// Errors:
//   - ErrInvalidDimensions, ErrAllocation.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	if cols != 0 && rows > math.MaxInt/cols {
		return nil, ErrAllocation
	}

	return &Dense{r: rows, c: cols, data: make([]zint.Int, rows*cols)}, nil
}

// NewFromInt64 builds an r×c matrix from row-major int64 values.
// len(vals) must equal rows*cols (ErrDimensionMismatch otherwise).
func NewFromInt64(rows, cols int, vals []int64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(vals) != len(m.data) {
		return nil, ErrDimensionMismatch
	}
	for i, v := range vals {
		m.data[i] = zint.FromInt64(v)
	}

	return m, nil
}

// NewFromRows builds a matrix from a slice of int64 rows.
// Every row must have the same length (ErrDimensionMismatch otherwise).
// An empty slice yields a 0×0 matrix.
func NewFromRows(rows [][]int64) (*Dense, error) {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	m, err := NewDense(len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d: %w", i, ErrDimensionMismatch)
		}
		for j, v := range row {
			m.data[i*cols+j] = zint.FromInt64(v)
		}
	}

	return m, nil
}

// NewFromStrings builds a matrix from base-10 integer literals of any size.
// Ragged rows yield ErrDimensionMismatch; malformed literals wrap zint.ErrSyntax.
func NewFromStrings(rows [][]string) (*Dense, error) {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	m, err := NewDense(len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d: %w", i, ErrDimensionMismatch)
		}
		for j, s := range row {
			x, perr := zint.Parse(s)
			if perr != nil {
				return nil, fmt.Errorf("entry (%d,%d): %w", i, j, perr)
			}
			m.data[i*cols+j] = x
		}
	}

	return m, nil
}

// NewIdentity returns the n×n identity matrix.
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	one := zint.FromInt64(1)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = one
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// At returns the entry at (i, j) or ErrOutOfRange.
func (m *Dense) At(i, j int) (zint.Int, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return zint.Int{}, denseErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return m.data[i*m.c+j], nil
}

// Set assigns v at (i, j) or returns ErrOutOfRange.
func (m *Dense) Set(i, j int, v zint.Int) error {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return denseErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	m.data[i*m.c+j] = v

	return nil
}

// SetInt64 assigns the machine integer v at (i, j).
func (m *Dense) SetInt64(i, j int, v int64) error {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return denseErrorf(ctxSetInt64, i, j, ErrOutOfRange)
	}
	m.data[i*m.c+j] = zint.FromInt64(v)

	return nil
}

// Zero sets every entry to 0, keeping the shape.
func (m *Dense) Zero() {
	clear(m.data)
}

// Clone returns a deep copy with independent storage.
func (m *Dense) Clone() *Dense {
	out := &Dense{r: m.r, c: m.c, data: make([]zint.Int, len(m.data))}
	copy(out.data, m.data) // entries are immutable values

	return out
}

// Equal reports whether m and o have the same shape and entries.
// Two nil matrices are equal.
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i := range m.data {
		if !m.data[i].Equal(o.data[i]) {
			return false
		}
	}

	return true
}

// String renders one bracketed row per line.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(m.data[i*m.c+j].String())
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// view returns a strided window over the whole matrix.
func (m *Dense) view() view {
	return view{data: m.data, r: m.r, c: m.c, stride: m.c}
}
