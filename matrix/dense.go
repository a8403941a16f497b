// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Expose row handles as disjoint sub-slices of the single backing allocation.
//   - Replace manual free pairs with Release, which is idempotent and nil-safe.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/Row: O(1); Clone: O(r*c); Release: O(1).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// MaxElements caps rows*cols for one Dense (2 GiB of float64 storage).
// Larger shapes, including ones whose product overflows int, are rejected
// before allocation.
const MaxElements = 1 << 28

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxFromRows = "FromRows" // ctor tag for NewDenseFromRows
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): %w"; the sentinel is preserved via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols); both are > 0 until Release.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: validate rows*cols neither overflows nor exceeds MaxElements.
//   - Stage 3: allocate one zero-filled buffer of rows*cols elements.
//
// Errors:
//   - ErrInvalidDimensions (non-positive, overflowing or oversized shape).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	// Division form avoids the overflowing product itself.
	if cols > math.MaxInt/rows || rows*cols > MaxElements {
		return nil, fmt.Errorf("NewDense(%d,%d): more than %d elements: %w",
			rows, cols, MaxElements, ErrInvalidDimensions)
	}
	// make() zero-fills the buffer deterministically.
	buf := make([]float64, rows*cols)

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// NewDenseFromRows copies a rectangular [][]float64 into a new *Dense.
// Every row must have the same, positive length.
//
// Errors:
//   - ErrInvalidDimensions when rows is empty or the first row is empty.
//   - ErrBadShape when any row length differs from the first.
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("Dense.%s: %w", ctxFromRows, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	m, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("Dense.%s: row %d has %d values, want %d: %w",
				ctxFromRows, i, len(row), c, ErrBadShape)
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if m.data == nil {
		return 0, denseErrorf(method, row, col, ErrReleased)
	}
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns the i-th row as a sub-slice of the backing storage.
// The slice capacity is clipped to the row, so appending never spills into
// the next row. Writes through the slice mutate the matrix.
// Row panics if i is out of range; callers iterate 0..Rows()-1.
func (m *Dense) Row(i int) []float64 {
	if i < 0 || i >= m.r {
		panic(fmt.Sprintf("matrix: Row(%d) out of range [0,%d)", i, m.r))
	}
	off := i * m.c

	return m.data[off : off+m.c : off+m.c]
}

// RawData exposes the flat row-major buffer (len == Rows()*Cols()).
// Kernels use it for index arithmetic without per-element bounds errors.
func (m *Dense) RawData() []float64 { return m.data }

// Release drops the backing storage and zeroes the shape.
// Calling Release more than once, or on a nil *Dense, is a no-op.
func (m *Dense) Release() {
	if m == nil {
		return
	}
	m.data = nil
	m.r, m.c = 0, 0
}

// Released reports whether Release has been called on m.
func (m *Dense) Released() bool { return m == nil || m.data == nil }

// Clone returns a deep copy of the Dense matrix; a nil receiver yields nil.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() *Dense {
	if m == nil {
		return nil
	}
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// String implements fmt.Stringer for debugging: one "[a, b, ...]" line per row.
// A nil or released matrix prints as "".
func (m *Dense) String() string {
	if m.Released() {
		return ""
	}
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
