// SPDX-License-Identifier: MIT
// Package matrix: public helpers built on Dense.
//
// Purpose:
//   - Constructors for neutral elements (identity, zeros) used by callers and tests.
//   - Numeric comparison (AllClose) used to cross-check multiplication results.

package matrix

import (
	"fmt"
	"math"
)

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// AllClose reports whether |a(i,j) − b(i,j)| ≤ atol + rtol·|b(i,j)| for every cell.
//
// Implementation:
//   - Stage 1: reject NaN/Inf tolerances; negative tolerances are abs-ed.
//   - Stage 2: ValidateNotNil on both, then ValidateSameShape.
//   - Stage 3: flat-slice scan for *Dense pairs, generic At loop otherwise.
//
// Errors: ErrNaNInf, ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c), early exit on first violation.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, fmt.Errorf("AllClose: %w", ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateNotNil(a); err != nil {
		return false, fmt.Errorf("AllClose: %w", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, fmt.Errorf("AllClose: %w", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, fmt.Errorf("AllClose: %w", err)
	}

	// Dense fast-path: operate over flat slices when both are *Dense.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx, av := range da.data {
				bv := db.data[idx]
				if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
					return false, nil
				}
			}
			return true, nil
		}
	}

	// Generic fallback via At (bounds-safe).
	r, c := a.Rows(), a.Cols()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			av, err := a.At(i, j)
			if err != nil {
				return false, fmt.Errorf("AllClose: %w", err)
			}
			bv, err := b.At(i, j)
			if err != nil {
				return false, fmt.Errorf("AllClose: %w", err)
			}
			if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
				return false, nil
			}
		}
	}

	return true, nil
}
