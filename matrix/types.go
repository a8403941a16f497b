// SPDX-License-Identifier: MIT

// Package matrix: domain types.
// This file contains ONLY the read-side Matrix interface consumed by
// validators and comparison helpers. Errors live in errors.go.
package matrix

// Matrix represents a read-only view over a two-dimensional array of float64 values.
// *Dense is the only implementation in this module; helpers accept the
// interface and take flat-slice fast-paths when both operands are *Dense.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)
}
