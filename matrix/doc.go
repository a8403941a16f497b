// SPDX-License-Identifier: MIT

// Package matrix provides the dense matrix storage used by the multiplication
// engine and the text codec.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix backed by ONE contiguous allocation,
//     with element (i,j) at offset i*Cols()+j.
//   - Row handles (Dense.Row) that are disjoint sub-slices of that allocation.
//   - Scoped ownership via Dense.Release (idempotent, nil-safe) instead of
//     manual allocate/free pairs.
//   - Canonical validators (ValidateMulCompatible, ValidateSameShape) and a
//     numeric comparison helper (AllClose).
//
// Errors are package-level sentinels (see errors.go) matched with errors.Is.
package matrix
