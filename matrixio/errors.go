// SPDX-License-Identifier: MIT

package matrixio

import "errors"

// Sentinel errors. Every returned error wraps exactly one of these together
// with the offending path; match with errors.Is.
var (
	// ErrOpen indicates an input file could not be opened for reading.
	ErrOpen = errors.New("matrixio: cannot open file")

	// ErrCreate indicates an output file could not be created, written or closed.
	ErrCreate = errors.New("matrixio: cannot write file")

	// ErrFormat indicates a missing or unparsable header or element token.
	ErrFormat = errors.New("matrixio: malformed matrix")
)
