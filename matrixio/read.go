// SPDX-License-Identifier: MIT

// Package matrixio reads and writes dense matrices as whitespace-delimited text.
//
// Input format: the first two tokens are the row and column counts (positive
// base-10 integers), followed by rows×cols real numbers in row-major order.
// Line breaks carry no meaning; any whitespace separates tokens, and tokens
// after the last element are ignored.
//
// Output format: one line per row, each value formatted with two decimals and
// followed by a single space. Write emits no header; WriteWithHeader prepends
// the "rows cols" line so the file can be read back.
package matrixio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/lvmatmul/matrix"
)

// formatErrorf wraps ErrFormat with the source name and a detail message.
func formatErrorf(name, detail string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrFormat, name, fmt.Sprintf(detail, args...))
}

// Read opens the file at path and decodes one matrix from it.
// The file is closed on every path.
//
// Errors: ErrOpen (wrapping the OS error), ErrFormat.
func Read(path string) (*matrix.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	defer f.Close()

	return Decode(f, path)
}

// Decode parses a matrix from r. name identifies the source in error messages.
//
// Errors: ErrFormat for a missing, malformed or non-positive dimension,
// or for a missing or unparsable element; read errors are reported as ErrFormat too.
func Decode(r io.Reader, name string) (*matrix.Dense, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	rows, err := scanDim(sc, name, "rows")
	if err != nil {
		return nil, err
	}
	cols, err := scanDim(sc, name, "cols")
	if err != nil {
		return nil, err
	}

	m, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, formatErrorf(name, "%v", err)
	}

	data := m.RawData()
	for idx := range data {
		if !sc.Scan() {
			m.Release()
			return nil, formatErrorf(name, "element %d of %d (row %d, col %d): %s",
				idx+1, len(data), idx/cols+1, idx%cols+1, missing(sc))
		}
		v, perr := strconv.ParseFloat(sc.Text(), 64)
		if perr != nil {
			m.Release()
			return nil, formatErrorf(name, "element %d of %d (row %d, col %d): invalid number %q",
				idx+1, len(data), idx/cols+1, idx%cols+1, sc.Text())
		}
		data[idx] = v
	}

	return m, nil
}

// scanDim reads one positive integer dimension token.
func scanDim(sc *bufio.Scanner, name, what string) (int, error) {
	if !sc.Scan() {
		return 0, formatErrorf(name, "header %s: %s", what, missing(sc))
	}
	n, err := strconv.Atoi(sc.Text())
	if err != nil {
		return 0, formatErrorf(name, "header %s: invalid integer %q", what, sc.Text())
	}
	if n <= 0 {
		return 0, formatErrorf(name, "header %s: %d: %v", what, n, matrix.ErrInvalidDimensions)
	}

	return n, nil
}

// missing describes why a token is absent: a read error or end of input.
func missing(sc *bufio.Scanner) string {
	if err := sc.Err(); err != nil {
		return err.Error()
	}

	return "unexpected end of input"
}
