// SPDX-License-Identifier: MIT

package matrixio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/lvmatmul/matrix"
)

// decimals is the fixed precision of written values.
const decimals = 2

// Encode writes m to w row by row: every value as %.2f plus one space,
// a newline after each row.
func Encode(w io.Writer, m *matrix.Dense) error {
	if m == nil {
		return matrix.ErrNilMatrix
	}
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 32)
	for i := 0; i < m.Rows(); i++ {
		for _, v := range m.Row(i) {
			buf = strconv.AppendFloat(buf[:0], v, 'f', decimals, 64)
			buf = append(buf, ' ')
			if _, err := bw.Write(buf); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// EncodeWithHeader writes the "rows cols" line followed by Encode's output.
func EncodeWithHeader(w io.Writer, m *matrix.Dense) error {
	if m == nil {
		return matrix.ErrNilMatrix
	}
	if _, err := fmt.Fprintf(w, "%d %d\n", m.Rows(), m.Cols()); err != nil {
		return err
	}

	return Encode(w, m)
}

// Write creates or truncates the file at path and encodes m into it.
//
// Errors: ErrCreate when the file cannot be created, written or closed.
func Write(path string, m *matrix.Dense) error {
	return writeFile(path, m, Encode)
}

// WriteWithHeader is Write with the dimension header, so Read can load the file.
func WriteWithHeader(path string, m *matrix.Dense) error {
	return writeFile(path, m, EncodeWithHeader)
}

func writeFile(path string, m *matrix.Dense, enc func(io.Writer, *matrix.Dense) error) (err error) {
	if m == nil {
		return fmt.Errorf("%w: %s: %w", ErrCreate, path, matrix.ErrNilMatrix)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCreate, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrCreate, cerr)
		}
	}()

	if err = enc(f, m); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrCreate, path, err)
	}

	return nil
}
