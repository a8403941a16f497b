// SPDX-License-Identifier: MIT

package multiply

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvmatmul/matrix"
)

// Reference returns A × B computed by gonum's mat.Dense.Mul (BLAS dgemm).
// The summation order differs from Sequential, so compare results with
// matrix.AllClose rather than exact equality.
func Reference(a, b *matrix.Dense) (*matrix.Dense, error) {
	c, err := prepare(opReference, a, b)
	if err != nil {
		return nil, err
	}

	// gonum wraps the slices without copying; a and b are only read.
	ga := mat.NewDense(a.Rows(), a.Cols(), a.RawData())
	gb := mat.NewDense(b.Rows(), b.Cols(), b.RawData())

	var gc mat.Dense
	gc.Mul(ga, gb)

	raw := gc.RawMatrix()
	for i := 0; i < raw.Rows; i++ {
		copy(c.Row(i), raw.Data[i*raw.Stride:i*raw.Stride+raw.Cols])
	}

	return c, nil
}
