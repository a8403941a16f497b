// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvmatmul/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidateMulCompatible(t *testing.T) {
	a, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	b, err := matrix.NewDense(3, 4)
	require.NoError(t, err)

	require.NoError(t, matrix.ValidateMulCompatible(a, b))
	require.ErrorIs(t, matrix.ValidateMulCompatible(b, a), matrix.ErrDimensionMismatch)

	var nilDense *matrix.Dense
	require.ErrorIs(t, matrix.ValidateMulCompatible(nil, b), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateMulCompatible(a, nilDense), matrix.ErrNilMatrix)
}

func TestValidateSameShape(t *testing.T) {
	a, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	b, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	c, err := matrix.NewDense(3, 2)
	require.NoError(t, err)

	require.NoError(t, matrix.ValidateSameShape(a, b))
	require.ErrorIs(t, matrix.ValidateSameShape(a, c), matrix.ErrDimensionMismatch)
}
