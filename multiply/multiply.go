// SPDX-License-Identifier: MIT

// Package multiply computes dense matrix products C = A × B.
//
// Two interchangeable kernels are provided:
//
//   - Sequential runs the i → j → k loop nest on the calling goroutine.
//   - Parallel distributes the collapsed (i, j) output-cell space over a
//     parallel.Pool. Every output cell is owned by exactly one worker and
//     its k-reduction runs in the same order as in Sequential, so both
//     kernels produce bit-identical results without locks or merging.
//
// Reference computes the same product with gonum for cross-checking.
package multiply

import (
	"fmt"

	"github.com/katalvlaran/lvmatmul/matrix"
	"github.com/katalvlaran/lvmatmul/parallel"
)

const (
	opSequential = "Sequential"
	opParallel   = "Parallel"
	opReference  = "Reference"
)

// multiplyErrorf tags an error with the kernel name.
func multiplyErrorf(op string, err error) error {
	return fmt.Errorf("multiply.%s: %w", op, err)
}

// prepare validates a×b and allocates the zeroed rowsA×colsB result.
func prepare(op string, a, b *matrix.Dense) (*matrix.Dense, error) {
	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return nil, multiplyErrorf(op, err)
	}
	c, err := matrix.NewDense(a.Rows(), b.Cols())
	if err != nil {
		return nil, multiplyErrorf(op, err)
	}

	return c, nil
}

// cell computes the inner product of row i of A and column j of B.
// ad and bd are the flat row-major buffers; n is colsA (== rowsB), p is colsB.
// Both kernels call this one function so their rounding is identical.
func cell(ad, bd []float64, i, j, n, p int) float64 {
	row := ad[i*n : i*n+n]
	sum := 0.0
	for k, av := range row {
		sum += av * bd[k*p+j]
	}

	return sum
}

// Sequential returns A × B computed on the calling goroutine.
// Iteration order: i, then j, then k.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (wrapped).
// Complexity: O(m·n·p) time, O(m·p) extra space.
func Sequential(a, b *matrix.Dense) (*matrix.Dense, error) {
	c, err := prepare(opSequential, a, b)
	if err != nil {
		return nil, err
	}

	m, n, p := a.Rows(), a.Cols(), b.Cols()
	ad, bd, cd := a.RawData(), b.RawData(), c.RawData()
	for i := 0; i < m; i++ {
		for j := 0; j < p; j++ {
			cd[i*p+j] = cell(ad, bd, i, j, n, p)
		}
	}

	return c, nil
}

// Parallel returns A × B with the m·p output cells partitioned over a worker
// pool. It blocks until every cell is written.
//
// Options: WithWorkers, WithPool.
// Errors: ErrNilMatrix, ErrDimensionMismatch (wrapped).
// Complexity: O(m·n·p / workers) wall time, O(m·p) extra space.
func Parallel(a, b *matrix.Dense, opts ...Option) (*matrix.Dense, error) {
	c, err := prepare(opParallel, a, b)
	if err != nil {
		return nil, err
	}

	o := gatherOptions(opts...)
	pool := o.pool
	if pool == nil {
		pool = parallel.New(o.workers)
		defer pool.Close()
	}

	n, p := a.Cols(), b.Cols()
	ad, bd, cd := a.RawData(), b.RawData(), c.RawData()
	pool.Run(len(cd), func(s parallel.Span) {
		for idx := s.Lo; idx < s.Hi; idx++ {
			cd[idx] = cell(ad, bd, idx/p, idx%p, n, p)
		}
	})

	return c, nil
}
