// SPDX-License-Identifier: MIT
// Package multiply_test provides benchmarks for the multiplication kernels,
// using deterministic random fill for Dense matrices.
package multiply_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvmatmul/matrix"
	"github.com/katalvlaran/lvmatmul/multiply"
	"github.com/katalvlaran/lvmatmul/parallel"
)

// benchSizes are the square matrix sizes to benchmark.
var benchSizes = []int{64, 128, 256}

// sink defeats dead-code elimination.
var sink *matrix.Dense

func BenchmarkSequential(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randDense(b, n, n, 1337)
			B := randDense(b, n, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				c, err := multiply.Sequential(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sink = c
			}
		})
	}
}

func BenchmarkParallel(b *testing.B) {
	b.ReportAllocs()
	pool := parallel.New(0)
	defer pool.Close()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randDense(b, n, n, 1337)
			B := randDense(b, n, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				c, err := multiply.Parallel(A, B, multiply.WithPool(pool))
				if err != nil {
					b.Fatal(err)
				}
				sink = c
			}
		})
	}
}

func BenchmarkReference(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randDense(b, n, n, 1337)
			B := randDense(b, n, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				c, err := multiply.Reference(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sink = c
			}
		})
	}
}
