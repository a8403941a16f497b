// SPDX-License-Identifier: MIT

// Package lvmatmul compares a sequential and a data-parallel dense matrix
// multiplication on the same inputs.
//
// What is inside?
//
//	matrix/    Dense: one contiguous row-major float64 buffer, row views, validators
//	matrixio/  whitespace-delimited text reader and two-decimal writer
//	parallel/  fixed goroutine pool running static index spans (Run, Split)
//	multiply/  Sequential, Parallel (one output cell per worker) and a gonum Reference
//	driver/    the matmul command: read → check → multiply ×2 (timed) → write → report
//	cmd/matmul process entry point
//
// Quick example:
//
//	$ cat a.txt
//	2 2
//	1 2
//	3 4
//	$ matmul a.txt b.txt out.txt
//	Seri zaman: 0.000002 saniye
//	Paralel zaman: 0.000081 saniye
//
//	go install github.com/katalvlaran/lvmatmul/cmd/matmul@latest
package lvmatmul
