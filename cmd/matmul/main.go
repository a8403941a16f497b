// SPDX-License-Identifier: MIT

// Command matmul multiplies two matrices read from text files with a
// sequential and a parallel kernel, writes the parallel product and prints
// the wall-clock time of both.
//
//	matmul [flags] <matrixA_path> <matrixB_path> <output_path>
package main

import (
	"os"

	"github.com/katalvlaran/lvmatmul/driver"
)

func main() {
	os.Exit(driver.Main(os.Args[1:], os.Stdout, os.Stderr))
}
