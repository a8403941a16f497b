// SPDX-License-Identifier: MIT
package multiply_test

import (
	"fmt"

	"github.com/katalvlaran/lvmatmul/matrix"
	"github.com/katalvlaran/lvmatmul/multiply"
)

// ExampleParallel multiplies two 2×2 matrices on four workers.
func ExampleParallel() {
	a, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	b, _ := matrix.NewDenseFromRows([][]float64{{5, 6}, {7, 8}})
	defer a.Release()
	defer b.Release()

	c, err := multiply.Parallel(a, b, multiply.WithWorkers(4))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer c.Release()

	fmt.Print(c)
	// Output:
	// [19, 22]
	// [43, 50]
}
