// SPDX-License-Identifier: MIT
package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvdm/matrix"
)

// ExampleValidateSymmetric checks a grid against the two dissimilarity shapes.
func ExampleValidateSymmetric() {
	m, _ := matrix.NewDenseFromRows([][]float64{
		{0, 1},
		{-2, 0},
	})

	fmt.Println("hollow:", matrix.ValidateHollow(m, 0) == nil)
	err := matrix.ValidateSymmetric(m, 0)
	fmt.Println("asymmetric:", errors.Is(err, matrix.ErrAsymmetry))
	fmt.Print(m)

	// Output:
	// hollow: true
	// asymmetric: true
	// [0, 1]
	// [-2, 0]
}

// ExampleOffDiagonalStats summarizes the informative cells of a grid.
func ExampleOffDiagonalStats() {
	m, _ := matrix.NewDenseFromRows([][]float64{
		{0, 2, 4},
		{2, 0, 6},
		{4, 6, 0},
	})
	s, _ := matrix.OffDiagonalStats(m)
	fmt.Println(s.Count, s.Min, s.Max, s.Mean)

	// Output:
	// 6 2 6 4
}
