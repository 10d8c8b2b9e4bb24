// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvdm/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)                      // attempt to create with zero rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(5, 0)                       // attempt to create with zero columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	rows, cols := 3, 4                    // define expected row and column counts
	m, err := matrix.NewDense(rows, cols) // create a Dense matrix of size 3x4
	require.NoError(t, err)               // assert no error on valid dimensions

	require.Equal(t, rows, m.Rows()) // assert Rows() equals expected rows
	require.Equal(t, cols, m.Cols()) // assert Cols() equals expected cols
	r, c := m.Shape()
	require.Equal(t, [2]int{rows, cols}, [2]int{r, c})
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2) // create a 2x2 Dense matrix
	require.NoError(t, err)         // assert matrix creation succeeded

	_, err = m.At(-1, 0)                          // attempt At() with negative row index
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	_, err = m.At(0, 2)                           // attempt At() with column index out of range
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	err = m.Set(2, 0, 1.23)                       // attempt Set() with row index out of range
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	_, err = m.Row(5)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetRejectsNonFinite verifies the default numeric policy and its opt-out.
func TestSetRejectsNonFinite(t *testing.T) {
	m, err := matrix.NewDense(1, 1)
	require.NoError(t, err)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)

	loose, err := matrix.NewDense(1, 1, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, loose.Set(0, 0, math.Inf(1)))
}

// TestNewDenseFromRows covers copying, ragged input and non-finite cells.
func TestNewDenseFromRows(t *testing.T) {
	t.Parallel()

	src := [][]float64{{0, 1}, {2, 0}}
	m, err := matrix.NewDenseFromRows(src)
	require.NoError(t, err)
	src[0][1] = 99 // mutate the caller's slice; m must not observe it

	v, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	_, err = matrix.NewDenseFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFromRows([][]float64{{0, 1}, {2}})
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewDenseFromRows([][]float64{{0, math.NaN()}, {1, 0}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	require.Contains(t, err.Error(), "(0,1)")
}

// TestCopiesIndependence ensures Row and Rows2D return copies that do not share storage.
func TestCopiesIndependence(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, 0}, {0, 2}})
	require.NoError(t, err)

	rows := m.Rows2D() // full copy
	rows[0][0] = 3.0
	row, err := m.Row(1) // single-row copy
	require.NoError(t, err)
	row[1] = 5.0

	origVal, err := m.At(0, 0)     // retrieve original matrix element
	require.NoError(t, err)        // assert At() succeeded on original
	require.Equal(t, 1.0, origVal) // expect original remains unchanged
	origVal, err = m.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 2.0, origVal)
}

// TestTransposeAndEqual checks transposition and exact equality semantics.
func TestTransposeAndEqual(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	tr := m.Transpose()
	require.Equal(t, 3, tr.Rows())
	require.Equal(t, 2, tr.Cols())
	require.Equal(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, tr.Rows2D())
	require.True(t, m.Equal(tr.Transpose()))
	require.False(t, m.Equal(tr))

	var nilDense *matrix.Dense
	require.True(t, nilDense.Equal(nil))
	require.False(t, m.Equal(nil))
}

// TestInduced extracts principal submatrices and rejects bad indices.
func TestInduced(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{
		{0, 1, 2},
		{3, 0, 4},
		{5, 6, 0},
	})
	require.NoError(t, err)

	sub, err := m.Induced([]int{2, 0}, []int{2, 0})
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0, 5}, {2, 0}}, sub.Rows2D())

	_, err = m.Induced([]int{3}, []int{0})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.Induced(nil, []int{0})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestDoEarlyStop verifies visiting order and early exit.
func TestDoEarlyStop(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	var seen []float64
	m.Do(func(_, _ int, v float64) bool {
		seen = append(seen, v)
		return v < 3
	})
	require.Equal(t, []float64{1, 2, 3}, seen)
}

// TestStringOutput checks that String() formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 0.125}})
	require.NoError(t, err)

	expected := "[1, 2]\n[3, 0.125]\n"     // define expected string output
	require.Equal(t, expected, m.String()) // assert String() output matches expected format
}
