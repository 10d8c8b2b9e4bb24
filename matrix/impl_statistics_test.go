// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvdm/matrix"
	"github.com/stretchr/testify/require"
)

// viewOnly hides the *Dense type so the At fallback path is exercised.
type viewOnly struct{ d *matrix.Dense }

func (v viewOnly) Rows() int                    { return v.d.Rows() }
func (v viewOnly) Cols() int                    { return v.d.Cols() }
func (v viewOnly) At(i, j int) (float64, error) { return v.d.At(i, j) }

func TestOffDiagonalStats(t *testing.T) {
	t.Parallel()

	d := dense(t, [][]float64{
		{0, 0.01, 4.2},
		{0.01, 0, 12},
		{4.2, 12, 0},
	})
	want := matrix.Stats{Count: 6, Min: 0.01, Max: 12, Mean: (0.01 + 4.2 + 12) * 2 / 6}

	for name, m := range map[string]matrix.Matrix{"dense": d, "view": viewOnly{d}} {
		got, err := matrix.OffDiagonalStats(m)
		require.NoError(t, err, name)
		require.Equal(t, want.Count, got.Count, name)
		require.Equal(t, want.Min, got.Min, name)
		require.Equal(t, want.Max, got.Max, name)
		require.InDelta(t, want.Mean, got.Mean, 1e-12, name)
	}
}

func TestOffDiagonalStats_EdgeCases(t *testing.T) {
	t.Parallel()

	// The diagonal is ignored even when non-zero; negatives are allowed.
	got, err := matrix.OffDiagonalStats(dense(t, [][]float64{{9, -2}, {1, 9}}))
	require.NoError(t, err)
	require.Equal(t, matrix.Stats{Count: 2, Min: -2, Max: 1, Mean: -0.5}, got)

	got, err = matrix.OffDiagonalStats(dense(t, [][]float64{{0}}))
	require.NoError(t, err)
	require.Equal(t, matrix.Stats{}, got)

	_, err = matrix.OffDiagonalStats(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.OffDiagonalStats(dense(t, [][]float64{{0, 1}}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestOffDiagonalStats_MeanDoesNotOverflow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rows [][]float64
		want matrix.Stats
	}{
		{"large equal", [][]float64{{0, 1e308}, {1e308, 0}}, matrix.Stats{Count: 2, Min: 1e308, Max: 1e308, Mean: 1e308}},
		{"opposite signs", [][]float64{{0, math.MaxFloat64}, {-math.MaxFloat64, 0}}, matrix.Stats{Count: 2, Min: -math.MaxFloat64, Max: math.MaxFloat64, Mean: 0}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			d := dense(t, tc.rows)
			for name, m := range map[string]matrix.Matrix{"dense": d, "view": viewOnly{d}} {
				got, err := matrix.OffDiagonalStats(m)
				require.NoError(t, err, name)
				require.Equal(t, tc.want, got, name)
			}
		})
	}

	// Six cells of 1e308: the plain sum overflows, the mean must not.
	got, err := matrix.OffDiagonalStats(dense(t, [][]float64{
		{0, 1e308, 1e308},
		{1e308, 0, 1e308},
		{1e308, 1e308, 0},
	}))
	require.NoError(t, err)
	require.False(t, math.IsInf(got.Mean, 0))
	require.InEpsilon(t, 1e308, got.Mean, 1e-12)
}
