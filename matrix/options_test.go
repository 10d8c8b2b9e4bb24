// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvdm/matrix"
	"github.com/stretchr/testify/require"
)

// TestDefaultOptions_Documented verifies that NewOptions() equals documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.NewOptions()

	require.Equal(t, matrix.DefaultEpsilon, o.Epsilon())

	// DefaultValidateNaNInf: a Dense built without options rejects non-finite writes.
	m, err := matrix.NewDense(1, 1)
	require.NoError(t, err)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
}

// TestNewOptions_LastWriterWins ensures setters apply in order and nil entries are skipped.
func TestNewOptions_LastWriterWins(t *testing.T) {
	o := matrix.NewOptions(matrix.WithEpsilon(1), nil, matrix.WithEpsilon(1e-6))
	require.Equal(t, 1e-6, o.Epsilon())

	strict, err := matrix.NewDense(1, 1, matrix.WithNoValidateNaNInf(), nil, matrix.WithValidateNaNInf())
	require.NoError(t, err)
	require.ErrorIs(t, strict.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)

	loose, err := matrix.NewDense(1, 1, matrix.WithValidateNaNInf(), matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, loose.Set(0, 0, math.Inf(1)))
}

// TestWithEpsilon_PanicsOnNonsense verifies programmer-error panics.
func TestWithEpsilon_PanicsOnNonsense(t *testing.T) {
	for _, eps := range []float64{-1, math.NaN(), math.Inf(1)} {
		eps := eps
		require.Panics(t, func() { _ = matrix.WithEpsilon(eps) })
	}
	require.NotPanics(t, func() { _ = matrix.WithEpsilon(0) })
}
