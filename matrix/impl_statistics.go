// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Summary statistics over the off-diagonal cells of a square matrix, the cells
//     that carry information in a dissimilarity grid.
//
// Exposed API:
//   - OffDiagonalStats(X) -> (Stats, error) // count, min, max, mean of X[i,j] for i != j
//
// Determinism & Performance:
//   - Fixed i→j traversal; sums accumulate in that order, so results are reproducible.
//   - Dense fast-path reads the row-major flat buffer directly.
//   - The mean of finite values is always finite: when the running sum overflows,
//     the mean falls back to a sum of pre-divided terms.
//
// AI-Hints:
//   - A 1×1 matrix has no off-diagonal cells: Count == 0 and Min/Max/Mean are 0.

package matrix

import "math"

const opOffDiagonalStats = "OffDiagonalStats"

// Stats summarizes a set of cells.
type Stats struct {
	Count int
	Min   float64
	Max   float64
	Mean  float64
}

// OffDiagonalStats computes Stats over X[i,j] for all i != j.
// Implementation:
//   - Stage 1: validate X (non-nil, square).
//   - Stage 2: single pass accumulating count, extrema and sum (Dense fast-path; At fallback).
//   - Stage 3: derive the mean.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare from validation.
//   - Wrapped At errors from the fallback path.
//
// Complexity:
//   - Time O(n²), Space O(1).
func OffDiagonalStats(X Matrix) (Stats, error) {
	// Stage 1 (Validate)
	if err := ValidateNotNil(X); err != nil {
		return Stats{}, validatorErrorf(opOffDiagonalStats, err)
	}
	if err := ValidateSquare(X); err != nil {
		return Stats{}, validatorErrorf(opOffDiagonalStats, err)
	}

	// Stage 2 (Execute)
	n := X.Rows()
	k := float64(n * (n - 1))

	// scaled accumulates v/k and stays finite whenever every v is finite;
	// it is only used when the plain sum overflows.
	var s Stats
	var sum, scaled float64
	add := func(v float64) {
		if s.Count == 0 || v < s.Min {
			s.Min = v
		}
		if s.Count == 0 || v > s.Max {
			s.Max = v
		}
		sum += v
		scaled += v / k
		s.Count++
	}

	var i, j int
	if d, ok := X.(*Dense); ok {
		for i = 0; i < n; i++ {
			base := i * n
			for j = 0; j < n; j++ {
				if i != j {
					add(d.data[base+j])
				}
			}
		}
	} else {
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				if i == j {
					continue
				}
				v, err := X.At(i, j)
				if err != nil {
					return Stats{}, validatorErrorf(opOffDiagonalStats, err)
				}
				add(v)
			}
		}
	}

	// Stage 3 (Finalize)
	if s.Count > 0 {
		s.Mean = sum / float64(s.Count)
		if math.IsInf(s.Mean, 0) && !math.IsInf(s.Min, 0) && !math.IsInf(s.Max, 0) {
			s.Mean = scaled
		}
	}

	return s, nil
}
