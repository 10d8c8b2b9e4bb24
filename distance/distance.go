// SPDX-License-Identifier: MIT

package distance

import (
	"fmt"

	"github.com/katalvlaran/lvdm/matrix"
)

// DistanceMatrix is a DissimilarityMatrix additionally proven symmetric.
// It embeds the dissimilarity view, so every read-only method (and the Reader
// contract) is available on it; the embedded value reports KindDistance.
type DistanceMatrix struct {
	*DissimilarityMatrix
}

// NewDistance validates (labels, grid) as a distance matrix.
// MAIN DESCRIPTION:
//   - Same pipeline as NewDissimilarity, with the symmetry step appended to the strategy.
//
// Errors:
//   - Everything NewDissimilarity returns (ErrInvalid category).
//   - ErrAsymmetric when grid[i][j] != grid[j][i]; this is NOT in the ErrInvalid
//     category, so callers can special-case "valid dissimilarity data, not a distance matrix".
//
// Complexity:
//   - Time O(n²), Space O(n²).
func NewDistance(labels []string, grid [][]float64, opts ...Option) (*DistanceMatrix, error) {
	d, err := build(opNewDistance, KindDistance, labels, grid, opts...)
	if err != nil {
		return nil, err
	}

	return &DistanceMatrix{DissimilarityMatrix: d}, nil
}

// NewDistanceFromCondensed builds a DistanceMatrix from the strict upper
// triangle in row-major order (the inverse of Condensed).
// Errors: ErrCondensedLength (ErrInvalid category) plus NewDistance errors.
// Complexity: O(n²).
func NewDistanceFromCondensed(labels []string, condensed []float64, opts ...Option) (*DistanceMatrix, error) {
	n := len(labels)
	if want := n * (n - 1) / 2; len(condensed) != want {
		return nil, invalidf(opFromCondensed, fmt.Errorf("got %d values, want %d: %w", len(condensed), want, ErrCondensedLength))
	}

	index, err := labelIndex(opFromCondensed, labels)
	if err != nil {
		return nil, err
	}

	// Fill both triangles; Set rejects NaN/±Inf as each value lands.
	g, err := matrix.NewDense(n, n, matrix.WithValidateNaNInf())
	if err != nil {
		return nil, invalidf(opFromCondensed, err)
	}
	var i, j, k int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if err = g.Set(i, j, condensed[k]); err != nil {
				return nil, invalidf(opFromCondensed, err)
			}
			if err = g.Set(j, i, condensed[k]); err != nil {
				return nil, invalidf(opFromCondensed, err)
			}
			k++
		}
	}

	d, err := seal(opFromCondensed, KindDistance, labels, index, g, matrix.NewOptions(opts...))
	if err != nil {
		return nil, err
	}

	return &DistanceMatrix{DissimilarityMatrix: d}, nil
}

// Dissimilarity returns the dissimilarity view of the receiver (shared, immutable storage).
func (d *DistanceMatrix) Dissimilarity() *DissimilarityMatrix { return d.DissimilarityMatrix }

// Condensed returns the strict upper triangle in row-major order,
// length n(n-1)/2. A 1×1 matrix yields an empty slice.
// Complexity: O(n²).
func (d *DistanceMatrix) Condensed() []float64 {
	n := d.Size()
	out := make([]float64, 0, n*(n-1)/2)
	d.grid.Do(func(i, j int, v float64) bool {
		if j > i {
			out = append(out, v)
		}
		return true
	})

	return out
}

// Filter returns the distance submatrix for ids, in the order given.
// See DissimilarityMatrix.Filter for errors.
func (d *DistanceMatrix) Filter(ids ...string) (*DistanceMatrix, error) {
	sub, err := d.DissimilarityMatrix.Filter(ids...)
	if err != nil {
		return nil, err
	}

	return &DistanceMatrix{DissimilarityMatrix: sub}, nil
}
