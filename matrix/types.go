// SPDX-License-Identifier: MIT

// Package matrix: read-only matrix contract shared by validators and callers.
// Mutation is deliberately absent from the interface: grids handed out by
// higher layers are sealed after validation and only *Dense exposes Set.
package matrix

// Matrix represents a two-dimensional read-only array of float64 values.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)
}
