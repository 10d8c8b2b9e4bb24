// SPDX-License-Identifier: MIT
// Package distance: sentinel error set.
//
// Two independent kinds are exposed so callers can tell "bad data" from
// "valid dissimilarity data that is not a distance matrix":
//
//   - ErrInvalid is the category of every invariant violation: empty
//     label set, non-square grid, duplicate or empty label, non-zero diagonal,
//     non-finite value. errors.Is(err, ErrInvalid) is true for all of them and
//     errors.Is(err, <specific sentinel>) narrows it down.
//   - ErrAsymmetric is raised only by the distance-matrix strategy and is
//     deliberately NOT in the ErrInvalid category.

package distance

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvdm/matrix"
)

var (
	// ErrInvalid is the category sentinel for invariant violations on construction.
	ErrInvalid = errors.New("distance: invalid dissimilarity matrix")

	// ErrEmpty signals a matrix with no labels (n == 0).
	ErrEmpty = errors.New("distance: matrix must have at least one label")

	// ErrDuplicateLabel signals that two labels are equal.
	ErrDuplicateLabel = errors.New("distance: duplicate label")

	// ErrEmptyLabel signals a zero-length label.
	ErrEmptyLabel = errors.New("distance: empty label")

	// ErrCondensedLength signals a condensed vector whose length is not n(n-1)/2.
	ErrCondensedLength = errors.New("distance: condensed vector length does not match label count")

	// ErrUnknownLabel is returned by label-based accessors for ids not in the matrix.
	ErrUnknownLabel = errors.New("distance: unknown label")
)

// Aliases of the matrix sentinels so callers of this package need a single import.
var (
	// ErrNonSquare: grid rows/columns do not match the label count.
	ErrNonSquare = matrix.ErrNonSquare

	// ErrNonZeroDiagonal: a diagonal entry is not zero.
	ErrNonZeroDiagonal = matrix.ErrNonZeroDiagonal

	// ErrNaNInf: a grid value is NaN or ±Inf.
	ErrNaNInf = matrix.ErrNaNInf

	// ErrAsymmetric: grid[i][j] != grid[j][i] for a distance matrix.
	ErrAsymmetric = matrix.ErrAsymmetry

	// ErrOutOfRange: index-based accessor outside [0, n).
	ErrOutOfRange = matrix.ErrOutOfRange
)

// invalidf tags a violation with the op name and the ErrInvalid category.
// The result matches both ErrInvalid and err under errors.Is.
func invalidf(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrInvalid, err)
}

// IsInvalid reports whether err is an invariant violation (category ErrInvalid).
func IsInvalid(err error) bool { return errors.Is(err, ErrInvalid) }

// IsAsymmetric reports whether err is a symmetry violation of a distance matrix.
func IsAsymmetric(err error) bool { return errors.Is(err, ErrAsymmetric) }
