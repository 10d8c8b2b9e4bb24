// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for structural validation checks.
//  - Keep constructors in higher layers minimal by delegating square/finite/hollow/symmetry checks here.
//  - Return sentinel errors wrapped with the validator tag and, where meaningful, the offending cell.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing beyond the error value.
//  - Symmetry check runs O(n²) on the upper triangle only.
//
// Note:
//  - Each validator describes what it validates and what it assumes (e.g. no nil check).
//  - Composite order used by package distance: Square → Finite → Hollow → Symmetric.

package matrix

import (
	"fmt"
	"math"
)

// zeroTol is the lower bound for caller-supplied tolerances.
const zeroTol = 0.0

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// cellErrorf wraps a sentinel with the validator tag and the offending cell.
func cellErrorf(tag string, i, j int, v float64, err error) error {
	return fmt.Errorf("%s: (%d,%d)=%v: %w", tag, i, j, v, err)
}

// validateTol normalizes a tolerance: NaN/Inf is rejected, negatives flip sign.
func validateTol(tag string, tol float64) (float64, error) {
	if isNonFinite(tol) {
		return 0, validatorErrorf(tag, ErrNaNInf) // invalid tolerance is a numeric policy violation
	}
	if tol < zeroTol {
		tol = -tol
	}

	return tol, nil
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	// A typed nil *Dense stored in the interface is still nil for our purposes.
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
//
// Errors: ErrNilMatrix if nil, ErrNonSquare if not square.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.Rows() != m.Cols() {
		return fmt.Errorf("ValidateSquare: %dx%d: %w", m.Rows(), m.Cols(), ErrNonSquare)
	}

	return nil
}

// ValidateFinite checks that every entry of m is finite.
//
// Errors: ErrNilMatrix, ErrNaNInf (wrapped with the first offending cell in row-major order).
// Complexity: O(r*c).
// AI-Hints: *Dense already enforces this on ingestion by default; call it when the
// policy was disabled or the matrix comes from another implementation.
func ValidateFinite(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateFinite", err)
	}

	var i, j int
	var v float64
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, _ = m.At(i, j) // indices are in range by construction
			if isNonFinite(v) {
				return cellErrorf("ValidateFinite", i, j, v, ErrNaNInf)
			}
		}
	}

	return nil
}

// ValidateHollow checks that every diagonal entry satisfies |A[i,i]| ≤ tol.
//
// Inputs: Square Matrix m, tolerance tol (0 means exactly zero).
// Errors: ErrNilMatrix/ErrNonSquare on structural issues, ErrNaNInf on bad tol,
// ErrNonZeroDiagonal (with the offending cell) on violation.
// Complexity: O(n).
func ValidateHollow(m Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateHollow", err)
	}
	tol, err := validateTol("ValidateHollow", tol)
	if err != nil {
		return err
	}

	var v float64
	for i := 0; i < m.Rows(); i++ {
		v, _ = m.At(i, i)
		// Written as a negated comparison so that a NaN diagonal also fails.
		if !(math.Abs(v) <= tol) {
			return cellErrorf("ValidateHollow", i, i, v, ErrNonZeroDiagonal)
		}
	}

	return nil
}

// ValidateSymmetric checks A is symmetric within tolerance tol:
// |A[i,j] - A[j,i]| ≤ tol for all i<j.
//
// Inputs: Square Matrix m, tolerance tol ≥ 0 (0 means exact equality).
// Complexity: O(n^2) where n = Rows(A). Space: O(1).
// Returns ErrNilMatrix/ErrNonSquare on structural issues, ErrNaNInf on bad tol,
// ErrAsymmetry (with the first offending upper-triangle cell) on violation.
func ValidateSymmetric(m Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}
	tol, err := validateTol("ValidateSymmetric", tol)
	if err != nil {
		return err
	}

	// Early return path: a 1×1 matrix is trivially symmetric.
	n := m.Rows()
	if n <= 1 {
		return nil
	}

	// Scan the strict upper triangle once in deterministic i→j order.
	var (
		i, j     int
		aij, aji float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			aij, _ = m.At(i, j)
			aji, _ = m.At(j, i)
			if !(math.Abs(aij-aji) <= tol) {
				return fmt.Errorf("ValidateSymmetric: (%d,%d)=%v vs (%d,%d)=%v: %w", i, j, aij, j, i, aji, ErrAsymmetry)
			}
		}
	}

	return nil
}
