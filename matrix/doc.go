// SPDX-License-Identifier: MIT

// Package matrix provides the dense numeric storage underneath labeled
// dissimilarity data.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 grid with bounds-checked accessors, a
//     finite-only ingestion policy, copying Induced/Transpose and exact Equal.
//   - Validators: ValidateSquare, ValidateFinite, ValidateHollow and
//     ValidateSymmetric, each reporting the first offending cell.
//   - Statistics: OffDiagonalStats (count, min, max, mean of the cells off
//     the diagonal).
//   - Options: WithEpsilon (structural tolerance, exact by default) and the
//     NaN/Inf ingestion toggles.
//
// Labels, immutability and the dissimilarity/distance distinction live one
// level up, in package distance.
package matrix
