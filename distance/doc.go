// SPDX-License-Identifier: MIT

// Package distance provides immutable, validated matrices of pairwise
// dissimilarities between labeled entities.
//
// What & Why:
//
//	A DissimilarityMatrix pairs an ordered set of unique labels with a square,
//	hollow (zero-diagonal), finite grid. A DistanceMatrix is the same thing
//	with the additional guarantee that the grid is symmetric. Both share one
//	representation; the kind only selects which checks ran at construction.
//
//	Construction is all-or-nothing and fails with classified errors:
//	  - errors.Is(err, ErrInvalid):    an invariant of the data is broken;
//	  - errors.Is(err, ErrAsymmetric): valid dissimilarity data, not a distance matrix.
//
// Consumers read through the Reader interface; nothing in this package
// mutates an instance after it has been returned, so instances may be shared
// freely between goroutines.
//
// Complexity:
//
//	Construction, Equal, Redundant, Condensed, Transpose: O(n²).
//	At, Value, Index, Contains: O(1).
package distance
