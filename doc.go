// Package lvdm is a small toolkit for labeled dissimilarity matrices: the
// validated in-memory model, and the tab-delimited "dm" text format used to
// store them.
//
// 🚀 What is inside?
//
//	• Dense grids: row-major float64 storage with shape, symmetry and
//	  zero-diagonal validators
//	• Validated matrices: DissimilarityMatrix and DistanceMatrix, immutable
//	  after construction and safe for concurrent readers
//	• The dm format: a tolerant line-oriented parser with precise,
//	  distinguishable format errors, and a writer that round-trips exactly
//	• dmtool: a CLI to validate, inspect and convert dm files (gzip / zstd aware)
//
// ✨ Error classes
//
//   - dm.ErrFormat: the text is not well-formed dm (with a Reason code)
//   - distance.ErrInvalid: well-formed data that breaks a matrix invariant
//   - distance.ErrAsymmetric: a valid dissimilarity matrix that is not a distance matrix
//
// Under the hood:
//
//	matrix/        Dense grid, options and validators
//	distance/      DissimilarityMatrix, DistanceMatrix, Reader, Equal
//	dm/            Parse, Write and the Read helpers
//	internal/      CLI plumbing: config, logging, compressed file I/O
//	cmd/dmtool/    the command-line entry point
//
// Quick example (tab-separated):
//
//	    	a	b
//	    a	0	0.5
//	    b	0.5	0
//
//	is a 2×2 distance matrix over the labels a and b.
//
//	go install github.com/katalvlaran/lvdm/cmd/dmtool@latest
package lvdm
