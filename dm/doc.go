// SPDX-License-Identifier: MIT

// Package dm reads and writes the "dm" text format: a tab-delimited,
// human-editable encoding of a labeled dissimilarity matrix.
//
//	# optional comments before the header
//		a	b	c
//	a	0	0.01	4.2
//	b	0.01	0	12
//	c	4.2	12	0
//
// Parse is tolerant of blank lines, leading comments and irregular
// whitespace around tokens, and strict about row order, row count and
// column count. Write emits the canonical form above, and
// Parse(Write(m)) always yields a matrix equal to m.
package dm
