// SPDX-License-Identifier: MIT

// Package dm - line-oriented parser for the dm text format.
//
// Grammar (tab is the default delimiter):
//   - blank / whitespace-only lines are ignored everywhere;
//   - lines starting with '#' after leading whitespace are comments, allowed only before the header;
//   - the first other line is the header: delimiter-separated labels, one optional leading empty token;
//   - each following non-blank line is a data row: label, then exactly n values;
//   - exactly n data rows, in header order.
//
// Tokens are trimmed of surrounding whitespace, so "a  \t0" and "\t b " are accepted.
//
// Determinism:
//   - Single forward pass; the first violation in input order is reported.
//
// AI-Hints:
//   - Parse returns raw (labels, grid); wrap with ReadDissimilarity / ReadDistance
//     to get validated matrices and the semantic error classes from package distance.

package dm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

const commentPrefix = "#"

// parser holds the state of a single Parse call.
type parser struct {
	delim  string
	labels []string    // header tokens; nil until the header is found
	grid   [][]float64 // data rows consumed so far
	line   int         // 1-based number of the last line read
}

// Parse reads a complete dm document from r.
// MAIN DESCRIPTION:
//   - Converts text into (labels, grid) or fails with a *FormatError (errors.Is(err, ErrFormat)).
//
// Implementation:
//   - Stage 1: skip blank and comment lines; the first other line is the header.
//   - Stage 2: consume exactly len(labels) data rows, ignoring blank lines.
//   - Stage 3: after the last row only blank lines may follow.
//
// Errors:
//   - *FormatError with ReasonEmpty, ReasonMissingData, ReasonMismatchedID,
//     ReasonExtraData or ReasonInvalidValue.
//   - Read errors from r are returned wrapped and are not FormatErrors.
//
// Complexity:
//   - Time O(input), Space O(n²).
//
// Notes:
//   - Parse performs no semantic checks: NaN/Inf tokens, empty or duplicate
//     labels and non-zero diagonals are left to package distance.
func Parse(r io.Reader, opts ...Option) ([]string, [][]float64, error) {
	o := gatherOptions(opts...)
	p := &parser{delim: o.delim}

	br := bufio.NewReader(r)
	for {
		raw, readErr := br.ReadString('\n')
		if raw != "" {
			p.line++
			if err := p.feed(raw); err != nil {
				return nil, nil, err
			}
		}
		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				break
			}
			return nil, nil, fmt.Errorf("dm: read line %d: %w", p.line+1, readErr)
		}
	}

	if err := p.finish(); err != nil {
		return nil, nil, err
	}

	return p.labels, p.grid, nil
}

// feed consumes one physical line.
func (p *parser) feed(raw string) error {
	line := strings.TrimRightFunc(raw, unicode.IsSpace) // drops "\n", "\r\n" and trailing blanks
	if strings.TrimSpace(line) == "" {
		return nil // blank lines carry no meaning anywhere
	}

	if p.labels == nil {
		if isComment(line) {
			return nil
		}
		return p.header(line)
	}

	return p.row(line)
}

// header records the label tokens.
func (p *parser) header(line string) error {
	tokens := splitTokens(line, p.delim)
	if len(tokens) > 0 && tokens[0] == "" {
		tokens = tokens[1:] // optional leading delimiter
	}
	if !hasLabel(tokens) {
		return formatErrorf(ReasonEmpty, p.line, "header has no labels")
	}
	p.labels = tokens
	p.grid = make([][]float64, 0, len(tokens))

	return nil
}

// hasLabel reports whether any header token is non-empty. A header made of
// delimiters alone names no labels.
func hasLabel(tokens []string) bool {
	for _, tok := range tokens {
		if tok != "" {
			return true
		}
	}

	return false
}

// row parses one data row against the header.
func (p *parser) row(line string) error {
	n := len(p.labels)
	pos := len(p.grid)
	if pos == n {
		return formatErrorf(ReasonExtraData, p.line, "unexpected line after %d data rows", n)
	}

	tokens := splitTokens(line, p.delim)
	if id := tokens[0]; id != p.labels[pos] {
		return formatErrorf(ReasonMismatchedID, p.line, "row %d is labeled %q, header expects %q", pos+1, id, p.labels[pos])
	}

	values := tokens[1:]
	switch {
	case len(values) < n:
		return formatErrorf(ReasonMissingData, p.line, "row %q has %d values, want %d", tokens[0], len(values), n)
	case len(values) > n:
		return formatErrorf(ReasonExtraData, p.line, "row %q has %d values, want %d", tokens[0], len(values), n)
	}

	out := make([]float64, n)
	for j, tok := range values {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return formatErrorf(ReasonInvalidValue, p.line, "row %q column %d: %q is not a number", tokens[0], j+1, tok)
		}
		out[j] = v
	}
	p.grid = append(p.grid, out)

	return nil
}

// finish checks end-of-input conditions.
func (p *parser) finish() error {
	if p.labels == nil {
		return formatErrorf(ReasonEmpty, 0, "no header line found")
	}
	if got, want := len(p.grid), len(p.labels); got < want {
		return formatErrorf(ReasonMissingData, 0, "found %d data rows, want %d", got, want)
	}

	return nil
}

// splitTokens splits on delim and trims whitespace around each token.
func splitTokens(line, delim string) []string {
	tokens := strings.Split(line, delim)
	for i := range tokens {
		tokens[i] = strings.TrimSpace(tokens[i])
	}

	return tokens
}

// isComment reports whether line starts with '#' after leading whitespace.
func isComment(line string) bool {
	return strings.HasPrefix(strings.TrimLeftFunc(line, unicode.IsSpace), commentPrefix)
}
