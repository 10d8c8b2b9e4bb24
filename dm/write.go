// SPDX-License-Identifier: MIT

package dm

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/katalvlaran/lvdm/distance"
)

// Write serializes m in dm format.
// MAIN DESCRIPTION:
//   - Header: one leading delimiter, then the labels joined by the delimiter.
//   - One row per label: the label, then the row values joined by the delimiter.
//
// Implementation:
//   - Stage 1: reject labels that Parse would read back differently.
//   - Stage 2: stream header and rows through a bufio.Writer.
//
// Behavior highlights:
//   - Values use the shortest decimal form that parses back to the identical float64,
//     so Parse(Write(m)) reconstructs a matrix Equal to m.
//   - Every line, including the last, ends with '\n'.
//
// Errors:
//   - ErrUnwritableLabel for labels containing the delimiter or a line break, labels with
//     surrounding whitespace, or a first label that would turn the header into a comment.
//   - Errors from w.
//
// Complexity:
//   - Time O(n²), Space O(1) beyond the buffered writer.
func Write(w io.Writer, m distance.Reader, opts ...Option) error {
	o := gatherOptions(opts...)
	labels := m.Labels()
	if err := checkLabels(labels, o.delim); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	var num []byte // scratch buffer for float formatting

	// Header.
	bw.WriteString(o.delim)
	bw.WriteString(strings.Join(labels, o.delim))
	bw.WriteByte('\n')

	// Rows.
	n := len(labels)
	var i, j int
	for i = 0; i < n; i++ {
		bw.WriteString(labels[i])
		for j = 0; j < n; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return fmt.Errorf("dm: write row %q: %w", labels[i], err)
			}
			bw.WriteString(o.delim)
			num = strconv.AppendFloat(num[:0], v, 'g', -1, 64)
			bw.Write(num)
		}
		bw.WriteByte('\n')
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("dm: write: %w", err)
	}

	return nil
}

// Format returns the dm text of m.
func Format(m distance.Reader, opts ...Option) (string, error) {
	var b strings.Builder
	if err := Write(&b, m, opts...); err != nil {
		return "", err
	}

	return b.String(), nil
}

// checkLabels rejects labels that would not round-trip through Parse.
func checkLabels(labels []string, delim string) error {
	for i, l := range labels {
		switch {
		case strings.Contains(l, delim):
			return fmt.Errorf("%w: %q contains the delimiter", ErrUnwritableLabel, l)
		case strings.ContainsAny(l, "\r\n"):
			return fmt.Errorf("%w: %q contains a line break", ErrUnwritableLabel, l)
		case l != strings.TrimFunc(l, unicode.IsSpace):
			return fmt.Errorf("%w: %q has surrounding whitespace", ErrUnwritableLabel, l)
		case i == 0 && isComment(delim+l):
			return fmt.Errorf("%w: header starting with %q would read as a comment", ErrUnwritableLabel, l)
		}
	}

	return nil
}
