// SPDX-License-Identifier: MIT
// Package dm: format error taxonomy.
//
// Every syntactic violation of the dm grammar is a *FormatError. All of them
// match ErrFormat under errors.Is and carry a Reason for finer dispatch.
// Semantic violations discovered after a successful parse (duplicate labels,
// non-zero diagonal, asymmetry) come from package distance and never match
// ErrFormat.

package dm

import (
	"errors"
	"fmt"
)

// ErrFormat is the category sentinel for dm syntax errors.
var ErrFormat = errors.New("dm: format error")

// ErrUnwritableLabel is returned by the writer for labels that cannot survive a round trip.
var ErrUnwritableLabel = errors.New("dm: label cannot be written")

// Reason classifies a FormatError.
type Reason uint8

const (
	// ReasonEmpty: no header line (empty input, or only blank/comment lines).
	ReasonEmpty Reason = iota + 1
	// ReasonMissingData: fewer data rows than labels, or a row with fewer values than labels.
	ReasonMissingData
	// ReasonMismatchedID: a row label differs from the header label at its position.
	ReasonMismatchedID
	// ReasonExtraData: a non-blank line after all rows, or a row with more values than labels.
	ReasonExtraData
	// ReasonInvalidValue: a value token that is not a real number.
	ReasonInvalidValue
)

// String returns a stable, lower-case name used in messages.
func (r Reason) String() string {
	switch r {
	case ReasonEmpty:
		return "empty"
	case ReasonMissingData:
		return "missing data"
	case ReasonMismatchedID:
		return "mismatched id"
	case ReasonExtraData:
		return "extra data"
	case ReasonInvalidValue:
		return "invalid value"
	default:
		return fmt.Sprintf("reason(%d)", uint8(r))
	}
}

// FormatError describes a syntactic violation at a 1-based input line.
// Line is 0 when the problem is detected at end of input.
type FormatError struct {
	Reason Reason
	Line   int
	Msg    string
}

// Error implements error.
func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("dm: line %d: %s: %s", e.Line, e.Reason, e.Msg)
	}

	return fmt.Sprintf("dm: %s: %s", e.Reason, e.Msg)
}

// Is makes every FormatError match ErrFormat.
func (e *FormatError) Is(target error) bool { return target == ErrFormat }

// ReasonOf extracts the Reason of a (possibly wrapped) FormatError.
func ReasonOf(err error) (Reason, bool) {
	var fe *FormatError
	if errors.As(err, &fe) {
		return fe.Reason, true
	}

	return 0, false
}

// formatErrorf builds a *FormatError.
func formatErrorf(reason Reason, line int, format string, args ...any) error {
	return &FormatError{Reason: reason, Line: line, Msg: fmt.Sprintf(format, args...)}
}
