// SPDX-License-Identifier: MIT

// Package distance - labeled dissimilarity matrices (immutable, validated at construction).
//
// Purpose:
//   - Pair an ordered label set with a square *matrix.Dense grid.
//   - Enforce invariants atomically: either a fully valid instance is returned or none is.
//   - Expose read-only access by index and by label; nothing mutates after construction.
//
// Determinism:
//   - Validation runs in a fixed order: labels → shape → finite → hollow → symmetry (distance only).
//     The first violation in that order is the one reported.
//
// AI-Hints:
//   - Instances are safe to share between goroutines without locking.
//   - Prefer Value(row, col) in consumer code; At(i, j) is the fast path when indices are known.

package distance

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvdm/matrix"
)

// ---------- op tags ----------

const (
	opNewDissimilarity = "NewDissimilarity"
	opNewDistance      = "NewDistance"
	opFromCondensed    = "NewDistanceFromCondensed"
	opFilter           = "Filter"
	opAsDistance       = "AsDistance"
)

// Option configures construction (tolerance). It is the matrix package option type.
type Option = matrix.Option

// WithEpsilon widens the hollow and symmetry checks to |x| ≤ eps.
// The default is exact comparison. Equal is never affected.
func WithEpsilon(eps float64) Option { return matrix.WithEpsilon(eps) }

// DissimilarityMatrix is an immutable (labels, grid) pair satisfying:
// square grid sized to the labels, zero diagonal, unique non-empty labels, n ≥ 1.
// The zero value is not usable; build instances with NewDissimilarity.
type DissimilarityMatrix struct {
	labels []string       // ordered, owned copy
	index  map[string]int // label -> position
	grid   *matrix.Dense  // sealed: never written after validation
	kind   Kind           // strategy the grid has been proven against
}

// NewDissimilarity validates (labels, grid) and returns a DissimilarityMatrix.
// MAIN DESCRIPTION:
//   - Primary constructor for possibly asymmetric dissimilarity data.
//
// Implementation:
//   - Stage 1: labels non-empty, each label non-empty and unique.
//   - Stage 2: grid has len(labels) rows of len(labels) values.
//   - Stage 3: copy into a *matrix.Dense.
//   - Stage 4: run the dissimilarity strategy (finite values, hollow diagonal).
//
// Inputs:
//   - labels: ordered entity ids; copied.
//   - grid:   row-major values, grid[i][j] = dissimilarity of labels[i] to labels[j]; copied.
//
// Errors (all satisfy errors.Is(err, ErrInvalid)):
//   - ErrEmpty, ErrEmptyLabel, ErrDuplicateLabel, ErrNonSquare, ErrNaNInf, ErrNonZeroDiagonal.
//
// Complexity:
//   - Time O(n²), Space O(n²).
//
// Notes:
//   - Off-diagonal values may be negative; no sign constraint is imposed.
func NewDissimilarity(labels []string, grid [][]float64, opts ...Option) (*DissimilarityMatrix, error) {
	return build(opNewDissimilarity, KindDissimilarity, labels, grid, opts...)
}

// build is the construction path for row-slice input, shared by both kinds.
func build(op string, kind Kind, labels []string, grid [][]float64, opts ...Option) (*DissimilarityMatrix, error) {
	// Stage 1: labels.
	index, err := labelIndex(op, labels)
	if err != nil {
		return nil, err
	}

	// Stage 2: shape against the label count.
	if err = checkShape(len(labels), grid); err != nil {
		return nil, invalidf(op, err)
	}

	// Stage 3: copy; non-finite values are left to the strategy's finite step.
	g, err := matrix.NewDenseFromRows(grid, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, invalidf(op, err)
	}

	return seal(op, kind, labels, index, g, matrix.NewOptions(opts...))
}

// seal runs the kind strategy over a freshly built grid and, on success,
// takes ownership of it together with a copy of labels.
func seal(op string, kind Kind, labels []string, index map[string]int, g *matrix.Dense, o matrix.Options) (*DissimilarityMatrix, error) {
	for _, check := range kind.checks() {
		if err := check(op, g, o); err != nil {
			return nil, err
		}
	}

	owned := make([]string, len(labels))
	copy(owned, labels)

	return &DissimilarityMatrix{labels: owned, index: index, grid: g, kind: kind}, nil
}

// labelIndex requires at least one label and indexes them (ErrInvalid category).
func labelIndex(op string, labels []string) (map[string]int, error) {
	if len(labels) == 0 {
		return nil, invalidf(op, ErrEmpty)
	}
	index, err := indexLabels(labels)
	if err != nil {
		return nil, invalidf(op, err)
	}

	return index, nil
}

// indexLabels builds the label → position map, rejecting empty and duplicate labels.
func indexLabels(labels []string) (map[string]int, error) {
	index := make(map[string]int, len(labels))
	for i, id := range labels {
		if id == "" {
			return nil, fmt.Errorf("label %d: %w", i, ErrEmptyLabel)
		}
		if prev, dup := index[id]; dup {
			return nil, fmt.Errorf("label %q at %d and %d: %w", id, prev, i, ErrDuplicateLabel)
		}
		index[id] = i
	}

	return index, nil
}

// checkShape verifies that grid is n×n.
func checkShape(n int, grid [][]float64) error {
	if len(grid) != n {
		return fmt.Errorf("grid has %d rows for %d labels: %w", len(grid), n, ErrNonSquare)
	}
	for i, row := range grid {
		if len(row) != n {
			return fmt.Errorf("row %d has %d values, want %d: %w", i, len(row), n, ErrNonSquare)
		}
	}

	return nil
}

// Labels returns a copy of the ordered label set.
// Complexity: O(n).
func (d *DissimilarityMatrix) Labels() []string {
	out := make([]string, len(d.labels))
	copy(out, d.labels)

	return out
}

// Label returns the label at position i.
func (d *DissimilarityMatrix) Label(i int) (string, error) {
	if i < 0 || i >= len(d.labels) {
		return "", fmt.Errorf("Label(%d): %w", i, ErrOutOfRange)
	}

	return d.labels[i], nil
}

// Size returns n, the number of labels (and the side of the grid).
func (d *DissimilarityMatrix) Size() int { return len(d.labels) }

// Shape returns (n, n).
func (d *DissimilarityMatrix) Shape() (rows, cols int) { return d.grid.Shape() }

// Kind reports the strategy this instance was validated under.
func (d *DissimilarityMatrix) Kind() Kind { return d.kind }

// IsSymmetric reports whether grid[i][j] == grid[j][i] for all i, j.
// O(1) for instances proven as distance matrices, O(n²) otherwise.
func (d *DissimilarityMatrix) IsSymmetric() bool {
	if d.kind == KindDistance {
		return true
	}

	return matrix.ValidateSymmetric(d.grid, 0) == nil
}

// Index returns the position of id.
// Errors: ErrUnknownLabel.
func (d *DissimilarityMatrix) Index(id string) (int, error) {
	i, ok := d.index[id]
	if !ok {
		return 0, fmt.Errorf("Index(%q): %w", id, ErrUnknownLabel)
	}

	return i, nil
}

// Contains reports whether id is one of the labels.
func (d *DissimilarityMatrix) Contains(id string) bool {
	_, ok := d.index[id]
	return ok
}

// At returns the value at (row index, col index).
// Errors: ErrOutOfRange.
func (d *DissimilarityMatrix) At(i, j int) (float64, error) {
	return d.grid.At(i, j)
}

// Value returns the dissimilarity of rowID to colID.
// Errors: ErrUnknownLabel.
// Complexity: O(1).
func (d *DissimilarityMatrix) Value(rowID, colID string) (float64, error) {
	i, err := d.Index(rowID)
	if err != nil {
		return 0, fmt.Errorf("Value: %w", err)
	}
	j, err := d.Index(colID)
	if err != nil {
		return 0, fmt.Errorf("Value: %w", err)
	}

	return d.grid.At(i, j)
}

// RowValues returns a copy of the row belonging to id.
func (d *DissimilarityMatrix) RowValues(id string) ([]float64, error) {
	i, err := d.Index(id)
	if err != nil {
		return nil, fmt.Errorf("RowValues: %w", err)
	}

	return d.grid.Row(i)
}

// OffDiagonalStats summarizes the off-diagonal values (count, min, max, mean).
// A 1×1 matrix yields the zero Stats.
// Complexity: O(n²).
func (d *DissimilarityMatrix) OffDiagonalStats() matrix.Stats {
	s, _ := matrix.OffDiagonalStats(d.grid) // grid is non-nil and square by construction

	return s
}

// Redundant returns a deep copy of the full n×n grid.
// Complexity: O(n²).
func (d *DissimilarityMatrix) Redundant() [][]float64 { return d.grid.Rows2D() }

// Transpose returns the matrix with rows and columns swapped (same labels).
// For distance matrices the result equals the receiver.
// Complexity: O(n²).
func (d *DissimilarityMatrix) Transpose() *DissimilarityMatrix {
	return &DissimilarityMatrix{labels: d.labels, index: d.index, grid: d.grid.Transpose(), kind: d.kind}
}

// Filter returns the principal submatrix for ids, in the order given.
// MAIN DESCRIPTION:
//   - Subset (and optionally reorder) the entities; the kind is preserved because
//     principal submatrices of hollow/symmetric grids stay hollow/symmetric.
//
// Errors:
//   - ErrEmpty / ErrDuplicateLabel (ErrInvalid category) for an empty or repeating id list.
//   - ErrUnknownLabel for ids not present.
//
// Complexity:
//   - Time O(k²), Space O(k²) for k=len(ids).
func (d *DissimilarityMatrix) Filter(ids ...string) (*DissimilarityMatrix, error) {
	if len(ids) == 0 {
		return nil, invalidf(opFilter, ErrEmpty)
	}
	index, err := indexLabels(ids)
	if err != nil {
		return nil, invalidf(opFilter, err)
	}

	pos := make([]int, len(ids))
	for k, id := range ids {
		if pos[k], err = d.Index(id); err != nil {
			return nil, fmt.Errorf("%s: %w", opFilter, err)
		}
	}
	sub, err := d.grid.Induced(pos, pos)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opFilter, err)
	}

	owned := make([]string, len(ids))
	copy(owned, ids)

	return &DissimilarityMatrix{labels: owned, index: index, grid: sub, kind: d.kind}, nil
}

// AsDistance promotes the receiver to a DistanceMatrix after a symmetry check.
// The grid storage is shared; both values are immutable.
// Errors: ErrAsymmetric (not in the ErrInvalid category).
// Complexity: O(1) if already proven symmetric, O(n²) otherwise.
func (d *DissimilarityMatrix) AsDistance(opts ...Option) (*DistanceMatrix, error) {
	if d.kind == KindDistance {
		return &DistanceMatrix{DissimilarityMatrix: d}, nil
	}
	if err := checkSymmetric(opAsDistance, d.grid, matrix.NewOptions(opts...)); err != nil {
		return nil, err
	}

	return &DistanceMatrix{
		DissimilarityMatrix: &DissimilarityMatrix{labels: d.labels, index: d.index, grid: d.grid, kind: KindDistance},
	}, nil
}

// String renders the kind, shape, labels and grid for diagnostics.
func (d *DissimilarityMatrix) String() string {
	var b strings.Builder
	n := len(d.labels)
	fmt.Fprintf(&b, "%s %dx%d [%s]\n", d.kind, n, n, strings.Join(d.labels, " "))
	b.WriteString(d.grid.String())

	return b.String()
}
