// SPDX-License-Identifier: MIT

package distance

// Reader is the read-only contract consumed by downstream modules
// (diversity, permutation statistics) and by the dm writer.
// Both *DissimilarityMatrix and *DistanceMatrix implement it.
type Reader interface {
	// Labels returns the ordered labels (caller-owned copy).
	Labels() []string
	// Size returns the number of labels n.
	Size() int
	// At returns the value at (row index, col index).
	At(i, j int) (float64, error)
	// Value returns the value at (row label, col label).
	Value(rowID, colID string) (float64, error)
	// Index returns the position of a label.
	Index(id string) (int, error)
}

// Compile-time assertions.
var (
	_ Reader = (*DissimilarityMatrix)(nil)
	_ Reader = (*DistanceMatrix)(nil)
)

// Equal reports whether a and b hold the same labels in the same order and
// exactly equal grids. The kind is not compared: a DistanceMatrix equals the
// DissimilarityMatrix built from the same data.
// MAIN DESCRIPTION:
//   - Reflexive, symmetric and order-sensitive; no numeric tolerance.
//
// Behavior highlights:
//   - nil readers (including typed nils) are equal only to each other.
//   - Fast path compares the dense buffers directly when both sides are package types.
//
// Complexity:
//   - Time O(n²) worst case, Space O(n) for the label copies of foreign Readers.
func Equal(a, b Reader) bool {
	da, db := unwrap(a), unwrap(b)
	aNil := da == nil && isNilReader(a)
	bNil := db == nil && isNilReader(b)
	if aNil || bNil {
		return aNil && bNil
	}

	// Fast path: both sides are our own types.
	if da != nil && db != nil {
		if len(da.labels) != len(db.labels) {
			return false
		}
		for i := range da.labels {
			if da.labels[i] != db.labels[i] {
				return false
			}
		}
		return da.grid.Equal(db.grid)
	}

	// Generic path over the Reader contract.
	if a.Size() != b.Size() {
		return false
	}
	la, lb := a.Labels(), b.Labels()
	if len(la) != len(lb) {
		return false
	}
	for i := range la {
		if la[i] != lb[i] {
			return false
		}
	}
	n := a.Size()
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			va, errA := a.At(i, j)
			vb, errB := b.At(i, j)
			if errA != nil || errB != nil || va != vb {
				return false
			}
		}
	}

	return true
}

// unwrap returns the underlying dissimilarity value of package types, or nil.
func unwrap(r Reader) *DissimilarityMatrix {
	switch m := r.(type) {
	case *DissimilarityMatrix:
		return m
	case *DistanceMatrix:
		if m == nil {
			return nil
		}
		return m.DissimilarityMatrix
	default:
		return nil
	}
}

// isNilReader reports a nil interface or a typed nil of a package type.
func isNilReader(r Reader) bool {
	switch m := r.(type) {
	case nil:
		return true
	case *DissimilarityMatrix:
		return m == nil
	case *DistanceMatrix:
		return m == nil || m.DissimilarityMatrix == nil
	default:
		return false
	}
}
