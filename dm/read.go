// SPDX-License-Identifier: MIT

package dm

import (
	"io"

	"github.com/katalvlaran/lvdm/distance"
)

// ReadDissimilarity parses r and validates the result as a DissimilarityMatrix.
// Syntax errors match ErrFormat; invariant violations match distance.ErrInvalid.
func ReadDissimilarity(r io.Reader, opts ...Option) (*distance.DissimilarityMatrix, error) {
	o := gatherOptions(opts...)
	labels, grid, err := Parse(r, opts...)
	if err != nil {
		return nil, err
	}

	return distance.NewDissimilarity(labels, grid, o.matrixOpts...)
}

// ReadDistance parses r and validates the result as a DistanceMatrix.
// In addition to ReadDissimilarity's errors, asymmetric data fails with
// distance.ErrAsymmetric (neither ErrFormat nor distance.ErrInvalid).
func ReadDistance(r io.Reader, opts ...Option) (*distance.DistanceMatrix, error) {
	o := gatherOptions(opts...)
	labels, grid, err := Parse(r, opts...)
	if err != nil {
		return nil, err
	}

	return distance.NewDistance(labels, grid, o.matrixOpts...)
}
