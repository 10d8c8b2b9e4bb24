// SPDX-License-Identifier: MIT

package distance

import (
	"fmt"

	"github.com/katalvlaran/lvdm/matrix"
)

// Kind selects the validation strategy a matrix was built (and proven) under.
// A single grid representation serves both kinds; only the checks differ.
type Kind uint8

const (
	// KindDissimilarity: square, hollow, finite, unique non-empty labels, n ≥ 1.
	KindDissimilarity Kind = iota
	// KindDistance: KindDissimilarity plus symmetry.
	KindDistance
)

// String returns the type name used in messages and String dumps.
func (k Kind) String() string {
	switch k {
	case KindDissimilarity:
		return "DissimilarityMatrix"
	case KindDistance:
		return "DistanceMatrix"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// gridCheck is one step of a kind's strategy. It receives a grid that is
// already square and sized to the label set, and returns a fully
// categorized error (ErrInvalid-wrapped or ErrAsymmetric).
type gridCheck func(op string, g *matrix.Dense, o matrix.Options) error

// checkFinite rejects NaN and ±Inf anywhere in the grid.
func checkFinite(op string, g *matrix.Dense, _ matrix.Options) error {
	if err := matrix.ValidateFinite(g); err != nil {
		return invalidf(op, err)
	}

	return nil
}

// checkHollow requires a zero diagonal (within eps).
func checkHollow(op string, g *matrix.Dense, o matrix.Options) error {
	if err := matrix.ValidateHollow(g, o.Epsilon()); err != nil {
		return invalidf(op, err)
	}

	return nil
}

// checkSymmetric requires g[i][j] == g[j][i] (within eps). Its error stays outside ErrInvalid.
func checkSymmetric(op string, g *matrix.Dense, o matrix.Options) error {
	if err := matrix.ValidateSymmetric(g, o.Epsilon()); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

var (
	dissimilarityChecks = []gridCheck{checkFinite, checkHollow}
	distanceChecks      = []gridCheck{checkFinite, checkHollow, checkSymmetric}
)

// checks returns the ordered strategy for k.
func (k Kind) checks() []gridCheck {
	if k == KindDistance {
		return distanceChecks
	}

	return dissimilarityChecks
}
