// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvdm/distance"
	"github.com/katalvlaran/lvdm/dm"
	"github.com/katalvlaran/lvdm/internal/dmfile"
)

// openInput opens path, or the command's stdin for "-".
func openInput(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if path == dmfile.Stdio {
		return dmfile.NewReader(cmd.InOrStdin())
	}

	return dmfile.Open(path)
}

// createOutput creates path, or wraps the command's stdout for "-".
func createOutput(cmd *cobra.Command, path string) (io.WriteCloser, error) {
	if path == dmfile.Stdio {
		return dmfile.NewWriter(cmd.OutOrStdout(), dmfile.CodecNone)
	}

	return dmfile.Create(path)
}

// loadMatrix reads and validates one file. With asDistance the symmetry check
// is applied too; the returned view then reports KindDistance.
func (o *RootOptions) loadMatrix(cmd *cobra.Command, path string, asDistance bool) (*distance.DissimilarityMatrix, error) {
	rc, err := openInput(cmd, path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	if asDistance {
		m, err := dm.ReadDistance(rc, o.dmOptions()...)
		if err != nil {
			return nil, err
		}
		return m.Dissimilarity(), nil
	}

	return dm.ReadDissimilarity(rc, o.dmOptions()...)
}

// classify names the failure class shown to users.
func classify(err error) string {
	if reason, ok := dm.ReasonOf(err); ok {
		return fmt.Sprintf("format/%s", reason)
	}

	switch {
	case distance.IsAsymmetric(err):
		return "asymmetric"
	case distance.IsInvalid(err):
		return "invalid"
	case errors.Is(err, os.ErrNotExist):
		return "not-found"
	default:
		return "io"
	}
}

// hintFor suggests a fix for a failure class.
func hintFor(err error) string {
	if _, ok := dm.ReasonOf(err); ok {
		return "the file is not in dm format: one header line of labels, then one row per label in header order"
	}

	switch {
	case distance.IsAsymmetric(err):
		return "drop --distance to accept asymmetric dissimilarities, or raise --epsilon for rounding noise"
	case distance.IsInvalid(err):
		return "labels must be unique and non-empty, values finite, and the diagonal zero"
	case errors.Is(err, os.ErrNotExist):
		return "check the path"
	default:
		return ""
	}
}

// userError wraps err with a message and, when one applies, a hint.
func userError(err error, format string, args ...any) error {
	wrapped := errors.Wrapf(err, format, args...)
	if hint := hintFor(err); hint != "" {
		wrapped = errors.WithHint(wrapped, hint)
	}

	return wrapped
}
