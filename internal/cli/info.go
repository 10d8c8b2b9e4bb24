// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvdm/distance"
)

// ValidOutputs defines the allowed info output formats.
var ValidOutputs = []string{"text", "json", "yaml"}

// Summary describes one matrix file.
type Summary struct {
	File      string   `json:"file" yaml:"file"`
	Kind      string   `json:"kind" yaml:"kind"`
	Size      int      `json:"size" yaml:"size"`
	Labels    []string `json:"labels" yaml:"labels"`
	Symmetric bool     `json:"symmetric" yaml:"symmetric"`
	// The off-diagonal figures are nil for a 1×1 matrix.
	MinOffDiagonal  *float64 `json:"min_off_diagonal,omitempty" yaml:"min_off_diagonal,omitempty"`
	MaxOffDiagonal  *float64 `json:"max_off_diagonal,omitempty" yaml:"max_off_diagonal,omitempty"`
	MeanOffDiagonal *float64 `json:"mean_off_diagonal,omitempty" yaml:"mean_off_diagonal,omitempty"`
}

// NewInfoCommand creates the info command.
func NewInfoCommand(rootOpts *RootOptions) *cobra.Command {
	var output string
	var asDistance bool

	cmd := &cobra.Command{
		Use:   "info [--output text|json|yaml] FILE",
		Short: "Summarize a dm file",
		Args:  cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			if !isValidOutput(output) {
				return errors.Newf("invalid output %q: must be one of %v", output, ValidOutputs)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := rootOpts.loadMatrix(cmd, args[0], asDistance)
			if err != nil {
				return userError(err, "read %s", args[0])
			}
			return writeSummary(cmd.OutOrStdout(), output, Summarize(args[0], m))
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format (text|json|yaml)")
	cmd.Flags().BoolVar(&asDistance, "distance", false, "require a distance matrix")

	return cmd
}

func isValidOutput(output string) bool {
	for _, o := range ValidOutputs {
		if o == output {
			return true
		}
	}
	return false
}

// Summarize computes the Summary of m.
func Summarize(file string, m *distance.DissimilarityMatrix) Summary {
	s := Summary{
		File:      file,
		Kind:      m.Kind().String(),
		Size:      m.Size(),
		Labels:    m.Labels(),
		Symmetric: m.IsSymmetric(),
	}

	if st := m.OffDiagonalStats(); st.Count > 0 {
		s.MinOffDiagonal, s.MaxOffDiagonal, s.MeanOffDiagonal = &st.Min, &st.Max, &st.Mean
	}

	return s
}

func writeSummary(w io.Writer, output string, s Summary) error {
	switch output {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)

	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return err
		}
		return enc.Close()

	default:
		fmt.Fprintf(w, "file:       %s\n", s.File)
		fmt.Fprintf(w, "kind:       %s\n", s.Kind)
		fmt.Fprintf(w, "size:       %d\n", s.Size)
		fmt.Fprintf(w, "labels:     %s\n", strings.Join(s.Labels, " "))
		fmt.Fprintf(w, "symmetric:  %t\n", s.Symmetric)
		if s.MinOffDiagonal != nil {
			fmt.Fprintf(w, "min:        %s\n", strconv.FormatFloat(*s.MinOffDiagonal, 'g', -1, 64))
			fmt.Fprintf(w, "max:        %s\n", strconv.FormatFloat(*s.MaxOffDiagonal, 'g', -1, 64))
			fmt.Fprintf(w, "mean:       %s\n", strconv.FormatFloat(*s.MeanOffDiagonal, 'g', -1, 64))
		}
		return nil
	}
}
