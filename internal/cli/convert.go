// SPDX-License-Identifier: MIT

package cli

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvdm/dm"
	"github.com/katalvlaran/lvdm/internal/dmfile"
)

// ConvertOptions holds convert-specific flags.
type ConvertOptions struct {
	IDs      []string
	Distance bool
	OutDelim string
}

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ConvertOptions{}

	cmd := &cobra.Command{
		Use:   "convert [--ids a,b] [--distance] IN OUT",
		Short: "Rewrite a dm file in canonical form, optionally subset and recompressed",
		Long: `Convert reads IN, validates it, optionally restricts it to --ids (in the given
order) and writes OUT in canonical dm form. The codec of OUT follows its
suffix (.gz, .zst); "-" writes plain text to stdout.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(rootOpts, opts, cmd, args[0], args[1])
		},
	}

	cmd.Flags().StringSliceVar(&opts.IDs, "ids", nil, "labels to keep, in output order")
	cmd.Flags().BoolVar(&opts.Distance, "distance", false, "require IN to be a distance matrix")
	cmd.Flags().StringVar(&opts.OutDelim, "out-delimiter", "", "delimiter for OUT (default: same as input)")

	return cmd
}

func runConvert(rootOpts *RootOptions, opts *ConvertOptions, cmd *cobra.Command, in, out string) error {
	m, err := rootOpts.loadMatrix(cmd, in, opts.Distance)
	if err != nil {
		return userError(err, "read %s", in)
	}

	if len(opts.IDs) > 0 {
		ids := make([]string, len(opts.IDs))
		for i, id := range opts.IDs {
			ids[i] = strings.TrimSpace(id)
		}
		if m, err = m.Filter(ids...); err != nil {
			return errors.WithHint(errors.Wrap(err, "filter"), "every --ids entry must be a distinct label of IN")
		}
	}

	delim := rootOpts.cfg.Format.Delimiter
	if opts.OutDelim != "" {
		delim = opts.OutDelim
	}
	if delim == "" || strings.ContainsAny(delim, "\r\n") {
		return errors.Newf("--out-delimiter %q is not usable", delim)
	}

	w, err := createOutput(cmd, out)
	if err != nil {
		return userError(err, "create %s", out)
	}
	if err = dm.Write(w, m, dm.WithDelimiter(delim)); err != nil {
		w.Close()
		removePartial(out)
		if errors.Is(err, dm.ErrUnwritableLabel) {
			return errors.WithHint(errors.Wrapf(err, "write %s", out), "pick an --out-delimiter that no label contains")
		}
		return errors.Wrapf(err, "write %s", out)
	}
	if err = w.Close(); err != nil {
		removePartial(out)
		return errors.Wrapf(err, "close %s", out)
	}

	rootOpts.log.Info("converted",
		zap.String("in", in),
		zap.String("out", out),
		zap.String("kind", m.Kind().String()),
		zap.Int("size", m.Size()),
		zap.Stringer("codec", dmfile.CodecFor(out)),
	)

	return nil
}

// removePartial deletes a half-written output file; stdout is left alone.
func removePartial(path string) {
	if path != dmfile.Stdio {
		_ = os.Remove(path)
	}
}
