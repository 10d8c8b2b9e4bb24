// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvdm/internal/dmfile"
)

// fileResult is the outcome of validating one file.
type fileResult struct {
	path string
	kind string
	size int
	err  error
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [--distance] FILE...",
		Short: "Check that dm files parse and satisfy the matrix invariants",
		Long: `Validate parses every FILE and checks it as a dissimilarity matrix, or as a
distance matrix with --distance. Files are checked concurrently (--jobs).

One line per file is printed in argument order:
  ok    FILE  KIND NxN
  FAIL  FILE  CLASS: MESSAGE

CLASS is format/<reason>, invalid, asymmetric, not-found or io. The exit
status is non-zero when any file fails.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, cmd, args)
		},
	}

	cmd.Flags().Bool("distance", false, "also require symmetry")
	cmd.Flags().IntP("jobs", "j", 4, "files checked concurrently")

	return cmd
}

func runValidate(opts *RootOptions, cmd *cobra.Command, paths []string) error {
	if err := checkStdinOnce(paths); err != nil {
		return err
	}

	results := make([]fileResult, len(paths))
	asDistance := opts.cfg.Validation.Distance

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(opts.cfg.Validation.Jobs)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = fileResult{path: path, err: err}
				return nil
			}

			start := time.Now()
			m, err := opts.loadMatrix(cmd, path, asDistance)
			if err != nil {
				results[i] = fileResult{path: path, err: err}
				opts.log.Debug("validation failed", zap.String("file", path), zap.Error(err))
				return nil
			}
			results[i] = fileResult{path: path, kind: m.Kind().String(), size: m.Size()}
			opts.log.Debug("validated",
				zap.String("file", path),
				zap.Int("size", m.Size()),
				zap.Duration("took", time.Since(start)),
			)
			return nil
		})
	}
	// Workers record failures in results and never return an error.
	_ = g.Wait()

	out := cmd.OutOrStdout()
	failed := 0
	var firstErr error
	for _, r := range results {
		if r.err != nil {
			failed++
			if firstErr == nil {
				firstErr = r.err
			}
			fmt.Fprintf(out, "FAIL  %s  %s: %v\n", r.path, classify(r.err), r.err)
			continue
		}
		fmt.Fprintf(out, "ok    %s  %s %dx%d\n", r.path, r.kind, r.size, r.size)
	}

	opts.log.Info("validation finished", zap.Int("files", len(paths)), zap.Int("failed", failed))
	if failed == 0 {
		return nil
	}

	err := errors.Newf("%d of %d files failed validation", failed, len(paths))
	if hint := hintFor(firstErr); hint != "" {
		err = errors.WithHint(err, hint)
	}

	return err
}

// checkStdinOnce rejects argument lists that name stdin more than once; the
// stream can only be consumed by one reader.
func checkStdinOnce(paths []string) error {
	seen := 0
	for _, p := range paths {
		if p == dmfile.Stdio {
			seen++
		}
	}
	if seen > 1 {
		return errors.WithHint(
			errors.Newf("stdin (%q) given %d times", dmfile.Stdio, seen),
			"pass - at most once",
		)
	}

	return nil
}
