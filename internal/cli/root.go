// SPDX-License-Identifier: MIT

// Package cli implements the dmtool command tree.
package cli

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvdm/distance"
	"github.com/katalvlaran/lvdm/dm"
	"github.com/katalvlaran/lvdm/internal/config"
	"github.com/katalvlaran/lvdm/internal/logging"
)

// RootOptions holds global flags and the state resolved from them before any
// subcommand runs.
type RootOptions struct {
	ConfigFile string

	cfg *config.Config
	log *zap.Logger
}

// flagKeys maps config keys to the flag names that override them. Flags not
// defined on the running command are skipped.
var flagKeys = map[string]string{
	"log.json":          "log-json",
	"log.level":         "log-level",
	"format.delimiter":  "delimiter",
	"matrix.epsilon":    "epsilon",
	"validate.jobs":     "jobs",
	"validate.distance": "distance",
}

// NewRootCommand creates the dmtool root command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "dmtool",
		Short: "Validate, inspect and convert dissimilarity matrix files",
		Long: `dmtool works with labeled dissimilarity matrices stored in the tab-delimited
"dm" text format. Files ending in .gz or .zst are compressed transparently, and
"-" reads stdin or writes stdout.

Examples:
  dmtool validate --distance a.dm b.dm.gz
  dmtool info -o json a.dm
  dmtool convert --ids s1,s3 a.dm subset.dm.zst`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.resolve(cmd)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.ConfigFile, "config", "", "config file (default: ./dmtool.{toml,yaml} or the user config dir)")
	pf.Bool("log-json", false, "emit logs as JSON")
	pf.String("log-level", "info", "log level (debug|info|warn|error)")
	pf.String("delimiter", dm.DefaultDelimiter, "token delimiter of the dm format")
	pf.Float64("epsilon", 0, "tolerance for the zero-diagonal and symmetry checks")

	cmd.AddCommand(NewValidateCommand(opts))
	cmd.AddCommand(NewConvertCommand(opts))
	cmd.AddCommand(NewInfoCommand(opts))

	return cmd
}

// resolve loads configuration, lets explicitly set flags win, and builds the logger.
func (o *RootOptions) resolve(cmd *cobra.Command) error {
	v, err := config.New(o.ConfigFile)
	if err != nil {
		return errors.WithHint(err, "check the --config path or remove the broken dmtool config file")
	}
	if err = bindFlags(v, cmd.Flags()); err != nil {
		return err
	}

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	log, err := logging.New(cmd.ErrOrStderr(), cfg.Log.JSON, cfg.Log.Level)
	if err != nil {
		return err
	}

	o.cfg, o.log = cfg, log
	o.log.Debug("configuration resolved",
		zap.String("config_file", v.ConfigFileUsed()),
		zap.Int("jobs", cfg.Validation.Jobs),
		zap.Float64("epsilon", cfg.Matrix.Epsilon),
	)

	return nil
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for key, name := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return errors.Wrapf(err, "bind --%s", name)
		}
	}

	return nil
}

// dmOptions turns the resolved configuration into codec options.
func (o *RootOptions) dmOptions() []dm.Option {
	return []dm.Option{
		dm.WithDelimiter(o.cfg.Format.Delimiter),
		dm.WithMatrixOptions(distance.WithEpsilon(o.cfg.Matrix.Epsilon)),
	}
}

// Execute runs dmtool with the given arguments and streams and returns the
// process exit code. Errors are printed to stderr followed by their hints.
func Execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return 0
	}

	fmt.Fprintf(stderr, "Error: %v\n", err)
	for _, hint := range errors.GetAllHints(err) {
		fmt.Fprintf(stderr, "Hint: %s\n", hint)
	}

	return 1
}
