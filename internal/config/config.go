// SPDX-License-Identifier: MIT

// Package config loads dmtool settings with viper.
//
// Precedence (lowest to highest): defaults < config file < DMTOOL_* env vars < flags.
// Nested keys map to env vars by replacing '.' with '_', e.g. validate.jobs
// is DMTOOL_VALIDATE_JOBS.
package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "DMTOOL"

// Config is the fully resolved dmtool configuration.
type Config struct {
	Log        LogConfig      `mapstructure:"log"`
	Format     FormatConfig   `mapstructure:"format"`
	Matrix     MatrixConfig   `mapstructure:"matrix"`
	Validation ValidateConfig `mapstructure:"validate"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	JSON  bool   `mapstructure:"json"`
	Level string `mapstructure:"level"`
}

// FormatConfig controls the dm text codec.
type FormatConfig struct {
	Delimiter string `mapstructure:"delimiter"`
}

// MatrixConfig controls matrix construction.
type MatrixConfig struct {
	// Epsilon is the tolerance for the zero-diagonal and symmetry checks; 0 means exact.
	Epsilon float64 `mapstructure:"epsilon"`
}

// ValidateConfig controls the validate command.
type ValidateConfig struct {
	// Jobs bounds how many files are checked concurrently.
	Jobs int `mapstructure:"jobs"`
	// Distance also requires symmetry.
	Distance bool `mapstructure:"distance"`
}

// SetDefaults registers a default for every key. Keys without a default are
// invisible to AutomaticEnv during Unmarshal, so every field must appear here.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.json", false)
	v.SetDefault("log.level", "info")

	v.SetDefault("format.delimiter", "\t")

	v.SetDefault("matrix.epsilon", 0.0)

	v.SetDefault("validate.jobs", 4)
	v.SetDefault("validate.distance", false)
}

// New returns a viper instance with defaults, env binding and, if found, a
// config file. An explicit configFile must exist; otherwise dmtool.{toml,yaml,json}
// is searched in the working directory and then in the user config dir.
func New(configFile string) (*viper.Viper, error) {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config file %s", configFile)
		}
		return v, nil
	}

	v.SetConfigName("dmtool")
	v.AddConfigPath(".")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "dmtool"))
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "read config file")
		}
	}

	return v, nil
}

// Load unmarshals and validates v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks value ranges that viper cannot express.
func (c *Config) Validate() error {
	if c.Validation.Jobs < 1 {
		return errors.Newf("validate.jobs must be >= 1, got %d", c.Validation.Jobs)
	}

	eps := c.Matrix.Epsilon
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		return errors.Newf("matrix.epsilon must be finite and >= 0, got %v", eps)
	}

	if d := c.Format.Delimiter; d == "" || strings.ContainsAny(d, "\r\n") {
		return errors.WithHint(
			errors.Newf("format.delimiter %q is not usable", d),
			"use a non-empty delimiter without line breaks, e.g. \",\"",
		)
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return errors.Newf("log.level must be one of debug, info, warn, error; got %q", c.Log.Level)
	}

	return nil
}
