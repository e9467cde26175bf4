// SPDX-License-Identifier: MIT
//
// File: config.go
// Role: Config model, defaults, layered loading and validation.

package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvrank/corpus"
	"github.com/katalvlaran/lvrank/pagerank"
	"github.com/katalvlaran/lvrank/report"
)

// AppName names the configuration directory and the environment prefix.
const AppName = "lvrank"

// Config file names.
const (
	LocalConfigFile = ".lvrank.yaml"
	UserConfigFile  = "config.yaml"
)

// EnvPrefix prefixes every environment override (LVRANK_SAMPLES, ...).
const EnvPrefix = "LVRANK"

// Keys, shared by config files, environment and flag bindings.
const (
	KeyDamping      = "damping"
	KeySamples      = "samples"
	KeySeed         = "seed"
	KeyMaxSweeps    = "max_sweeps"
	KeyThreshold    = "threshold"
	KeyRedistribute = "redistribute_dead_ends"
	KeyFormat       = "format"
	KeyConcurrency  = "concurrency"
	KeyVerbose      = "verbose"
)

var (
	// ErrInvalid indicates a configuration value outside its domain.
	ErrInvalid = errors.New("config: invalid value")

	// ErrConfigNotFound indicates an explicit config path that does not exist.
	ErrConfigNotFound = errors.New("config: file not found")
)

// Config holds all run parameters.
type Config struct {
	Damping              float64 `mapstructure:"damping"`
	Samples              int     `mapstructure:"samples"`
	Seed                 *int64  `mapstructure:"seed"` // nil picks a time-based seed
	MaxSweeps            int     `mapstructure:"max_sweeps"`
	Threshold            float64 `mapstructure:"threshold"`
	RedistributeDeadEnds bool    `mapstructure:"redistribute_dead_ends"`
	Format               string  `mapstructure:"format"`
	Concurrency          int     `mapstructure:"concurrency"`
	Verbose              bool    `mapstructure:"verbose"`
}

// SetDefaults registers the built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyDamping, pagerank.DefaultDamping)
	v.SetDefault(KeySamples, pagerank.DefaultSamples)
	v.SetDefault(KeyMaxSweeps, pagerank.DefaultMaxSweeps)
	v.SetDefault(KeyThreshold, pagerank.DefaultThreshold)
	v.SetDefault(KeyRedistribute, false)
	v.SetDefault(KeyFormat, string(report.FormatText))
	v.SetDefault(KeyConcurrency, runtime.GOMAXPROCS(0))
	v.SetDefault(KeyVerbose, false)
}

// Dir returns the per-user configuration directory.
func Dir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// FindConfigFile returns the file to read, or "" if there is none:
//  1. explicit, if given (ErrConfigNotFound when missing);
//  2. .lvrank.yaml in the working directory;
//  3. config.yaml in Dir().
func FindConfigFile(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("%w: %s", ErrConfigNotFound, explicit)
		}
		return explicit, nil
	}

	if cwd, err := os.Getwd(); err == nil {
		local := filepath.Join(cwd, LocalConfigFile)
		if _, err := os.Stat(local); err == nil {
			return local, nil
		}
	}

	user := filepath.Join(Dir(), UserConfigFile)
	if _, err := os.Stat(user); err == nil {
		return user, nil
	}

	return "", nil
}

// Load resolves defaults, the config file, LVRANK_* variables and whatever
// flags the caller already bound on v, then validates the result.
// explicit is an optional config file path.
func Load(v *viper.Viper, explicit string) (Config, error) {
	SetDefaults(v)

	path, err := FindConfigFile(explicit)
	if err != nil {
		return Config{}, err
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	// seed has no default, so its variable must be bound to be seen by Unmarshal.
	if err := v.BindEnv(KeySeed); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every value against its domain.
func (c Config) Validate() error {
	if !(c.Damping > 0 && c.Damping < 1) {
		return fmt.Errorf("%w: damping %g not in (0,1)", ErrInvalid, c.Damping)
	}
	if c.Samples <= 0 {
		return fmt.Errorf("%w: samples %d must be positive", ErrInvalid, c.Samples)
	}
	if c.MaxSweeps <= 0 {
		return fmt.Errorf("%w: max_sweeps %d must be positive", ErrInvalid, c.MaxSweeps)
	}
	if !(c.Threshold > 0) || math.IsInf(c.Threshold, 1) {
		return fmt.Errorf("%w: threshold %g must be finite and positive", ErrInvalid, c.Threshold)
	}
	if c.Concurrency <= 0 {
		return fmt.Errorf("%w: concurrency %d must be positive", ErrInvalid, c.Concurrency)
	}
	if _, err := report.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// OutputFormat returns the parsed report format. Call after Validate.
func (c Config) OutputFormat() report.Format {
	f, _ := report.ParseFormat(c.Format)
	return f
}

// RankOptions translates c into pagerank options. A nil Seed leaves the
// random source to SampleRank's time-seeded default; any set value, 0
// included, makes the run reproducible.
func (c Config) RankOptions(log zerolog.Logger) []pagerank.Option {
	opts := []pagerank.Option{
		pagerank.WithMaxSweeps(c.MaxSweeps),
		pagerank.WithThreshold(c.Threshold),
		pagerank.WithLogger(log),
	}
	if c.Seed != nil {
		opts = append(opts, pagerank.WithSeed(*c.Seed))
	}
	if c.RedistributeDeadEnds {
		opts = append(opts, pagerank.WithDeadEndRedistribution())
	}

	return opts
}

// LoadOptions translates c into corpus options.
func (c Config) LoadOptions(log zerolog.Logger) []corpus.Option {
	return []corpus.Option{
		corpus.WithConcurrency(c.Concurrency),
		corpus.WithLogger(log),
	}
}
