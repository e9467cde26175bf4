// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvrank/config"
	"github.com/katalvlaran/lvrank/corpus"
	"github.com/katalvlaran/lvrank/pagerank"
	"github.com/katalvlaran/lvrank/report"
)

// rankFlags maps configuration keys to the flags that override them.
var rankFlags = map[string]string{
	config.KeyDamping:      "damping",
	config.KeySamples:      "samples",
	config.KeyMaxSweeps:    "max-sweeps",
	config.KeyThreshold:    "threshold",
	config.KeyRedistribute: "redistribute-dead-ends",
	config.KeyFormat:       "format",
	config.KeyConcurrency:  "concurrency",
	config.KeyVerbose:      "verbose",
}

// NewRankCmd creates the rank command.
func NewRankCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rank <corpus-dir>",
		Short: "Rank every page of a directory of HTML files",
		Long: `Rank loads every *.html file of <corpus-dir>, keeps the links between them
and prints the PageRank of each page twice: estimated by sampling a random
surfer, and computed by fixed-point iteration.

Settings are read from .lvrank.yaml in the working directory (or
$XDG_CONFIG_HOME/lvrank/config.yaml), then LVRANK_* environment variables,
then flags.`,
		Example: `  lvrank rank corpus0
  lvrank rank corpus0 --samples 100000 --seed 7
  lvrank rank corpus0 --format markdown --output ranks.md`,
		Args: cobra.ExactArgs(1),
		RunE: runRank,
	}

	f := cmd.Flags()
	f.Float64P("damping", "d", pagerank.DefaultDamping, "Probability of following a link instead of jumping")
	f.IntP("samples", "n", pagerank.DefaultSamples, "Random-surfer steps for the sampling estimate")
	f.Int64("seed", 0, "Seed for the random surfer (default: time-based)")
	f.Int("max-sweeps", pagerank.DefaultMaxSweeps, "Give up iterating after this many sweeps")
	f.Float64("threshold", pagerank.DefaultThreshold, "Stop iterating once every page moves less than this")
	f.Bool("redistribute-dead-ends", false, "Let pages without links pass their rank on uniformly while iterating")
	f.StringP("format", "f", string(report.FormatText), "Output format: text, markdown, json, yaml or toml")
	f.StringP("output", "o", "", "Write the report to this file instead of stdout")
	f.Int("concurrency", runtime.GOMAXPROCS(0), "Files read in parallel")
	f.StringP("config", "c", "", "Config file (default .lvrank.yaml, then the user config directory)")

	return cmd
}

func runRank(cmd *cobra.Command, args []string) error {
	v := viper.New()
	for key, name := range rankFlags {
		if flag := cmd.Flags().Lookup(name); flag != nil {
			if err := v.BindPFlag(key, flag); err != nil {
				return err
			}
		}
	}
	// An unchanged flag would still report 0 through viper, so seed is only
	// forwarded when given.
	if cmd.Flags().Changed("seed") {
		seed, _ := cmd.Flags().GetInt64("seed")
		v.Set(config.KeySeed, seed)
	}
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(v, cfgPath)
	if err != nil {
		return err
	}
	log := newLogger(cmd.ErrOrStderr(), cfg.Verbose || verboseFlag(cmd))

	// 1) Corpus.
	dir := args[0]
	res, err := corpus.LoadDir(cmd.Context(), dir, cfg.LoadOptions(log)...)
	if err != nil {
		return err
	}
	stats := res.Graph.Stats()
	log.Info().
		Str("corpus", dir).
		Int("pages", stats.Pages).
		Int("links", stats.Links).
		Int("dead_ends", stats.DeadEnds).
		Int("dropped_links", res.Pruned.Dropped()).
		Msg("corpus loaded")
	if stats.DeadEnds > 0 && !cfg.RedistributeDeadEnds {
		log.Debug().Int("dead_ends", stats.DeadEnds).
			Msg("dead ends do not pass rank on while iterating; totals may fall below 1")
	}

	// 2) Both estimators.
	opts := cfg.RankOptions(log)
	sampled, err := pagerank.SampleRank(res.Graph, cfg.Damping, cfg.Samples, opts...)
	if err != nil {
		return err
	}
	iterated, err := pagerank.IterateRank(res.Graph, cfg.Damping, opts...)
	if err != nil {
		return err
	}

	// 3) Report.
	rep := report.New(filepath.Base(filepath.Clean(dir)), stats, cfg.Damping, cfg.Samples, sampled, iterated)
	outPath, _ := cmd.Flags().GetString("output")

	return writeReport(cmd.OutOrStdout(), outPath, cfg.OutputFormat(), rep)
}

// writeReport renders rep to path, or to stdout when path is empty.
func writeReport(stdout io.Writer, path string, format report.Format, rep *report.Report) (err error) {
	out := stdout
	if path != "" {
		var f *os.File
		f, err = os.Create(path)
		if err != nil {
			return fmt.Errorf("create report: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()
		out = f
	}

	w, err := report.NewWriter(format, out)
	if err != nil {
		return err
	}

	return w.Write(rep)
}
