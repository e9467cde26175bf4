// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lvrank",
		Short: "PageRank for a directory of HTML pages",
		Long: `lvrank estimates the PageRank of every page in a closed corpus of HTML
files. Links are the href targets of <a> elements that name another file of
the same directory.

Two estimators run side by side: a random-surfer simulation (sampling) and
a fixed-point iteration. Their L1 divergence is reported as well.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(NewRankCmd())
	cmd.AddCommand(NewGenerateCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// newLogger returns a human-readable logger on w: info level, or debug when
// verbose is set.
func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: "15:04:05"}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// verboseFlag reads the persistent --verbose flag from any subcommand.
func verboseFlag(cmd *cobra.Command) bool {
	v, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		v, _ = cmd.Root().PersistentFlags().GetBool("verbose")
	}

	return v
}
