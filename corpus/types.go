// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Sentinel errors, load options and the pruning report.

package corpus

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvrank/core"
)

// PageSuffix marks the files that belong to a corpus.
const PageSuffix = ".html"

// Sentinel errors.
var (
	// ErrNotDir indicates a corpus path that is not a directory.
	ErrNotDir = errors.New("corpus: not a directory")

	// ErrNoPages indicates a directory without any page file.
	ErrNoPages = errors.New("corpus: no pages found")

	// ErrParse indicates a page that could not be read or parsed.
	ErrParse = errors.New("corpus: cannot parse page")
)

// Options configures Load and LoadDir.
type Options struct {
	// Concurrency bounds the number of files read at once (> 0).
	Concurrency int

	// Logger receives debug events for skipped entries and pruned links.
	Logger zerolog.Logger
}

// Option represents a functional option for Load.
type Option func(*Options)

// DefaultOptions reads GOMAXPROCS files at a time and logs nothing.
func DefaultOptions() Options {
	return Options{
		Concurrency: runtime.GOMAXPROCS(0),
		Logger:      zerolog.Nop(),
	}
}

// WithConcurrency bounds parallel file reads. Panics unless n > 0.
func WithConcurrency(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("corpus: WithConcurrency(%d): must be positive", n))
	}

	return func(o *Options) { o.Concurrency = n }
}

// WithLogger routes load diagnostics to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// Result is a loaded corpus together with what was dropped on the way.
type Result struct {
	Graph   *core.Graph
	Pruned  core.PruneStats
	Skipped []string // directory entries that are not pages, sorted
}
