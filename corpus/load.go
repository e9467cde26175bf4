// SPDX-License-Identifier: MIT
//
// File: load.go
// Role: Directory scan, concurrent page reads and graph assembly.

package corpus

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvrank/core"
)

// LoadDir loads the corpus stored in the directory at path.
func LoadDir(ctx context.Context, path string, opts ...Option) (*Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("corpus: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDir, path)
	}

	return Load(ctx, os.DirFS(path), opts...)
}

// Load reads every *.html file at the root of fsys and builds the link graph.
//
// Steps:
//  1. List the root; keep regular files named *.html, record the rest as skipped.
//  2. Read and parse pages concurrently; the first failure cancels the rest.
//  3. Drop self, external and repeated links (core.Prune).
//  4. Validate and freeze with core.NewGraph.
func Load(ctx context.Context, fsys fs.FS, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	log := cfg.Logger

	// 1) Directory listing (fs.ReadDir returns entries sorted by name).
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("corpus: %w", err)
	}
	var (
		pages   []core.Page
		skipped []string
	)
	for _, e := range entries {
		if !strings.HasSuffix(e.Name(), PageSuffix) || !isRegularFile(fsys, e) {
			skipped = append(skipped, e.Name())
			log.Debug().Str("entry", e.Name()).Bool("dir", e.IsDir()).Msg("skipping entry")
			continue
		}
		pages = append(pages, e.Name())
	}
	if len(pages) == 0 {
		return nil, ErrNoPages
	}
	sort.Strings(skipped)

	// 2) Concurrent reads; each goroutine owns one slot of hrefs.
	hrefs := make([][]string, len(pages))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Concurrency)
	for i, name := range pages {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			data, err := fs.ReadFile(fsys, name)
			if err != nil {
				return fmt.Errorf("%w: %s: %w", ErrParse, name, err)
			}
			links, err := ExtractLinks(bytes.NewReader(data))
			if err != nil {
				return fmt.Errorf("%w: %s: %w", ErrParse, name, err)
			}
			hrefs[i] = links

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// 3) Prune to the closed corpus.
	raw := make(map[core.Page][]core.Page, len(pages))
	for i, name := range pages {
		raw[name] = hrefs[i]
	}
	links, pruned := core.Prune(raw)

	// 4) Freeze.
	graph, err := core.NewGraph(links)
	if err != nil {
		return nil, fmt.Errorf("corpus: %w", err)
	}

	log.Debug().
		Int("pages", graph.Len()).
		Int("links", graph.Stats().Links).
		Int("dropped", pruned.Dropped()).
		Int("external", pruned.ExternalLinks).
		Int("self", pruned.SelfLinks).
		Int("skipped", len(skipped)).
		Msg("corpus loaded")

	return &Result{Graph: graph, Pruned: pruned, Skipped: skipped}, nil
}

// isRegularFile reports whether e is a regular file, following symlinks.
// Broken links are treated as non-pages.
func isRegularFile(fsys fs.FS, e fs.DirEntry) bool {
	if e.Type().IsRegular() {
		return true
	}
	if e.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := fs.Stat(fsys, e.Name())

	return err == nil && info.Mode().IsRegular()
}
