// SPDX-License-Identifier: MIT
// Package: lvrank/builder
//
// api.go - public entry point and the shared link accumulator.
//
// Design contract:
//   - One orchestrator: BuildCorpus(bopts, cons...). Resolves cfg, runs cons
//     in order over one Sketch, then validates through core.NewGraph.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical corpora.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvrank/core"
)

// Sketch accumulates pages and links while constructors run. It enforces the
// no-self-link rule at insertion time; everything else is checked by
// core.NewGraph at the end.
type Sketch struct {
	links map[core.Page]map[core.Page]struct{}
}

// newSketch returns an empty accumulator.
func newSketch() *Sketch {
	return &Sketch{links: make(map[core.Page]map[core.Page]struct{})}
}

// AddPage registers p (idempotent).
func (s *Sketch) AddPage(p core.Page) {
	if _, ok := s.links[p]; !ok {
		s.links[p] = make(map[core.Page]struct{})
	}
}

// AddLink registers both pages and the link from -> to. Self-links are
// ignored and reported as false.
func (s *Sketch) AddLink(from, to core.Page) bool {
	s.AddPage(from)
	s.AddPage(to)
	if from == to {
		return false
	}
	s.links[from][to] = struct{}{}

	return true
}

// Len returns the number of pages registered so far.
func (s *Sketch) Len() int { return len(s.links) }

// Constructor adds a topology to the shared Sketch using the resolved config.
// Constructors validate their parameters first and return sentinel errors.
type Constructor func(s *Sketch, cfg builderConfig) error

// BuildCorpus resolves options, applies every constructor in order and
// returns the validated graph.
//
// Errors:
//   - Constructor errors, wrapped as "BuildCorpus: %w".
//   - ErrConstructFailed for a nil constructor or if core.NewGraph rejects
//     the assembled corpus (the core error is wrapped as well).
func BuildCorpus(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	sk := newSketch()

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildCorpus: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(sk, cfg); err != nil {
			return nil, fmt.Errorf("BuildCorpus: %w", err)
		}
	}

	g, err := core.FromSets(sk.links)
	if err != nil {
		return nil, fmt.Errorf("BuildCorpus: %w: %w", ErrConstructFailed, err)
	}

	return g, nil
}

// MustBuild is BuildCorpus that panics on error; for fixtures and benchmarks.
func MustBuild(bopts []BuilderOption, cons ...Constructor) *core.Graph {
	g, err := BuildCorpus(bopts, cons...)
	if err != nil {
		panic(err)
	}

	return g
}

// checkMin returns ErrTooFewVertices with method context when n < min.
func checkMin(method string, n, min int) error {
	if n < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, min, ErrTooFewVertices)
	}

	return nil
}
