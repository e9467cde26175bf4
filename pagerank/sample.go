// SPDX-License-Identifier: MIT
//
// File: sample.go
// Role: Monte Carlo estimator (random-surfer walk).

package pagerank

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/lvrank/core"
)

// SampleRank estimates PageRank by walking samples steps of the random-surfer
// model and reporting how often each page was visited.
//
// Walk:
//  1. Pick a start page uniformly at random. It is not counted.
//  2. Repeat samples times: draw the next page from Transition(current),
//     count it, move there.
//  3. rank[p] = count[p] / samples.
//
// Every page of the corpus appears in the result, unvisited pages with 0.
// Counts partition samples, so the table sums to 1.
//
// Randomness comes from Options.Rand (WithRand / WithSeed). Without either a
// time-seeded source is created for this call only.
//
// Preconditions and validation (in order):
//  1. g non-nil (ErrNilGraph) and non-empty (ErrEmptyCorpus).
//  2. damping in (0,1) (ErrBadDamping).
//  3. samples > 0 (ErrBadSampleCount).
//
// Complexity: O(V·N + samples·log N) where V ≤ N is the number of distinct
// pages visited (one Transition + Sampler per visited page, reused).
func SampleRank(g *core.Graph, damping float64, samples int, opts ...Option) (RankTable, error) {
	// 1) Options and arguments.
	cfg := buildOptions(opts)
	if err := checkGraph(g); err != nil {
		return nil, err
	}
	if err := checkDamping(damping); err != nil {
		return nil, err
	}
	if samples <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadSampleCount, samples)
	}
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	// 2) Walk.
	w := &walker{
		g:        g,
		pages:    g.Pages(),
		damping:  damping,
		rng:      rng,
		samplers: make(map[core.Page]*Sampler, g.Len()),
		counts:   make(map[core.Page]int, g.Len()),
	}
	start := w.pages[rng.Intn(len(w.pages))]
	if err := w.walk(start, samples); err != nil {
		return nil, err
	}

	// 3) Frequencies.
	rank := make(RankTable, len(w.pages))
	for _, p := range w.pages {
		rank[p] = float64(w.counts[p]) / float64(samples)
	}

	cfg.Logger.Debug().
		Str("start", start).
		Int("samples", samples).
		Int("visited", len(w.counts)).
		Int("pages", len(w.pages)).
		Msg("sampling finished")

	return rank, nil
}

// walker holds the mutable state of one random walk.
type walker struct {
	g        *core.Graph
	pages    []core.Page // sorted corpus
	damping  float64
	rng      RandSource
	samplers map[core.Page]*Sampler // lazily built per visited page
	counts   map[core.Page]int      // visits per page
}

// walk performs steps hops starting from start, counting every landing page.
func (w *walker) walk(start core.Page, steps int) error {
	current := start
	for i := 0; i < steps; i++ {
		s, err := w.sampler(current)
		if err != nil {
			return err
		}
		current = s.Draw(w.rng)
		w.counts[current]++
	}

	return nil
}

// sampler returns the cached Sampler for page, building it on first use.
// Transition is a pure function of (graph, page, damping), so caching does
// not change the distribution a hop is drawn from.
func (w *walker) sampler(page core.Page) (*Sampler, error) {
	if s, ok := w.samplers[page]; ok {
		return s, nil
	}
	links, err := w.g.Outbound(page)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrPageNotFound, page)
	}
	s, err := NewSampler(transition(w.pages, links, w.damping))
	if err != nil {
		return nil, err
	}
	w.samplers[page] = s

	return s, nil
}
