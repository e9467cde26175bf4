// SPDX-License-Identifier: MIT
//
// File: iterate.go
// Role: Deterministic fixed-point solver.
// Notes:
//   - Every sweep reads only the previous sweep's table and writes a new one;
//     nothing computed within a sweep is visible to the same sweep.
//   - Convergence is per page: the solver stops once every page moved by
//     strictly less than the threshold in the last sweep.

package pagerank

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvrank/core"
)

// IterateRank computes PageRank by repeated application of
//
//	PR(p) = (1-d)/N + d · Σ_{i→p} PR(i)/|out(i)|
//
// starting from PR = 1/N for every page.
//
// Termination: after the first sweep in which no page changed by
// Options.Threshold (default 0.001) or more. If Options.MaxSweeps sweeps
// pass without that, ErrNonConvergence is returned with the sweep count and
// the last maximal change.
//
// Dead ends do not pass rank on unless WithDeadEndRedistribution is set; see
// the package documentation. A one-page corpus is its own fixed point and
// ranks 1 regardless.
//
// Preconditions and validation (in order):
//  1. g non-nil (ErrNilGraph) and non-empty (ErrEmptyCorpus).
//  2. damping in (0,1) (ErrBadDamping).
//
// Complexity: O(S·(N+L)) time for S sweeps, O(N) extra space.
func IterateRank(g *core.Graph, damping float64, opts ...Option) (RankTable, error) {
	// 1) Options and arguments.
	cfg := buildOptions(opts)
	if err := checkGraph(g); err != nil {
		return nil, err
	}
	if err := checkDamping(damping); err != nil {
		return nil, err
	}

	s := newSolver(g, damping, cfg)

	// 2) Trivial corpus: the surfer can only ever be on the single page.
	if len(s.pages) == 1 {
		cfg.Logger.Debug().Str("page", s.pages[0]).Msg("single-page corpus")
		return RankTable{s.pages[0]: 1}, nil
	}

	// 3) Initial state: uniform.
	rank := make(RankTable, len(s.pages))
	for _, p := range s.pages {
		rank[p] = 1 / float64(len(s.pages))
	}

	// 4) Sweep until every page settles or the cap is hit.
	var maxDelta float64
	for sweep := 1; sweep <= cfg.MaxSweeps; sweep++ {
		rank, maxDelta = s.sweep(rank)
		cfg.Logger.Debug().
			Int("sweep", sweep).
			Float64("max_delta", maxDelta).
			Msg("sweep")
		if maxDelta < cfg.Threshold {
			cfg.Logger.Debug().
				Int("sweeps", sweep).
				Float64("sum", rank.Sum()).
				Msg("iteration converged")

			return rank, nil
		}
	}

	return nil, fmt.Errorf("%w: %d sweeps, last max change %g (threshold %g)",
		ErrNonConvergence, cfg.MaxSweeps, maxDelta, cfg.Threshold)
}

// Sweep applies exactly one solver sweep to prev and returns the new table
// together with the largest absolute per-page change. It honours
// WithDeadEndRedistribution; other options are ignored.
//
// prev must have exactly one finite entry per corpus page (ErrBadRankTable).
// Sweep lets callers verify that a table is a fixed point: for a converged
// table maxDelta is below the threshold.
func Sweep(g *core.Graph, damping float64, prev RankTable, opts ...Option) (RankTable, float64, error) {
	cfg := buildOptions(opts)
	if err := checkGraph(g); err != nil {
		return nil, 0, err
	}
	if err := checkDamping(damping); err != nil {
		return nil, 0, err
	}
	if len(prev) != g.Len() {
		return nil, 0, fmt.Errorf("%w: %d entries for %d pages", ErrBadRankTable, len(prev), g.Len())
	}
	for p, v := range prev {
		if !g.Has(p) {
			return nil, 0, fmt.Errorf("%w: unknown page %q", ErrBadRankTable, p)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, 0, fmt.Errorf("%w: rank of %q is %g", ErrBadRankTable, p, v)
		}
	}

	next, maxDelta := newSolver(g, damping, cfg).sweep(prev)

	return next, maxDelta, nil
}

// solver holds the read-only structure used by every sweep.
type solver struct {
	pages     []core.Page               // sorted corpus
	inbound   map[core.Page][]core.Page // p -> pages linking to p
	outDegree map[core.Page]int         // page -> |out(page)|
	deadEnds  []core.Page               // pages with no outbound links
	damping   float64
	redistrib bool
}

// newSolver snapshots the graph structure needed by sweep.
func newSolver(g *core.Graph, damping float64, cfg Options) *solver {
	s := &solver{
		pages:     g.Pages(),
		inbound:   make(map[core.Page][]core.Page, g.Len()),
		outDegree: make(map[core.Page]int, g.Len()),
		deadEnds:  g.DeadEnds(),
		damping:   damping,
		redistrib: cfg.RedistributeDeadEnds,
	}
	for _, p := range s.pages {
		// Membership was established by Pages(); Inbound cannot fail here.
		s.inbound[p], _ = g.Inbound(p)
		s.outDegree[p] = g.OutDegree(p)
	}

	return s
}

// sweep computes the next table entirely from prev.
func (s *solver) sweep(prev RankTable) (RankTable, float64) {
	n := float64(len(s.pages))
	base := (1 - s.damping) / n

	// Optional dead-end mass, spread evenly over the corpus.
	var deadShare float64
	if s.redistrib {
		var dead float64
		for _, p := range s.deadEnds {
			dead += prev[p]
		}
		deadShare = s.damping * dead / n
	}

	next := make(RankTable, len(s.pages))
	var maxDelta float64
	for _, p := range s.pages {
		// Only pages linking to p contribute; dead ends never link anywhere.
		var sum float64
		for _, i := range s.inbound[p] {
			sum += prev[i] / float64(s.outDegree[i])
		}
		next[p] = base + s.damping*sum + deadShare

		if delta := math.Abs(next[p] - prev[p]); delta > maxDelta {
			maxDelta = delta
		}
	}

	return next, maxDelta
}
