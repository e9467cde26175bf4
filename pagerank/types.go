// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Sentinel errors, value types (Distribution, RankTable) and the
//       functional options shared by every algorithm in this package.
// Policy:
//   - Option constructors validate and panic on meaningless input.
//   - Algorithms never panic; they return sentinel-wrapped errors.

package pagerank

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvrank/core"
)

// Conventional parameters.
const (
	// DefaultDamping is the probability of following a link instead of jumping.
	DefaultDamping = 0.85

	// DefaultSamples is the conventional random-walk length for SampleRank.
	DefaultSamples = 10000

	// DefaultThreshold is the per-page absolute change below which a page is
	// considered settled. The band is exclusive: a change of exactly
	// DefaultThreshold still triggers another sweep.
	DefaultThreshold = 0.001

	// DefaultMaxSweeps caps IterateRank. Well-formed corpora converge in a
	// few dozen sweeps; reaching the cap means something is badly wrong.
	DefaultMaxSweeps = 10000
)

// Sentinel errors.
var (
	// ErrInvalidArgument is the class of every caller error below.
	ErrInvalidArgument = errors.New("pagerank: invalid argument")

	// ErrNilGraph indicates a nil *core.Graph.
	ErrNilGraph = fmt.Errorf("%w: graph is nil", ErrInvalidArgument)

	// ErrEmptyCorpus indicates a graph without pages.
	ErrEmptyCorpus = fmt.Errorf("%w: corpus is empty", ErrInvalidArgument)

	// ErrBadDamping indicates a damping factor outside the open interval (0,1).
	ErrBadDamping = fmt.Errorf("%w: damping factor must lie in (0,1)", ErrInvalidArgument)

	// ErrBadSampleCount indicates a non-positive sample count.
	ErrBadSampleCount = fmt.Errorf("%w: sample count must be positive", ErrInvalidArgument)

	// ErrPageNotFound indicates a page that is not part of the corpus.
	ErrPageNotFound = fmt.Errorf("%w: page not in corpus", ErrInvalidArgument)

	// ErrBadRankTable indicates a RankTable that does not cover the corpus
	// exactly or holds non-finite values.
	ErrBadRankTable = fmt.Errorf("%w: rank table does not match corpus", ErrInvalidArgument)

	// ErrBadDistribution indicates an empty distribution or one with a
	// negative, non-finite or all-zero weight.
	ErrBadDistribution = fmt.Errorf("%w: invalid distribution", ErrInvalidArgument)

	// ErrMalformedGraph aliases core.ErrMalformedGraph so callers can test
	// every failure class against this package alone.
	ErrMalformedGraph = core.ErrMalformedGraph

	// ErrNonConvergence indicates IterateRank hit its sweep cap with at
	// least one page still moving by the threshold or more.
	ErrNonConvergence = errors.New("pagerank: iteration did not converge")
)

// Distribution maps every corpus page to the probability of visiting it next.
// Values are non-negative and sum to 1.
type Distribution map[core.Page]float64

// Sum returns the total probability mass, accumulated in page order.
func (d Distribution) Sum() float64 { return sumSorted(d) }

// RankTable maps every corpus page to its (estimated) PageRank.
type RankTable map[core.Page]float64

// Entry is one row of a RankTable.
type Entry struct {
	Page core.Page
	Rank float64
}

// Sum returns the total rank, accumulated in page order.
func (r RankTable) Sum() float64 { return sumSorted(r) }

// Pages returns the ranked pages in ascending order.
func (r RankTable) Pages() []core.Page { return sortedKeys(r) }

// Entries returns the table as rows sorted by page.
func (r RankTable) Entries() []Entry {
	pages := sortedKeys(r)
	rows := make([]Entry, len(pages))
	for i, p := range pages {
		rows[i] = Entry{Page: p, Rank: r[p]}
	}

	return rows
}

// L1 returns Σ |r[p] - other[p]| over the union of both key sets; a page
// missing from one side counts as rank 0 there.
func (r RankTable) L1(other RankTable) float64 {
	var dist float64
	for p, v := range r {
		dist += math.Abs(v - other[p])
	}
	for p, v := range other {
		if _, ok := r[p]; !ok {
			dist += math.Abs(v)
		}
	}

	return dist
}

// RandSource is the randomness consumed by SampleRank and Sampler.
// *math/rand.Rand satisfies it.
type RandSource interface {
	// Float64 returns a pseudo-random number in [0.0, 1.0).
	Float64() float64
	// Intn returns a pseudo-random number in [0, n); n > 0.
	Intn(n int) int
}

// Options configures SampleRank, IterateRank and Sweep.
//
//	Rand                 – random source for SampleRank (nil: time-seeded per call).
//	MaxSweeps            – IterateRank sweep cap (> 0).
//	Threshold            – settle threshold per page (> 0, exclusive band).
//	RedistributeDeadEnds – spread dead-end mass uniformly in the iterative solver.
//	Logger               – debug events per sweep and per run.
type Options struct {
	Rand                 RandSource
	MaxSweeps            int
	Threshold            float64
	RedistributeDeadEnds bool
	Logger               zerolog.Logger
}

// Option represents a functional option for the algorithms.
type Option func(*Options)

// DefaultOptions returns the documented defaults:
//   - Rand:                 nil (a time-seeded source is created per call).
//   - MaxSweeps:            DefaultMaxSweeps.
//   - Threshold:            DefaultThreshold.
//   - RedistributeDeadEnds: false.
//   - Logger:               zerolog.Nop().
func DefaultOptions() Options {
	return Options{
		MaxSweeps: DefaultMaxSweeps,
		Threshold: DefaultThreshold,
		Logger:    zerolog.Nop(),
	}
}

// WithRand injects the random source used by SampleRank.
// Panics on nil.
func WithRand(r RandSource) Option {
	if r == nil {
		panic("pagerank: WithRand(nil)")
	}

	return func(o *Options) { o.Rand = r }
}

// WithSeed makes SampleRank reproducible by seeding a private *rand.Rand.
// Each call of WithSeed creates its own source, so two runs sharing the same
// seed observe the same sequence.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Rand = rand.New(rand.NewSource(seed)) }
}

// WithMaxSweeps sets the IterateRank sweep cap. Panics unless n > 0.
func WithMaxSweeps(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("pagerank: WithMaxSweeps(%d): must be positive", n))
	}

	return func(o *Options) { o.MaxSweeps = n }
}

// WithThreshold overrides the per-page settle threshold. Panics unless eps
// is finite and positive.
func WithThreshold(eps float64) Option {
	if !(eps > 0) || math.IsInf(eps, 1) {
		panic(fmt.Sprintf("pagerank: WithThreshold(%g): must be finite and positive", eps))
	}

	return func(o *Options) { o.Threshold = eps }
}

// WithDeadEndRedistribution makes the iterative solver treat dead ends the
// way Transition does: their rank is spread uniformly over the corpus.
func WithDeadEndRedistribution() Option {
	return func(o *Options) { o.RedistributeDeadEnds = true }
}

// WithLogger routes debug events (per sweep, per run) to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// buildOptions applies opts over DefaultOptions, last wins.
func buildOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// checkGraph validates the graph argument shared by all algorithms.
func checkGraph(g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	if g.Len() == 0 {
		return ErrEmptyCorpus
	}

	return nil
}

// checkDamping rejects damping factors outside (0,1), NaN included.
func checkDamping(d float64) error {
	if !(d > 0 && d < 1) {
		return fmt.Errorf("%w: got %g", ErrBadDamping, d)
	}

	return nil
}

// sortedKeys returns the keys of m in ascending order.
func sortedKeys(m map[core.Page]float64) []core.Page {
	keys := make([]core.Page, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// sumSorted sums the values of m in key order so the result does not depend
// on map iteration order.
func sumSorted(m map[core.Page]float64) float64 {
	keys := sortedKeys(m)
	vals := make([]float64, len(keys))
	for i, k := range keys {
		vals[i] = m[k]
	}

	return floats.Sum(vals)
}
