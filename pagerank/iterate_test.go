package pagerank_test

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvrank/builder"
	"github.com/katalvlaran/lvrank/core"
	"github.com/katalvlaran/lvrank/pagerank"
)

type IterateSuite struct {
	suite.Suite
}

func TestIterateSuite(t *testing.T) {
	suite.Run(t, new(IterateSuite))
}

func (s *IterateSuite) TestTwoPageLoop() {
	g := core.MustGraph(map[core.Page][]core.Page{"A": {"B"}, "B": {"A"}})

	rank, err := pagerank.IterateRank(g, 0.85)
	s.Require().NoError(err)
	s.InDelta(0.5, rank["A"], 1e-9)
	s.InDelta(0.5, rank["B"], 1e-9)
}

func (s *IterateSuite) TestSinglePage() {
	g := core.MustGraph(map[core.Page][]core.Page{"A": nil})

	rank, err := pagerank.IterateRank(g, 0.85)
	s.Require().NoError(err)
	s.Equal(pagerank.RankTable{"A": 1}, rank)
}

func (s *IterateSuite) TestSumsToOneWithoutDeadEnds() {
	corpora := map[string]*core.Graph{
		"cycle":    builder.MustBuild(nil, builder.Cycle(7)),
		"star":     builder.MustBuild(nil, builder.Star(9)),
		"complete": builder.MustBuild(nil, builder.Complete(5)),
		"mixed":    builder.MustBuild(nil, builder.Star(4), builder.Cycle(10)),
	}
	for name, g := range corpora {
		s.Require().Zero(g.Stats().DeadEnds, name)
		rank, err := pagerank.IterateRank(g, 0.85)
		s.Require().NoError(err, name)
		s.InDelta(1.0, rank.Sum(), 1e-6, name)
		s.Equal(g.Pages(), rank.Pages(), name)
	}
}

func (s *IterateSuite) TestConvergedTableIsFixedPoint() {
	g := builder.MustBuild(nil, builder.Star(6), builder.Cycle(9))

	rank, err := pagerank.IterateRank(g, 0.85)
	s.Require().NoError(err)

	next, delta, err := pagerank.Sweep(g, 0.85, rank)
	s.Require().NoError(err)
	s.Less(delta, pagerank.DefaultThreshold)
	for _, p := range g.Pages() {
		s.Less(math.Abs(next[p]-rank[p]), pagerank.DefaultThreshold, p)
	}
}

func (s *IterateSuite) TestStarHubRanksHighest() {
	g := builder.MustBuild(nil, builder.Star(5))

	rank, err := pagerank.IterateRank(g, 0.85, pagerank.WithThreshold(1e-10))
	s.Require().NoError(err)
	// Hub: x = 0.15/5 + 0.85·(1-x); leaves share the rest.
	hub := (0.15/5 + 0.85) / 1.85
	s.InDelta(hub, rank["0"], 1e-8)
	for _, leaf := range []core.Page{"1", "2", "3", "4"} {
		s.InDelta((1-hub)/4, rank[leaf], 1e-8)
	}
}

func (s *IterateSuite) TestDeadEndsLeakMassByDefault() {
	g := core.MustGraph(map[core.Page][]core.Page{"A": {"B", "C"}, "B": nil, "C": nil})

	rank, err := pagerank.IterateRank(g, 0.85, pagerank.WithThreshold(1e-12))
	s.Require().NoError(err)
	// A receives only the jump share; B and C each get half of A's rank.
	a := 0.15 / 3
	s.InDelta(a, rank["A"], 1e-9)
	s.InDelta(a+0.85*a/2, rank["B"], 1e-9)
	s.Less(rank.Sum(), 1.0)

	fixed, err := pagerank.IterateRank(g, 0.85, pagerank.WithThreshold(1e-12), pagerank.WithDeadEndRedistribution())
	s.Require().NoError(err)
	s.InDelta(1.0, fixed.Sum(), 1e-9)
	s.Greater(fixed["B"], fixed["A"])
	s.InDelta(fixed["B"], fixed["C"], 1e-12)
}

func (s *IterateSuite) TestNonConvergence() {
	g := core.MustGraph(map[core.Page][]core.Page{"a": {"b"}, "b": {"a"}, "c": {"a"}})

	_, err := pagerank.IterateRank(g, 0.85, pagerank.WithMaxSweeps(1))
	s.Require().Error(err)
	s.True(errors.Is(err, pagerank.ErrNonConvergence))
	s.False(errors.Is(err, pagerank.ErrInvalidArgument))
}

func (s *IterateSuite) TestLooseThresholdStopsAfterOneSweep() {
	g := core.MustGraph(map[core.Page][]core.Page{"a": {"b"}, "b": {"a"}, "c": {"a"}})
	uniform := pagerank.RankTable{"a": 1.0 / 3, "b": 1.0 / 3, "c": 1.0 / 3}

	want, _, err := pagerank.Sweep(g, 0.85, uniform)
	s.Require().NoError(err)
	got, err := pagerank.IterateRank(g, 0.85, pagerank.WithThreshold(0.5))
	s.Require().NoError(err)
	s.Equal(want, got)
}

func (s *IterateSuite) TestThresholdBandIsExclusive() {
	g := core.MustGraph(map[core.Page][]core.Page{"a": {"b"}, "b": {"a"}, "c": {"a"}})
	uniform := pagerank.RankTable{"a": 1.0 / 3, "b": 1.0 / 3, "c": 1.0 / 3}

	first, d1, err := pagerank.Sweep(g, 0.85, uniform)
	s.Require().NoError(err)
	s.Require().Positive(d1)

	// A change of exactly the threshold is not settled yet.
	got, err := pagerank.IterateRank(g, 0.85, pagerank.WithThreshold(d1))
	s.Require().NoError(err)
	s.NotEqual(first, got)

	_, err = pagerank.IterateRank(g, 0.85, pagerank.WithThreshold(d1), pagerank.WithMaxSweeps(1))
	s.ErrorIs(err, pagerank.ErrNonConvergence)
}

func (s *IterateSuite) TestMalformedGraphNeverReachesSolver() {
	_, err := core.NewGraph(map[core.Page][]core.Page{"A": {"Z"}})
	s.Require().Error(err)
	s.True(errors.Is(err, pagerank.ErrMalformedGraph))
	s.True(errors.Is(err, core.ErrDanglingLink))
}

func (s *IterateSuite) TestErrors() {
	g := core.MustGraph(map[core.Page][]core.Page{"A": {"B"}, "B": {"A"}})

	_, err := pagerank.IterateRank(nil, 0.85)
	s.True(errors.Is(err, pagerank.ErrNilGraph))
	_, err = pagerank.IterateRank(core.MustGraph(nil), 0.85)
	s.True(errors.Is(err, pagerank.ErrEmptyCorpus))
	_, err = pagerank.IterateRank(g, 1)
	s.True(errors.Is(err, pagerank.ErrBadDamping))

	bad := []pagerank.RankTable{
		{"A": 0.5},
		{"A": 0.5, "Z": 0.5},
		{"A": 0.5, "B": math.NaN()},
		{"A": math.Inf(-1), "B": 0.5},
	}
	for _, prev := range bad {
		_, _, err = pagerank.Sweep(g, 0.85, prev)
		s.True(errors.Is(err, pagerank.ErrBadRankTable), "prev %v: %v", prev, err)
	}
}

func TestIterateRank_LogsSweeps(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	g := core.MustGraph(map[core.Page][]core.Page{"A": {"B"}, "B": {"A"}})

	_, err := pagerank.IterateRank(g, 0.85, pagerank.WithLogger(logger))
	require.NoError(t, err)
	require.Contains(t, buf.String(), `"message":"sweep"`)
	require.Contains(t, buf.String(), `"message":"iteration converged"`)
}
