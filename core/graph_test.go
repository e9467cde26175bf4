package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvrank/core"
)

// GraphSuite exercises construction rules and read-only queries.
type GraphSuite struct {
	suite.Suite
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

// TestSortedPages verifies the corpus is enumerated in ascending order.
func (s *GraphSuite) TestSortedPages() {
	g, err := core.NewGraph(map[core.Page][]core.Page{
		"c": {"a"},
		"a": {"b", "c"},
		"b": nil,
	})
	require.NoError(s.T(), err)
	require.Equal(s.T(), []core.Page{"a", "b", "c"}, g.Pages())
	require.Equal(s.T(), 3, g.Len())
}

// TestOutboundInbound checks both adjacency directions and sorting.
func (s *GraphSuite) TestOutboundInbound() {
	g := core.MustGraph(map[core.Page][]core.Page{
		"a": {"c", "b"},
		"b": {"c"},
		"c": {"a"},
	})

	out, err := g.Outbound("a")
	require.NoError(s.T(), err)
	require.Equal(s.T(), []core.Page{"b", "c"}, out)

	in, err := g.Inbound("c")
	require.NoError(s.T(), err)
	require.Equal(s.T(), []core.Page{"a", "b"}, in)

	require.True(s.T(), g.Linked("a", "c"))
	require.False(s.T(), g.Linked("c", "b"))
	require.Equal(s.T(), 2, g.OutDegree("a"))
}

// TestDuplicatesCollapse verifies links form a set.
func (s *GraphSuite) TestDuplicatesCollapse() {
	g := core.MustGraph(map[core.Page][]core.Page{
		"a": {"b", "b", "b"},
		"b": {"a"},
	})
	require.Equal(s.T(), 1, g.OutDegree("a"))
	require.Equal(s.T(), 2, g.Stats().Links)
}

// TestDeadEnds covers pages with nil and empty link lists.
func (s *GraphSuite) TestDeadEnds() {
	g := core.MustGraph(map[core.Page][]core.Page{
		"a": {"b", "c"},
		"b": nil,
		"c": {},
	})
	require.Equal(s.T(), []core.Page{"b", "c"}, g.DeadEnds())
	require.True(s.T(), g.IsDeadEnd("b"))
	require.False(s.T(), g.IsDeadEnd("a"))
	require.False(s.T(), g.IsDeadEnd("zzz"), "unknown page is not a dead end")

	st := g.Stats()
	require.Equal(s.T(), core.Stats{Pages: 3, Links: 2, DeadEnds: 2, Orphans: 1}, st)
}

// TestDanglingLinkRejected is the malformed-graph scenario: a link to a page
// outside the corpus must fail, never be silently dropped.
func (s *GraphSuite) TestDanglingLinkRejected() {
	_, err := core.NewGraph(map[core.Page][]core.Page{
		"a": {"b", "missing"},
		"b": {"a"},
	})
	require.ErrorIs(s.T(), err, core.ErrDanglingLink)
	require.ErrorIs(s.T(), err, core.ErrMalformedGraph)
	require.Contains(s.T(), err.Error(), `"missing"`)
}

// TestSelfLinkRejected verifies p -> p is refused.
func (s *GraphSuite) TestSelfLinkRejected() {
	_, err := core.NewGraph(map[core.Page][]core.Page{
		"a": {"a"},
	})
	require.ErrorIs(s.T(), err, core.ErrSelfLink)
	require.ErrorIs(s.T(), err, core.ErrMalformedGraph)
}

// TestEmptyIDs rejects empty pages and empty targets.
func (s *GraphSuite) TestEmptyIDs() {
	_, err := core.NewGraph(map[core.Page][]core.Page{"": nil})
	require.ErrorIs(s.T(), err, core.ErrEmptyPageID)

	_, err = core.NewGraph(map[core.Page][]core.Page{"a": {""}})
	require.ErrorIs(s.T(), err, core.ErrEmptyPageID)
	require.ErrorIs(s.T(), err, core.ErrMalformedGraph)
}

// TestEmptyCorpus is a valid, if useless, graph; the algorithms reject it.
func (s *GraphSuite) TestEmptyCorpus() {
	g, err := core.NewGraph(nil)
	require.NoError(s.T(), err)
	require.Zero(s.T(), g.Len())
	require.Empty(s.T(), g.Pages())
}

// TestUnknownPage verifies query errors for non-members.
func (s *GraphSuite) TestUnknownPage() {
	g := core.MustGraph(map[core.Page][]core.Page{"a": nil})

	_, err := g.Outbound("x")
	require.ErrorIs(s.T(), err, core.ErrPageNotFound)
	_, err = g.Inbound("x")
	require.ErrorIs(s.T(), err, core.ErrPageNotFound)
	require.False(s.T(), errors.Is(err, core.ErrMalformedGraph))
}

// TestNilGraph verifies a nil *Graph answers every query as an empty corpus.
func (s *GraphSuite) TestNilGraph() {
	var g *core.Graph

	require.Zero(s.T(), g.Len())
	require.Empty(s.T(), g.Pages())
	require.False(s.T(), g.Has("a"))
	_, err := g.Outbound("a")
	require.ErrorIs(s.T(), err, core.ErrPageNotFound)
	_, err = g.Inbound("a")
	require.ErrorIs(s.T(), err, core.ErrPageNotFound)
	require.Zero(s.T(), g.OutDegree("a"))
	require.False(s.T(), g.Linked("a", "b"))
	require.False(s.T(), g.IsDeadEnd("a"))
	require.Empty(s.T(), g.DeadEnds())
	require.Empty(s.T(), g.Links())
	require.Equal(s.T(), core.Stats{}, g.Stats())
}

// TestImmutability verifies neither the input map nor returned slices alias
// internal storage.
func (s *GraphSuite) TestImmutability() {
	raw := map[core.Page][]core.Page{
		"a": {"b"},
		"b": {"a"},
	}
	g := core.MustGraph(raw)

	raw["a"][0] = "zzz"
	raw["c"] = nil
	out, _ := g.Outbound("a")
	require.Equal(s.T(), []core.Page{"b"}, out)
	require.Equal(s.T(), 2, g.Len())

	out[0] = "mutated"
	again, _ := g.Outbound("a")
	require.Equal(s.T(), []core.Page{"b"}, again)

	pages := g.Pages()
	pages[0] = "mutated"
	require.Equal(s.T(), []core.Page{"a", "b"}, g.Pages())

	links := g.Links()
	links["a"] = append(links["a"], "x")
	require.Equal(s.T(), 1, g.OutDegree("a"))
}

// TestFromSets matches NewGraph on set-valued input.
func (s *GraphSuite) TestFromSets() {
	g, err := core.FromSets(map[core.Page]map[core.Page]struct{}{
		"a": {"b": {}, "c": {}},
		"b": {},
		"c": {"a": {}},
	})
	require.NoError(s.T(), err)
	require.Equal(s.T(), map[core.Page][]core.Page{
		"a": {"b", "c"},
		"b": {},
		"c": {"a"},
	}, g.Links())
}

// TestMustGraphPanics verifies MustGraph surfaces validation errors.
func (s *GraphSuite) TestMustGraphPanics() {
	require.Panics(s.T(), func() {
		core.MustGraph(map[core.Page][]core.Page{"a": {"b"}})
	})
}

func TestPrune(t *testing.T) {
	raw := map[core.Page][]core.Page{
		"1.html": {"1.html", "2.html", "2.html", "https://example.com", ""},
		"2.html": {"1.html", "3.html"},
	}
	pruned, st := core.Prune(raw)

	require.Equal(t, []core.Page{"2.html"}, pruned["1.html"])
	require.Equal(t, []core.Page{"1.html"}, pruned["2.html"])
	require.Equal(t, core.PruneStats{SelfLinks: 1, ExternalLinks: 2, Duplicates: 1, EmptyTargets: 1}, st)
	require.Equal(t, 5, st.Dropped())

	// raw is untouched.
	require.Len(t, raw["1.html"], 5)

	_, err := core.NewGraph(pruned)
	require.NoError(t, err)
}
