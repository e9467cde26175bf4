package pagerank_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvrank/core"
	"github.com/katalvlaran/lvrank/pagerank"
)

// fixedRand returns the same Float64 on every call.
type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }
func (f fixedRand) Intn(int) int     { return 0 }

func TestSampler_Boundaries(t *testing.T) {
	s, err := pagerank.NewSampler(pagerank.Distribution{"a": 1, "b": 0, "c": 3})
	require.NoError(t, err)
	require.Equal(t, 3, s.Len())

	// cum = [1, 1, 4] over total 4.
	require.Equal(t, core.Page("a"), s.Draw(fixedRand(0)))
	require.Equal(t, core.Page("a"), s.Draw(fixedRand(0.2499)))
	require.Equal(t, core.Page("c"), s.Draw(fixedRand(0.25)))
	require.Equal(t, core.Page("c"), s.Draw(fixedRand(0.9999999)))
	// A source returning its upper bound still yields a positive-weight page.
	require.Equal(t, core.Page("c"), s.Draw(fixedRand(1)))
}

func TestSampler_ZeroWeightNeverDrawn(t *testing.T) {
	s, err := pagerank.NewSampler(pagerank.Distribution{"a": 0, "b": 0.5, "c": 0, "d": 0.5, "e": 0})
	require.NoError(t, err)

	r := rand.New(rand.NewSource(3))
	for i := 0; i < 5000; i++ {
		p := s.Draw(r)
		require.Contains(t, []core.Page{"b", "d"}, p)
	}
}

func TestSampler_Frequencies(t *testing.T) {
	weights := pagerank.Distribution{"x": 0.1, "y": 0.3, "z": 0.6}
	s, err := pagerank.NewSampler(weights)
	require.NoError(t, err)

	const draws = 100000
	r := rand.New(rand.NewSource(11))
	counts := map[core.Page]int{}
	for i := 0; i < draws; i++ {
		counts[s.Draw(r)]++
	}
	for p, w := range weights {
		require.InDelta(t, w, float64(counts[p])/draws, 0.01, "page %s", p)
	}
}

func TestSampler_Errors(t *testing.T) {
	cases := map[string]pagerank.Distribution{
		"empty":    {},
		"negative": {"a": 1, "b": -0.1},
		"nan":      {"a": math.NaN()},
		"inf":      {"a": math.Inf(1)},
		"all zero": {"a": 0, "b": 0},
	}
	for name, d := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := pagerank.NewSampler(d)
			require.True(t, errors.Is(err, pagerank.ErrBadDistribution), "got %v", err)
		})
	}
}
