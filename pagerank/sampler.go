// SPDX-License-Identifier: MIT
//
// File: sampler.go
// Role: Weighted random choice over a Distribution.
// Notes:
//   - Cumulative weights + binary search: O(N) build, O(log N) per draw.
//   - Pages are ordered ascending, so a fixed random stream yields a fixed
//     sequence of draws regardless of map iteration order.

package pagerank

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvrank/core"
)

// Sampler draws pages with probability proportional to their weight.
// A Sampler is immutable after construction and safe for concurrent use as
// long as each goroutine brings its own RandSource.
type Sampler struct {
	pages []core.Page // ascending
	cum   []float64   // cum[i] = Σ_{j≤i} weight(pages[j])
	last  int         // index of the last page with positive weight
}

// NewSampler prepares weighted draws from d. Weights need not be normalised.
//
// Errors (ErrBadDistribution):
//   - d is empty;
//   - a weight is negative, NaN or infinite;
//   - all weights are zero.
func NewSampler(d Distribution) (*Sampler, error) {
	if len(d) == 0 {
		return nil, fmt.Errorf("%w: no pages", ErrBadDistribution)
	}

	pages := sortedKeys(d)
	weights := make([]float64, len(pages))
	last := -1
	for i, p := range pages {
		w := d[p]
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, fmt.Errorf("%w: weight of %q is %g", ErrBadDistribution, p, w)
		}
		if w > 0 {
			last = i
		}
		weights[i] = w
	}
	if last < 0 {
		return nil, fmt.Errorf("%w: all weights are zero", ErrBadDistribution)
	}

	cum := make([]float64, len(weights))
	floats.CumSum(cum, weights)

	return &Sampler{pages: pages, cum: cum, last: last}, nil
}

// Len returns the number of pages the sampler chooses from.
func (s *Sampler) Len() int { return len(s.pages) }

// Draw returns one page. Pages with zero weight are never returned.
// Complexity: O(log N).
func (s *Sampler) Draw(r RandSource) core.Page {
	total := s.cum[len(s.cum)-1]
	u := r.Float64() * total

	// First index whose cumulative weight exceeds u. Since cum[i-1] ≤ u <
	// cum[i], the chosen page has positive weight.
	i := sort.Search(len(s.cum), func(i int) bool { return s.cum[i] > u })
	if i == len(s.cum) {
		// u rounded up to total.
		i = s.last
	}

	return s.pages[i]
}
