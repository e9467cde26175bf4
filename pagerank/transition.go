// SPDX-License-Identifier: MIT
//
// File: transition.go
// Role: Random-surfer transition model.

package pagerank

import (
	"fmt"

	"github.com/katalvlaran/lvrank/core"
)

// Transition returns the probability distribution over the next page visited
// by a surfer currently on page.
//
// Model:
//   - page has no outbound links: every corpus page gets 1/N.
//   - otherwise every page q gets (1-d)/N, and each of page's k links gets an
//     additional d/k.
//
// The result has exactly one key per corpus page and sums to 1 up to
// floating-point rounding. It is freshly allocated on every call.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph) and non-empty (ErrEmptyCorpus).
//  2. damping must lie in (0,1) (ErrBadDamping).
//  3. page must be a corpus page (ErrPageNotFound).
//
// Complexity: O(N) time and space.
func Transition(g *core.Graph, page core.Page, damping float64) (Distribution, error) {
	if err := checkGraph(g); err != nil {
		return nil, err
	}
	if err := checkDamping(damping); err != nil {
		return nil, err
	}
	links, err := g.Outbound(page)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrPageNotFound, page)
	}

	return transition(g.Pages(), links, damping), nil
}

// transition is the unchecked model over a pre-sorted corpus.
func transition(pages, links []core.Page, damping float64) Distribution {
	n := float64(len(pages))
	dist := make(Distribution, len(pages))

	// Dead end: jump anywhere.
	if len(links) == 0 {
		uniform := 1 / n
		for _, p := range pages {
			dist[p] = uniform
		}

		return dist
	}

	jump := (1 - damping) / n
	follow := damping / float64(len(links))
	for _, p := range pages {
		dist[p] = jump
	}
	for _, q := range links {
		dist[q] += follow
	}

	return dist
}
