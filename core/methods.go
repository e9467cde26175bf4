// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Read-only queries over Graph.
// Determinism:
//   - Every slice-returning method yields sorted, freshly allocated results.
// Nil safety:
//   - A nil *Graph behaves as an empty corpus.

package core

import (
	"fmt"
	"sort"
)

// Pages returns the corpus in ascending order.
// Complexity: O(P).
func (g *Graph) Pages() []Page {
	if g == nil {
		return nil
	}
	out := make([]Page, len(g.pages))
	copy(out, g.pages)

	return out
}

// Len returns |corpus|. A nil Graph has length 0.
func (g *Graph) Len() int {
	if g == nil {
		return 0
	}

	return len(g.pages)
}

// Has reports whether p is a page of the corpus.
func (g *Graph) Has(p Page) bool {
	if g == nil {
		return false
	}
	_, ok := g.index[p]

	return ok
}

// Outbound returns the sorted link targets of p.
//
// Errors:
//   - ErrPageNotFound if p is not in the corpus.
//
// Complexity: O(d) where d = OutDegree(p).
func (g *Graph) Outbound(p Page) ([]Page, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: %q", ErrPageNotFound, p)
	}
	targets, ok := g.out[p]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrPageNotFound, p)
	}
	res := make([]Page, len(targets))
	copy(res, targets)

	return res, nil
}

// Inbound returns the sorted pages linking to p.
//
// Errors:
//   - ErrPageNotFound if p is not in the corpus.
func (g *Graph) Inbound(p Page) ([]Page, error) {
	if !g.Has(p) {
		return nil, fmt.Errorf("%w: %q", ErrPageNotFound, p)
	}
	sources := g.in[p]
	res := make([]Page, len(sources))
	copy(res, sources)

	return res, nil
}

// OutDegree returns the number of distinct links leaving p (0 for unknown pages).
func (g *Graph) OutDegree(p Page) int {
	if g == nil {
		return 0
	}

	return len(g.out[p])
}

// Linked reports whether p links to q.
func (g *Graph) Linked(p, q Page) bool {
	if g == nil {
		return false
	}
	targets := g.out[p]
	i := sort.SearchStrings(targets, q)

	return i < len(targets) && targets[i] == q
}

// IsDeadEnd reports whether p is a corpus page without outbound links.
func (g *Graph) IsDeadEnd(p Page) bool {
	return g.Has(p) && len(g.out[p]) == 0
}

// DeadEnds returns the sorted pages without outbound links.
func (g *Graph) DeadEnds() []Page {
	if g == nil {
		return nil
	}
	var res []Page
	for _, p := range g.pages {
		if len(g.out[p]) == 0 {
			res = append(res, p)
		}
	}

	return res
}

// Links returns a deep copy of the adjacency as a page -> sorted targets map.
// Complexity: O(P + L).
func (g *Graph) Links() map[Page][]Page {
	if g == nil {
		return map[Page][]Page{}
	}
	res := make(map[Page][]Page, len(g.pages))
	for _, p := range g.pages {
		targets := make([]Page, len(g.out[p]))
		copy(targets, g.out[p])
		res[p] = targets
	}

	return res
}

// Stats summarises the graph.
func (g *Graph) Stats() Stats {
	if g == nil {
		return Stats{}
	}
	st := Stats{Pages: len(g.pages), Links: g.links}
	for _, p := range g.pages {
		if len(g.out[p]) == 0 {
			st.DeadEnds++
		}
		if len(g.in[p]) == 0 {
			st.Orphans++
		}
	}

	return st
}
