// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: Validating constructors for Graph.
// Policy:
//   - Reject, never repair: dangling and self links are errors here.
//   - The input map is not retained; later mutation by the caller is harmless.

package core

import (
	"fmt"
	"sort"
)

// NewGraph builds an immutable Graph from a page -> outbound-links mapping.
//
// Every key of links is a corpus page, including pages with nil or empty link
// lists (dead ends). Duplicate targets in one list are collapsed.
//
// Errors (all match ErrMalformedGraph):
//   - ErrEmptyPageID:  a key or a target is "".
//   - ErrSelfLink:     a page lists itself.
//   - ErrDanglingLink: a target is not a key of links.
//
// Errors name the offending page and target. Validation walks pages in sorted
// order, so the reported violation is deterministic.
//
// Complexity: O(P + L·log L) time, O(P + L) space.
func NewGraph(links map[Page][]Page) (*Graph, error) {
	// 1) Collect and sort the corpus.
	pages := make([]Page, 0, len(links))
	for p := range links {
		if p == "" {
			return nil, ErrEmptyPageID
		}
		pages = append(pages, p)
	}
	sort.Strings(pages)

	g := &Graph{
		pages: pages,
		index: make(map[Page]int, len(pages)),
		out:   make(map[Page][]Page, len(pages)),
		in:    make(map[Page][]Page, len(pages)),
	}
	for i, p := range pages {
		g.index[p] = i
	}

	// 2) Validate and copy outbound sets in corpus order.
	var (
		p, q Page
		seen map[Page]struct{}
	)
	for _, p = range pages {
		targets := make([]Page, 0, len(links[p]))
		seen = make(map[Page]struct{}, len(links[p]))
		for _, q = range links[p] {
			if err := g.checkLink(p, q); err != nil {
				return nil, err
			}
			if _, dup := seen[q]; dup {
				continue
			}
			seen[q] = struct{}{}
			targets = append(targets, q)
		}
		sort.Strings(targets)
		g.out[p] = targets
		g.links += len(targets)
	}

	// 3) Reverse index. Sources are visited in sorted order, so every
	//    inbound list comes out sorted without a second sort.
	for _, p = range pages {
		for _, q = range g.out[p] {
			g.in[q] = append(g.in[q], p)
		}
	}

	return g, nil
}

// FromSets is NewGraph for set-valued input, the natural shape produced by
// link extractors that de-duplicate as they go.
func FromSets(links map[Page]map[Page]struct{}) (*Graph, error) {
	lists := make(map[Page][]Page, len(links))
	for p, set := range links {
		targets := make([]Page, 0, len(set))
		for q := range set {
			targets = append(targets, q)
		}
		lists[p] = targets
	}

	return NewGraph(lists)
}

// MustGraph is NewGraph that panics on error. Intended for tests, examples
// and package-level fixtures built from literals.
func MustGraph(links map[Page][]Page) *Graph {
	g, err := NewGraph(links)
	if err != nil {
		panic(err)
	}

	return g
}

// checkLink validates a single link p -> q against the corpus being built.
func (g *Graph) checkLink(p, q Page) error {
	switch {
	case q == "":
		return fmt.Errorf("%w: in links of %q", ErrEmptyPageID, p)
	case q == p:
		return fmt.Errorf("%w: %q links to itself", ErrSelfLink, p)
	}
	if _, ok := g.index[q]; !ok {
		return fmt.Errorf("%w: %q -> %q", ErrDanglingLink, p, q)
	}

	return nil
}
