// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Page, Graph, Stats and the sentinel errors of the graph model.

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph construction and queries.
var (
	// ErrMalformedGraph is the class of every structural violation detected
	// by NewGraph. Check with errors.Is(err, ErrMalformedGraph).
	ErrMalformedGraph = errors.New("core: malformed graph")

	// ErrEmptyPageID indicates a page (or link target) with an empty identifier.
	ErrEmptyPageID = fmt.Errorf("%w: page ID is empty", ErrMalformedGraph)

	// ErrSelfLink indicates a page listing itself among its outbound links.
	ErrSelfLink = fmt.Errorf("%w: self-link", ErrMalformedGraph)

	// ErrDanglingLink indicates a link whose target is not a page of the corpus.
	ErrDanglingLink = fmt.Errorf("%w: link target not in corpus", ErrMalformedGraph)

	// ErrPageNotFound indicates a query for a page that is not in the corpus.
	ErrPageNotFound = errors.New("core: page not found")
)

// Page identifies one member of the corpus (typically a file name).
type Page = string

// Graph is an immutable directed link graph over a closed corpus.
//
// pages holds the sorted corpus; out and in hold sorted, de-duplicated
// adjacency in both directions. None of the maps or slices are ever handed
// out without copying.
type Graph struct {
	pages []Page          // sorted corpus
	index map[Page]int    // page -> position in pages
	out   map[Page][]Page // page -> sorted outbound targets
	in    map[Page][]Page // page -> sorted inbound sources
	links int             // total number of distinct links
}

// Stats is a read-only summary of a Graph.
type Stats struct {
	Pages    int // |corpus|
	Links    int // number of distinct links
	DeadEnds int // pages with no outbound link
	Orphans  int // pages with no inbound link
}
