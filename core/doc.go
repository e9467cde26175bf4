// Package core defines the link graph consumed by the ranking algorithms:
// a closed corpus of pages and, for each page, the set of pages it links to.
//
// The Graph G = (P, L) is built once and is read-only afterwards:
//
//   - Every page is a non-empty string identifier (Page).
//   - Every link target is itself a page of the corpus (no dangling links).
//   - No page links to itself (no self-links).
//   - Duplicate links collapse: outbound links form a set, not a multiset.
//
// NewGraph validates all three rules and rejects violations with errors that
// match ErrMalformedGraph under errors.Is. Corpus loaders are expected to
// prune their raw link maps first (see Prune), but the graph never trusts
// them to have done so.
//
// Determinism:
//
//	Pages(), Outbound() and Inbound() return lexicographically sorted slices,
//	so every algorithm iterating over them is reproducible for a fixed input.
//
// Immutability:
//
//	There are no mutating methods. Accessors return fresh copies, so a caller
//	can never reach the graph's internal storage. A *Graph is therefore safe
//	to share between goroutines without locking.
//
// Core methods:
//
//	NewGraph(links map[Page][]Page) (*Graph, error)          // O(P + L·log L)
//	FromSets(links map[Page]map[Page]struct{}) (*Graph, error)
//	Pages() []Page                                            // O(P)
//	Len() int                                                 // O(1)
//	Has(p Page) bool                                          // O(1)
//	Outbound(p Page) ([]Page, error)                          // O(d)
//	Inbound(p Page) ([]Page, error)                           // O(d)
//	OutDegree(p Page) int                                     // O(1)
//	IsDeadEnd(p Page) bool                                    // O(1)
//	DeadEnds() []Page                                         // O(P)
//	Links() map[Page][]Page                                   // O(P + L)
//	Stats() Stats                                             // O(P)
package core
