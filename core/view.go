// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Non-mutating helpers that turn raw extracted links into valid input.
// Usage:
//   - Prune is for loaders; NewGraph itself never prunes.

package core

// PruneStats reports what Prune dropped.
type PruneStats struct {
	SelfLinks     int // p -> p links removed
	ExternalLinks int // links to targets outside the corpus removed
	Duplicates    int // repeated targets removed
	EmptyTargets  int // "" targets removed
}

// Dropped returns the total number of removed links.
func (s PruneStats) Dropped() int {
	return s.SelfLinks + s.ExternalLinks + s.Duplicates + s.EmptyTargets
}

// Prune returns a copy of raw in which every link is guaranteed to satisfy
// the graph invariants: self-links, empty targets, duplicates and targets
// that are not keys of raw are removed. raw itself is not modified.
//
// The result is always accepted by NewGraph unless raw has an empty key.
// Complexity: O(P + L).
func Prune(raw map[Page][]Page) (map[Page][]Page, PruneStats) {
	var st PruneStats
	res := make(map[Page][]Page, len(raw))
	for p, targets := range raw {
		kept := make([]Page, 0, len(targets))
		seen := make(map[Page]struct{}, len(targets))
		for _, q := range targets {
			switch _, inCorpus := raw[q]; {
			case q == "":
				st.EmptyTargets++
			case q == p:
				st.SelfLinks++
			case !inCorpus:
				st.ExternalLinks++
			default:
				if _, dup := seen[q]; dup {
					st.Duplicates++
					continue
				}
				seen[q] = struct{}{}
				kept = append(kept, q)
			}
		}
		res[p] = kept
	}

	return res, st
}
