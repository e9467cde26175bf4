// SPDX-License-Identifier: MIT
// Package: lvrank/builder
//
// impl_basic.go - deterministic topologies: Cycle, Path, Star, Complete, Isolated.
//
// Contract:
//   • Pages are added via cfg.idFn in ascending index order (0..n-1).
//   • Links are emitted in a stable, documented order.
//   • Returns only sentinel-wrapped errors; never panics.

package builder

// File-local constants (stable method tags and size minimums).
const (
	methodCycle    = "Cycle"
	methodPath     = "Path"
	methodStar     = "Star"
	methodComplete = "Complete"
	methodIsolated = "Isolated"

	minCycleNodes    = 2
	minPathNodes     = 1
	minStarNodes     = 2
	minCompleteNodes = 1
	minIsolatedNodes = 1
)

// Cycle links i -> (i+1) mod n. Every page has exactly one link and one
// inbound link, so the stationary rank is uniform. n ≥ 2.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(s *Sketch, cfg builderConfig) error {
		if err := checkMin(methodCycle, n, minCycleNodes); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			s.AddLink(cfg.idFn(i), cfg.idFn((i+1)%n))
		}

		return nil
	}
}

// Path links i -> i+1; the last page is a dead end. n ≥ 1.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(s *Sketch, cfg builderConfig) error {
		if err := checkMin(methodPath, n, minPathNodes); err != nil {
			return err
		}
		s.AddPage(cfg.idFn(0))
		for i := 0; i+1 < n; i++ {
			s.AddLink(cfg.idFn(i), cfg.idFn(i+1))
		}

		return nil
	}
}

// Star makes page 0 the hub: every leaf links to the hub and the hub links
// to every leaf. n ≥ 2.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(s *Sketch, cfg builderConfig) error {
		if err := checkMin(methodStar, n, minStarNodes); err != nil {
			return err
		}
		hub := cfg.idFn(0)
		for i := 1; i < n; i++ {
			leaf := cfg.idFn(i)
			s.AddLink(leaf, hub)
			s.AddLink(hub, leaf)
		}

		return nil
	}
}

// Complete links every ordered pair of distinct pages. n ≥ 1.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(s *Sketch, cfg builderConfig) error {
		if err := checkMin(methodComplete, n, minCompleteNodes); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			s.AddPage(cfg.idFn(i))
			for j := 0; j < n; j++ {
				if i != j {
					s.AddLink(cfg.idFn(i), cfg.idFn(j))
				}
			}
		}

		return nil
	}
}

// Isolated adds n pages without links, i.e. n dead ends. n ≥ 1.
func Isolated(n int) Constructor {
	return func(s *Sketch, cfg builderConfig) error {
		if err := checkMin(methodIsolated, n, minIsolatedNodes); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			s.AddPage(cfg.idFn(i))
		}

		return nil
	}
}
