// SPDX-License-Identifier: MIT
// Package: lvrank/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p).
//
// Model:
//   - Erdős–Rényi-like directed generator: each ordered pair (i,j), i≠j,
//     is linked independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng required when 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism:
//   - Stable trial order: for each i asc, j asc. Fixed seed ⇒ fixed corpus.

package builder

import "fmt"

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse samples a directed link graph over n pages.
// Complexity: O(n²) Bernoulli trials.
func RandomSparse(n int, p float64) Constructor {
	return func(s *Sketch, cfg builderConfig) error {
		// 1) Validate parameters early (fail fast, no side effects).
		if err := checkMin(methodRandomSparse, n, minRandomSparseVertices); err != nil {
			return err
		}
		if !(p >= probMin && p <= probMax) {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// 2) Register all pages so isolated ones still belong to the corpus.
		for i := 0; i < n; i++ {
			s.AddPage(cfg.idFn(i))
		}

		// 3) Trials in stable order.
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if bernoulli(cfg, p) {
					s.AddLink(cfg.idFn(i), cfg.idFn(j))
				}
			}
		}

		return nil
	}
}

// bernoulli returns true with probability p; p ∈ {0,1} needs no RNG.
func bernoulli(cfg builderConfig, p float64) bool {
	switch p {
	case probMin:
		return false
	case probMax:
		return true
	}

	return cfg.rng.Float64() < p
}
