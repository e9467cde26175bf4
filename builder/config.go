// SPDX-License-Identifier: MIT
// Package: lvrank/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn = DefaultIDFn ("0","1","2",...)
//   • rng  = nil (pure/deterministic unless seeded)

package builder

import (
	"math/rand"
	"strconv"
)

// IDFn generates a page identifier from its zero-based index. It must be
// pure: the same index always yields the same identifier.
type IDFn func(idx int) string

// DefaultIDFn renders idx in base 10: 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// HTMLIDs renders idx as an HTML file name: 0→"0.html".
func HTMLIDs(idx int) string {
	return strconv.Itoa(idx) + ".html"
}

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	idFn IDFn       // index -> page ID
	rng  *rand.Rand // nil means "no randomness"
}

// newBuilderConfig applies options in order over the defaults; last wins.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{idFn: DefaultIDFn}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
