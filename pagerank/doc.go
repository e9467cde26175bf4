// Package pagerank ranks the pages of a closed link corpus (core.Graph) with
// two independent algorithms that produce comparable RankTables.
//
// Random-surfer model:
//
//	With probability d (the damping factor) the surfer follows one of the
//	current page's links, chosen uniformly. With probability 1-d it jumps to
//	a page chosen uniformly from the whole corpus. A surfer on a dead end
//	(no outbound links) always jumps uniformly.
//
// Algorithms:
//
//   - Transition(g, page, d) returns the next-hop Distribution of the model.
//   - SampleRank(g, d, n) walks n steps from a uniformly chosen start page,
//     drawing each hop from Transition, and reports visit frequencies.
//     Stochastic: reproducible only with WithSeed or WithRand.
//   - IterateRank(g, d) starts from 1/N and applies the PageRank equation
//
//     PR(p) = (1-d)/N + d · Σ_{i→p} PR(i)/|out(i)|
//
//     in full sweeps over a snapshot of the previous sweep, stopping once
//     no page moved by 0.001 or more. Deterministic.
//
// Dead ends in the iterative solver:
//
//	The equation above only sums over pages that link to p, so a dead end's
//	rank is not passed on to anyone. The Transition model, in contrast,
//	sends a dead end's surfer everywhere. On corpora with dead ends the two
//	algorithms therefore disagree, and IterateRank's table sums to less than
//	one. This is the established behaviour and is kept as the default.
//	WithDeadEndRedistribution adds d·Σ_dead PR(j)/N to every page, which
//	makes the solver consistent with Transition and restores the unit sum.
//
// Errors:
//
//   - ErrInvalidArgument class: ErrNilGraph, ErrEmptyCorpus, ErrBadDamping,
//     ErrBadSampleCount, ErrPageNotFound, ErrBadRankTable, ErrBadDistribution.
//   - ErrMalformedGraph: alias of core.ErrMalformedGraph; a *core.Graph can
//     only be obtained through validation, so the algorithms never see one.
//   - ErrNonConvergence: IterateRank exceeded its sweep cap.
//
// Complexity:
//
//   - Transition:  O(N)
//   - SampleRank:  O(N² + n·log N) (one cached sampler per visited page)
//   - IterateRank: O(S·(N + L)) for S sweeps
package pagerank
