// Package builder assembles deterministic synthetic link corpora.
//
// Fixtures for tests, benchmarks and the `lvrank generate` command are
// composed from small topology constructors:
//
//	Cycle(n)           0 -> 1 -> … -> n-1 -> 0 (no dead ends)
//	Path(n)            0 -> 1 -> … -> n-1 (last page is a dead end)
//	Star(n)            leaves link to hub "0", hub links back to every leaf
//	Complete(n)        every page links to every other page
//	Isolated(n)        n pages without links (dead ends)
//	RandomSparse(n, p) each ordered pair i≠j linked with probability p
//
// BuildCorpus runs constructors in order over one shared link map and
// validates the result with core.NewGraph. Constructors never emit
// self-links; repeated links across constructors collapse.
//
// Determinism:
//
//	Same constructors, same options and the same seed give the same corpus.
//	Page identifiers come from an IDFn (WithIDScheme); HTMLIDs names pages
//	"0.html", "1.html", … so a corpus can be written to disk with WriteHTML
//	and loaded back through the corpus package.
package builder
