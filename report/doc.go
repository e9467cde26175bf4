// Package report renders the outcome of one ranking run.
//
// A Report bundles corpus statistics, the run parameters and both rank
// tables, each sorted by page name. Writers render it in one of five
// formats:
//
//	text      the classic two-block listing, four decimals per page
//	markdown  summary table plus a side-by-side rank table
//	json      machine-readable, indented
//	yaml      machine-readable
//	toml      machine-readable
//
// Every format also carries the L1 distance between the two tables, which is
// a quick check that the sampling run was long enough.
package report
