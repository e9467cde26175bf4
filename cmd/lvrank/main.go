// Package main provides the lvrank command.
//
// lvrank ranks the pages of a directory of HTML files with two PageRank
// estimators, a random-surfer simulation and a fixed-point iteration, and
// prints both tables.
//
// Usage:
//
//	lvrank rank <corpus-dir> [flags]
//	lvrank generate <dir> --topology star --pages 10
//	lvrank version
//
// See --help for all available options.
package main

func main() {
	Execute()
}
