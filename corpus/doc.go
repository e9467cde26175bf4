// Package corpus turns a directory of HTML pages into a core.Graph.
//
// Each regular file (or symlink to one) whose name ends in ".html" is one
// page, identified by its file name. Every <a href="..."> inside a page is a
// candidate link; the href value is compared verbatim against the other file
// names. Links a page makes to itself, links to files outside the corpus and
// repeated links are dropped before the graph is validated, so the result
// always satisfies the core invariants. Subdirectories and other files are
// ignored.
//
// Files are read concurrently (bounded by WithConcurrency) from any fs.FS;
// LoadDir is the convenience form for a path on disk. Loading honours
// context cancellation. Graph construction itself is sequential, so the same
// directory always yields the same graph.
//
// Errors:
//
//	ErrNotDir   – LoadDir was given a path that is not a directory.
//	ErrNoPages  – the directory holds no *.html file.
//	ErrParse    – a page could not be read or parsed (wrapped with its name).
package corpus
