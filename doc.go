// Package lvrank ranks the pages of a small, closed hyperlink corpus.
//
// 🚀 What is lvrank?
//
//	A PageRank toolkit built around one immutable link graph and two
//	independent estimators:
//		• Graph model: pages, links, dead ends, strict validation (core)
//		• Transition model: where a random surfer goes next (pagerank)
//		• Sampling: Monte Carlo walk with visit counts (pagerank)
//		• Iteration: fixed-point sweeps until every page settles (pagerank)
//		• Corpus loading: a directory of *.html files becomes a graph (corpus)
//		• Reports: text, markdown, json, yaml, toml (report)
//		• Synthetic corpora: cycle, path, star, complete, random (builder)
//
// Layout:
//
//	core/       Page, Graph, validation, pruning of raw link lists
//	pagerank/   Transition, Sampler, SampleRank, IterateRank, Sweep
//	corpus/     HTML directory loader (fs.FS, concurrent reads)
//	builder/    deterministic synthetic corpora and an HTML writer
//	report/     presentation of both rank tables
//	config/     layered settings (defaults, file, LVRANK_* env, flags)
//	cmd/lvrank/ the command-line tool
//
// Quick ASCII example:
//
//	1.html ──► 2.html ◄──► 3.html ──► 4.html
//	  ▲          │  ▲                    │
//	  └──────────┘  └────────────────────┘
//
//	2.html collects the most rank: every other page links to it.
//
//	go install github.com/katalvlaran/lvrank/cmd/lvrank@latest
//	lvrank rank corpus0
package lvrank
