// SPDX-License-Identifier: MIT
//
// File: markdown.go
// Role: Markdown rendering via nao1215/markdown.

package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/nao1215/markdown"
)

// MarkdownWriter renders a summary table and a side-by-side rank table.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to w.
func NewMarkdownWriter(w io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter{output: w}}
}

// Write renders r.
func (w *MarkdownWriter) Write(r *Report) error {
	md := markdown.NewMarkdown(w.output)

	md.H1("PageRank Report")
	md.PlainText("")
	w.writeSummary(md, r.Summary)
	w.writeRanks(md, r)

	md.PlainText(fmt.Sprintf("L1 divergence between the two tables: **%.4f**", r.Divergence))

	return md.Build()
}

func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, s Summary) {
	md.H2("Corpus")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Corpus", "`" + s.Corpus + "`"},
			{"Pages", strconv.Itoa(s.Pages)},
			{"Links", strconv.Itoa(s.Links)},
			{"Dead ends", strconv.Itoa(s.DeadEnds)},
			{"Orphans", strconv.Itoa(s.Orphans)},
			{"Damping", strconv.FormatFloat(s.Damping, 'f', -1, 64)},
			{"Samples", strconv.Itoa(s.Samples)},
		},
	})
	md.PlainText("")
}

// writeRanks pairs both tables by page. Pages present in only one table
// (never the case for reports built by New) show an empty cell.
func (w *MarkdownWriter) writeRanks(md *markdown.Markdown, r *Report) {
	iterated := make(map[string]float64, len(r.Iteration))
	for _, row := range r.Iteration {
		iterated[row.Page] = row.Rank
	}

	rows := make([][]string, 0, len(r.Sampling))
	for _, row := range r.Sampling {
		it := ""
		if v, ok := iterated[row.Page]; ok {
			it = fmt.Sprintf("%.4f", v)
		}
		rows = append(rows, []string{row.Page, fmt.Sprintf("%.4f", row.Rank), it})
	}

	md.H2("Ranks")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Page", "Sampling", "Iteration"},
		Rows:   rows,
	})
	md.PlainText("")
}
