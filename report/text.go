// SPDX-License-Identifier: MIT
//
// File: text.go
// Role: Plain listing, one block per algorithm.

package report

import (
	"bufio"
	"fmt"
	"io"
)

// TextWriter prints
//
//	PageRank Results from Sampling (n = 10000)
//	  1.html: 0.2223
//	PageRank Results from Iteration
//	  1.html: 0.2202
//	L1 divergence: 0.0061
type TextWriter struct {
	baseWriter
}

// NewTextWriter creates a TextWriter that outputs to w.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{baseWriter{output: w}}
}

// Write renders r.
func (w *TextWriter) Write(r *Report) error {
	bw := bufio.NewWriter(w.output)

	fmt.Fprintf(bw, "PageRank Results from Sampling (n = %d)\n", r.Summary.Samples)
	writeRows(bw, r.Sampling)
	fmt.Fprintln(bw, "PageRank Results from Iteration")
	writeRows(bw, r.Iteration)
	fmt.Fprintf(bw, "L1 divergence: %.4f\n", r.Divergence)

	return bw.Flush()
}

func writeRows(w io.Writer, rows []Row) {
	for _, row := range rows {
		fmt.Fprintf(w, "  %s: %.4f\n", row.Page, row.Rank)
	}
}
