// SPDX-License-Identifier: MIT
//
// File: report.go
// Role: Report model, formats and the Writer interface.

package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/lvrank/core"
	"github.com/katalvlaran/lvrank/pagerank"
)

// ErrUnknownFormat indicates an output format name that no Writer handles.
var ErrUnknownFormat = errors.New("report: unknown format")

// Format names an output encoding.
type Format string

// Supported formats.
const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatTOML     Format = "toml"
)

// Formats lists every supported format in display order.
func Formats() []Format {
	return []Format{FormatText, FormatMarkdown, FormatJSON, FormatYAML, FormatTOML}
}

// ParseFormat maps a case-insensitive name ("md" and "yml" included) to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "text", "txt":
		return FormatText, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Row is one ranked page.
type Row struct {
	Page string  `json:"page" yaml:"page" toml:"page"`
	Rank float64 `json:"rank" yaml:"rank" toml:"rank"`
}

// Summary describes the corpus and the run parameters.
type Summary struct {
	Corpus   string  `json:"corpus" yaml:"corpus" toml:"corpus"`
	Pages    int     `json:"pages" yaml:"pages" toml:"pages"`
	Links    int     `json:"links" yaml:"links" toml:"links"`
	DeadEnds int     `json:"dead_ends" yaml:"dead_ends" toml:"dead_ends"`
	Orphans  int     `json:"orphans" yaml:"orphans" toml:"orphans"`
	Damping  float64 `json:"damping" yaml:"damping" toml:"damping"`
	Samples  int     `json:"samples" yaml:"samples" toml:"samples"`
}

// Report is the complete result of ranking one corpus.
type Report struct {
	Summary    Summary `json:"summary" yaml:"summary" toml:"summary"`
	Sampling   []Row   `json:"sampling" yaml:"sampling" toml:"sampling"`
	Iteration  []Row   `json:"iteration" yaml:"iteration" toml:"iteration"`
	Divergence float64 `json:"divergence" yaml:"divergence" toml:"divergence"`
}

// New assembles a Report. Rows are sorted by page; Divergence is the L1
// distance between the two tables.
func New(name string, stats core.Stats, damping float64, samples int, sampled, iterated pagerank.RankTable) *Report {
	return &Report{
		Summary: Summary{
			Corpus:   name,
			Pages:    stats.Pages,
			Links:    stats.Links,
			DeadEnds: stats.DeadEnds,
			Orphans:  stats.Orphans,
			Damping:  damping,
			Samples:  samples,
		},
		Sampling:   rows(sampled),
		Iteration:  rows(iterated),
		Divergence: sampled.L1(iterated),
	}
}

func rows(t pagerank.RankTable) []Row {
	entries := t.Entries()
	out := make([]Row, len(entries))
	for i, e := range entries {
		out[i] = Row{Page: e.Page, Rank: e.Rank}
	}

	return out
}

// Writer renders a Report to its destination.
type Writer interface {
	Write(r *Report) error
}

// NewWriter returns the Writer for f that writes to out.
func NewWriter(f Format, out io.Writer) (Writer, error) {
	switch f {
	case FormatText:
		return NewTextWriter(out), nil
	case FormatMarkdown:
		return NewMarkdownWriter(out), nil
	case FormatJSON:
		return NewJSONWriter(out), nil
	case FormatYAML:
		return NewYAMLWriter(out), nil
	case FormatTOML:
		return NewTOMLWriter(out), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}

// baseWriter holds the destination shared by every Writer.
type baseWriter struct {
	output io.Writer
}
