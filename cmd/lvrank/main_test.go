package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvrank/config"
	"github.com/katalvlaran/lvrank/corpus"
	"github.com/katalvlaran/lvrank/report"
)

// execute runs the root command with args inside an isolated working
// directory and config home.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	t.Chdir(t.TempDir())
	prev := xdg.ConfigHome
	xdg.ConfigHome = t.TempDir()
	t.Cleanup(func() { xdg.ConfigHome = prev })

	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()

	return out.String(), errOut.String(), err
}

// writeCorpus writes the classic four-page corpus to a fresh directory.
func writeCorpus(t *testing.T) string {
	t.Helper()

	dir := filepath.Join(t.TempDir(), "corpus0")
	require.NoError(t, os.Mkdir(dir, 0o755))
	pages := map[string]string{
		"1.html": `<a href="2.html">2</a>`,
		"2.html": `<a href="1.html">1</a> <a href="3.html">3</a>`,
		"3.html": `<a href="2.html">2</a> <a href="4.html">4</a>`,
		"4.html": `<a href="2.html">2</a>`,
	}
	for name, body := range pages {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("<html><body>"+body+"</body></html>"), 0o644))
	}

	return dir
}

func TestRank_Text(t *testing.T) {
	dir := writeCorpus(t)

	out, logs, err := execute(t, "rank", dir, "--seed", "42")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 11)
	require.Equal(t, "PageRank Results from Sampling (n = 10000)", lines[0])
	require.Equal(t, "PageRank Results from Iteration", lines[5])
	require.True(t, strings.HasPrefix(lines[1], "  1.html: "))
	require.True(t, strings.HasPrefix(lines[10], "L1 divergence: "))
	require.Contains(t, logs, "corpus loaded")
}

func TestRank_JSONMatchesKnownRanks(t *testing.T) {
	dir := writeCorpus(t)

	out, _, err := execute(t, "rank", dir, "--format", "json", "--seed", "7", "--samples", "50000", "--threshold", "1e-9")
	require.NoError(t, err)

	var rep report.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	require.Equal(t, "corpus0", rep.Summary.Corpus)
	require.Equal(t, 4, rep.Summary.Pages)
	require.Equal(t, 50000, rep.Summary.Samples)

	want := map[string]float64{"1.html": 0.2202, "2.html": 0.4289, "3.html": 0.2202, "4.html": 0.1307}
	for _, row := range rep.Iteration {
		require.InDelta(t, want[row.Page], row.Rank, 1e-3, row.Page)
	}
	for _, row := range rep.Sampling {
		require.InDelta(t, want[row.Page], row.Rank, 0.02, row.Page)
	}
}

func TestRank_OutputFileAndConfig(t *testing.T) {
	dir := writeCorpus(t)
	target := filepath.Join(t.TempDir(), "ranks.md")
	cfgFile := filepath.Join(t.TempDir(), "lvrank.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("format: markdown\nsamples: 300\nseed: 1\n"), 0o644))

	out, _, err := execute(t, "rank", dir, "--config", cfgFile, "-o", target)
	require.NoError(t, err)
	require.Empty(t, out)

	b, err := os.ReadFile(target)
	require.NoError(t, err)
	require.Contains(t, string(b), "# PageRank Report")
	require.Contains(t, string(b), "| 300")
}

func TestRank_ZeroSeedReproduces(t *testing.T) {
	dir := writeCorpus(t)
	args := []string{"rank", dir, "--format", "json", "--seed", "0", "--samples", "2000"}

	first, _, err := execute(t, args...)
	require.NoError(t, err)
	second, _, err := execute(t, args...)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestRank_VerboseReportsDeadEnds(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "leaky")
	require.NoError(t, os.Mkdir(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.html"), []byte(`<a href="b.html">b</a>`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.html"), []byte(`<p>no links</p>`), 0o644))

	_, logs, err := execute(t, "rank", dir, "-v", "--seed", "1", "--samples", "100")
	require.NoError(t, err)
	require.Contains(t, logs, "dead ends do not pass rank on while iterating")

	_, logs, err = execute(t, "rank", dir, "-v", "--seed", "1", "--samples", "100", "--redistribute-dead-ends")
	require.NoError(t, err)
	require.NotContains(t, logs, "do not pass rank on")
}

func TestRank_Errors(t *testing.T) {
	_, _, err := execute(t, "rank")
	require.Error(t, err)

	file := filepath.Join(t.TempDir(), "a.html")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	_, _, err = execute(t, "rank", file)
	require.True(t, errors.Is(err, corpus.ErrNotDir))

	_, _, err = execute(t, "rank", t.TempDir())
	require.True(t, errors.Is(err, corpus.ErrNoPages))

	_, _, err = execute(t, "rank", writeCorpus(t), "--format", "xml")
	require.True(t, errors.Is(err, config.ErrInvalid))

	_, _, err = execute(t, "rank", writeCorpus(t), "--damping", "1.5")
	require.True(t, errors.Is(err, config.ErrInvalid))
}

func TestGenerateThenRank(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "gen")

	out, _, err := execute(t, "generate", dir, "--topology", "cycle,random", "--pages", "12", "--prob", "0.2", "--seed", "5")
	require.NoError(t, err)
	require.Contains(t, out, "wrote 12 pages")
	require.Contains(t, out, "(0 dead ends)")

	out, _, err = execute(t, "rank", dir, "--seed", "3", "--format", "yaml")
	require.NoError(t, err)
	require.Contains(t, out, "pages: 12")
	require.Contains(t, out, "page: 11.html")
}

func TestGenerate_UnknownTopology(t *testing.T) {
	_, _, err := execute(t, "generate", t.TempDir(), "--topology", "torus")
	require.True(t, errors.Is(err, errUnknownTopology))
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "lvrank version "))
	require.NotEmpty(t, getVersion())
	require.NotEmpty(t, getCommit())
}
