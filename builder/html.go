// SPDX-License-Identifier: MIT
// Package: lvrank/builder
//
// html.go - renders a corpus as a directory of HTML pages.
//
// Contract:
//   • One file per page, named after the page ID (use WithHTMLIDs so the
//     corpus loader picks them up).
//   • Each outbound link becomes <a href="target">target</a>, in sorted order.
//   • Page IDs must be plain file names; path separators are rejected.

package builder

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/katalvlaran/lvrank/core"
)

// ErrBadFileName indicates a page ID that cannot be used as a file name.
var ErrBadFileName = errors.New("builder: page ID is not a plain file name")

// filePerm is the mode of generated pages.
const filePerm = 0o644

// WriteHTML writes every page of g into dir (created if missing).
// Existing files with the same names are overwritten.
func WriteHTML(dir string, g *core.Graph) error {
	if g == nil {
		return fmt.Errorf("WriteHTML: %w", ErrConstructFailed)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("WriteHTML: %w", err)
	}

	for _, p := range g.Pages() {
		if p == "." || p == ".." || strings.ContainsAny(p, `/\`) {
			return fmt.Errorf("WriteHTML: %q: %w", p, ErrBadFileName)
		}
		out, _ := g.Outbound(p) // p comes from g, lookup cannot fail

		var buf bytes.Buffer
		if err := html.Render(&buf, pageDocument(p, out)); err != nil {
			return fmt.Errorf("WriteHTML: render %q: %w", p, err)
		}
		if err := os.WriteFile(filepath.Join(dir, p), buf.Bytes(), filePerm); err != nil {
			return fmt.Errorf("WriteHTML: %w", err)
		}
	}

	return nil
}

// pageDocument builds <html><head><title>p</title></head><body><h1>p</h1>
// <ul><li><a href=…>…</a></li>…</ul></body></html>.
func pageDocument(p core.Page, links []core.Page) *html.Node {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	root := element(atom.Html)
	head := element(atom.Head)
	title := element(atom.Title)
	title.AppendChild(text(p))
	head.AppendChild(title)

	body := element(atom.Body)
	h1 := element(atom.H1)
	h1.AppendChild(text(p))
	body.AppendChild(h1)

	if len(links) > 0 {
		ul := element(atom.Ul)
		for _, q := range links {
			a := element(atom.A)
			a.Attr = []html.Attribute{{Key: "href", Val: q}}
			a.AppendChild(text(q))
			li := element(atom.Li)
			li.AppendChild(a)
			ul.AppendChild(li)
		}
		body.AppendChild(ul)
	}

	root.AppendChild(head)
	root.AppendChild(body)
	doc.AppendChild(root)

	return doc
}

func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
