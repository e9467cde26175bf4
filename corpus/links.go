// SPDX-License-Identifier: MIT
//
// File: links.go
// Role: Anchor extraction from one HTML page.

package corpus

import (
	"io"

	"github.com/PuerkitoBio/goquery"
)

// anchorSelector matches every anchor that carries an href attribute.
const anchorSelector = "a[href]"

// ExtractLinks parses an HTML document and returns the href value of every
// anchor in document order. Values are returned verbatim (entity-decoded by
// the parser, not resolved or normalised); duplicates are kept.
func ExtractLinks(r io.Reader) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	var hrefs []string
	doc.Find(anchorSelector).Each(func(_ int, a *goquery.Selection) {
		if href, ok := a.Attr("href"); ok {
			hrefs = append(hrefs, href)
		}
	})

	return hrefs, nil
}
