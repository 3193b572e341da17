// Package clean removes advertisement, navigation, and attribution fragments
// from scraped monster pages. The conversion core never depends on these
// fragments being present or absent; cleaning only keeps the archived files
// small and presentation-neutral.
package clean

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// boilerplateSelectors are elements stripped from every scraped page.
var boilerplateSelectors = []string{
	"div.source-url",
	"div.breadcrumb",
	"div.tags",
	"div[class*=bottomad]",
	"div[id*=ezoic]",
	"ins.adsbygoogle",
	"script", "style", "noscript",
}

// adCommentMarkers flag comment nodes worth removing along with the ad
// elements themselves.
var adCommentMarkers = []string{"ad", "ezoic"}

// Clean strips boilerplate from an HTML fragment and returns the cleaned
// fragment. Document-level wrappers (html/head/body) added during parsing
// are not part of the result.
func Clean(input string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(input))
	if err != nil {
		return "", fmt.Errorf("parsing page: %w", err)
	}

	for _, sel := range boilerplateSelectors {
		doc.Find(sel).Remove()
	}

	// goquery has no comment selector; walk the node tree directly.
	for _, root := range doc.Selection.Nodes {
		removeAdComments(root)
	}

	out, err := doc.Find("body").Html()
	if err != nil {
		return "", fmt.Errorf("serializing page: %w", err)
	}
	return out, nil
}

func removeAdComments(n *html.Node) {
	c := n.FirstChild
	for c != nil {
		next := c.NextSibling
		if c.Type == html.CommentNode && isAdComment(c.Data) {
			n.RemoveChild(c)
		} else {
			removeAdComments(c)
		}
		c = next
	}
}

func isAdComment(text string) bool {
	lower := strings.ToLower(text)
	for _, marker := range adCommentMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
