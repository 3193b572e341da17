// Package crawl discovers monster page URLs from a BFRD-style site. Each
// challenge-rating tag has a paginated listing (/tag/<tag>/, /tag/<tag>/page/N/)
// whose pages link to individual monster pages under /monsters/.
package crawl

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/remideboer/easytabletopfantasy/core"
	"github.com/remideboer/easytabletopfantasy/core/fetch"
)

// maxPages caps pagination to avoid runaway loops on broken sites.
const maxPages = 100

// DiscoverMonsters returns all monster page URLs for one CR tag, walking the
// listing pages until a 404, a fetch failure, or a page that adds nothing
// new. The result is deduplicated and in first-seen order. A tag with no
// listing at all yields an empty set, not an error.
func DiscoverMonsters(ctx context.Context, baseURL, tag string, fetcher core.Fetcher) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}

	seen := NewSeen()
	for page := 1; page <= maxPages; page++ {
		result, err := fetcher.Fetch(ctx, TagPageURL(baseURL, tag, page))
		if err != nil {
			if errors.Is(err, fetch.ErrNotFound) {
				break
			}
			// Transient failures end this tag's discovery; the caller must
			// not assume single-page completeness anyway.
			break
		}

		links, err := extractMonsterLinks(result.HTML, base)
		if err != nil {
			break
		}

		added := 0
		for _, link := range links {
			if seen.Add(link) {
				added++
			}
		}
		if added == 0 {
			break
		}
	}
	return seen.All(), nil
}

// extractMonsterLinks pulls all monster page hrefs from a listing page,
// resolving relative URLs against the base.
func extractMonsterLinks(htmlText string, base *url.URL) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlText))
	if err != nil {
		return nil, err
	}

	var links []string
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		if !IsMonsterLink(href) {
			return
		}
		resolved := resolveURL(href, base)
		if resolved != "" && IsSameDomain(resolved, base.Host) {
			links = append(links, NormalizeURL(resolved))
		}
	})
	return links, nil
}

// resolveURL resolves a potentially relative URL against a base, dropping
// fragments and non-http schemes.
func resolveURL(href string, base *url.URL) string {
	if strings.HasPrefix(href, "mailto:") || strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "tel:") || strings.HasPrefix(href, "#") {
		return ""
	}
	parsed, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(parsed)
	resolved.Fragment = ""
	return resolved.String()
}
