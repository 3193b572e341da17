// URL rules for monster discovery.
package crawl

import (
	"fmt"
	"net/url"
	"strings"
)

// IsMonsterLink reports whether an href points at an individual monster
// page rather than the section index.
func IsMonsterLink(href string) bool {
	return strings.Contains(href, "/monsters/") && strings.TrimSuffix(href, "/") != "/monsters"
}

// TagPageURL builds the listing URL for one page of a CR tag. Page 1 is the
// bare tag URL; later pages use the /page/N/ suffix.
func TagPageURL(baseURL, tag string, page int) string {
	base := strings.TrimSuffix(baseURL, "/")
	if page <= 1 {
		return fmt.Sprintf("%s/tag/%s/", base, tag)
	}
	return fmt.Sprintf("%s/tag/%s/page/%d/", base, tag, page)
}

// IsSameDomain checks if the given URL belongs to the specified domain.
func IsSameDomain(rawURL string, domain string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return parsed.Host == domain
}

// NormalizeURL strips fragments and trailing slashes for deduplication.
func NormalizeURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	parsed.Fragment = ""
	if parsed.Path != "/" {
		parsed.Path = strings.TrimSuffix(parsed.Path, "/")
	}
	return parsed.String()
}
