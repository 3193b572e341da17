// Ordered dedupe set for discovered URLs.
package crawl

// Seen tracks discovered URLs, preserving first-seen order.
type Seen struct {
	items []string
	set   map[string]bool
}

// NewSeen creates an empty Seen set.
func NewSeen() *Seen {
	return &Seen{set: make(map[string]bool)}
}

// Add records a URL. It returns true if the URL was new.
func (s *Seen) Add(url string) bool {
	if s.set[url] {
		return false
	}
	s.set[url] = true
	s.items = append(s.items, url)
	return true
}

// Len returns the number of unique URLs seen.
func (s *Seen) Len() int {
	return len(s.items)
}

// All returns the URLs in first-seen order.
func (s *Seen) All() []string {
	return s.items
}
