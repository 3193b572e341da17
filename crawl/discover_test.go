package crawl

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remideboer/easytabletopfantasy/core"
	"github.com/remideboer/easytabletopfantasy/core/fetch"
)

// fakeFetcher serves canned pages by URL; unknown URLs are 404s.
type fakeFetcher struct {
	pages map[string]string
}

func (f *fakeFetcher) Fetch(_ context.Context, url string) (*core.FetchResult, error) {
	html, ok := f.pages[url]
	if !ok {
		return nil, fmt.Errorf("%s: %w", url, fetch.ErrNotFound)
	}
	return &core.FetchResult{URL: url, StatusCode: 200, HTML: html}, nil
}

func listing(hrefs ...string) string {
	page := "<html><body>"
	for _, h := range hrefs {
		page += fmt.Sprintf(`<a href="%s">monster</a>`, h)
	}
	return page + "</body></html>"
}

func TestDiscoverMonsters_Paginated(t *testing.T) {
	f := &fakeFetcher{pages: map[string]string{
		"https://bfrd.net/tag/cr-1/": listing(
			"/monsters/goblin/", "/monsters/harpy/", "/monsters/goblin/", "/tag/cr-2/"),
		"https://bfrd.net/tag/cr-1/page/2/": listing(
			"https://bfrd.net/monsters/wyvern/", "/monsters/"),
	}}

	urls, err := DiscoverMonsters(context.Background(), "https://bfrd.net", "cr-1", f)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"https://bfrd.net/monsters/goblin",
		"https://bfrd.net/monsters/harpy",
		"https://bfrd.net/monsters/wyvern",
	}, urls)
}

func TestDiscoverMonsters_MissingTagYieldsEmptySet(t *testing.T) {
	urls, err := DiscoverMonsters(context.Background(), "https://bfrd.net", "cr-27",
		&fakeFetcher{pages: map[string]string{}})
	require.NoError(t, err)
	assert.Empty(t, urls)
}

func TestDiscoverMonsters_StopsWhenPageAddsNothingNew(t *testing.T) {
	same := listing("/monsters/goblin/")
	pages := map[string]string{"https://bfrd.net/tag/cr-0/": same}
	// Every page exists and repeats the same link; discovery must not spin.
	for i := 2; i <= maxPages+1; i++ {
		pages[fmt.Sprintf("https://bfrd.net/tag/cr-0/page/%d/", i)] = same
	}

	urls, err := DiscoverMonsters(context.Background(), "https://bfrd.net", "cr-0", &fakeFetcher{pages: pages})
	require.NoError(t, err)
	assert.Equal(t, []string{"https://bfrd.net/monsters/goblin"}, urls)
}

func TestTagPageURL(t *testing.T) {
	assert.Equal(t, "https://bfrd.net/tag/cr-1-8/", TagPageURL("https://bfrd.net", "cr-1-8", 1))
	assert.Equal(t, "https://bfrd.net/tag/cr-1-8/page/3/", TagPageURL("https://bfrd.net/", "cr-1-8", 3))
}

func TestIsMonsterLink(t *testing.T) {
	assert.True(t, IsMonsterLink("/monsters/goblin/"))
	assert.True(t, IsMonsterLink("https://bfrd.net/monsters/goblin"))
	assert.False(t, IsMonsterLink("/monsters/"))
	assert.False(t, IsMonsterLink("/tag/cr-1/"))
}

func TestSeen(t *testing.T) {
	s := NewSeen()
	assert.True(t, s.Add("a"))
	assert.True(t, s.Add("b"))
	assert.False(t, s.Add("a"))
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []string{"a", "b"}, s.All())
}
