package extract

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const goblinArticle = `
<article>
  <h1 class="title">Goblin</h1>
  <div class="post-single-content">
    <p><strong>Armor Class</strong> 15</p>
    <p><strong>Hit Points</strong> 85 (10d8+40)</p>
    <p>Challenge: CR 1/4</p>
    <p><em>Scimitar.</em> Melee Weapon Attack: +4 to hit.</p>
  </div>
</article>`

func articleSelection(t *testing.T, html string) *goquery.Selection {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	sel := doc.Find("article").First()
	require.Equal(t, 1, sel.Length())
	return sel
}

func TestExtract(t *testing.T) {
	rec, err := New().Extract(articleSelection(t, goblinArticle))
	require.NoError(t, err)

	assert.Equal(t, "Goblin", rec.Name)
	assert.Equal(t, 0.25, rec.ChallengeRating)
	assert.Equal(t, 1, rec.Level)
	assert.Equal(t, 9, rec.HitPoints)
	assert.Equal(t, 15, rec.ArmorClass)
	assert.Contains(t, rec.OriginalHTML, `class="post-single-content"`)
	assert.Contains(t, rec.OriginalHTML, "Melee Weapon Attack: +4 to hit")
	assert.Empty(t, rec.ConvertedHTML)
}

func TestExtract_MissingNameIsFatal(t *testing.T) {
	html := `<article><div class="post-single-content"><p>Hit Points 20</p></div></article>`
	_, err := New().Extract(articleSelection(t, html))
	require.ErrorIs(t, err, ErrNoName)
}

func TestExtract_DefaultsOnMissingFields(t *testing.T) {
	html := `<article><h1 class="title">Wisp</h1><div class="post-single-content"><p>A faint light.</p></div></article>`
	rec, err := New().Extract(articleSelection(t, html))
	require.NoError(t, err)

	assert.Equal(t, 0.0, rec.ChallengeRating)
	assert.Equal(t, 1, rec.Level)
	assert.Equal(t, 1, rec.HitPoints)
	assert.Equal(t, 10, rec.ArmorClass)
}

func TestExtract_UnparseableCRKeepsOtherFields(t *testing.T) {
	html := `<article>
	  <h1 class="title">Ooze</h1>
	  <div class="post-single-content">
	    <p>CR 5/0</p>
	    <p><strong>Hit Points</strong> 22</p>
	    <p><strong>Armor Class</strong> 8</p>
	  </div>
	</article>`
	rec, err := New().Extract(articleSelection(t, html))
	require.NoError(t, err)

	assert.Equal(t, 0.0, rec.ChallengeRating)
	assert.Equal(t, 1, rec.Level)
	assert.Equal(t, 3, rec.HitPoints)
	assert.Equal(t, 8, rec.ArmorClass)
}

func TestExtract_BodyFallsBackToArticle(t *testing.T) {
	html := `<article><h1 class="title">Rat</h1><p>Hit Points 7</p></article>`
	rec, err := New().Extract(articleSelection(t, html))
	require.NoError(t, err)

	assert.Contains(t, rec.OriginalHTML, "<article>")
	assert.Equal(t, 1, rec.HitPoints)
}
