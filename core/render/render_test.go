package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remideboer/easytabletopfantasy/core"
)

func sampleRecords() []core.MonsterRecord {
	return []core.MonsterRecord{
		{
			Name:            "Goblin",
			ChallengeRating: 0.25,
			Level:           1,
			HitPoints:       2,
			ArmorClass:      15,
			OriginalHTML:    `<div><h1 class="title">Goblin</h1><p>Melee Weapon Attack: +4 to hit</p></div>`,
			ConvertedHTML:   `<div><h1 class="title">Goblin</h1><p>Defense Save DC 15</p></div>`,
		},
		{
			Name:            "Wyvern",
			ChallengeRating: 6,
			Level:           4,
			HitPoints:       11,
			ArmorClass:      13,
			OriginalHTML:    "<div><h1>Wyvern</h1></div>",
			ConvertedHTML:   "<div><h1>Wyvern</h1></div>",
		},
	}
}

func TestJSONRenderer(t *testing.T) {
	r := NewJSONRenderer()
	assert.Equal(t, ".json", r.Extension())

	data, err := r.Render(sampleRecords())
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "Goblin", decoded[0]["name"])
	assert.Equal(t, 0.25, decoded[0]["cr"])
	assert.Equal(t, float64(1), decoded[0]["level"])
	assert.Equal(t, float64(2), decoded[0]["hp"])
	assert.Equal(t, float64(15), decoded[0]["ac"])
	assert.Contains(t, decoded[0]["original_html"], "+4 to hit")
	assert.Contains(t, decoded[0]["etf_html"], "Defense Save DC 15")
}

func TestJSONRenderer_EmptyBatchIsEmptyList(t *testing.T) {
	data, err := NewJSONRenderer().Render(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestJSRenderer(t *testing.T) {
	r := NewJSRenderer()
	assert.Equal(t, ".js", r.Extension())

	data, err := r.Render(sampleRecords())
	require.NoError(t, err)

	s := string(data)
	assert.True(t, strings.HasPrefix(s, "const monstersDataEmbedded = "))
	assert.True(t, strings.HasSuffix(s, ";"))

	payload := strings.TrimSuffix(strings.TrimPrefix(s, "const monstersDataEmbedded = "), ";")
	var decoded []map[string]any
	require.NoError(t, json.Unmarshal([]byte(payload), &decoded))
	assert.Len(t, decoded, 2)
}

func TestMarkdownRenderer(t *testing.T) {
	r := NewMarkdownRenderer()
	assert.Equal(t, ".md", r.Extension())

	data, err := r.Render(sampleRecords())
	require.NoError(t, err)

	md := string(data)
	assert.Contains(t, md, "# Goblin")
	assert.Contains(t, md, "CR 1/4 • Level 1 • HP 2 • AC 15")
	assert.Contains(t, md, "Defense Save DC 15")
	assert.Contains(t, md, "\n---\n")
	assert.Contains(t, md, "CR 6 • Level 4 • HP 11 • AC 13")
}

func TestPDFRenderer(t *testing.T) {
	r := NewPDFRenderer()
	assert.Equal(t, ".pdf", r.Extension())

	data, err := r.Render(sampleRecords())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
	assert.NotEmpty(t, data)
}

func TestFormatCR(t *testing.T) {
	assert.Equal(t, "0", formatCR(0))
	assert.Equal(t, "1/8", formatCR(0.125))
	assert.Equal(t, "1/4", formatCR(0.25))
	assert.Equal(t, "1/2", formatCR(0.5))
	assert.Equal(t, "5", formatCR(5))
}
