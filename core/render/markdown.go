// Package render — Markdown bestiary renderer.
// Converts each record's converted HTML to Markdown and joins the blocks
// into one reviewable document.
package render

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/remideboer/easytabletopfantasy/core"
)

// MarkdownRenderer produces a Markdown bestiary from the record collection.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render converts every record's ETF markup to Markdown, separated by
// thematic breaks. A record whose markup fails to convert falls back to a
// minimal header so the batch still renders.
func (r *MarkdownRenderer) Render(records []core.MonsterRecord) ([]byte, error) {
	blocks := make([]string, 0, len(records))
	for _, rec := range records {
		md, err := htmltomarkdown.ConvertString(rec.ConvertedHTML)
		if err != nil || strings.TrimSpace(md) == "" {
			md = fmt.Sprintf("# %s", rec.Name)
		}
		header := fmt.Sprintf("# %s\n\nCR %s • Level %d • HP %d • AC %d\n",
			rec.Name, formatCR(rec.ChallengeRating), rec.Level, rec.HitPoints, rec.ArmorClass)
		blocks = append(blocks, header+"\n"+strings.TrimSpace(md))
	}
	return []byte(strings.Join(blocks, "\n\n---\n\n") + "\n"), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}

// formatCR renders a challenge rating in its conventional form, preferring
// fractional notation for the sub-1 ratings.
func formatCR(cr float64) string {
	switch cr {
	case 0.125:
		return "1/8"
	case 0.25:
		return "1/4"
	case 0.5:
		return "1/2"
	}
	if cr == float64(int(cr)) {
		return fmt.Sprintf("%d", int(cr))
	}
	return fmt.Sprintf("%g", cr)
}
