// Package render — PDF bestiary renderer.
// Renders one section per monster using gofpdf: name heading, a summary
// line, then the converted block text. Tables and images are not rendered;
// the PDF is a print-friendly digest, not a layout-faithful copy.
package render

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/jung-kurt/gofpdf"

	"github.com/remideboer/easytabletopfantasy/core"
)

// PDFRenderer renders the record collection as a PDF document.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render converts the records into PDF bytes, one section per monster.
func (r *PDFRenderer) Render(records []core.MonsterRecord) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.MultiCell(0, 10, "ETF Bestiary", "", "L", false)
	pdf.Ln(4)

	for _, rec := range records {
		renderMonster(pdf, rec)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

func renderMonster(pdf *gofpdf.Fpdf, rec core.MonsterRecord) {
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 15)
	pdf.MultiCell(0, 8, rec.Name, "", "L", false)

	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(100, 100, 100)
	summary := fmt.Sprintf("CR %s  |  Level %d  |  HP %d  |  AC %d",
		formatCR(rec.ChallengeRating), rec.Level, rec.HitPoints, rec.ArmorClass)
	pdf.MultiCell(0, 5, summary, "", "L", false)
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(2)

	md, err := htmltomarkdown.ConvertString(rec.ConvertedHTML)
	if err != nil {
		return
	}
	for _, line := range strings.Split(md, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			pdf.Ln(2)
			continue
		}
		switch {
		case strings.HasPrefix(trimmed, "#"):
			text := strings.TrimSpace(strings.TrimLeft(trimmed, "# "))
			pdf.SetFont("Helvetica", "B", 11)
			pdf.MultiCell(0, 6, cleanInlineMarkdown(text), "", "L", false)
		case strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* "):
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, "• "+cleanInlineMarkdown(trimmed[2:]), "", "L", false)
		case strings.HasPrefix(trimmed, "|"):
			// Markdown table rows render as monospace lines.
			pdf.SetFont("Courier", "", 9)
			pdf.MultiCell(0, 4.5, trimmed, "", "L", false)
		default:
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, cleanInlineMarkdown(trimmed), "", "L", false)
		}
	}
	pdf.Ln(4)
}

// cleanInlineMarkdown strips inline Markdown formatting for PDF rendering.
func cleanInlineMarkdown(text string) string {
	text = strings.ReplaceAll(text, "**", "")
	text = strings.ReplaceAll(text, "__", "")
	re := regexp.MustCompile(`(?:^|\s)\*([^*]+)\*(?:\s|$)`)
	text = re.ReplaceAllString(text, " $1 ")
	text = regexp.MustCompile("`([^`]+)`").ReplaceAllString(text, "$1")
	text = regexp.MustCompile(`\[([^\]]*)\]\([^)]+\)`).ReplaceAllString(text, "$1")
	return strings.TrimSpace(text)
}
