// Package abilities rewrites the six-column source ability table into the
// three-column ETF composite table (FIT / INS / WIL).
package abilities

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/remideboer/easytabletopfantasy/core/rules"
)

// sourceAbilities are the six canonical header labels, matched
// case-insensitively against the table header, not by column position.
var sourceAbilities = []string{"STR", "DEX", "CON", "INT", "WIS", "CHA"}

// etfAbilities are the three composite header labels, in output order.
var etfAbilities = []string{"FIT", "INS", "WIL"}

// Rewrite replaces every ability-scores table in the fragment with its ETF
// composite form. Tables missing any of the six canonical labels are left
// untouched. The enclosing figure/table markup and the cell class and
// alignment attributes are preserved so the fragment stays
// presentation-compatible.
func Rewrite(fragment string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return fragment, fmt.Errorf("parsing stat block fragment: %w", err)
	}

	doc.Find("figure.monster-ability-scores").Each(func(_ int, fig *goquery.Selection) {
		rewriteTable(fig)
	})

	out, err := doc.Find("body").Html()
	if err != nil {
		return fragment, fmt.Errorf("serializing stat block fragment: %w", err)
	}
	return out, nil
}

// rewriteTable converts one ability table in place. It is fail-soft: any
// structural surprise leaves the table exactly as it was.
func rewriteTable(fig *goquery.Selection) {
	headerRow := fig.Find("table thead tr").First()
	dataRow := fig.Find("table tbody tr").First()
	if headerRow.Length() == 0 || dataRow.Length() == 0 {
		return
	}

	headers := headerRow.Find("th")
	cells := dataRow.Find("td")

	// Map each header label to its data cell by label text, not position.
	mods := make(map[string]int, headers.Length())
	headers.Each(func(i int, th *goquery.Selection) {
		label := strings.ToUpper(strings.TrimSpace(th.Text()))
		if i < cells.Length() {
			mods[label] = rules.ParseModifier(cells.Eq(i).Text())
		}
	})

	for _, ability := range sourceAbilities {
		if _, ok := mods[ability]; !ok {
			return
		}
	}

	comp := rules.CompositeFromModifiers(
		mods["STR"], mods["DEX"], mods["CON"],
		mods["INT"], mods["WIS"], mods["CHA"],
	)

	var header strings.Builder
	for _, code := range etfAbilities {
		fmt.Fprintf(&header, `<th class="has-text-align-center" data-align="center">%s</th>`, code)
	}
	headerRow.SetHtml(header.String())

	var data strings.Builder
	for _, mod := range []int{comp.Fitness, comp.Insight, comp.Willpower} {
		fmt.Fprintf(&data, `<td class="has-text-align-center" data-align="center">%s</td>`, rules.FormatModifier(mod))
	}
	dataRow.SetHtml(data.String())
}
