// Package extract implements the structural stat-block extractor. It walks
// one article subtree and pulls out the monster name, challenge rating, hit
// points, armor class, and the stat-block body fragment.
package extract

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/remideboer/easytabletopfantasy/core"
	"github.com/remideboer/easytabletopfantasy/core/rules"
)

// ErrNoName reports a stat block without a name heading. This is the only
// fatal extraction failure; the caller skips the block.
var ErrNoName = errors.New("stat block has no name heading")

// Field markers are matched against the subtree's linearized text content,
// not at fixed positions, so label and value may sit in separate child
// elements. First match wins.
var (
	crMarker = regexp.MustCompile(`(?i)CR\s+([\d/]+)`)
	hpMarker = regexp.MustCompile(`(?i)Hit Points\s+(\d+)`)
	acMarker = regexp.MustCompile(`(?i)Armor Class\s+(\d+)`)
)

// StatBlockExtractor extracts MonsterRecords from stat-block articles.
type StatBlockExtractor struct{}

// New creates a StatBlockExtractor.
func New() *StatBlockExtractor {
	return &StatBlockExtractor{}
}

// Extract builds a MonsterRecord from one article subtree. The returned
// record has OriginalHTML set and ConvertedHTML empty; conversion happens
// downstream. CR, HP and AC lookups are independent: a missing or malformed
// value falls back to its default without failing the record. Only a missing
// name is fatal.
func (e *StatBlockExtractor) Extract(article *goquery.Selection) (*core.MonsterRecord, error) {
	name := strings.TrimSpace(article.Find("h1.title").First().Text())
	if name == "" {
		return nil, ErrNoName
	}

	text := article.Text()

	cr := 0.0
	if m := crMarker.FindStringSubmatch(text); m != nil {
		cr = rules.ParseChallengeRating(m[1])
	}

	rawHP := 0
	if m := hpMarker.FindStringSubmatch(text); m != nil {
		rawHP, _ = strconv.Atoi(m[1])
	}

	ac := 10
	if m := acMarker.FindStringSubmatch(text); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			ac = v
		}
	}

	body := article.Find("div.post-single-content").First()
	if body.Length() == 0 {
		// No tagged body container: the article itself is the block.
		body = article
	}
	original, err := goquery.OuterHtml(body)
	if err != nil {
		return nil, fmt.Errorf("serializing stat block %q: %w", name, err)
	}

	return &core.MonsterRecord{
		Name:            name,
		ChallengeRating: cr,
		Level:           rules.LevelFromCR(cr),
		HitPoints:       rules.ScaleHitPoints(rawHP),
		ArmorClass:      ac,
		OriginalHTML:    original,
	}, nil
}
