// Package batch orchestrates the conversion run: it walks documents, locates
// every stat-block container, and runs the extract -> table-rewrite -> text-rules
// pipeline per block. Per-block and per-document failures are logged and
// skipped; a batch never aborts.
package batch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/errgroup"

	"github.com/remideboer/easytabletopfantasy/core"
	"github.com/remideboer/easytabletopfantasy/core/abilities"
	"github.com/remideboer/easytabletopfantasy/core/extract"
	"github.com/remideboer/easytabletopfantasy/core/rewrite"
)

// Orchestrator converts documents into MonsterRecord collections.
type Orchestrator struct {
	extractor *extract.StatBlockExtractor
	engine    *rewrite.Engine
	log       *slog.Logger
	workers   int
}

// New creates an Orchestrator. workers bounds the number of documents
// processed concurrently; values below 1 mean sequential.
func New(log *slog.Logger, workers int) *Orchestrator {
	if workers < 1 {
		workers = 1
	}
	return &Orchestrator{
		extractor: extract.New(),
		engine:    rewrite.New(),
		log:       log,
		workers:   workers,
	}
}

// ConvertDocument parses one HTML document and converts every stat block in
// it, in document order. Blocks without a name heading are dropped and
// logged. A document with no stat-block containers yields zero records and
// no error.
func (o *Orchestrator) ConvertDocument(name string, r io.Reader) ([]core.MonsterRecord, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing document %s: %w", name, err)
	}

	var records []core.MonsterRecord
	doc.Find("div.monster-stat-block").Each(func(i int, block *goquery.Selection) {
		article := block.Find("article").First()
		if article.Length() == 0 {
			o.log.Warn("stat block without article subtree", "document", name, "block", i)
			return
		}

		rec, err := o.extractor.Extract(article)
		if err != nil {
			o.log.Warn("skipping stat block", "document", name, "block", i, "error", err)
			return
		}

		// All rewriting happens on a working copy; OriginalHTML stays verbatim.
		converted, err := abilities.Rewrite(rec.OriginalHTML)
		if err != nil {
			o.log.Warn("ability table rewrite failed, converting text only",
				"document", name, "monster", rec.Name, "error", err)
			converted = rec.OriginalHTML
		}
		rec.ConvertedHTML = o.engine.Apply(converted)

		records = append(records, *rec)
	})

	return records, nil
}

// ConvertFiles converts the given documents, up to workers at a time.
// Output order is document order (as given), then block order within each
// document, regardless of scheduling. Unreadable or unparseable documents
// contribute zero records and are logged, not fatal.
func (o *Orchestrator) ConvertFiles(ctx context.Context, paths []string) ([]core.MonsterRecord, error) {
	results := make([][]core.MonsterRecord, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			recs, err := o.convertFile(path)
			if err != nil {
				o.log.Warn("document skipped", "path", path, "error", err)
				return nil
			}
			results[i] = recs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []core.MonsterRecord
	for _, recs := range results {
		all = append(all, recs...)
	}
	return all, nil
}

func (o *Orchestrator) convertFile(path string) ([]core.MonsterRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return o.ConvertDocument(filepath.Base(path), f)
}
