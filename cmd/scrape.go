// Scrape command.
// Discovers monster pages per challenge-rating tag, fetches each page,
// isolates and cleans the stat-block subtree, and writes one HTML archive
// per tag for the convert command to consume.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/spf13/cobra"

	"github.com/remideboer/easytabletopfantasy/config"
	"github.com/remideboer/easytabletopfantasy/core"
	"github.com/remideboer/easytabletopfantasy/core/clean"
	"github.com/remideboer/easytabletopfantasy/core/fetch"
	"github.com/remideboer/easytabletopfantasy/core/output"
	"github.com/remideboer/easytabletopfantasy/crawl"
)

var (
	flagScrapeConfig string
	flagScrapeDir    string
	flagFrom         string
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Archive raw monster stat blocks per challenge rating",
	Long: `Scrape walks every configured challenge-rating tag, discovers the monster
pages behind it (following pagination), and writes one HTML archive per tag
containing the cleaned stat blocks.

Examples:
  etf scrape
  etf scrape --from cr-12              # resume from a tag
  etf scrape --config etf.yaml --output_dir ./archives`,
	RunE: runScrape,
}

func init() {
	rootCmd.AddCommand(scrapeCmd)

	scrapeCmd.Flags().StringVar(&flagScrapeConfig, "config", "", "YAML config file")
	scrapeCmd.Flags().StringVar(&flagScrapeDir, "output_dir", "", "Archive directory (default from config)")
	scrapeCmd.Flags().StringVar(&flagFrom, "from", "", "Skip tags before this one (resume)")
}

func runScrape(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagScrapeConfig)
	if err != nil {
		return err
	}
	dir := cfg.ScrapeDir
	if flagScrapeDir != "" {
		dir = flagScrapeDir
	}

	writer, err := output.New(dir)
	if err != nil {
		return fmt.Errorf("initializing archive writer: %w", err)
	}

	tags := cfg.CRTags
	if flagFrom != "" {
		tags = tagsFrom(tags, flagFrom)
		if tags == nil {
			return fmt.Errorf("unknown CR tag %q", flagFrom)
		}
	}

	ctx := context.Background()
	fetcher := fetch.New()

	for _, tag := range tags {
		fmt.Fprintf(os.Stdout, "Processing %s...\n", tag)
		if err := scrapeTag(ctx, cfg, tag, fetcher, writer); err != nil {
			fmt.Fprintf(os.Stderr, "  ✗ %s: %v\n", tag, err)
		}
	}
	return nil
}

// scrapeTag archives every monster page found under one CR tag.
func scrapeTag(ctx context.Context, cfg config.Config, tag string, fetcher core.Fetcher, writer *output.Writer) error {
	urls, err := crawl.DiscoverMonsters(ctx, cfg.BaseURL, tag, fetcher)
	if err != nil {
		return fmt.Errorf("discovering pages: %w", err)
	}
	if len(urls) == 0 {
		fmt.Fprintf(os.Stdout, "  No monsters found for %s\n", tag)
		return nil
	}
	fmt.Fprintf(os.Stdout, "  Found %d monster pages\n", len(urls))

	var blocks []string
	for i, pageURL := range urls {
		fmt.Fprintf(os.Stdout, "  [%d/%d] %s\n", i+1, len(urls), pageURL)

		result, err := fetcher.Fetch(ctx, pageURL)
		if err != nil {
			fmt.Fprintf(os.Stderr, "    ✗ %v\n", err)
			continue
		}
		block, err := statBlockFragment(result.HTML)
		if err != nil {
			fmt.Fprintf(os.Stderr, "    ✗ %v\n", err)
			continue
		}
		cleaned, err := clean.Clean(block)
		if err != nil {
			cleaned = block
		}
		blocks = append(blocks, cleaned)

		time.Sleep(cfg.Delay())
	}

	if len(blocks) == 0 {
		return fmt.Errorf("no stat blocks extracted")
	}

	path, err := writer.Write("monster-"+tag, []byte(archiveDocument(tag, blocks)), ".html")
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "  ✓ Saved %d monsters to %s\n", len(blocks), path)
	return nil
}

// statBlockFragment isolates the stat-block subtree from a monster page,
// trying the most specific containers first.
func statBlockFragment(pageHTML string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(pageHTML))
	if err != nil {
		return "", fmt.Errorf("parsing page: %w", err)
	}

	selectors := []string{
		"article", "main",
		"div[class*=content]", "div[class*=post]", "div[class*=entry]",
		"body",
	}
	for _, sel := range selectors {
		found := doc.Find(sel)
		if found.Length() > 0 {
			return goquery.OuterHtml(found.First())
		}
	}
	return "", fmt.Errorf("no stat-block container found")
}

// archiveDocument assembles one per-tag HTML file, wrapping each stat block
// in the container the convert command looks for.
func archiveDocument(tag string, blocks []string) string {
	var b strings.Builder
	crLabel := strings.ReplaceAll(strings.TrimPrefix(tag, "cr-"), "-", "/")
	fmt.Fprintf(&b, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>BFRD Monsters - %s</title>
</head>
<body>
<h1>Black Flag Reference Document - Monsters (CR %s)</h1>
<p>Total monsters: %d</p>
`, strings.ToUpper(tag), crLabel, len(blocks))

	for _, block := range blocks {
		b.WriteString(`<div class="monster-stat-block">` + "\n")
		b.WriteString(block)
		b.WriteString("\n</div>\n")
	}

	b.WriteString("</body>\n</html>\n")
	return b.String()
}

// tagsFrom returns the tag list starting at the given tag, or nil when the
// tag is unknown.
func tagsFrom(tags []string, from string) []string {
	for i, tag := range tags {
		if tag == from {
			return tags[i:]
		}
	}
	return nil
}
