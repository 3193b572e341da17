// Convert command.
// Reads the archived per-CR HTML files, runs the extraction and conversion
// pipeline over every stat block, and renders the record collection in the
// selected output format.
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/remideboer/easytabletopfantasy/config"
	"github.com/remideboer/easytabletopfantasy/core"
	"github.com/remideboer/easytabletopfantasy/core/batch"
	"github.com/remideboer/easytabletopfantasy/core/output"
	"github.com/remideboer/easytabletopfantasy/core/render"
)

var (
	flagJSON      bool
	flagJS        bool
	flagMarkdown  bool
	flagPDF       bool
	flagOutputDir string
	flagOutName   string
	flagConfig    string
	flagWorkers   int
	flagVerbose   bool
)

var convertCmd = &cobra.Command{
	Use:   "convert [input-dir or files...]",
	Short: "Convert archived stat blocks to an ETF bestiary",
	Long: `Convert reads monster HTML archives (as written by "etf scrape"), extracts
every stat block, applies the ETF conversion rules, and writes the record
collection in the selected format.

Examples:
  etf convert                            # convert ./monsters-bfrd to monsters_data.json
  etf convert --js                       # embeddable JS data file
  etf convert ./archives --pdf --out bestiary
  etf convert monster-cr-1.html monster-cr-2.html --markdown`,
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	// Output format flags (mutually exclusive, JSON is the default).
	convertCmd.Flags().BoolVar(&flagJSON, "json", false, "Output JSON records (default)")
	convertCmd.Flags().BoolVar(&flagJS, "js", false, "Output an embeddable JS data file")
	convertCmd.Flags().BoolVar(&flagMarkdown, "markdown", false, "Output a Markdown bestiary")
	convertCmd.Flags().BoolVar(&flagPDF, "pdf", false, "Output a PDF bestiary")

	convertCmd.Flags().StringVar(&flagOutputDir, "output_dir", "", "Output directory (default: current directory)")
	convertCmd.Flags().StringVar(&flagOutName, "out", "monsters_data", "Output file name (without extension)")
	convertCmd.Flags().StringVar(&flagConfig, "config", "", "YAML config file")
	convertCmd.Flags().IntVar(&flagWorkers, "workers", 0, "Concurrent documents (default from config)")
	convertCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Log skipped blocks and documents")
}

func runConvert(cmd *cobra.Command, args []string) error {
	renderer, err := selectRenderer()
	if err != nil {
		return err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	workers := cfg.Workers
	if flagWorkers > 0 {
		workers = flagWorkers
	}

	paths, err := collectInputs(args, cfg.ScrapeDir)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no monster HTML files to convert")
	}

	writer, err := output.New(flagOutputDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Converting %d documents...\n", len(paths))

	orchestrator := batch.New(newLogger(flagVerbose), workers)
	records, err := orchestrator.ConvertFiles(context.Background(), paths)
	if err != nil {
		return err
	}

	data, err := renderer.Render(records)
	if err != nil {
		return fmt.Errorf("rendering output: %w", err)
	}

	path, err := writer.Write(flagOutName, data, renderer.Extension())
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "✓ %d monsters converted\n", len(records))
	fmt.Fprintf(os.Stdout, "✓ Written: %s\n", path)
	return nil
}

// collectInputs resolves the positional arguments into an ordered file
// list. No arguments means the configured scrape directory; a directory
// argument expands to its monster HTML files in name order.
func collectInputs(args []string, scrapeDir string) ([]string, error) {
	if len(args) == 0 {
		args = []string{scrapeDir}
	}

	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("input %s: %w", arg, err)
		}
		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}
		matches, err := filepath.Glob(filepath.Join(arg, "monster-*.html"))
		if err != nil {
			return nil, err
		}
		sort.Strings(matches)
		paths = append(paths, matches...)
	}
	return paths, nil
}

// selectRenderer creates the appropriate Renderer based on flags. Exactly
// one format may be selected; none means JSON.
func selectRenderer() (core.Renderer, error) {
	count := 0
	for _, f := range []bool{flagJSON, flagJS, flagMarkdown, flagPDF} {
		if f {
			count++
		}
	}
	if count > 1 {
		return nil, fmt.Errorf("only one output format allowed per run (got %d)", count)
	}

	switch {
	case flagJS:
		return render.NewJSRenderer(), nil
	case flagMarkdown:
		return render.NewMarkdownRenderer(), nil
	case flagPDF:
		return render.NewPDFRenderer(), nil
	default:
		return render.NewJSONRenderer(), nil
	}
}
