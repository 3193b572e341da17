// Package cmd implements the CLI commands for the ETF toolchain using Cobra.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "etf",
	Short: "Easy Tabletop Fantasy — scrape and convert monster stat blocks",
	Long: `etf converts Black Flag Reference Document monster stat blocks into the
Easy Tabletop Fantasy rule system.

Usage:
  etf scrape  [flags]    # archive raw stat blocks per challenge rating
  etf convert [flags]    # convert archived stat blocks to ETF output`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLogger builds the pipeline logger. Progress lines go to stdout via
// fmt; diagnostics go through slog on stderr.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
