// Package config holds the scrape and convert settings, loadable from a
// YAML file with sensible defaults for the BFRD site.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config controls the toolchain.
type Config struct {
	// BaseURL is the root of the reference-document site.
	BaseURL string `yaml:"base_url"`
	// CRTags lists the challenge-rating tag slugs to scrape, in order.
	CRTags []string `yaml:"cr_tags"`
	// DelayMS is the politeness pause between page fetches, in milliseconds.
	DelayMS int `yaml:"delay_ms"`
	// ScrapeDir is where per-CR HTML archives are written and read from.
	ScrapeDir string `yaml:"scrape_dir"`
	// Workers bounds how many documents convert in parallel.
	Workers int `yaml:"workers"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		BaseURL:   "https://bfrd.net",
		CRTags:    defaultCRTags(),
		DelayMS:   500,
		ScrapeDir: "monsters-bfrd",
		Workers:   4,
	}
}

// Load reads a YAML config file over the defaults. An empty path returns
// the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if len(cfg.CRTags) == 0 {
		cfg.CRTags = defaultCRTags()
	}
	if cfg.DelayMS < 0 {
		cfg.DelayMS = 0
	}
	return cfg, nil
}

// Delay returns the politeness pause between fetches.
func (c Config) Delay() time.Duration {
	return time.Duration(c.DelayMS) * time.Millisecond
}

// defaultCRTags covers CR 0, the fractional ratings, and 1 through 30.
func defaultCRTags() []string {
	tags := []string{"cr-0", "cr-1-8", "cr-1-4", "cr-1-2"}
	for i := 1; i <= 30; i++ {
		tags = append(tags, fmt.Sprintf("cr-%d", i))
	}
	return tags
}
