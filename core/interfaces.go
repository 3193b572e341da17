// Package core defines the shared types and pipeline interfaces for the
// ETF bestiary toolchain. Each stage of the pipeline is a clean, testable
// interface.
package core

import "context"

// MonsterRecord is one converted stat block. Field names in the JSON output
// follow the embedded data file consumed by the site.
type MonsterRecord struct {
	// Name comes from the stat block's heading. A block without a name is
	// dropped, so Name is always non-empty.
	Name string `json:"name"`
	// ChallengeRating is the source system's difficulty rating. Fractional
	// ratings (1/8, 1/4, 1/2) are stored as their decimal value. 0 when the
	// source value is missing or unparseable.
	ChallengeRating float64 `json:"cr"`
	// Level is the ETF difficulty band, in [1,10], derived from
	// ChallengeRating and never set independently of it.
	Level int `json:"level"`
	// HitPoints is the scaled ETF value, always >= 1.
	HitPoints int `json:"hp"`
	// ArmorClass defaults to 10 when the source value is missing.
	ArmorClass int `json:"ac"`
	// OriginalHTML is the verbatim serialized stat-block body. No transform
	// stage mutates it; all rewriting works on a copy.
	OriginalHTML string `json:"original_html"`
	// ConvertedHTML is the fully rule-transformed stat-block body.
	ConvertedHTML string `json:"etf_html"`
}

// FetchResult holds the raw HTML and response metadata from a fetch.
type FetchResult struct {
	URL        string
	StatusCode int
	HTML       string
}

// Fetcher retrieves raw HTML from a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// Renderer converts the converted record collection into a final output format.
type Renderer interface {
	Render(records []MonsterRecord) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".json").
	Extension() string
}
