package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "https://bfrd.net", cfg.BaseURL)
	assert.Equal(t, 34, len(cfg.CRTags))
	assert.Equal(t, "cr-0", cfg.CRTags[0])
	assert.Equal(t, "cr-30", cfg.CRTags[len(cfg.CRTags)-1])
	assert.Equal(t, 500*time.Millisecond, cfg.Delay())
	assert.Equal(t, 4, cfg.Workers)
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "etf.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"base_url: https://example.org\ncr_tags: [cr-1, cr-2]\nworkers: 0\ndelay_ms: 1000\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://example.org", cfg.BaseURL)
	assert.Equal(t, []string{"cr-1", "cr-2"}, cfg.CRTags)
	assert.Equal(t, 1, cfg.Workers)
	assert.Equal(t, time.Second, cfg.Delay())
	assert.Equal(t, "monsters-bfrd", cfg.ScrapeDir)
}

func TestLoad_MissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
