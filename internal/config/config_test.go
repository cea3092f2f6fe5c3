package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	raw := []byte(`
workers: 3
server_addr: ":9999"
ai:
  vocabulary_max: 0.5
  phrase_cap: 12
highlight:
  coverage_cap: 0.25
`)
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, ":9999", cfg.ServerAddr)
	assert.Equal(t, 0.5, cfg.AI.VocabularyMax)
	assert.Equal(t, 12, cfg.AI.PhraseCap)
	assert.Equal(t, 0.25, cfg.Highlight.CoverageCap)
	// Untouched fields keep their defaults.
	assert.Equal(t, Default().AI.ConsistencyPts, cfg.AI.ConsistencyPts)
	assert.Equal(t, Default().Quality, cfg.Quality)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workers: [not an int"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestWriteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := Default()
	cfg.Workers = 7
	cfg.AI.AIThreshold = 65
	require.NoError(t, Write(cfg, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
