// Package config centralizes every tunable of the scoring pipeline.
// The thresholds are empirically chosen constants, so they are loaded
// from YAML rather than buried in the algorithms.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"textmark/internal/aiscore"
	"textmark/internal/highlight"
	"textmark/internal/quality"
)

type Config struct {
	Workers         int              `yaml:"workers"`
	ReferenceCorpus string           `yaml:"reference_corpus"`
	ServerAddr      string           `yaml:"server_addr"`
	WatchDebounceMs int              `yaml:"watch_debounce_ms"`
	CacheDB         string           `yaml:"cache_db"`
	AI              aiscore.Config   `yaml:"ai"`
	Quality         quality.Config   `yaml:"quality"`
	Highlight       highlight.Config `yaml:"highlight"`
}

// Default mirrors the shipped heuristic constants.
func Default() *Config {
	return &Config{
		Workers:         0,
		ServerAddr:      ":8370",
		WatchDebounceMs: 500,
		AI:              aiscore.DefaultConfig(),
		Quality:         quality.DefaultConfig(),
		Highlight:       highlight.DefaultConfig(),
	}
}

// Load reads a YAML config file over the defaults. A missing file is
// not an error: callers get the defaults back.
func Load(path string) (*Config, error) {
	cfg := Default()
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open config file: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	return cfg, nil
}

// Write serializes cfg to path, used to seed a fresh workspace.
func Write(cfg *Config, path string) error {
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
