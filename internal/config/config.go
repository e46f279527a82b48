// Package config loads the editor-core configuration from a YAML file,
// falling back to defaults when the file is absent.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the full configuration surface.
type Config struct {
	API    APIConfig    `yaml:"api"`
	Search SearchConfig `yaml:"search"`
}

// APIConfig locates the backing application API.
type APIConfig struct {
	BaseURL string `yaml:"base_url"`
}

// SearchConfig tunes the reference-search client.
type SearchConfig struct {
	DebounceMS  int `yaml:"debounce_ms"`
	CacheTTLSec int `yaml:"cache_ttl_sec"`
	TimeoutSec  int `yaml:"timeout_sec"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		API: APIConfig{BaseURL: "http://localhost:3000"},
		Search: SearchConfig{
			DebounceMS:  300,
			CacheTTLSec: 300,
			TimeoutSec:  10,
		},
	}
}

// Load reads the config file at path. A missing file yields the defaults;
// any present field overrides its default, absent fields keep theirs.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), &ParseError{Path: path, Cause: err}
	}

	applyDefaults(&cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	def := Default()
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = def.API.BaseURL
	}
	if cfg.Search.DebounceMS <= 0 {
		cfg.Search.DebounceMS = def.Search.DebounceMS
	}
	if cfg.Search.CacheTTLSec <= 0 {
		cfg.Search.CacheTTLSec = def.Search.CacheTTLSec
	}
	if cfg.Search.TimeoutSec <= 0 {
		cfg.Search.TimeoutSec = def.Search.TimeoutSec
	}
}

// Debounce returns the search debounce window as a duration.
func (s SearchConfig) Debounce() time.Duration {
	return time.Duration(s.DebounceMS) * time.Millisecond
}

// CacheTTL returns the search cache lifetime as a duration.
func (s SearchConfig) CacheTTL() time.Duration {
	return time.Duration(s.CacheTTLSec) * time.Second
}

// Timeout returns the per-request timeout as a duration.
func (s SearchConfig) Timeout() time.Duration {
	return time.Duration(s.TimeoutSec) * time.Second
}

// ParseError indicates the config file exists but is not valid YAML.
type ParseError struct {
	Path  string
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid config %s: %v", e.Path, e.Cause)
}

func (e *ParseError) Unwrap() error { return e.Cause }
