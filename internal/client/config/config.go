// Package config handles configuration for the client component,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the livecontent client.
//
// Fields:
//   - ServerURL: base URL of the content service.
//   - PollInterval: how often the sync loop refetches; 0 disables polling.
//   - RequestTimeout: per-fetch timeout after which an attempt counts as failed.
//   - FallbackPath: bundled static document used when the primary endpoint
//     is not deployed (404).
//   - OverridePath: local file holding the preview override document.
//   - ManifestPath: YAML binding manifest for the template binder.
type Config struct {
	ServerURL      string
	PollInterval   time.Duration
	RequestTimeout time.Duration
	FallbackPath   string
	OverridePath   string
	ManifestPath   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:8080"
	c.PollInterval = 5 * time.Second
	c.RequestTimeout = 4 * time.Second
	c.FallbackPath = "content.json"
	c.OverridePath = ".lc_override.json"
	c.ManifestPath = "bindings.yaml"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
