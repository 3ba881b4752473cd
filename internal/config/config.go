// Package config provides configuration for the blts tool.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the blts configuration.
type Config struct {
	// Extensions lists file extensions treated as marked source when a
	// directory is converted.
	Extensions []string `yaml:"extensions"`
	// FailOnUnterminated makes an unterminated marker comment fail the
	// run instead of being reported as a warning.
	FailOnUnterminated bool `yaml:"fail_on_unterminated"`
	// OutDir is the default output directory for directory conversions.
	OutDir string `yaml:"out_dir,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Extensions: []string{".js", ".mjs", ".cjs"},
		OutDir:     "out",
	}
}

// Load reads configuration from path, falling back to defaults when path is
// empty. Environment variables override file values either way.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}
	cfg.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if len(c.Extensions) == 0 {
		return errors.New("extensions must not be empty")
	}
	for _, e := range c.Extensions {
		if !strings.HasPrefix(e, ".") {
			return fmt.Errorf("extension %q must start with a dot", e)
		}
	}
	return nil
}

// LoadFromEnv applies BLTS_* environment overrides. A variable overrides
// the current value only when set and non-empty.
func (c *Config) LoadFromEnv() {
	if v := os.Getenv("BLTS_OUT_DIR"); v != "" {
		c.OutDir = v
	}
	if v := os.Getenv("BLTS_EXTENSIONS"); v != "" {
		c.Extensions = strings.Split(v, ",")
	}
	if v := os.Getenv("BLTS_FAIL_ON_UNTERMINATED"); v != "" {
		c.FailOnUnterminated = v == "1" || strings.EqualFold(v, "true")
	}
}
