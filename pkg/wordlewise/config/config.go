// Package config loads advisor session configuration from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/wordlewise/pkg/wordlewise/internalerr"
)

// Config describes one advisor session: where the word pools come from
// and how predictions behave by default.
type Config struct {
	Length    int    `yaml:"length"`
	OnlyAlpha bool   `yaml:"only_alpha"`
	CachePath string `yaml:"cache_path"`

	Lists struct {
		Allowed string `yaml:"allowed"`
		Answers string `yaml:"answers"`
	} `yaml:"lists"`

	Defaults struct {
		TopK     int    `yaml:"top_k"`
		Strategy string `yaml:"strategy"`
		Pool     string `yaml:"pool"`
	} `yaml:"defaults"`
}

// Load reads a YAML config file, fills in defaults and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ApplyDefaults fills zero-valued fields with the standard defaults.
func (c *Config) ApplyDefaults() {
	if c.Length == 0 {
		c.Length = 5
	}
	if c.Defaults.TopK == 0 {
		c.Defaults.TopK = 10
	}
	if c.Defaults.Strategy == "" {
		c.Defaults.Strategy = "heuristic"
	}
	if c.Defaults.Pool == "" {
		c.Defaults.Pool = "answers"
	}
}

// Validate checks field values without touching the filesystem.
func (c *Config) Validate() error {
	if c.Length < 1 {
		return fmt.Errorf("%w: length must be positive, got %d", internalerr.ErrInvalidConfig, c.Length)
	}
	if c.Lists.Allowed == "" || c.Lists.Answers == "" {
		return fmt.Errorf("%w: both allowed and answers list sources are required", internalerr.ErrInvalidConfig)
	}
	switch c.Defaults.Strategy {
	case "heuristic", "exact":
	default:
		return fmt.Errorf("%w: unknown strategy %q", internalerr.ErrInvalidConfig, c.Defaults.Strategy)
	}
	switch c.Defaults.Pool {
	case "allowed", "answers":
	default:
		return fmt.Errorf("%w: unknown pool %q", internalerr.ErrInvalidConfig, c.Defaults.Pool)
	}
	if c.Defaults.TopK < 1 {
		return fmt.Errorf("%w: top_k must be at least 1, got %d", internalerr.ErrInvalidConfig, c.Defaults.TopK)
	}
	return nil
}
