package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/logivex/portscout/internal/errors"
)

// ─── struct ───────────────────────────────────────────────────────────────────

// Config holds all runtime configuration for portscout.
type Config struct {
	Target      string        `yaml:"target"`
	Ports       string        `yaml:"ports"`
	Timeout     time.Duration `yaml:"timeout"`
	Concurrency int           `yaml:"concurrency"`
	Rate        int           `yaml:"rate"`
	Banner      bool          `yaml:"banner"`
	RDNS        bool          `yaml:"rdns"`
	Output      string        `yaml:"output"`
	File        string        `yaml:"file"`
}

// Outputs lists the accepted values of Output.
var Outputs = []string{"human", "json", "csv", "xlsx"}

// ─── defaults ─────────────────────────────────────────────────────────────────

// Default returns a Config populated with sensible defaults.
func Default() Config {
	return Config{
		Target:      "localhost",
		Ports:       "1-1024",
		Timeout:     time.Second,
		Concurrency: 100,
		Rate:        0,
		Banner:      false,
		RDNS:        false,
		Output:      "human",
		File:        "",
	}
}

// ─── load ─────────────────────────────────────────────────────────────────────

// DefaultPath returns ~/.portscout.yaml, or "" when there is no home directory.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".portscout.yaml")
}

// Load reads a YAML config file and merges it onto the defaults.
// An empty path means DefaultPath. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath()
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // no file is not an error
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Inputf("config", "%s: %s", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate rejects values no scan could run with.
func (c Config) Validate() error {
	if c.Timeout <= 0 {
		return errors.Inputf("timeout", "%s must be positive", c.Timeout)
	}
	if c.Concurrency <= 0 {
		return errors.Inputf("concurrency", "%d must be positive", c.Concurrency)
	}
	if c.Rate < 0 {
		return errors.Inputf("rate", "%d must not be negative", c.Rate)
	}
	for _, o := range Outputs {
		if c.Output == o {
			return nil
		}
	}
	return errors.Inputf("output", "%q is not one of %v", c.Output, Outputs)
}
