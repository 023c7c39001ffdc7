package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = "aoc.yaml"

// Config holds all aocrunner configuration.
type Config struct {
	// Root of the input cache, laid out as <data_dir>/<year>/<day>.txt
	DataDir string `yaml:"data_dir"`

	// Puzzle site, inputs are fetched from <base_url>/<year>/day/<day>/input
	BaseURL string `yaml:"base_url"`

	// Session cookie value. Normally supplied through AOC_SESSION_ID.
	Session string `yaml:"session,omitempty"`

	UserAgent string `yaml:"user_agent"`

	// Fetch timeout, parsed with time.ParseDuration
	Timeout string `yaml:"timeout"`

	Logging LoggingConfig `yaml:"logging"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		DataDir:   "./data",
		BaseURL:   "https://adventofcode.com",
		UserAgent: "aocrunner (+https://github.com/aocrunner/aocrunner)",
		Timeout:   "30s",
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file.
// A missing file is not an error; defaults plus environment overrides are returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if session := os.Getenv("AOC_SESSION_ID"); session != "" {
		c.Session = session
	}
	if dir := os.Getenv("AOC_DATA_DIR"); dir != "" {
		c.DataDir = dir
	}
	if url := os.Getenv("AOC_BASE_URL"); url != "" {
		c.BaseURL = url
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
}

// GetTimeout returns the fetch timeout as a duration.
func (c *Config) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data_dir must not be empty")
	}
	if c.BaseURL == "" {
		return fmt.Errorf("base_url must not be empty")
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("invalid logging config: %w", err)
	}
	return nil
}
