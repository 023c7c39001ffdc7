package config

import (
	"fmt"
	"strings"
)

// ValidLevels lists the accepted log levels.
var ValidLevels = []string{"debug", "info", "warn", "error"}

// ValidFormats lists the accepted log output formats.
var ValidFormats = []string{"console", "json"}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level" json:"level,omitempty"`   // debug, info, warn, error
	Format string `yaml:"format" json:"format,omitempty"` // console, json
}

// Validate checks the level and format against the accepted values.
// Both are matched case-insensitively; "warning" is accepted as "warn".
func (c *LoggingConfig) Validate() error {
	level := strings.ToLower(c.Level)
	if level == "warning" {
		level = "warn"
	}
	if !contains(ValidLevels, level) {
		return fmt.Errorf("unknown log level %q (valid: %v)", c.Level, ValidLevels)
	}
	if !contains(ValidFormats, strings.ToLower(c.Format)) {
		return fmt.Errorf("unknown log format %q (valid: %v)", c.Format, ValidFormats)
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
