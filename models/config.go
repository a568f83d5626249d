package models

import (
	"fmt"
	"os"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

const (
	FormatYAML  = "yaml"
	FormatJSON  = "json"
	FormatTerse = "terse"

	DefaultHighlightClass = "bg-yellow-200 font-semibold"
	DefaultTopKeywords    = 25
)

// Config holds runtime configuration for the scholarships CLI.
// Values come from an optional YAML file; CLI flags override them.
type Config struct {
	Source         string `json:"source" yaml:"source"`
	Format         string `json:"format" yaml:"format"`
	HighlightClass string `json:"highlight_class" yaml:"highlight_class"`
	TopKeywords    int    `json:"top_keywords" yaml:"top_keywords"`
	LogLevel       string `json:"log_level" yaml:"log_level"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Format:         FormatYAML,
		HighlightClass: DefaultHighlightClass,
		TopKeywords:    DefaultTopKeywords,
		LogLevel:       "info",
	}
}

// LoadConfig reads a YAML config file on top of the defaults.
// An empty path returns the defaults unchanged.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.Format = strings.ToLower(strings.TrimSpace(cfg.Format))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if cfg.Format == "" {
		cfg.Format = FormatYAML
	}
	if strings.TrimSpace(cfg.HighlightClass) == "" {
		cfg.HighlightClass = DefaultHighlightClass
	}

	return cfg, nil
}

// Validate checks enumerated fields and bounds.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Format, validation.In(FormatYAML, FormatJSON, FormatTerse)),
		validation.Field(&c.TopKeywords, validation.Min(0)),
		validation.Field(&c.LogLevel, validation.In("debug", "info", "warn", "error")),
	)
}
