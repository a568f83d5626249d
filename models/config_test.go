package models

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Format != FormatYAML {
		t.Errorf("Format = %q, want %q", cfg.Format, FormatYAML)
	}
	if cfg.HighlightClass != DefaultHighlightClass {
		t.Errorf("HighlightClass = %q, want %q", cfg.HighlightClass, DefaultHighlightClass)
	}
	if cfg.TopKeywords != DefaultTopKeywords {
		t.Errorf("TopKeywords = %d, want %d", cfg.TopKeywords, DefaultTopKeywords)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeConfig(t, "source: data/scholarships.md\nformat: JSON\ntop_keywords: 5\nlog_level: debug\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Source != "data/scholarships.md" {
		t.Errorf("Source = %q", cfg.Source)
	}
	if cfg.Format != FormatJSON {
		t.Errorf("Format = %q, want %q", cfg.Format, FormatJSON)
	}
	if cfg.TopKeywords != 5 {
		t.Errorf("TopKeywords = %d, want 5", cfg.TopKeywords)
	}
	if cfg.HighlightClass != DefaultHighlightClass {
		t.Errorf("HighlightClass should keep default, got %q", cfg.HighlightClass)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := writeConfig(t, "format: [unterminated\n")
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(c *Config) {}, wantErr: false},
		{name: "terse format", mutate: func(c *Config) { c.Format = FormatTerse }, wantErr: false},
		{name: "unknown format", mutate: func(c *Config) { c.Format = "xml" }, wantErr: true},
		{name: "negative top keywords", mutate: func(c *Config) { c.TopKeywords = -1 }, wantErr: true},
		{name: "unknown log level", mutate: func(c *Config) { c.LogLevel = "loud" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
