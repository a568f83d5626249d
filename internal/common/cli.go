package common

import (
	"encoding/json"
	"fmt"
	"strings"

	goerrors "github.com/goliatone/go-errors"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/dtnitsch/scholarship-parser/models"
)

// ResolveConfig loads --config and applies flag overrides on top of it.
func ResolveConfig(c *cli.Context) (*models.Config, error) {
	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryValidation, "failed to load config").
			WithTextCode(CodeConfigInvalid)
	}

	if c.IsSet("file") {
		cfg.Source = c.String("file")
	}
	if c.IsSet("format") {
		cfg.Format = strings.ToLower(strings.TrimSpace(c.String("format")))
	}
	if c.IsSet("highlight-class") {
		cfg.HighlightClass = c.String("highlight-class")
	}
	if c.IsSet("top") {
		cfg.TopKeywords = c.Int("top")
	}

	if err := cfg.Validate(); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryValidation, "invalid configuration").
			WithTextCode(CodeConfigInvalid)
	}
	return cfg, nil
}

// Marshal encodes v as YAML, or as indented JSON for the json and terse formats.
func Marshal(format string, v interface{}) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if format == models.FormatYAML {
		data, err = yaml.Marshal(v)
	} else {
		data, err = json.MarshalIndent(v, "", "  ")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to marshal output: %w", err)
	}
	return data, nil
}

// ProjectRecords applies --fields and terse key shortening. It returns nil
// when neither is requested so callers can emit the records unchanged.
func ProjectRecords(records []models.Scholarship, fields string, format string) []map[string]interface{} {
	isTerse := format == models.FormatTerse
	if strings.TrimSpace(fields) == "" && !isTerse {
		return nil
	}

	projected := make([]map[string]interface{}, len(records))
	for i, r := range records {
		projected[i] = FilterResultFields(r, fields, isTerse)
	}
	return projected
}
