package common

import (
	"log/slog"
	"os"
	"strings"
	"time"

	goerrors "github.com/goliatone/go-errors"

	"github.com/dtnitsch/scholarship-parser/models"
	"github.com/dtnitsch/scholarship-parser/pkg/parser"
	"github.com/dtnitsch/scholarship-parser/pkg/storage"
)

const (
	CodeDocumentRead  = "DOCUMENT_READ_FAILED"
	CodeDocumentStat  = "DOCUMENT_STAT_FAILED"
	CodeConfigInvalid = "CONFIG_INVALID"
	CodeOutputWrite   = "OUTPUT_WRITE_FAILED"
	CodeMissingSource = "SOURCE_REQUIRED"
)

// Document is a parsed and normalized scholarship file.
type Document struct {
	Path      string
	Content   string
	Hash      string
	SizeBytes int64
	ModTime   time.Time
	Result    models.ParseResult
	Records   []models.Scholarship // normalized
}

// LoadDocument reads path, parses the scholarship table and normalizes the
// records. Only reading can fail; parse problems are reported in Result.
func LoadDocument(path string, s *storage.Storage) (*Document, error) {
	if strings.TrimSpace(path) == "" {
		return nil, goerrors.Wrap(os.ErrInvalid, goerrors.CategoryValidation, "no scholarship document given").
			WithTextCode(CodeMissingSource)
	}

	content, err := s.ReadDocument(path)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryCommand, "Failed to load scholarship data").
			WithTextCode(CodeDocumentRead)
	}

	stats, err := s.GetFileStats(path)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryCommand, "Failed to load scholarship data").
			WithTextCode(CodeDocumentStat)
	}

	result := parser.ParseMarkdownTable(content)

	return &Document{
		Path:      path,
		Content:   content,
		Hash:      ContentHash([]byte(content)),
		SizeBytes: stats.SizeBytes,
		ModTime:   stats.ModTime,
		Result:    result,
		Records:   parser.NormalizeAll(result.Scholarships),
	}, nil
}

// Output is the load result handed to presentation: the records plus
// their count and the diagnostics.
type Output struct {
	Scholarships []models.Scholarship `json:"scholarships" yaml:"scholarships"`
	TotalCount   int                  `json:"total_count" yaml:"total_count"`
	Errors       []string             `json:"errors" yaml:"errors"`
	Warnings     []string             `json:"warnings" yaml:"warnings"`
}

// NewOutput builds the presentation payload for records.
func NewOutput(records []models.Scholarship, result models.ParseResult) Output {
	return Output{
		Scholarships: records,
		TotalCount:   len(records),
		Errors:       result.Errors,
		Warnings:     result.Warnings,
	}
}

// NewLogger returns a JSON slog logger on stderr. quiet wins over verbose;
// otherwise level comes from the config value.
func NewLogger(level string, quiet, verbose bool) *slog.Logger {
	logLevel := slog.LevelInfo
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}
	if verbose {
		logLevel = slog.LevelDebug
	}
	if quiet {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

func diagnosticAttrs(d models.Diagnostic) []any {
	attrs := []any{"row", d.Row, "kind", string(d.Kind), "message", d.Message}
	if d.Field != "" {
		attrs = append(attrs, "field", d.Field)
	}
	return attrs
}

// LogDiagnostics writes one entry per diagnostic, errors first, and a
// summary entry.
func LogDiagnostics(logger *slog.Logger, doc *Document) {
	for _, d := range models.FilterDiagnostics(doc.Result.Diagnostics, models.SeverityError) {
		if d.Kind == models.KindNoTable {
			logger.Error("no scholarship table found", "path", doc.Path)
			continue
		}
		logger.Warn("row rejected", diagnosticAttrs(d)...)
	}
	for _, d := range models.FilterDiagnostics(doc.Result.Diagnostics, models.SeverityWarning) {
		logger.Debug("row warning", diagnosticAttrs(d)...)
	}

	logger.Info("parsed scholarship document",
		"path", doc.Path,
		"sha256", doc.Hash,
		"records", len(doc.Records),
		"errors", len(doc.Result.Errors),
		"warnings", len(doc.Result.Warnings),
	)
}
