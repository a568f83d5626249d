package summary

import (
	"fmt"
	"strings"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/scholarship-parser/internal/common"
	"github.com/dtnitsch/scholarship-parser/pkg/manifest"
	"github.com/dtnitsch/scholarship-parser/pkg/storage"
)

// SummaryAction prints a manifest of the parsed document and optionally
// saves it under --out.
func SummaryAction(c *cli.Context) error {
	cfg, err := common.ResolveConfig(c)
	if err != nil {
		return err
	}
	logger := common.NewLogger(cfg.LogLevel, c.Bool("quiet"), c.Bool("verbose"))
	s := &storage.Storage{}

	doc, err := common.LoadDocument(cfg.Source, s)
	if err != nil {
		logger.Error("failed to load scholarship document", "path", cfg.Source, "error", err)
		return cli.Exit(err.Error(), 2)
	}
	common.LogDiagnostics(logger, doc)

	m := manifest.GenerateSummary(manifest.Input{
		Source: manifest.SourceSummary{
			Path:      doc.Path,
			SHA256:    doc.Hash,
			SizeBytes: doc.SizeBytes,
			Modified:  doc.ModTime.Format(time.RFC3339),
		},
		Content: doc.Content,
		Result:  doc.Result,
		Records: doc.Records,
	}, cfg.TopKeywords)

	data, err := common.Marshal(cfg.Format, m)
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}
	fmt.Fprintln(c.App.Writer, string(data))

	if !c.Bool("save") {
		return nil
	}
	out := strings.TrimSpace(c.String("out"))
	if out == "" {
		out = fmt.Sprintf("results/summary-%s.yaml", time.Now().Format("2006-01-02"))
	}
	if s.HasFile(out) {
		logger.Warn("overwriting existing summary manifest", "path", out)
	}
	path, err := manifest.SaveSummary(m, out, s)
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryCommand, "failed to save summary").
			WithTextCode(common.CodeOutputWrite)
	}
	logger.Info("summary manifest saved", "path", path)
	return nil
}
