package render

import (
	"fmt"
	"strings"

	goerrors "github.com/goliatone/go-errors"
	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/scholarship-parser/internal/common"
	renderpkg "github.com/dtnitsch/scholarship-parser/pkg/render"
	"github.com/dtnitsch/scholarship-parser/pkg/storage"
)

// RenderAction writes the scholarships as an HTML page, highlighting --query.
func RenderAction(c *cli.Context) error {
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

	r := renderpkg.NewRenderer(cfg.HighlightClass)
	page := r.BuildPage(c.String("title"), doc.Records, doc.Result, c.String("query"))
	html, err := r.Render(page)
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryCommand, "failed to render page").
			WithTextCode(common.CodeOutputWrite)
	}

	out := strings.TrimSpace(c.String("out"))
	if out == "" {
		fmt.Fprint(c.App.Writer, string(html))
		return nil
	}

	if err := s.SaveFile(out, html); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryCommand, "failed to write page").
			WithTextCode(common.CodeOutputWrite)
	}
	logger.Info("rendered scholarship page", "out", out, "rows", page.TotalCount)
	return nil
}
