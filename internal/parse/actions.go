package parse

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/scholarship-parser/internal/common"
	"github.com/dtnitsch/scholarship-parser/pkg/search"
	"github.com/dtnitsch/scholarship-parser/pkg/storage"
)

// projectedOutput is Output with records reduced to the requested fields.
type projectedOutput struct {
	Scholarships []map[string]interface{} `json:"scholarships" yaml:"scholarships"`
	TotalCount   int                      `json:"total_count" yaml:"total_count"`
	Errors       []string                 `json:"errors" yaml:"errors"`
	Warnings     []string                 `json:"warnings" yaml:"warnings"`
}

// ParseAction parses a scholarship document and prints the records with
// their diagnostics.
func ParseAction(c *cli.Context) error {
	return run(c, "")
}

// SearchAction prints only the records matching --query.
func SearchAction(c *cli.Context) error {
	return run(c, c.String("query"))
}

func run(c *cli.Context, query string) error {
	cfg, err := common.ResolveConfig(c)
	if err != nil {
		return err
	}
	logger := common.NewLogger(cfg.LogLevel, c.Bool("quiet"), c.Bool("verbose"))

	doc, err := common.LoadDocument(cfg.Source, &storage.Storage{})
	if err != nil {
		logger.Error("failed to load scholarship document", "path", cfg.Source, "error", err)
		return cli.Exit(err.Error(), 2)
	}
	common.LogDiagnostics(logger, doc)

	records := doc.Records
	if query != "" {
		records = search.FilterScholarshipsBySearch(records, query)
		logger.Info("filtered scholarships", "query", query, "matched", len(records), "total", len(doc.Records))
	}

	out := common.NewOutput(records, doc.Result)

	var payload interface{} = out
	if projected := common.ProjectRecords(records, c.String("fields"), cfg.Format); projected != nil {
		payload = projectedOutput{
			Scholarships: projected,
			TotalCount:   out.TotalCount,
			Errors:       out.Errors,
			Warnings:     out.Warnings,
		}
	}

	data, err := common.Marshal(cfg.Format, payload)
	if err != nil {
		logger.Error("failed to marshal output", "error", err)
		return cli.Exit(err.Error(), 2)
	}
	fmt.Fprintln(c.App.Writer, string(data))

	if c.Bool("strict") && len(doc.Result.Errors) > 0 {
		return cli.Exit(fmt.Sprintf("%d parse errors", len(doc.Result.Errors)), 1)
	}
	return nil
}
