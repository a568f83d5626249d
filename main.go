package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/scholarship-parser/internal/parse"
	"github.com/dtnitsch/scholarship-parser/internal/render"
	"github.com/dtnitsch/scholarship-parser/internal/summary"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func sourceFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "file",
			Aliases: []string{"f"},
			Usage:   "markdown document holding the scholarship table (overrides config source)",
			EnvVars: []string{"SCHOLARSHIPS_FILE"},
		},
		&cli.StringFlag{
			Name:  "format",
			Usage: "output format: yaml, json or terse",
		},
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "scholarships",
		Usage: "Parse, search and render a markdown scholarship table",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to a YAML config file",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "only log errors",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log every row warning",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "parse",
				Usage:  "Parse the table and print records with errors and warnings",
				Action: parse.ParseAction,
				Flags: append(sourceFlags(),
					&cli.StringFlag{Name: "fields", Usage: "comma-separated record fields to keep (e.g. name,link)"},
					&cli.BoolFlag{Name: "strict", Usage: "exit with status 1 when any row was rejected"},
				),
			},
			{
				Name:   "search",
				Usage:  "Print records whose name, eligibility or includes match a query",
				Action: parse.SearchAction,
				Flags: append(sourceFlags(),
					&cli.StringFlag{Name: "query", Aliases: []string{"s"}, Usage: "case-insensitive search text", Required: true},
					&cli.StringFlag{Name: "fields", Usage: "comma-separated record fields to keep (e.g. name,link)"},
					&cli.BoolFlag{Name: "strict", Usage: "exit with status 1 when any row was rejected"},
				),
			},
			{
				Name:   "render",
				Usage:  "Render the records as an HTML page",
				Action: render.RenderAction,
				Flags: append(sourceFlags(),
					&cli.StringFlag{Name: "query", Aliases: []string{"s"}, Usage: "filter and highlight this text"},
					&cli.StringFlag{Name: "title", Value: "Scholarships", Usage: "page title"},
					&cli.StringFlag{Name: "highlight-class", Usage: "CSS class of the highlight marker"},
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "write the page here instead of stdout"},
				),
			},
			{
				Name:   "summary",
				Usage:  "Print counts, level distribution and top keywords",
				Action: summary.SummaryAction,
				Flags: append(sourceFlags(),
					&cli.IntFlag{Name: "top", Usage: "number of aggregate keywords"},
					&cli.BoolFlag{Name: "save", Usage: "also write the manifest to disk"},
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "manifest path (default results/summary-<date>.yaml)"},
				),
			},
		},
	}
}
