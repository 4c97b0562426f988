package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/mealworks/recipe-harvester/internal/crawl"
	"github.com/mealworks/recipe-harvester/internal/extract"
	"github.com/mealworks/recipe-harvester/internal/library"
	"github.com/mealworks/recipe-harvester/pkg/catalog"
	"github.com/mealworks/recipe-harvester/pkg/help"
	"github.com/mealworks/recipe-harvester/pkg/logger"
	"github.com/mealworks/recipe-harvester/pkg/metrics"
)

var dbFlag = &cli.StringFlag{
	Name:  "db",
	Usage: "path to the catalog database",
	Value: catalog.DefaultDBName,
}

func main() {
	logger.Init(os.Stderr, slog.LevelInfo)
	metrics.Init()

	app := &cli.App{
		Name:  "recipe-harvester",
		Usage: "discover, extract and catalog recipes from cooking sites",
		Commands: []*cli.Command{
			{
				Name:   "crawl",
				Usage:  "Crawl a site, extract its recipes and ingest them into the catalog",
				Action: crawl.CrawlAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "url", Usage: "seed URL to crawl from", Required: true},
					&cli.IntFlag{Name: "max-pages", Usage: "maximum pages to visit", Value: 100},
					&cli.DurationFlag{Name: "delay", Usage: "politeness delay between fetches", Value: time.Second},
					&cli.DurationFlag{Name: "timeout", Usage: "per-request timeout", Value: 10 * time.Second},
					&cli.IntFlag{Name: "workers", Usage: "concurrent extraction workers", Value: 4},
					&cli.StringFlag{Name: "user-agent", Usage: "User-Agent header for all requests"},
					&cli.Float64Flag{Name: "threshold", Usage: "recipe-likelihood acceptance threshold", Value: 0.30},
					&cli.BoolFlag{Name: "no-robots", Usage: "ignore robots.txt disallow rules"},
					&cli.BoolFlag{Name: "update", Usage: "overwrite existing catalog entries instead of skipping duplicates"},
					&cli.StringFlag{Name: "vocab", Usage: "YAML file overriding the cuisine keyword vocabulary"},
					&cli.StringFlag{Name: "out", Usage: "export accepted recipes to this file"},
					&cli.StringFlag{Name: "format", Usage: "export format: json, yaml or text (default: by extension)"},
					&cli.StringFlag{Name: "metrics-addr", Usage: "serve Prometheus metrics on this address during the run"},
					&cli.BoolFlag{Name: "quiet", Usage: "only log errors"},
					dbFlag,
				},
			},
			{
				Name:   "extract",
				Usage:  "Extract a single page and print the structured recipe",
				Action: extract.ExtractAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "url", Usage: "page URL to extract", Required: true},
					&cli.StringFlag{Name: "format", Usage: "output format: json or yaml", Value: "json"},
					&cli.BoolFlag{Name: "save", Usage: "also ingest the result into the catalog"},
					&cli.BoolFlag{Name: "update", Usage: "with --save, overwrite an existing entry"},
					&cli.BoolFlag{Name: "quiet", Usage: "only log errors"},
					dbFlag,
				},
			},
			{
				Name:      "parse",
				Usage:     "Parse one free-text ingredient line",
				ArgsUsage: `"2 1/2 cups flour, sifted"`,
				Action:    extract.ParseAction,
			},
			{
				Name:  "library",
				Usage: "Inspect the recipe catalog",
				Subcommands: []*cli.Command{
					{
						Name:   "list",
						Usage:  "List cataloged recipes",
						Action: library.ListAction,
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "cuisine", Usage: "filter by cuisine label"},
							&cli.StringFlag{Name: "category", Usage: "filter by dish category"},
							&cli.StringFlag{Name: "difficulty", Usage: "filter by difficulty"},
							&cli.IntFlag{Name: "limit", Usage: "maximum rows to show", Value: 50},
							dbFlag,
						},
					},
					{
						Name:   "lookup",
						Usage:  "Check whether a source/title pair is already cataloged",
						Action: library.LookupAction,
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "source", Usage: "recipe source URL", Required: true},
							&cli.StringFlag{Name: "title", Usage: "recipe title", Required: true},
							dbFlag,
						},
					},
					{
						Name:   "runs",
						Usage:  "Show recent crawl runs",
						Action: library.RunsAction,
						Flags: []cli.Flag{
							&cli.IntFlag{Name: "limit", Usage: "maximum rows to show", Value: 20},
							dbFlag,
						},
					},
				},
			},
			{
				Name:  "quickstart",
				Usage: "Print a YAML quick-start reference",
				Action: func(c *cli.Context) error {
					fmt.Print(help.QuickstartYAML)
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
