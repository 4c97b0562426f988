package crawl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/cli/v2"

	"github.com/mealworks/recipe-harvester/internal/common"
	"github.com/mealworks/recipe-harvester/models"
	"github.com/mealworks/recipe-harvester/pkg/catalog"
	"github.com/mealworks/recipe-harvester/pkg/classify"
	"github.com/mealworks/recipe-harvester/pkg/crawler"
	"github.com/mealworks/recipe-harvester/pkg/export"
	"github.com/mealworks/recipe-harvester/pkg/metrics"
)

// CrawlAction runs the full pipeline: discover candidate pages, extract
// and classify them concurrently, ingest into the catalog, and
// optionally export the accepted recipes.
func CrawlAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	seedURL, err := common.ValidateSeedURL(c.String("url"))
	if err != nil {
		return fmt.Errorf("unusable seed URL: %w", err)
	}

	cfg := buildConfig(c)

	var vocab classify.CuisineVocabulary
	if c.IsSet("vocab") {
		vocab, err = classify.LoadVocabulary(c.String("vocab"))
		if err != nil {
			return err
		}
		logger.Info("loaded cuisine vocabulary override", "path", c.String("vocab"), "cuisines", len(vocab))
	}

	if addr := c.String("metrics-addr"); addr != "" {
		go serveMetrics(logger, addr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	cr := crawler.New(cfg, logger)
	cr.FrontierObserver = func(queued int) {
		metrics.FrontierSize.Set(float64(queued))
	}
	report, err := cr.Crawl(ctx, seedURL)
	if err != nil {
		return fmt.Errorf("crawl failed: %w", err)
	}
	observeCrawlDuration(seedURL, time.Since(start))

	logger.Info("starting extraction phase", "candidates", len(report.RecipeCandidates), "workers", cfg.Workers)
	results := newPipeline(cfg, vocab, logger).run(report.RecipeCandidates, cfg.Workers)

	cat, err := catalog.Open(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open catalog: %w", err)
	}
	defer cat.Close()

	stats := catalog.RunStats{
		BaseURL:         seedURL,
		PagesVisited:    len(report.Visited),
		CandidatesFound: len(report.RecipeCandidates),
		Failures:        len(report.Failures),
	}
	var accepted []models.Recipe

	for _, result := range results {
		if !result.Extracted {
			if result.Error != nil {
				stats.Failures++
			}
			continue
		}

		outcome, err := ingestRecord(cat, result.Record, c.Bool("update"))
		if err != nil {
			logger.Warn("ingestion failed", "url", result.URL, "error", err)
			metrics.IngestsTotal.WithLabelValues("invalid").Inc()
			stats.Failures++
			continue
		}
		metrics.IngestsTotal.WithLabelValues(outcome.Reason).Inc()

		switch outcome.Reason {
		case "duplicate":
			logger.Info("duplicate recipe skipped", "url", result.URL, "catalog_id", outcome.CatalogID)
			stats.Duplicates++
		default:
			logger.Info("recipe ingested", "url", result.URL, "catalog_id", outcome.CatalogID, "outcome", outcome.Reason)
			stats.RecipesIngested++
			accepted = append(accepted, *result.Record.Recipe)
		}
	}

	if _, err := cat.RecordRun(stats); err != nil {
		logger.Warn("failed to record crawl run", "error", err)
	}

	if out := c.String("out"); out != "" {
		if err := writeExport(out, c.String("format"), export.Build(seedURL, accepted)); err != nil {
			return err
		}
		logger.Info("export written", "path", out, "recipes", len(accepted))
	}

	printRunSummary(report, stats)
	return nil
}

func buildConfig(c *cli.Context) models.CrawlConfig {
	cfg := models.DefaultCrawlConfig()
	if c.IsSet("max-pages") {
		cfg.MaxPages = c.Int("max-pages")
	}
	if c.IsSet("delay") {
		cfg.Delay = c.Duration("delay")
	}
	if c.IsSet("timeout") {
		cfg.Timeout = c.Duration("timeout")
	}
	if c.IsSet("workers") {
		cfg.Workers = c.Int("workers")
	}
	if c.IsSet("user-agent") {
		cfg.UserAgent = c.String("user-agent")
	}
	if c.IsSet("threshold") {
		cfg.LikelihoodThreshold = c.Float64("threshold")
	}
	if c.Bool("no-robots") {
		cfg.RespectRobots = false
	}
	return cfg
}

func ingestRecord(cat *catalog.Catalog, rec catalog.Record, update bool) (catalog.IngestResult, error) {
	if update {
		return cat.IngestUpdate(rec)
	}
	return cat.Ingest(rec)
}

// writeExport picks the output codec from the explicit format flag,
// falling back to the file extension, then JSON.
func writeExport(path, format string, exp models.Export) error {
	if format == "" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			format = "yaml"
		case ".txt", ".text":
			format = "text"
		default:
			format = "json"
		}
	}

	switch format {
	case "json":
		return export.WriteJSON(path, exp)
	case "yaml":
		return export.WriteYAML(path, exp)
	case "text":
		if err := os.WriteFile(path, []byte(export.RenderDocument(exp)), 0644); err != nil {
			return fmt.Errorf("failed to write export file: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown export format %q (need json, yaml or text)", format)
	}
}

func serveMetrics(logger *slog.Logger, addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	logger.Info("serving metrics", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Error("metrics server stopped", "error", err)
	}
}

func observeCrawlDuration(seedURL string, elapsed time.Duration) {
	domain := seedURL
	if parsed, err := url.Parse(seedURL); err == nil && parsed.Host != "" {
		domain = parsed.Host
	}
	metrics.CrawlDuration.WithLabelValues(domain).Observe(elapsed.Seconds())
}

func printRunSummary(report *models.CrawlReport, stats catalog.RunStats) {
	fmt.Printf("Crawl of %s\n", report.BaseURL)
	fmt.Printf("  Pages visited:     %d\n", stats.PagesVisited)
	fmt.Printf("  Robots skipped:    %d\n", len(report.Skipped))
	fmt.Printf("  Recipe candidates: %d\n", len(report.RecipeCandidates))
	fmt.Printf("  Recipes ingested:  %d\n", stats.RecipesIngested)
	fmt.Printf("  Duplicates:        %d\n", stats.Duplicates)
	fmt.Printf("  Failures:          %d\n", stats.Failures)
}
