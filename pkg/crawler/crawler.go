// Package crawler discovers candidate recipe pages on a single site. It
// walks the site breadth-first from a base URL with an explicit bounded
// frontier, honors robots.txt, applies a politeness delay between
// fetches, and classifies each page as recipe-likely or not. Recipe pages
// are frontier leaves; only non-recipe pages contribute links.
package crawler

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/temoto/robotstxt"

	"github.com/mealworks/recipe-harvester/models"
	"github.com/mealworks/recipe-harvester/pkg/classify"
	"github.com/mealworks/recipe-harvester/pkg/extract"
	"github.com/mealworks/recipe-harvester/pkg/fetcher"
)

// minContentTerms is how many recipe vocabulary terms must co-occur in
// the visible text for the second classification signal to fire.
const minContentTerms = 3

// Crawler owns the frontier and visited state for one crawl. Instances
// are single-use and not safe for concurrent use; run concurrent crawls
// on separate instances.
type Crawler struct {
	cfg     models.CrawlConfig
	fetcher *fetcher.Fetcher
	robots  *robotstxt.Group
	logger  *slog.Logger

	// FrontierObserver, when set, receives the number of URLs still
	// queued after each dequeue. Callers use it to export a gauge.
	FrontierObserver func(int)
}

func New(cfg models.CrawlConfig, logger *slog.Logger) *Crawler {
	return &Crawler{
		cfg:     cfg,
		fetcher: fetcher.New(cfg.Timeout, cfg.UserAgent),
		logger:  logger,
	}
}

// Crawl walks the site breadth-first from baseURL. Per-page failures are
// recorded and never abort the crawl; only an unusable base URL is fatal.
// The crawl visits at most cfg.MaxPages URLs and never leaves the base
// URL's origin.
func (c *Crawler) Crawl(ctx context.Context, baseURL string) (*models.CrawlReport, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if (base.Scheme != "http" && base.Scheme != "https") || base.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: need an absolute http(s) URL", baseURL)
	}

	if c.cfg.RespectRobots {
		c.robots = loadRobots(c.fetcher, base, c.cfg.UserAgent)
	}

	report := &models.CrawlReport{BaseURL: baseURL}
	front := newFrontier()
	front.push(frontierEntry{url: base.String()})

	for front.len() > 0 && len(report.Visited) < c.cfg.MaxPages {
		select {
		case <-ctx.Done():
			c.logger.Info("crawl cancelled", "visited", len(report.Visited))
			return report, nil
		default:
		}

		entry, _ := front.pop()
		if c.FrontierObserver != nil {
			c.FrontierObserver(front.len())
		}

		entryURL, err := url.Parse(entry.url)
		if err != nil {
			report.Failures = append(report.Failures, models.CrawlFailure{URL: entry.url, Reason: "unparseable URL"})
			continue
		}

		// Test against path plus query; robots rules may match query
		// strings ("Disallow: /*?print=").
		if c.robots != nil && !c.robots.Test(entryURL.RequestURI()) {
			c.logger.Debug("robots.txt disallows", "url", entry.url)
			report.Skipped = append(report.Skipped, entry.url)
			continue
		}

		if len(report.Visited) > 0 && c.cfg.Delay > 0 {
			time.Sleep(c.cfg.Delay)
		}

		page, err := c.fetcher.Get(entry.url)
		if err != nil {
			c.logger.Warn("fetch failed", "url", entry.url, "error", err)
			report.Failures = append(report.Failures, models.CrawlFailure{URL: entry.url, Reason: err.Error()})
			continue
		}
		report.Visited = append(report.Visited, entry.url)

		cls := c.classifyPage(page)
		if cls.IsRecipe {
			c.logger.Info("recipe candidate", "url", entry.url, "signals", cls.SignalCount)
			report.RecipeCandidates = append(report.RecipeCandidates, entry.url)
			continue
		}

		for _, link := range extractLinks(page.Doc, entryURL) {
			linkURL, err := url.Parse(link)
			if err != nil || !sameOrigin(base, linkURL) {
				continue
			}
			front.push(frontierEntry{url: link, discoveredFrom: entry.url, depth: entry.depth + 1})
		}
	}

	c.logger.Info("crawl finished",
		"base_url", baseURL,
		"visited", len(report.Visited),
		"candidates", len(report.RecipeCandidates),
		"failures", len(report.Failures))
	return report, nil
}

// classifyPage evaluates three independent recipe signals in priority
// order, short-circuiting on the first positive: structured recipe
// markup, co-occurring recipe vocabulary, and ingredient+instruction
// HTML regions.
func (c *Crawler) classifyPage(page *fetcher.Page) models.PageClassification {
	cls := models.PageClassification{URL: page.URL}

	if extract.HasStructuredRecipe(page.Doc) {
		cls.IsRecipe = true
		cls.SignalCount = 1
		return cls
	}

	if terms := classify.CountRecipeTerms(extract.VisibleText(page.Doc)); terms >= minContentTerms {
		cls.IsRecipe = true
		cls.SignalCount = terms
		return cls
	}

	if hasIngredientRegion(page) && hasInstructionRegion(page) {
		cls.IsRecipe = true
		cls.SignalCount = 2
		return cls
	}

	return cls
}

func hasIngredientRegion(page *fetcher.Page) bool {
	return page.Doc.Find(`ul.ingredients, [class*=ingredient] li, [itemprop="recipeIngredient"]`).Length() > 0
}

func hasInstructionRegion(page *fetcher.Page) bool {
	return page.Doc.Find(`ol.instructions, [class*=instruction] li, [class*=direction] li, .method li`).Length() > 0
}
