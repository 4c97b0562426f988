package crawl

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/mealworks/recipe-harvester/models"
	"github.com/mealworks/recipe-harvester/pkg/catalog"
	"github.com/mealworks/recipe-harvester/pkg/classify"
	"github.com/mealworks/recipe-harvester/pkg/extract"
	"github.com/mealworks/recipe-harvester/pkg/fetcher"
	"github.com/mealworks/recipe-harvester/pkg/ingredient"
	"github.com/mealworks/recipe-harvester/pkg/metrics"
)

// Job is one candidate URL handed to the extraction workers.
type Job struct {
	URL string
}

// Result holds the outcome of processing one candidate page.
type Result struct {
	URL        string
	Record     catalog.Record
	Likelihood classify.LikelihoodScore
	Extracted  bool
	Error      error
	ErrorType  string
}

// pipeline bundles the per-run processing stages shared by all workers.
// Every stage is stateless, so one pipeline serves the whole pool.
type pipeline struct {
	fetcher   *fetcher.Fetcher
	extractor *extract.Extractor
	parser    *ingredient.Parser
	cuisines  *classify.CuisineClassifier
	scorer    *classify.LikelihoodScorer
	logger    *slog.Logger
}

func newPipeline(cfg models.CrawlConfig, vocab classify.CuisineVocabulary, logger *slog.Logger) *pipeline {
	f := fetcher.New(cfg.Timeout, cfg.UserAgent)

	cuisineOpts := []classify.CuisineOption{
		classify.WithLanguageGate(classify.NewLanguageGate()),
	}
	if vocab != nil {
		cuisineOpts = append(cuisineOpts, classify.WithVocabulary(vocab))
	}

	scorer := classify.NewLikelihoodScorer()
	if cfg.LikelihoodThreshold > 0 {
		scorer.Threshold = cfg.LikelihoodThreshold
	}

	return &pipeline{
		fetcher:   f,
		extractor: extract.New(logger),
		parser:    ingredient.NewParser(),
		cuisines:  classify.NewCuisineClassifier(cuisineOpts...),
		scorer:    scorer,
		logger:    logger,
	}
}

// run fans the candidate URLs out to a worker pool and collects every
// result. Worker failures are per-URL outcomes, never fatal.
func (p *pipeline) run(candidates []string, workerCount int) []Result {
	if workerCount < 1 {
		workerCount = 1
	}

	var wg sync.WaitGroup
	jobs := make(chan Job, len(candidates))
	results := make(chan Result, len(candidates))

	for w := 1; w <= workerCount; w++ {
		wg.Add(1)
		go p.worker(w, &wg, jobs, results)
	}

	for _, u := range candidates {
		jobs <- Job{URL: u}
	}
	close(jobs)

	wg.Wait()
	close(results)

	all := make([]Result, 0, len(candidates))
	for result := range results {
		all = append(all, result)
	}
	return all
}

func (p *pipeline) worker(id int, wg *sync.WaitGroup, jobs <-chan Job, results chan<- Result) {
	defer wg.Done()
	for job := range jobs {
		p.logger.Debug("worker started candidate", "worker_id", id, "url", job.URL)
		results <- p.process(job.URL)
	}
}

// process runs one candidate through the full stage chain: fetch,
// extract, likelihood validation, ingredient parsing, classification.
func (p *pipeline) process(rawURL string) Result {
	result := Result{URL: rawURL}

	page, err := p.fetcher.Get(rawURL)
	if err != nil {
		p.logger.Warn("candidate fetch failed", "url", rawURL, "error", err)
		metrics.PagesFetchedTotal.WithLabelValues("failure").Inc()
		result.Error = err
		result.ErrorType = "fetch_error"
		return result
	}
	metrics.PagesFetchedTotal.WithLabelValues("success").Inc()

	rec := p.extractor.ExtractPage(page)
	if rec == nil {
		p.logger.Info("no extractable recipe", "url", rawURL)
		metrics.ExtractionsTotal.WithLabelValues("none", "empty").Inc()
		result.ErrorType = "no_recipe"
		return result
	}
	metrics.ExtractionsTotal.WithLabelValues(rec.ExtractionMethod, "success").Inc()

	result.Likelihood = p.scorer.Score(extract.ReadableText(page.Body, page.URL))
	if result.Likelihood.Total < p.scorer.Threshold {
		p.logger.Info("candidate below likelihood threshold",
			"url", rawURL, "score", result.Likelihood.Total, "threshold", p.scorer.Threshold)
		result.ErrorType = "low_likelihood"
		return result
	}

	parsed := p.parser.ParseAll(rec.Ingredients)
	cuisine := p.cuisines.Classify(
		rec.Title,
		strings.Join(rec.Ingredients, " "),
		strings.Join(rec.Instructions, " "),
	)
	rec.Cuisine = cuisine.Label

	result.Extracted = true
	result.Record = catalog.Record{
		Recipe:      rec,
		Ingredients: parsed,
		Cuisine:     cuisine,
		Category:    classify.DeriveCategory(rec),
		Difficulty:  classify.DeriveDifficulty(rec),
	}
	return result
}
