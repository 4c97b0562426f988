package extract

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/mealworks/recipe-harvester/internal/common"
	"github.com/mealworks/recipe-harvester/models"
	"github.com/mealworks/recipe-harvester/pkg/catalog"
	"github.com/mealworks/recipe-harvester/pkg/classify"
	extractpkg "github.com/mealworks/recipe-harvester/pkg/extract"
	"github.com/mealworks/recipe-harvester/pkg/fetcher"
	"github.com/mealworks/recipe-harvester/pkg/ingredient"
)

// PageResult is the full structured output for one extracted page.
type PageResult struct {
	Recipe      *models.Recipe            `json:"recipe" yaml:"recipe"`
	Ingredients []models.ParsedIngredient `json:"ingredients" yaml:"ingredients"`
	Cuisine     models.CuisineMatch       `json:"cuisine" yaml:"cuisine"`
	Category    string                    `json:"category" yaml:"category"`
	Difficulty  string                    `json:"difficulty" yaml:"difficulty"`
	Likelihood  classify.LikelihoodScore  `json:"likelihood" yaml:"likelihood"`
}

// ExtractAction extracts a single URL, prints the structured result, and
// optionally saves it to the catalog.
func ExtractAction(c *cli.Context) error {
	logLevel := slog.LevelWarn
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	pageURL, err := common.ValidateSeedURL(c.String("url"))
	if err != nil {
		return fmt.Errorf("unusable URL: %w", err)
	}

	cfg := models.DefaultCrawlConfig()
	f := fetcher.New(cfg.Timeout, cfg.UserAgent)

	page, err := f.Get(pageURL)
	if err != nil {
		return fmt.Errorf("failed to fetch page: %w", err)
	}

	rec := extractpkg.New(logger).ExtractPage(page)
	if rec == nil {
		return fmt.Errorf("no extractable recipe at %s", pageURL)
	}

	cuisine := classify.NewCuisineClassifier(
		classify.WithLanguageGate(classify.NewLanguageGate()),
	).Classify(rec.Title, strings.Join(rec.Ingredients, " "), strings.Join(rec.Instructions, " "))
	rec.Cuisine = cuisine.Label

	result := PageResult{
		Recipe:      rec,
		Ingredients: ingredient.NewParser().ParseAll(rec.Ingredients),
		Cuisine:     cuisine,
		Category:    classify.DeriveCategory(rec),
		Difficulty:  classify.DeriveDifficulty(rec),
		Likelihood:  classify.NewLikelihoodScorer().Score(extractpkg.ReadableText(page.Body, page.URL)),
	}

	if err := printResult(result, c.String("format")); err != nil {
		return err
	}

	if c.Bool("save") {
		return saveResult(c.String("db"), result, c.Bool("update"))
	}
	return nil
}

// ParseAction parses one free-text ingredient line from the command
// arguments and prints the structured fields.
func ParseAction(c *cli.Context) error {
	line := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if line == "" {
		return fmt.Errorf("no ingredient line given")
	}

	parsed := ingredient.NewParser().Parse(line)
	data, err := json.MarshalIndent(parsed, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func printResult(result PageResult, format string) error {
	switch format {
	case "yaml":
		data, err := yaml.Marshal(result)
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		fmt.Print(string(data))
	case "", "json":
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		fmt.Println(string(data))
	default:
		return fmt.Errorf("unknown output format %q (need json or yaml)", format)
	}
	return nil
}

func saveResult(dbPath string, result PageResult, update bool) error {
	cat, err := catalog.Open(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open catalog: %w", err)
	}
	defer cat.Close()

	rec := catalog.Record{
		Recipe:      result.Recipe,
		Ingredients: result.Ingredients,
		Cuisine:     result.Cuisine,
		Category:    result.Category,
		Difficulty:  result.Difficulty,
	}

	var outcome catalog.IngestResult
	if update {
		outcome, err = cat.IngestUpdate(rec)
	} else {
		outcome, err = cat.Ingest(rec)
	}
	if err != nil {
		return err
	}

	if outcome.Reason == "duplicate" {
		fmt.Printf("Already in catalog as recipe %d (use --update to overwrite)\n", outcome.CatalogID)
		return nil
	}
	fmt.Printf("Saved as recipe %d (%s)\n", outcome.CatalogID, outcome.Reason)
	return nil
}
