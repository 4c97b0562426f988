// Package extract pulls normalized recipe records out of heterogeneous
// HTML. Three strategies are attempted in strict fallback order: embedded
// JSON-LD structured data, microdata attribute annotations, and heuristic
// HTML patterns. The first strategy that yields a validation-passing
// record wins.
package extract

import (
	"log/slog"

	"github.com/PuerkitoBio/goquery"

	"github.com/mealworks/recipe-harvester/models"
	"github.com/mealworks/recipe-harvester/pkg/fetcher"
)

// Strategy is one independent method of extracting a recipe from a page.
// A nil recipe with a nil error means the strategy found nothing usable;
// an error means the page's markup was malformed for this strategy. Both
// trigger fallback to the next strategy.
type Strategy interface {
	Name() string
	Extract(doc *goquery.Document, sourceURL string) (*models.Recipe, error)
}

type Extractor struct {
	strategies []Strategy
	logger     *slog.Logger
}

func New(logger *slog.Logger) *Extractor {
	return &Extractor{
		strategies: []Strategy{JSONLD{}, Microdata{}, Heuristic{}},
		logger:     logger,
	}
}

// ExtractPage runs the strategy chain over an already-fetched page.
// Returns nil when no strategy produces a record passing the acceptance
// rule (non-empty title plus ingredients or instructions); the caller
// records a failure rather than persisting a partial record.
func (e *Extractor) ExtractPage(page *fetcher.Page) *models.Recipe {
	for _, s := range e.strategies {
		rec, err := s.Extract(page.Doc, page.URL)
		if err != nil {
			e.logger.Debug("extraction strategy failed", "strategy", s.Name(), "url", page.URL, "error", err)
			continue
		}
		if rec.IsValid() {
			rec.ExtractionMethod = s.Name()
			rec.SourceURL = page.URL
			return rec
		}
	}
	return nil
}

// HasStructuredRecipe reports whether the page carries machine-readable
// recipe markup (JSON-LD or microdata). Used by the crawler as its
// highest-priority classification signal.
func HasStructuredRecipe(doc *goquery.Document) bool {
	if findJSONLDRecipe(doc) != nil {
		return true
	}
	return doc.Find(`[itemtype*="Recipe"]`).Length() > 0
}
