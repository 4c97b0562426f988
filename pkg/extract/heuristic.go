package extract

import (
	"regexp"

	"github.com/PuerkitoBio/goquery"

	"github.com/mealworks/recipe-harvester/models"
)

// Heuristic is the last-resort strategy: ordered CSS selector candidates
// per field, first non-empty match wins, with regex recovery of servings
// and timings from the page's visible text.
type Heuristic struct{}

func (Heuristic) Name() string { return "html-patterns" }

var (
	titleCandidates = []string{
		"h1.recipe-title",
		"h1[class*=recipe]",
		".recipe-header h1",
		"[class*=recipe] h1",
		"h1",
		"title",
	}
	ingredientCandidates = []string{
		"ul.ingredients li",
		".ingredients li",
		".recipe-ingredients li",
		"[class*=ingredient] li",
	}
	instructionCandidates = []string{
		"ol.instructions li",
		".instructions li",
		".recipe-instructions li",
		"[class*=instruction] li",
		"[class*=direction] li",
		".method li",
		".steps li",
		"ol li",
	}

	servingsTextPattern = regexp.MustCompile(`(?i)(?:serves|servings?|yield)s?[:\s]+(\d+(?:\s*[-–]\s*\d+)?)`)
	prepTimeTextPattern = regexp.MustCompile(`(?i)prep(?:aration)?\s*time[:\s]+(\d+\s*(?:hours?|hrs?|minutes?|mins?)(?:\s+\d+\s*(?:minutes?|mins?))?)`)
	cookTimeTextPattern = regexp.MustCompile(`(?i)cook(?:ing)?\s*time[:\s]+(\d+\s*(?:hours?|hrs?|minutes?|mins?)(?:\s+\d+\s*(?:minutes?|mins?))?)`)
)

func (Heuristic) Extract(doc *goquery.Document, sourceURL string) (*models.Recipe, error) {
	rec := &models.Recipe{
		Title:        firstMatchText(doc, titleCandidates),
		Ingredients:  firstMatchList(doc, ingredientCandidates),
		Instructions: firstMatchList(doc, instructionCandidates),
		Description:  metaContent(doc, "description", "og:description"),
		ImageURL:     metaContent(doc, "og:image"),
		SourceURL:    sourceURL,
	}

	text := VisibleText(doc)
	if m := servingsTextPattern.FindStringSubmatch(text); m != nil {
		rec.Servings = m[1]
	}
	if m := prepTimeTextPattern.FindStringSubmatch(text); m != nil {
		rec.PrepTime = m[1]
	}
	if m := cookTimeTextPattern.FindStringSubmatch(text); m != nil {
		rec.CookTime = m[1]
	}

	return rec, nil
}

func firstMatchText(doc *goquery.Document, candidates []string) string {
	for _, selector := range candidates {
		if text := normalizeText(doc.Find(selector).First().Text()); text != "" {
			return text
		}
	}
	return ""
}

func firstMatchList(doc *goquery.Document, candidates []string) []string {
	for _, selector := range candidates {
		var items []string
		doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
			if text := normalizeText(s.Text()); text != "" {
				items = append(items, text)
			}
		})
		if len(items) > 0 {
			return items
		}
	}
	return nil
}

// metaContent returns the first non-empty meta tag content among the
// given names, checking both name= and property= attributes.
func metaContent(doc *goquery.Document, names ...string) string {
	for _, name := range names {
		if v, ok := doc.Find(`meta[name="` + name + `"]`).Attr("content"); ok {
			if v = normalizeText(v); v != "" {
				return v
			}
		}
		if v, ok := doc.Find(`meta[property="` + name + `"]`).Attr("content"); ok {
			if v = normalizeText(v); v != "" {
				return v
			}
		}
	}
	return ""
}
