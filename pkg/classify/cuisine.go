// Package classify turns free recipe text into typed metadata: a cuisine
// label with a confidence score, a recipe-likelihood score, and derived
// category/difficulty attributes. All scoring is heuristic and explicitly
// probabilistic; vocabularies and thresholds are injected configuration,
// not hardwired constants.
package classify

import (
	"strings"

	"github.com/mealworks/recipe-harvester/models"
)

// Scoring weights. A high-specificity keyword in the title is the
// strongest signal a single keyword can give; title matches are
// structurally more reliable than incidental ingredient mentions.
const (
	highTitleWeight = 0.40
	highBodyWeight  = 0.20
	mediumWeight    = 0.10
	lowWeight       = 0.05
	maxCuisineScore = 1.0
	defaultFloor    = 0.15
	unknownCuisine  = "unknown"
)

type CuisineClassifier struct {
	vocab CuisineVocabulary
	floor float64
	gate  *LanguageGate
}

type CuisineOption func(*CuisineClassifier)

// WithVocabulary replaces the built-in keyword tables.
func WithVocabulary(vocab CuisineVocabulary) CuisineOption {
	return func(c *CuisineClassifier) { c.vocab = vocab }
}

// WithFloor overrides the acceptance threshold below which the result is
// forced to "unknown".
func WithFloor(floor float64) CuisineOption {
	return func(c *CuisineClassifier) { c.floor = floor }
}

// WithLanguageGate short-circuits classification for confidently
// non-English text, since the keyword tables are English.
func WithLanguageGate(gate *LanguageGate) CuisineOption {
	return func(c *CuisineClassifier) { c.gate = gate }
}

func NewCuisineClassifier(opts ...CuisineOption) *CuisineClassifier {
	c := &CuisineClassifier{
		vocab: DefaultVocabulary(),
		floor: defaultFloor,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify scores the recipe text against every cuisine's keyword tiers
// and returns the best match. Below the floor the result is
// {unknown, 0.0}; no cuisine is ever fabricated without textual
// evidence.
func (c *CuisineClassifier) Classify(title, ingredients, method string) models.CuisineMatch {
	match := models.CuisineMatch{Label: unknownCuisine, Confidence: 0}

	titleLower := strings.ToLower(title)
	bodyLower := strings.ToLower(ingredients + " " + method)

	if c.gate != nil {
		lang, english := c.gate.Detect(title + " " + ingredients)
		match.Language = lang
		if !english {
			return match
		}
	}

	best := 0.0
	for label, tiers := range c.vocab {
		score := scoreCuisine(tiers, titleLower, bodyLower)
		if score > best {
			best = score
			match.Label = label
		}
	}

	if best < c.floor {
		return models.CuisineMatch{Label: unknownCuisine, Confidence: 0, Language: match.Language}
	}

	match.Confidence = best
	return match
}

func scoreCuisine(tiers KeywordTiers, title, body string) float64 {
	score := 0.0
	for _, kw := range tiers.High {
		if strings.Contains(title, kw) {
			score += highTitleWeight
		} else if strings.Contains(body, kw) {
			score += highBodyWeight
		}
	}
	for _, kw := range tiers.Medium {
		if strings.Contains(title, kw) || strings.Contains(body, kw) {
			score += mediumWeight
		}
	}
	for _, kw := range tiers.Low {
		if strings.Contains(title, kw) || strings.Contains(body, kw) {
			score += lowWeight
		}
	}
	if score > maxCuisineScore {
		score = maxCuisineScore
	}
	return score
}
