package classify

import (
	"regexp"
	"strings"
)

// Component weights for the recipe-likelihood score. Structure dominates:
// a page with recognizable ingredients and instructions sections is very
// probably a recipe regardless of vocabulary.
const (
	structureWeight      = 0.40
	verbsMaxWeight       = 0.20
	measurementMaxWeight = 0.20
	numberedStepsWeight  = 0.10
	cleanSignalsWeight   = 0.10

	// countsForMax is how many verb/measurement matches saturate their
	// component.
	countsForMax = 8

	defaultLikelihoodThreshold = 0.30
)

var (
	measurementPattern  = regexp.MustCompile(`(?i)\d+\s*(?:cups?|tbsp|tablespoons?|tsp|teaspoons?|oz|ounces?|lbs?|pounds?|grams?|g\b|kg|ml|liters?|cloves?|pinch)`)
	numberedStepPattern = regexp.MustCompile(`(?i)(?:^|\s)(?:step\s*)?\d+[.)]\s`)

	ingredientSectionTerms  = []string{"ingredients", "you will need", "what you need"}
	instructionSectionTerms = []string{"instructions", "directions", "method", "steps", "preparation"}
)

// LikelihoodScore is the weighted breakdown of a 0-1 recipe-likelihood
// estimate.
type LikelihoodScore struct {
	Total         float64 `json:"total"`
	Structure     float64 `json:"structure"`
	Verbs         float64 `json:"verbs"`
	Measurements  float64 `json:"measurements"`
	NumberedSteps float64 `json:"numbered_steps"`
	CleanSignals  float64 `json:"clean_signals"`
}

// LikelihoodScorer estimates how likely a block of text is to describe a
// cooking recipe. Used by the crawler to route pages and by the pipeline
// to validate extractions.
type LikelihoodScorer struct {
	Threshold float64
	verbs     []string
	negatives []string
}

func NewLikelihoodScorer() *LikelihoodScorer {
	return &LikelihoodScorer{
		Threshold: defaultLikelihoodThreshold,
		verbs:     cookingVerbs,
		negatives: nonRecipeIndicators,
	}
}

// Score combines five weighted components into a single 0-1 score.
func (s *LikelihoodScorer) Score(text string) LikelihoodScore {
	lower := strings.ToLower(text)
	score := LikelihoodScore{}

	if containsAny(lower, ingredientSectionTerms) && containsAny(lower, instructionSectionTerms) {
		score.Structure = structureWeight
	}

	verbCount := 0
	for _, verb := range s.verbs {
		if strings.Contains(lower, verb) {
			verbCount++
		}
	}
	score.Verbs = cappedComponent(verbCount, verbsMaxWeight)

	measurementCount := len(measurementPattern.FindAllString(text, countsForMax))
	score.Measurements = cappedComponent(measurementCount, measurementMaxWeight)

	if len(numberedStepPattern.FindAllString(text, 2)) >= 2 {
		score.NumberedSteps = numberedStepsWeight
	}

	if !containsAny(lower, s.negatives) {
		score.CleanSignals = cleanSignalsWeight
	}

	score.Total = score.Structure + score.Verbs + score.Measurements +
		score.NumberedSteps + score.CleanSignals
	return score
}

// IsRecipe applies the acceptance threshold to Score.
func (s *LikelihoodScorer) IsRecipe(text string) bool {
	return s.Score(text).Total >= s.Threshold
}

// CountRecipeTerms counts distinct recipe-content vocabulary terms in the
// text; the crawler's second classification signal fires at three or
// more.
func CountRecipeTerms(text string) int {
	lower := strings.ToLower(text)
	count := 0
	for _, term := range recipeContentTerms {
		if strings.Contains(lower, term) {
			count++
		}
	}
	return count
}

func cappedComponent(count int, max float64) float64 {
	component := float64(count) * (max / float64(countsForMax))
	if component > max {
		return max
	}
	return component
}

func containsAny(haystack string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}
