package classify

import (
	"strings"

	"github.com/mealworks/recipe-harvester/models"
)

// categoryKeywords maps dish categories to title keywords, checked in
// order so more specific categories win over "main".
var categoryKeywords = []struct {
	label    string
	keywords []string
}{
	{"dessert", []string{"cake", "cookie", "pie", "brownie", "ice cream", "pudding", "tart", "cheesecake", "dessert"}},
	{"soup", []string{"soup", "stew", "chowder", "bisque", "broth"}},
	{"salad", []string{"salad", "slaw"}},
	{"bread", []string{"bread", "muffin", "biscuit", "roll", "bagel", "scone"}},
	{"breakfast", []string{"pancake", "waffle", "omelet", "omelette", "french toast", "granola", "breakfast"}},
	{"drink", []string{"smoothie", "cocktail", "lemonade", "punch", "shake"}},
	{"appetizer", []string{"dip", "appetizer", "snack", "bites"}},
}

// DeriveCategory assigns a dish category from the recipe title, falling
// back to any category the extractor already found, then to "main".
func DeriveCategory(rec *models.Recipe) string {
	if rec.Category != "" {
		return strings.ToLower(rec.Category)
	}

	title := strings.ToLower(rec.Title)
	for _, cat := range categoryKeywords {
		for _, kw := range cat.keywords {
			if strings.Contains(title, kw) {
				return cat.label
			}
		}
	}
	return "main"
}

// DeriveDifficulty estimates difficulty from ingredient and step counts.
// Coarse on purpose: it only needs to be a useful catalog facet.
func DeriveDifficulty(rec *models.Recipe) string {
	ingredients := len(rec.Ingredients)
	steps := len(rec.Instructions)

	switch {
	case ingredients >= 12 || steps >= 10:
		return "hard"
	case ingredients <= 5 && steps <= 5:
		return "easy"
	default:
		return "medium"
	}
}
