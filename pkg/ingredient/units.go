package ingredient

import (
	"sort"
	"strings"
)

// DefaultUnits is the closed measurement vocabulary, grouped by kind.
// Singular and plural surface forms are both listed because the parser
// reports the form it actually matched.
func DefaultUnits() map[string][]string {
	return map[string][]string{
		"volume": {
			"cups", "cup", "c.",
			"tablespoons", "tablespoon", "tbsp.", "tbsp", "tbs",
			"teaspoons", "teaspoon", "tsp.", "tsp",
			"fluid ounces", "fluid ounce", "fl oz",
			"liters", "liter", "litres", "litre", "l",
			"milliliters", "milliliter", "ml",
			"quarts", "quart", "qt",
			"pints", "pint", "pt",
			"gallons", "gallon", "gal",
		},
		"weight": {
			"pounds", "pound", "lbs", "lb",
			"ounces", "ounce", "oz.", "oz",
			"kilograms", "kilogram", "kg",
			"grams", "gram", "g",
		},
		"count": {
			"cloves", "clove",
			"slices", "slice",
			"pieces", "piece",
			"cans", "can",
			"packages", "package", "pkg",
			"sticks", "stick",
			"bunches", "bunch",
			"sprigs", "sprig",
			"heads", "head",
			"stalks", "stalk",
			"pinches", "pinch",
			"dashes", "dash",
		},
	}
}

// flattenUnits returns every unit token sorted longest-first so prefix
// matching prefers "tablespoons" over "tablespoon" over "tbs".
func flattenUnits(groups map[string][]string) []string {
	var tokens []string
	for _, units := range groups {
		tokens = append(tokens, units...)
	}
	sort.Slice(tokens, func(i, j int) bool {
		if len(tokens[i]) != len(tokens[j]) {
			return len(tokens[i]) > len(tokens[j])
		}
		return tokens[i] < tokens[j]
	})
	return tokens
}

// matchUnit performs a longest-prefix match of the text against the unit
// vocabulary. The match must end at a word boundary; "green onions" must
// not match "g".
func matchUnit(tokens []string, text string) (string, string) {
	lower := strings.ToLower(text)
	for _, unit := range tokens {
		if !strings.HasPrefix(lower, unit) {
			continue
		}
		rest := text[len(unit):]
		if rest != "" && !isBoundary(rest[0]) {
			continue
		}
		matched := text[:len(unit)]
		rest = strings.TrimSpace(rest)
		// Swallow a connecting "of": "2 cups of flour".
		if strings.HasPrefix(strings.ToLower(rest), "of ") {
			rest = strings.TrimSpace(rest[3:])
		}
		return matched, rest
	}
	return "", text
}

func isBoundary(b byte) bool {
	return b == ' ' || b == '\t' || b == ',' || b == '.' || b == ';'
}
