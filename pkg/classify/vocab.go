package classify

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// KeywordTiers holds a cuisine's keywords grouped by specificity. High
// keywords are near-unambiguous dishes or staples, medium are strongly
// associated ingredients, low are weakly associated ones.
type KeywordTiers struct {
	High   []string `yaml:"high"`
	Medium []string `yaml:"medium"`
	Low    []string `yaml:"low"`
}

// CuisineVocabulary maps cuisine labels to their keyword tiers. The
// vocabulary is injected into the classifier at construction so it can be
// tested and replaced per locale.
type CuisineVocabulary map[string]KeywordTiers

// LoadVocabulary reads a cuisine vocabulary from a YAML file.
func LoadVocabulary(path string) (CuisineVocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file: %w", err)
	}
	var vocab CuisineVocabulary
	if err := yaml.Unmarshal(data, &vocab); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary file: %w", err)
	}
	if len(vocab) == 0 {
		return nil, fmt.Errorf("vocabulary file %s defines no cuisines", path)
	}
	return vocab, nil
}

// DefaultVocabulary returns the built-in cuisine keyword tables.
func DefaultVocabulary() CuisineVocabulary {
	return CuisineVocabulary{
		"italian": {
			High:   []string{"risotto", "carbonara", "bolognese", "lasagna", "gnocchi", "bruschetta", "tiramisu", "osso buco", "pesto"},
			Medium: []string{"pasta", "parmesan", "mozzarella", "prosciutto", "marinara", "ricotta", "polenta"},
			Low:    []string{"basil", "oregano", "olive oil", "tomato"},
		},
		"french": {
			High:   []string{"coq au vin", "ratatouille", "bouillabaisse", "cassoulet", "beef bourguignon", "souffle", "quiche", "crepe"},
			Medium: []string{"baguette", "gruyere", "dijon", "herbes de provence", "brie", "roux"},
			Low:    []string{"butter", "shallot", "tarragon", "white wine"},
		},
		"mexican": {
			High:   []string{"taco", "enchilada", "quesadilla", "tamale", "mole", "pozole", "carnitas", "guacamole", "fajita"},
			Medium: []string{"tortilla", "salsa", "jalapeno", "chipotle", "queso", "cotija", "poblano"},
			Low:    []string{"cilantro", "lime", "cumin", "avocado"},
		},
		"chinese": {
			High:   []string{"kung pao", "mapo tofu", "chow mein", "dim sum", "char siu", "wonton", "hoisin", "szechuan"},
			Medium: []string{"soy sauce", "stir fry", "stir-fry", "bok choy", "oyster sauce", "five spice", "wok"},
			Low:    []string{"ginger", "scallion", "sesame oil", "rice"},
		},
		"japanese": {
			High:   []string{"sushi", "ramen", "teriyaki", "tempura", "miso", "udon", "yakitori", "katsu", "sashimi"},
			Medium: []string{"dashi", "mirin", "nori", "wasabi", "sake", "panko", "shiitake"},
			Low:    []string{"soy", "tofu", "seaweed"},
		},
		"indian": {
			High:   []string{"tikka masala", "biryani", "tandoori", "vindaloo", "korma", "saag", "dal", "samosa", "naan"},
			Medium: []string{"garam masala", "curry", "turmeric", "ghee", "paneer", "basmati", "cardamom"},
			Low:    []string{"cumin", "coriander", "yogurt", "chili"},
		},
		"thai": {
			High:   []string{"pad thai", "tom yum", "green curry", "red curry", "massaman", "som tam", "larb"},
			Medium: []string{"fish sauce", "lemongrass", "coconut milk", "galangal", "thai basil", "tamarind"},
			Low:    []string{"lime", "peanut", "chili", "rice noodle"},
		},
		"greek": {
			High:   []string{"moussaka", "souvlaki", "spanakopita", "tzatziki", "gyro", "dolmades", "baklava"},
			Medium: []string{"feta", "kalamata", "phyllo", "orzo", "halloumi"},
			Low:    []string{"oregano", "lemon", "olive", "cucumber"},
		},
		"spanish": {
			High:   []string{"paella", "gazpacho", "tortilla espanola", "patatas bravas", "churros", "tapas"},
			Medium: []string{"chorizo", "saffron", "manchego", "sherry", "pimenton"},
			Low:    []string{"paprika", "garlic", "almond"},
		},
		"american": {
			High:   []string{"mac and cheese", "meatloaf", "pot roast", "cornbread", "buffalo wings", "clam chowder", "barbecue", "bbq"},
			Medium: []string{"ranch", "cheddar", "bacon", "maple syrup", "buttermilk"},
			Low:    []string{"ketchup", "mustard", "ground beef"},
		},
	}
}

// cookingVerbs are action words counted by the likelihood scorer.
var cookingVerbs = []string{
	"bake", "boil", "broil", "braise", "chop", "dice", "fold", "fry",
	"grate", "grill", "knead", "marinate", "mince", "mix", "preheat",
	"roast", "saute", "sauté", "sear", "season", "simmer", "slice",
	"steam", "stir", "whisk",
}

// nonRecipeIndicators mark pages that merely talk about food without
// being recipes.
var nonRecipeIndicators = []string{
	"table of contents", "invoice", "terms of service", "privacy policy",
	"shopping cart", "add to cart", "checkout", "404", "page not found",
	"sign in to continue",
}

// recipeContentTerms is the fixed vocabulary the crawler counts when
// classifying pages without structured markup.
var recipeContentTerms = []string{
	"ingredients", "instructions", "directions", "prep time", "cook time",
	"total time", "servings", "serves", "yield", "recipe", "preheat",
	"minutes", "oven",
}
