package extract

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/mealworks/recipe-harvester/models"
)

// JSONLD extracts recipes from embedded JSON-LD structured data blocks.
// It accepts any node whose declared @type resolves to "Recipe", whether
// the node sits at the top level, inside a @graph, or nested in an array.
type JSONLD struct{}

func (JSONLD) Name() string { return "structured-data" }

func (JSONLD) Extract(doc *goquery.Document, sourceURL string) (*models.Recipe, error) {
	node := findJSONLDRecipe(doc)
	if node == nil {
		// Distinguish "no blocks" from "blocks present but malformed" so
		// the orchestrator can log the parse failure before falling back.
		var parseErr error
		doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
			var v interface{}
			if err := json.Unmarshal([]byte(s.Text()), &v); err != nil {
				parseErr = fmt.Errorf("malformed JSON-LD block: %w", err)
				return false
			}
			return true
		})
		return nil, parseErr
	}
	return recipeFromNode(node, sourceURL), nil
}

// findJSONLDRecipe scans every ld+json script on the page for a Recipe node.
func findJSONLDRecipe(doc *goquery.Document) map[string]interface{} {
	var node map[string]interface{}
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		var v interface{}
		if err := json.Unmarshal([]byte(s.Text()), &v); err != nil {
			return true
		}
		if found := findRecipeNode(v); found != nil {
			node = found
			return false
		}
		return true
	})
	return node
}

// findRecipeNode walks a decoded JSON-LD value looking for a Recipe-typed
// object, descending into arrays and @graph containers.
func findRecipeNode(v interface{}) map[string]interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		if isRecipeType(val["@type"]) {
			return val
		}
		if graph, ok := val["@graph"]; ok {
			return findRecipeNode(graph)
		}
	case []interface{}:
		for _, item := range val {
			if found := findRecipeNode(item); found != nil {
				return found
			}
		}
	}
	return nil
}

// isRecipeType handles @type as a plain string, a schema.org URL, or an
// array of either.
func isRecipeType(t interface{}) bool {
	switch typ := t.(type) {
	case string:
		return typ == "Recipe" || strings.HasSuffix(typ, "/Recipe")
	case []interface{}:
		for _, item := range typ {
			if s, ok := item.(string); ok && (s == "Recipe" || strings.HasSuffix(s, "/Recipe")) {
				return true
			}
		}
	}
	return false
}

func recipeFromNode(node map[string]interface{}, sourceURL string) *models.Recipe {
	rec := &models.Recipe{
		Title:        stringProp(node, "name"),
		Description:  stringProp(node, "description"),
		Ingredients:  stringListProp(node, "recipeIngredient", "ingredients"),
		Instructions: instructionsFromNode(node["recipeInstructions"]),
		Servings:     yieldFromNode(node["recipeYield"]),
		Cuisine:      firstOfProp(node, "recipeCuisine"),
		Category:     firstOfProp(node, "recipeCategory"),
		ImageURL:     imageFromNode(node["image"]),
		SourceURL:    sourceURL,
	}

	if d, ok := ParseISODuration(stringProp(node, "prepTime")); ok {
		rec.PrepTime = d
	}
	if d, ok := ParseISODuration(stringProp(node, "cookTime")); ok {
		rec.CookTime = d
	}
	if d, ok := ParseISODuration(stringProp(node, "totalTime")); ok {
		rec.TotalTime = d
	}

	return rec
}

func stringProp(node map[string]interface{}, key string) string {
	if s, ok := node[key].(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

// stringListProp reads the first present key as an ordered string list.
// A bare string value becomes a single-element list.
func stringListProp(node map[string]interface{}, keys ...string) []string {
	for _, key := range keys {
		switch v := node[key].(type) {
		case []interface{}:
			var out []string
			for _, item := range v {
				if s, ok := item.(string); ok {
					if s = normalizeText(s); s != "" {
						out = append(out, s)
					}
				}
			}
			if len(out) > 0 {
				return out
			}
		case string:
			if s := normalizeText(v); s != "" {
				return []string{s}
			}
		}
	}
	return nil
}

// firstOfProp reads a property that may be a string or an array of
// strings, returning the first value.
func firstOfProp(node map[string]interface{}, key string) string {
	switch v := node[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case []interface{}:
		for _, item := range v {
			if s, ok := item.(string); ok {
				return strings.TrimSpace(s)
			}
		}
	}
	return ""
}

// instructionsFromNode flattens recipeInstructions in all the shapes sites
// use: a single string, a list of strings, a list of HowToStep objects, or
// HowToSection objects wrapping itemListElement step lists.
func instructionsFromNode(v interface{}) []string {
	switch val := v.(type) {
	case string:
		if s := normalizeText(val); s != "" {
			return []string{s}
		}
	case []interface{}:
		var steps []string
		for _, item := range val {
			switch step := item.(type) {
			case string:
				if s := normalizeText(step); s != "" {
					steps = append(steps, s)
				}
			case map[string]interface{}:
				if text := stringProp(step, "text"); text != "" {
					steps = append(steps, normalizeText(text))
				} else if nested, ok := step["itemListElement"]; ok {
					steps = append(steps, instructionsFromNode(nested)...)
				}
			}
		}
		return steps
	}
	return nil
}

func yieldFromNode(v interface{}) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case float64:
		return strings.TrimSuffix(strings.TrimSuffix(fmt.Sprintf("%g", val), ".0"), ".")
	case []interface{}:
		for _, item := range val {
			if s := yieldFromNode(item); s != "" {
				return s
			}
		}
	}
	return ""
}

func imageFromNode(v interface{}) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case []interface{}:
		for _, item := range val {
			if s := imageFromNode(item); s != "" {
				return s
			}
		}
	case map[string]interface{}:
		return stringProp(val, "url")
	}
	return ""
}
