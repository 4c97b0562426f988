package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/mealworks/recipe-harvester/models"
)

// Microdata extracts recipes from itemprop-annotated elements inside an
// itemtype=Recipe scope.
type Microdata struct{}

func (Microdata) Name() string { return "embedded-attributes" }

func (Microdata) Extract(doc *goquery.Document, sourceURL string) (*models.Recipe, error) {
	scope := doc.Find(`[itemtype*="Recipe"]`).First()
	if scope.Length() == 0 {
		return nil, nil
	}

	rec := &models.Recipe{
		Title:        propText(scope, "name"),
		Description:  propText(scope, "description"),
		Ingredients:  propList(scope, "recipeIngredient", "ingredients"),
		Instructions: microdataInstructions(scope),
		Servings:     propText(scope, "recipeYield"),
		Cuisine:      propText(scope, "recipeCuisine"),
		Category:     propText(scope, "recipeCategory"),
		ImageURL:     propAttr(scope, "image", "src", "content", "href"),
		SourceURL:    sourceURL,
	}

	rec.PrepTime = propDuration(scope, "prepTime")
	rec.CookTime = propDuration(scope, "cookTime")
	rec.TotalTime = propDuration(scope, "totalTime")

	return rec, nil
}

// propText reads an itemprop's content attribute if present, else its
// visible text.
func propText(scope *goquery.Selection, prop string) string {
	sel := scope.Find(`[itemprop="` + prop + `"]`).First()
	if sel.Length() == 0 {
		return ""
	}
	if content, ok := sel.Attr("content"); ok && strings.TrimSpace(content) != "" {
		return strings.TrimSpace(content)
	}
	return normalizeText(sel.Text())
}

func propAttr(scope *goquery.Selection, prop string, attrs ...string) string {
	sel := scope.Find(`[itemprop="` + prop + `"]`).First()
	if sel.Length() == 0 {
		return ""
	}
	for _, attr := range attrs {
		if v, ok := sel.Attr(attr); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return normalizeText(sel.Text())
}

func propList(scope *goquery.Selection, props ...string) []string {
	for _, prop := range props {
		var items []string
		scope.Find(`[itemprop="` + prop + `"]`).Each(func(_ int, s *goquery.Selection) {
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

// microdataInstructions handles both the one-element-per-step convention
// and a single recipeInstructions container holding an ordered list.
func microdataInstructions(scope *goquery.Selection) []string {
	sel := scope.Find(`[itemprop="recipeInstructions"]`)
	if sel.Length() == 0 {
		return nil
	}

	if sel.Length() == 1 {
		if lis := sel.Find("li"); lis.Length() > 0 {
			var steps []string
			lis.Each(func(_ int, li *goquery.Selection) {
				if text := normalizeText(li.Text()); text != "" {
					steps = append(steps, text)
				}
			})
			return steps
		}
	}

	var steps []string
	sel.Each(func(_ int, s *goquery.Selection) {
		if text := normalizeText(s.Text()); text != "" {
			steps = append(steps, text)
		}
	})
	return steps
}

// propDuration reads a time itemprop whose machine value lives in a
// datetime or content attribute as an ISO duration, with the visible text
// as fallback when no attribute parses.
func propDuration(scope *goquery.Selection, prop string) string {
	sel := scope.Find(`[itemprop="` + prop + `"]`).First()
	if sel.Length() == 0 {
		return ""
	}
	for _, attr := range []string{"datetime", "content"} {
		if v, ok := sel.Attr(attr); ok {
			if d, ok := ParseISODuration(v); ok {
				return d
			}
		}
	}
	return normalizeText(sel.Text())
}
