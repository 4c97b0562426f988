package export

import (
	"fmt"
	"strings"

	"github.com/mealworks/recipe-harvester/models"
)

const pageWidth = 72

// RenderDocument renders the export as a paginated printable document:
// one recipe per section with a metadata line, bullet ingredients,
// numbered instructions and a source attribution footer. Sections are
// separated with form feeds so the output prints one recipe per page.
func RenderDocument(exp models.Export) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Recipe Collection: %s\n", exp.BaseURL)
	fmt.Fprintf(&b, "Exported %s, %d recipe(s)\n", exp.ExportDate, exp.TotalRecipes)
	b.WriteString(strings.Repeat("=", pageWidth))
	b.WriteString("\n")

	for i, rec := range exp.Recipes {
		if i > 0 {
			b.WriteString("\f")
		}
		renderRecipe(&b, rec)
	}

	return b.String()
}

func renderRecipe(b *strings.Builder, rec models.Recipe) {
	fmt.Fprintf(b, "\n%s\n", rec.Title)
	b.WriteString(strings.Repeat("-", len(rec.Title)))
	b.WriteString("\n")

	if rec.Description != "" {
		fmt.Fprintf(b, "%s\n\n", rec.Description)
	}

	if meta := metadataLine(rec); meta != "" {
		fmt.Fprintf(b, "%s\n\n", meta)
	}

	if len(rec.Ingredients) > 0 {
		b.WriteString("Ingredients\n")
		for _, ing := range rec.Ingredients {
			fmt.Fprintf(b, "  • %s\n", ing)
		}
		b.WriteString("\n")
	}

	if len(rec.Instructions) > 0 {
		b.WriteString("Instructions\n")
		for i, step := range rec.Instructions {
			fmt.Fprintf(b, "  %d. %s\n", i+1, step)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(b, "Source: %s\n", rec.SourceURL)
}

// metadataLine joins the timing/serving/cuisine facets that are present.
func metadataLine(rec models.Recipe) string {
	var parts []string
	if rec.Servings != "" {
		parts = append(parts, "Serves "+rec.Servings)
	}
	if rec.PrepTime != "" {
		parts = append(parts, "Prep "+rec.PrepTime)
	}
	if rec.CookTime != "" {
		parts = append(parts, "Cook "+rec.CookTime)
	}
	if rec.TotalTime != "" {
		parts = append(parts, "Total "+rec.TotalTime)
	}
	if rec.Cuisine != "" {
		parts = append(parts, "Cuisine: "+rec.Cuisine)
	}
	if rec.Category != "" {
		parts = append(parts, "Category: "+rec.Category)
	}
	return strings.Join(parts, " | ")
}
