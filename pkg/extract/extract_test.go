package extract

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/mealworks/recipe-harvester/pkg/fetcher"
)

func docFromHTML(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("failed to parse test HTML: %v", err)
	}
	return doc
}

func testExtractor() *Extractor {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

const jsonldPage = `<html><head>
<script type="application/ld+json">
{
  "@context": "https://schema.org",
  "@type": "Recipe",
  "name": "Spaghetti Carbonara",
  "description": "A Roman classic.",
  "recipeIngredient": ["200g spaghetti", "2 eggs", "50g pecorino"],
  "recipeInstructions": [
    {"@type": "HowToStep", "text": "Boil the pasta."},
    {"@type": "HowToStep", "text": "Whisk eggs with cheese."},
    {"@type": "HowToStep", "text": "Toss everything off the heat."}
  ],
  "prepTime": "PT10M",
  "cookTime": "PT1H30M",
  "recipeYield": 4,
  "recipeCuisine": "Italian",
  "recipeCategory": "Main",
  "image": {"@type": "ImageObject", "url": "https://example.com/carbonara.jpg"}
}
</script>
</head><body><h1>Spaghetti Carbonara</h1></body></html>`

func TestJSONLDExtract(t *testing.T) {
	doc := docFromHTML(t, jsonldPage)

	rec, err := JSONLD{}.Extract(doc, "https://example.com/carbonara")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if rec == nil {
		t.Fatal("Extract() returned nil recipe")
	}

	if rec.Title != "Spaghetti Carbonara" {
		t.Errorf("Title = %q", rec.Title)
	}
	if len(rec.Ingredients) != 3 {
		t.Errorf("Ingredients = %v, want 3 entries", rec.Ingredients)
	}
	wantSteps := []string{"Boil the pasta.", "Whisk eggs with cheese.", "Toss everything off the heat."}
	if len(rec.Instructions) != len(wantSteps) {
		t.Fatalf("Instructions = %v, want %v", rec.Instructions, wantSteps)
	}
	for i, want := range wantSteps {
		if rec.Instructions[i] != want {
			t.Errorf("Instructions[%d] = %q, want %q", i, rec.Instructions[i], want)
		}
	}
	if rec.PrepTime != "10 min" {
		t.Errorf("PrepTime = %q, want %q", rec.PrepTime, "10 min")
	}
	if rec.CookTime != "1 hour 30 min" {
		t.Errorf("CookTime = %q, want %q", rec.CookTime, "1 hour 30 min")
	}
	if rec.Servings != "4" {
		t.Errorf("Servings = %q, want %q", rec.Servings, "4")
	}
	if rec.Cuisine != "Italian" {
		t.Errorf("Cuisine = %q", rec.Cuisine)
	}
	if rec.ImageURL != "https://example.com/carbonara.jpg" {
		t.Errorf("ImageURL = %q", rec.ImageURL)
	}
}

func TestJSONLDGraphAndTypeArray(t *testing.T) {
	page := `<html><head><script type="application/ld+json">
	{
	  "@context": "https://schema.org",
	  "@graph": [
	    {"@type": "WebSite", "name": "Cooking Site"},
	    {
	      "@type": ["Recipe", "Thing"],
	      "name": "Buried Lasagna",
	      "recipeIngredient": ["noodles", "ragu"],
	      "recipeInstructions": "Layer and bake."
	    }
	  ]
	}
	</script></head><body></body></html>`

	rec, err := JSONLD{}.Extract(docFromHTML(t, page), "https://example.com/lasagna")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if rec == nil {
		t.Fatal("Extract() did not find recipe inside @graph")
	}
	if rec.Title != "Buried Lasagna" {
		t.Errorf("Title = %q", rec.Title)
	}
	if len(rec.Instructions) != 1 || rec.Instructions[0] != "Layer and bake." {
		t.Errorf("Instructions = %v", rec.Instructions)
	}
}

func TestJSONLDMalformedBlock(t *testing.T) {
	page := `<html><head><script type="application/ld+json">{not valid json</script></head><body></body></html>`

	rec, err := JSONLD{}.Extract(docFromHTML(t, page), "https://example.com")
	if rec != nil {
		t.Errorf("Extract() = %+v, want nil for malformed block", rec)
	}
	if err == nil {
		t.Error("Extract() error = nil, want parse error for malformed block")
	}
}

func TestJSONLDAbsent(t *testing.T) {
	page := `<html><body><p>No structured data here.</p></body></html>`

	rec, err := JSONLD{}.Extract(docFromHTML(t, page), "https://example.com")
	if rec != nil || err != nil {
		t.Errorf("Extract() = (%+v, %v), want (nil, nil) when no blocks exist", rec, err)
	}
}

const microdataPage = `<html><body>
<div itemscope itemtype="https://schema.org/Recipe">
  <h1 itemprop="name">Chicken Tikka Masala</h1>
  <p itemprop="description">Creamy and spiced.</p>
  <ul>
    <li itemprop="recipeIngredient">1 lb chicken thighs</li>
    <li itemprop="recipeIngredient">1 cup yogurt</li>
  </ul>
  <div itemprop="recipeInstructions">
    <ol>
      <li>Marinate the chicken.</li>
      <li>Grill, then simmer in sauce.</li>
    </ol>
  </div>
  <meta itemprop="prepTime" content="PT20M">
  <span itemprop="recipeYield">6 servings</span>
</div>
</body></html>`

func TestMicrodataExtract(t *testing.T) {
	rec, err := Microdata{}.Extract(docFromHTML(t, microdataPage), "https://example.com/tikka")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if rec == nil {
		t.Fatal("Extract() returned nil recipe")
	}

	if rec.Title != "Chicken Tikka Masala" {
		t.Errorf("Title = %q", rec.Title)
	}
	if len(rec.Ingredients) != 2 {
		t.Errorf("Ingredients = %v, want 2 entries", rec.Ingredients)
	}
	if len(rec.Instructions) != 2 || rec.Instructions[0] != "Marinate the chicken." {
		t.Errorf("Instructions = %v", rec.Instructions)
	}
	if rec.PrepTime != "20 min" {
		t.Errorf("PrepTime = %q, want %q", rec.PrepTime, "20 min")
	}
	if rec.Servings != "6 servings" {
		t.Errorf("Servings = %q", rec.Servings)
	}
}

func TestMicrodataAbsent(t *testing.T) {
	rec, err := Microdata{}.Extract(docFromHTML(t, "<html><body><h1>Hello</h1></body></html>"), "https://example.com")
	if rec != nil || err != nil {
		t.Errorf("Extract() = (%+v, %v), want (nil, nil) without a Recipe scope", rec, err)
	}
}

const heuristicPage = `<html><head>
<meta name="description" content="An old family favorite.">
</head><body>
<h1 class="recipe-title">Beef Chili</h1>
<p>Serves: 8. Prep time: 15 minutes. Cook time: 2 hours.</p>
<ul class="ingredients">
  <li>2 lbs ground beef</li>
  <li>1 can kidney beans</li>
</ul>
<ol class="instructions">
  <li>Brown the beef.</li>
  <li>Add beans and simmer.</li>
</ol>
</body></html>`

func TestHeuristicExtract(t *testing.T) {
	rec, err := Heuristic{}.Extract(docFromHTML(t, heuristicPage), "https://example.com/chili")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	if rec.Title != "Beef Chili" {
		t.Errorf("Title = %q", rec.Title)
	}
	if rec.Description != "An old family favorite." {
		t.Errorf("Description = %q", rec.Description)
	}
	if len(rec.Ingredients) != 2 {
		t.Errorf("Ingredients = %v, want 2 entries", rec.Ingredients)
	}
	if len(rec.Instructions) != 2 {
		t.Errorf("Instructions = %v, want 2 entries", rec.Instructions)
	}
	if rec.Servings != "8" {
		t.Errorf("Servings = %q, want %q", rec.Servings, "8")
	}
	if rec.PrepTime != "15 minutes" {
		t.Errorf("PrepTime = %q, want %q", rec.PrepTime, "15 minutes")
	}
	if rec.CookTime != "2 hours" {
		t.Errorf("CookTime = %q, want %q", rec.CookTime, "2 hours")
	}
}

func TestExtractPageFallbackOrder(t *testing.T) {
	e := testExtractor()

	tests := []struct {
		name       string
		html       string
		wantMethod string
	}{
		{"structured data wins over patterns", jsonldPage, "structured-data"},
		{"microdata when no json-ld", microdataPage, "embedded-attributes"},
		{"patterns as last resort", heuristicPage, "html-patterns"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := &fetcher.Page{URL: "https://example.com/r", Doc: docFromHTML(t, tt.html)}
			rec := e.ExtractPage(page)
			if rec == nil {
				t.Fatal("ExtractPage() = nil, want a recipe")
			}
			if rec.ExtractionMethod != tt.wantMethod {
				t.Errorf("ExtractionMethod = %q, want %q", rec.ExtractionMethod, tt.wantMethod)
			}
			if rec.SourceURL != "https://example.com/r" {
				t.Errorf("SourceURL = %q", rec.SourceURL)
			}
		})
	}
}

func TestExtractPageRejectsEmptyPage(t *testing.T) {
	e := testExtractor()
	page := &fetcher.Page{
		URL: "https://example.com/about",
		Doc: docFromHTML(t, "<html><body><h1>About Us</h1><p>We love food.</p></body></html>"),
	}

	// A title alone is not a recipe: no ingredients, no instructions.
	if rec := e.ExtractPage(page); rec != nil {
		t.Errorf("ExtractPage() = %+v, want nil for a page with no recipe content", rec)
	}
}

func TestHasStructuredRecipe(t *testing.T) {
	if !HasStructuredRecipe(docFromHTML(t, jsonldPage)) {
		t.Error("HasStructuredRecipe() = false for JSON-LD page")
	}
	if !HasStructuredRecipe(docFromHTML(t, microdataPage)) {
		t.Error("HasStructuredRecipe() = false for microdata page")
	}
	if HasStructuredRecipe(docFromHTML(t, heuristicPage)) {
		t.Error("HasStructuredRecipe() = true for plain HTML page")
	}
}

func TestParseISODuration(t *testing.T) {
	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{"PT30M", "30 min", true},
		{"PT1H", "1 hour", true},
		{"PT1H30M", "1 hour 30 min", true},
		{"PT2H15M", "2 hours 15 min", true},
		{"P1DT2H", "26 hours", true},
		{"PT0M", "", false},
		{"", "", false},
		{"30 minutes", "", false},
		{"PTXM", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseISODuration(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ParseISODuration(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("ParseISODuration(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestReadableText(t *testing.T) {
	page := `<html><head><title>Beef Chili Recipe</title></head><body>
	<nav><a href="/">Home</a><a href="/recipes">Recipes</a></nav>
	<article>
		<h1>Beef Chili</h1>
		<p>Brown two pounds of ground beef in a heavy pot, then add the
		beans and chili powder. Simmer everything together for at least
		an hour, stirring now and then, until the chili thickens.</p>
		<p>Season to taste and serve with cornbread.</p>
	</article>
	<script>trackPageView();</script>
	</body></html>`

	text := ReadableText([]byte(page), "https://example.com/chili")
	if text == "" {
		t.Fatal("ReadableText() returned empty text for an article page")
	}
	for _, want := range []string{"ground beef", "Simmer everything together", "cornbread"} {
		if !strings.Contains(text, want) {
			t.Errorf("ReadableText() missing %q", want)
		}
	}
	if strings.Contains(text, "trackPageView") {
		t.Error("ReadableText() leaked script content")
	}
}

func TestReadableTextFallsBackOnEmptyPage(t *testing.T) {
	// Nothing for the readability algorithm to isolate; the visible-text
	// fallback must still return cleanly.
	text := ReadableText([]byte("<html><body></body></html>"), "https://example.com/empty")
	if text != "" {
		t.Errorf("ReadableText() = %q, want empty for an empty body", text)
	}

	// An unparseable page URL must not break extraction either.
	text = ReadableText([]byte("<html><body><p>hello</p></body></html>"), "://bad-url")
	if !strings.Contains(text, "hello") {
		t.Errorf("ReadableText() = %q, want body text despite bad page URL", text)
	}
}

func TestNormalizeText(t *testing.T) {
	input := "  Boil the\n\n   pasta.  \n"
	if got := normalizeText(input); got != "Boil the pasta." {
		t.Errorf("normalizeText() = %q", got)
	}
}
