// Package models defines the shared data structures for the crawl,
// extraction, classification and ingestion pipeline.
package models

// Recipe is the normalized record produced by the extractor.
// Ingredients and Instructions preserve source order; step order carries
// recipe semantics.
type Recipe struct {
	Title            string   `json:"title" yaml:"title"`
	Description      string   `json:"description,omitempty" yaml:"description,omitempty"`
	Ingredients      []string `json:"ingredients" yaml:"ingredients"`
	Instructions     []string `json:"instructions" yaml:"instructions"`
	PrepTime         string   `json:"prep_time,omitempty" yaml:"prep_time,omitempty"`
	CookTime         string   `json:"cook_time,omitempty" yaml:"cook_time,omitempty"`
	TotalTime        string   `json:"total_time,omitempty" yaml:"total_time,omitempty"`
	Servings         string   `json:"servings,omitempty" yaml:"servings,omitempty"`
	Cuisine          string   `json:"cuisine,omitempty" yaml:"cuisine,omitempty"`
	Category         string   `json:"category,omitempty" yaml:"category,omitempty"`
	ImageURL         string   `json:"image_url,omitempty" yaml:"image_url,omitempty"`
	SourceURL        string   `json:"source_url" yaml:"source_url"`
	ExtractionMethod string   `json:"extraction_method,omitempty" yaml:"extraction_method,omitempty"`
}

// HasContent reports whether the record carries any usable recipe body.
// A record with neither ingredients nor instructions is an extraction
// failure, not a valid recipe.
func (r *Recipe) HasContent() bool {
	return len(r.Ingredients) > 0 || len(r.Instructions) > 0
}

// IsValid applies the extractor acceptance rule: non-empty title plus at
// least one of ingredients/instructions.
func (r *Recipe) IsValid() bool {
	return r != nil && r.Title != "" && r.HasContent()
}
