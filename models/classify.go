package models

// CuisineMatch is the classifier verdict for a recipe's cuisine.
// Confidence is in [0,1]; below the classifier's floor the label is
// "unknown" and confidence 0; the classifier never fabricates a cuisine
// it has no textual evidence for.
type CuisineMatch struct {
	Label      string  `json:"label" yaml:"label"`
	Confidence float64 `json:"confidence" yaml:"confidence"`
	Language   string  `json:"language,omitempty" yaml:"language,omitempty"`
}

// PageClassification routes a crawled page into the recipe-candidate list.
// Derived, never persisted.
type PageClassification struct {
	URL         string `json:"url"`
	IsRecipe    bool   `json:"is_recipe_page"`
	SignalCount int    `json:"signal_count"`
}
