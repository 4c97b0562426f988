package models

// Export is the structured output of a crawl+extract run.
type Export struct {
	BaseURL      string   `json:"base_url" yaml:"base_url"`
	ExportDate   string   `json:"export_date" yaml:"export_date"`
	TotalRecipes int      `json:"total_recipes" yaml:"total_recipes"`
	Recipes      []Recipe `json:"recipes" yaml:"recipes"`
}
