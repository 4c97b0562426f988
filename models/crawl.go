package models

// CrawlFailure records a single page that could not be fetched or parsed.
// Failures never abort a crawl; they are collected and reported.
type CrawlFailure struct {
	URL    string `json:"url" yaml:"url"`
	Reason string `json:"reason" yaml:"reason"`
}

// CrawlReport is the outcome of one crawl run.
type CrawlReport struct {
	BaseURL          string         `json:"base_url" yaml:"base_url"`
	Visited          []string       `json:"visited" yaml:"visited"`
	RecipeCandidates []string       `json:"recipe_candidates" yaml:"recipe_candidates"`
	Failures         []CrawlFailure `json:"failures" yaml:"failures"`
	Skipped          []string       `json:"skipped,omitempty" yaml:"skipped,omitempty"`
}
