package models

import "time"

// CrawlConfig holds runtime configuration for a crawl.
// All values come from CLI flags, not external config files.
type CrawlConfig struct {
	MaxPages            int
	Delay               time.Duration
	Timeout             time.Duration
	UserAgent           string
	RespectRobots       bool
	LikelihoodThreshold float64
	Workers             int
}

// DefaultCrawlConfig returns the documented defaults: 100 pages, 1s
// politeness delay, 10s request timeout, robots honored. The likelihood
// threshold is an empirically chosen default, not a tuned constant.
func DefaultCrawlConfig() CrawlConfig {
	return CrawlConfig{
		MaxPages:            100,
		Delay:               time.Second,
		Timeout:             10 * time.Second,
		UserAgent:           "recipe-harvester/1.0 (+https://github.com/mealworks/recipe-harvester)",
		RespectRobots:       true,
		LikelihoodThreshold: 0.30,
		Workers:             4,
	}
}
