package crawler

import (
	"fmt"
	"net/url"

	"github.com/temoto/robotstxt"

	"github.com/mealworks/recipe-harvester/pkg/fetcher"
)

// loadRobots fetches and parses the site's robots.txt, returning the rule
// group for our user agent. A missing or unreadable robots.txt yields a
// nil group, which allows everything.
func loadRobots(f *fetcher.Fetcher, base *url.URL, userAgent string) *robotstxt.Group {
	robotsURL := fmt.Sprintf("%s://%s/robots.txt", base.Scheme, base.Host)

	body, _, err := f.GetBytes(robotsURL)
	if err != nil {
		return nil
	}

	data, err := robotstxt.FromBytes(body)
	if err != nil {
		return nil
	}

	return data.FindGroup(userAgent)
}
