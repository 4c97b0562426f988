package crawler

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// extractLinks resolves every anchor on the page against the page URL and
// returns absolute, fragment-stripped, deduplicated URLs. Only http(s)
// links survive; mailto, javascript and in-page anchors are dropped.
func extractLinks(doc *goquery.Document, pageURL *url.URL) []string {
	var links []string
	seen := make(map[string]struct{})

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		href = strings.TrimSpace(href)
		if href == "" || strings.HasPrefix(href, "#") ||
			strings.HasPrefix(href, "mailto:") || strings.HasPrefix(href, "javascript:") {
			return
		}

		parsed, err := url.Parse(href)
		if err != nil {
			return
		}

		resolved := pageURL.ResolveReference(parsed)
		if resolved.Scheme != "http" && resolved.Scheme != "https" {
			return
		}
		resolved.Fragment = ""

		clean := resolved.String()
		if _, ok := seen[clean]; ok {
			return
		}
		seen[clean] = struct{}{}
		links = append(links, clean)
	})

	return links
}

// sameOrigin reports whether candidate shares scheme and host with base.
func sameOrigin(base, candidate *url.URL) bool {
	return base.Scheme == candidate.Scheme && base.Host == candidate.Host
}
