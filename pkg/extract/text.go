package extract

import (
	"bufio"
	"bytes"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
)

// VisibleText returns the page's visible body text with scripts and
// styles dropped and whitespace collapsed.
func VisibleText(doc *goquery.Document) string {
	body := doc.Find("body").Clone()
	body.Find("script,style,noscript").Remove()
	return normalizeText(body.Text())
}

// ReadableText runs the readability algorithm over raw HTML to isolate
// the main content text, falling back to plain visible text when the
// page defeats it.
func ReadableText(rawHTML []byte, pageURL string) string {
	parsedURL, err := url.Parse(pageURL)
	if err != nil {
		parsedURL = &url.URL{}
	}

	article, err := readability.FromReader(bytes.NewReader(rawHTML), parsedURL)
	if err == nil && strings.TrimSpace(article.TextContent) != "" {
		return normalizeText(article.TextContent)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(rawHTML))
	if err != nil {
		return ""
	}
	return VisibleText(doc)
}

// normalizeText cleans up a string by trimming space and collapsing
// blank lines into single-space separation.
func normalizeText(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			b.WriteString(line)
			b.WriteString(" ")
		}
	}
	return strings.TrimSpace(b.String())
}
