package crawler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/mealworks/recipe-harvester/models"
)

// testSite serves a small fixture site and records which paths were
// actually fetched.
type testSite struct {
	mu      sync.Mutex
	fetched map[string]int
	pages   map[string]string
}

func newTestSite(pages map[string]string) *testSite {
	return &testSite{fetched: make(map[string]int), pages: pages}
}

func (s *testSite) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.fetched[r.URL.Path]++
	s.mu.Unlock()

	body, ok := s.pages[r.URL.Path]
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(body))
}

func (s *testSite) wasFetched(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fetched[path] > 0
}

func fixturePages() map[string]string {
	return map[string]string{
		"/robots.txt": "User-agent: *\nDisallow: /private/\n",
		"/": `<html><body><h1>Cooking Site</h1>
			<a href="/recipes/">Browse</a>
			<a href="/about">About</a>
			<a href="https://external.invalid/page">Elsewhere</a>
			</body></html>`,
		"/recipes/": `<html><body><h1>Index</h1>
			<a href="/recipes/pasta">Pasta</a>
			<a href="/recipes/soup">Soup</a>
			<a href="/private/secret">Secret</a>
			</body></html>`,
		"/recipes/pasta": `<html><head><script type="application/ld+json">
			{"@type": "Recipe", "name": "Weeknight Pasta",
			 "recipeIngredient": ["pasta", "sauce"],
			 "recipeInstructions": "Boil and combine."}
			</script></head><body>
			<a href="/recipes/hidden">More</a>
			</body></html>`,
		"/recipes/soup": `<html><body>
			<h2>What You Need</h2>
			<ul class="ingredients"><li>2 carrots</li><li>1 onion</li></ul>
			<h2>Method</h2>
			<ol class="instructions"><li>Chop.</li><li>Simmer.</li></ol>
			</body></html>`,
		"/about": `<html><body><p>A site about our kitchen.</p></body></html>`,
		"/recipes/hidden": `<html><head><script type="application/ld+json">
			{"@type": "Recipe", "name": "Hidden", "recipeIngredient": ["x"]}
			</script></head><body></body></html>`,
		"/private/secret": `<html><body><p>Disallowed.</p></body></html>`,
	}
}

func testConfig() models.CrawlConfig {
	cfg := models.DefaultCrawlConfig()
	cfg.Delay = 0
	cfg.Timeout = 5 * time.Second
	cfg.UserAgent = "harvester-test/1.0"
	return cfg
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCrawlDiscoversRecipes(t *testing.T) {
	site := newTestSite(fixturePages())
	server := httptest.NewServer(site)
	defer server.Close()

	c := New(testConfig(), discardLogger())
	report, err := c.Crawl(context.Background(), server.URL+"/")
	if err != nil {
		t.Fatalf("Crawl() error = %v", err)
	}

	wantCandidates := map[string]bool{
		server.URL + "/recipes/pasta": true,
		server.URL + "/recipes/soup":  true,
	}
	if len(report.RecipeCandidates) != len(wantCandidates) {
		t.Fatalf("RecipeCandidates = %v, want 2 candidates", report.RecipeCandidates)
	}
	for _, u := range report.RecipeCandidates {
		if !wantCandidates[u] {
			t.Errorf("unexpected candidate %q", u)
		}
	}

	// Recipe pages are leaves: the page linked only from a recipe page
	// must never be visited.
	if site.wasFetched("/recipes/hidden") {
		t.Error("page linked only from a recipe page was fetched")
	}

	// robots.txt disallows /private/; it must be skipped without a fetch.
	if site.wasFetched("/private/secret") {
		t.Error("robots-disallowed path was fetched")
	}
	if len(report.Skipped) != 1 {
		t.Errorf("Skipped = %v, want exactly the disallowed URL", report.Skipped)
	}

	if len(report.Failures) != 0 {
		t.Errorf("Failures = %v, want none", report.Failures)
	}
	if len(report.Visited) != 5 {
		t.Errorf("Visited = %v, want 5 pages", report.Visited)
	}
}

func TestCrawlStaysOnOrigin(t *testing.T) {
	external := newTestSite(map[string]string{
		"/page": `<html><body><p>Other site.</p></body></html>`,
	})
	externalServer := httptest.NewServer(external)
	defer externalServer.Close()

	pages := fixturePages()
	pages["/"] = `<html><body>
		<a href="` + externalServer.URL + `/page">Elsewhere</a>
		<a href="/about">About</a>
		</body></html>`

	site := newTestSite(pages)
	server := httptest.NewServer(site)
	defer server.Close()

	c := New(testConfig(), discardLogger())
	if _, err := c.Crawl(context.Background(), server.URL+"/"); err != nil {
		t.Fatalf("Crawl() error = %v", err)
	}

	if external.wasFetched("/page") {
		t.Error("crawler fetched a cross-origin URL")
	}
}

func TestCrawlHonorsMaxPages(t *testing.T) {
	site := newTestSite(fixturePages())
	server := httptest.NewServer(site)
	defer server.Close()

	cfg := testConfig()
	cfg.MaxPages = 2

	report, err := New(cfg, discardLogger()).Crawl(context.Background(), server.URL+"/")
	if err != nil {
		t.Fatalf("Crawl() error = %v", err)
	}
	if len(report.Visited) > 2 {
		t.Errorf("Visited = %d pages, want at most 2", len(report.Visited))
	}
}

func TestCrawlRecordsFetchFailures(t *testing.T) {
	pages := fixturePages()
	pages["/"] = `<html><body>
		<a href="/missing">Broken</a>
		<a href="/about">About</a>
		</body></html>`
	delete(pages, "/missing")

	site := newTestSite(pages)
	server := httptest.NewServer(site)
	defer server.Close()

	report, err := New(testConfig(), discardLogger()).Crawl(context.Background(), server.URL+"/")
	if err != nil {
		t.Fatalf("Crawl() error = %v, per-page failures must not abort the crawl", err)
	}

	if len(report.Failures) != 1 {
		t.Fatalf("Failures = %v, want exactly one", report.Failures)
	}
	if report.Failures[0].URL != server.URL+"/missing" {
		t.Errorf("failure URL = %q", report.Failures[0].URL)
	}
	// The crawl continued past the failure.
	if !site.wasFetched("/about") {
		t.Error("crawl stopped at the first failure")
	}
}

func TestCrawlRejectsBadBaseURL(t *testing.T) {
	c := New(testConfig(), discardLogger())

	for _, bad := range []string{"", "not a url", "ftp://example.com", "https://"} {
		if _, err := c.Crawl(context.Background(), bad); err == nil {
			t.Errorf("Crawl(%q) error = nil, want invalid base URL error", bad)
		}
	}
}

func TestCrawlAppliesRobotsToQueryStrings(t *testing.T) {
	site := newTestSite(map[string]string{
		"/robots.txt": "User-agent: *\nDisallow: /*?print=\n",
		"/": `<html><body>
			<a href="/about?print=1">Printable</a>
			<a href="/about">About</a>
			</body></html>`,
		"/about": `<html><body><p>A site about our kitchen.</p></body></html>`,
	})
	server := httptest.NewServer(site)
	defer server.Close()

	report, err := New(testConfig(), discardLogger()).Crawl(context.Background(), server.URL+"/")
	if err != nil {
		t.Fatalf("Crawl() error = %v", err)
	}

	if len(report.Skipped) != 1 || report.Skipped[0] != server.URL+"/about?print=1" {
		t.Errorf("Skipped = %v, want the print URL skipped by its query string", report.Skipped)
	}

	visited := make(map[string]bool)
	for _, u := range report.Visited {
		visited[u] = true
	}
	if !visited[server.URL+"/about"] {
		t.Error("plain /about should still be visited")
	}
	if visited[server.URL+"/about?print=1"] {
		t.Error("disallowed query URL was visited")
	}
}

func TestCrawlReportsFrontierSize(t *testing.T) {
	site := newTestSite(fixturePages())
	server := httptest.NewServer(site)
	defer server.Close()

	c := New(testConfig(), discardLogger())
	var observed []int
	c.FrontierObserver = func(queued int) { observed = append(observed, queued) }

	report, err := c.Crawl(context.Background(), server.URL+"/")
	if err != nil {
		t.Fatalf("Crawl() error = %v", err)
	}

	// One observation per dequeue: every visited, skipped and failed URL.
	wantCalls := len(report.Visited) + len(report.Skipped) + len(report.Failures)
	if len(observed) != wantCalls {
		t.Fatalf("observer called %d times, want %d", len(observed), wantCalls)
	}
	for _, n := range observed {
		if n < 0 {
			t.Fatalf("observed negative frontier size %d", n)
		}
	}
	if last := observed[len(observed)-1]; last != 0 {
		t.Errorf("final frontier size = %d, want 0 when the crawl drains", last)
	}
}

func TestCrawlIgnoresRobotsWhenDisabled(t *testing.T) {
	site := newTestSite(fixturePages())
	server := httptest.NewServer(site)
	defer server.Close()

	cfg := testConfig()
	cfg.RespectRobots = false

	report, err := New(cfg, discardLogger()).Crawl(context.Background(), server.URL+"/")
	if err != nil {
		t.Fatalf("Crawl() error = %v", err)
	}
	if len(report.Skipped) != 0 {
		t.Errorf("Skipped = %v, want none with robots disabled", report.Skipped)
	}
	if !site.wasFetched("/private/secret") {
		t.Error("disallowed path should be fetched when robots checking is off")
	}
}
